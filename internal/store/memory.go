// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-posts/internal/logger"
)

// memoryStore is a map-backed [Provider] shared by both resource groups.
//
// Lock discipline: reads hold mu.RLock while copying values out, writes hold
// mu.Lock only for the map mutation. E must be a plain value type so copies
// never alias stored state.
type memoryStore[E any, I any] struct {
	mu    sync.RWMutex
	items map[string]E

	resource string
	ids      IDGenerator
	build    func(id string, in I) E
}

func newMemoryStore[E any, I any](resource string, ids IDGenerator, build func(id string, in I) E) *memoryStore[E, I] {
	return &memoryStore[E, I]{
		items:    make(map[string]E),
		resource: resource,
		ids:      ids,
		build:    build,
	}
}

func (s *memoryStore[E, I]) GetAll(ctx context.Context) ([]E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]E, 0, len(s.items))
	for _, item := range s.items {
		all = append(all, item)
	}

	return all, nil
}

func (s *memoryStore[E, I]) Get(ctx context.Context, id string) (E, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	return item, ok, nil
}

// Create draws the id before taking the lock. A colliding id is redrawn
// under the lock, so the returned id is never already present.
func (s *memoryStore[E, I]) Create(ctx context.Context, in I) (E, error) {
	id := s.ids.Generate()

	s.mu.Lock()
	for {
		if _, taken := s.items[id]; !taken {
			break
		}
		id = s.ids.Generate()
	}
	item := s.build(id, in)
	s.items[id] = item
	s.mu.Unlock()

	logger.FromContext(ctx).Debug().
		Str("resource", s.resource).
		Str("id", id).
		Msg("entity created")

	return item, nil
}

func (s *memoryStore[E, I]) Update(ctx context.Context, id string, in I) (E, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		var zero E
		return zero, false, nil
	}

	item := s.build(id, in)
	s.items[id] = item

	return item, true, nil
}

func (s *memoryStore[E, I]) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return false, nil
	}
	delete(s.items, id)

	return true, nil
}

// Count implements [Counter].
func (s *memoryStore[E, I]) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items), nil
}
