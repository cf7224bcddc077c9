package utils

import (
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesVersion4(t *testing.T) {
	id := NewUUIDGenerator().Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("expected a valid uuid, got %q: %v", id, err)
	}
	if parsed.Version() != 4 {
		t.Errorf("expected version 4, got %d", parsed.Version())
	}
}

func TestUUIDGenerator_ConcurrentUnique(t *testing.T) {
	const n = 1000
	g := NewUUIDGenerator()

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, n)
		wg   sync.WaitGroup
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Generate()
			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(seen) != n {
		t.Errorf("expected %d distinct ids, got %d", n, len(seen))
	}
}
