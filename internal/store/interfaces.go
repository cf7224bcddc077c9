package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-posts/models"
)

// Provider is the CRUD contract of a single resource group. E is the stored
// entity, I is the entity without its identifier.
//
// A missing id is reported through the boolean result, never as an error.
// The error result is reserved for backend faults (SQL); the in-memory
// variant always returns nil. Implementations are safe for concurrent use.
type Provider[E any, I any] interface {
	// GetAll returns a snapshot of every stored entity in unspecified order.
	GetAll(ctx context.Context) ([]E, error)
	// Get returns the entity stored under id. ok is false when there is none.
	Get(ctx context.Context, id string) (entity E, ok bool, err error)
	// Create stores in under a fresh identifier and returns the new entity.
	Create(ctx context.Context, in I) (E, error)
	// Update replaces every field of the entity stored under id, keeping
	// id. ok is false and nothing changes when there is no such entity.
	Update(ctx context.Context, id string, in I) (entity E, ok bool, err error)
	// Delete removes the entity stored under id and reports whether it was
	// present.
	Delete(ctx context.Context, id string) (bool, error)
}

// PostsProvider stores posts.
type PostsProvider interface {
	Provider[models.Post, models.PostInput]
}

// UsersProvider stores users and answers bearer token checks.
type UsersProvider interface {
	Provider[models.User, models.UserInput]
	TokenValidator
}

// TokenValidator decides whether a bearer token grants access.
type TokenValidator interface {
	IsTokenValid(ctx context.Context, token string) bool
}

// Counter is implemented by providers that can report their size.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// IDGenerator allocates entity identifiers.
type IDGenerator interface {
	Generate() string
}
