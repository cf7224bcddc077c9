package state

import (
	"context"

	"github.com/MKhiriev/go-posts/internal/store"
)

// Global is the process-wide state used only for token validation.
type Global struct {
	users store.UsersProvider
}

// NewGlobal fixes the users provider consulted for bearer tokens.
func NewGlobal(users store.UsersProvider) *Global {
	return &Global{users: users}
}

// IsTokenValid asks the users provider about token. A nil receiver or an
// unset provider rejects every token.
func (g *Global) IsTokenValid(ctx context.Context, token string) bool {
	if g == nil || g.users == nil {
		return false
	}
	return g.users.IsTokenValid(ctx, token)
}

// Posts is the route-local state of the posts resource group.
type Posts struct {
	Provider store.PostsProvider
}

// Users is the route-local state of the users resource group.
type Users struct {
	Provider store.UsersProvider
}

// States aggregates everything the HTTP handler needs.
type States struct {
	Global *Global
	Posts  *Posts
	Users  *Users
}

// NewStates wires every handle to storages. The global state and the users
// routes share the same users provider.
func NewStates(storages *store.Storages) *States {
	return &States{
		Global: NewGlobal(storages.Users),
		Posts:  &Posts{Provider: storages.Posts},
		Users:  &Users{Provider: storages.Users},
	}
}
