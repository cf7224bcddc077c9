package store

import (
	"context"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
)

type memoryUsersProvider struct {
	*memoryStore[models.User, models.UserInput]
	tokens TokenValidator
}

// NewMemoryUsersProvider returns an empty map-backed [UsersProvider].
// Token checks are delegated to tokens and never touch the stored users.
func NewMemoryUsersProvider(ids IDGenerator, tokens TokenValidator, log *logger.Logger) UsersProvider {
	log.Debug().Msg("creating in-memory users provider")
	return &memoryUsersProvider{
		memoryStore: newMemoryStore(models.User{}.TableName(), ids, models.NewUser),
		tokens:      tokens,
	}
}

func (p *memoryUsersProvider) IsTokenValid(ctx context.Context, token string) bool {
	return p.tokens.IsTokenValid(ctx, token)
}
