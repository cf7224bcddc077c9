package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
)

// Storages holds the provider of every resource group.
type Storages struct {
	Posts PostsProvider
	Users UsersProvider

	db *DB
}

// NewStorages builds the providers selected by cfg.Provider. Both resource
// groups always use the same variant.
func NewStorages(ctx context.Context, cfg config.Storage, tokens TokenValidator, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	switch cfg.Provider {
	case config.StorageMemory:
		return &Storages{
			Posts: NewMemoryPostsProvider(ids, log),
			Users: NewMemoryUsersProvider(ids, tokens, log),
		}, nil
	case config.StorageSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			Posts: NewSQLPostsProvider(db, ids, log),
			Users: NewSQLUsersProvider(db, ids, tokens, log),
			db:    db,
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
