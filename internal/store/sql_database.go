package store

import (
	"database/sql"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/migrations"
)

// DB wraps the connection pool shared by the SQL providers.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies every embedded migration.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
