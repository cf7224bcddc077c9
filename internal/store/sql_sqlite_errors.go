package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// isIDCollision reports whether err is a primary key or unique constraint
// violation raised by the SQLite driver.
func isIDCollision(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintPrimaryKey, sqlite3.ErrConstraintUnique:
		return true
	}
	return false
}
