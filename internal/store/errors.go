package store

import "errors"

// Low-level database operation errors. These are returned (or wrapped) by
// SQL provider methods when a SQL-level operation fails. Handlers map every
// one of them to an internal server error.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT, UPDATE or
	// DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning fails during multi-row
	// iteration.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrIDExhausted is returned when every generated identifier of a
	// create attempt collided with an existing row.
	ErrIDExhausted = errors.New("could not allocate a unique id")
)

// Configuration errors returned by [NewStorages].
var (
	// ErrUnknownProvider is returned for an unsupported provider name.
	ErrUnknownProvider = errors.New("unknown storage provider")

	// ErrNotInMemoryDSN is returned when the SQLite DSN points at a file.
	ErrNotInMemoryDSN = errors.New("sqlite dsn must name an in-memory database")
)
