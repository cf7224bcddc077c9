package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-posts/internal/logger"
)

// maxIDAttempts bounds how many identifiers Create draws before giving up.
const maxIDAttempts = 3

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// sqlStore is the database/sql [Provider] shared by both resource groups.
// Concurrency is delegated to the database.
type sqlStore[E any, I any] struct {
	db      *DB
	table   string
	columns []string
	ids     IDGenerator

	build  func(id string, in I) E
	scan   func(row rowScanner) (E, error)
	insert func(entity E) (string, []any, error)
	update func(entity E) (string, []any, error)
}

func (s *sqlStore[E, I]) GetAll(ctx context.Context) ([]E, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllQuery(s.table, s.columns)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.GetAll").Str("table", s.table).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	all := make([]E, 0)
	for rows.Next() {
		item, err := s.scan(rows)
		if err != nil {
			log.Err(err).Str("func", "*sqlStore.GetAll").Str("table", s.table).Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		all = append(all, item)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlStore.GetAll").Str("table", s.table).Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return all, nil
}

func (s *sqlStore[E, I]) Get(ctx context.Context, id string) (E, bool, error) {
	var zero E

	query, args, err := buildSelectByIDQuery(s.table, s.columns, id)
	if err != nil {
		return zero, false, err
	}

	item, err := s.scan(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStore.Get").Str("table", s.table).Msg("error scanning row")
		return zero, false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, true, nil
}

// Create inserts a new row. A primary key collision draws a new id, up to
// maxIDAttempts times.
func (s *sqlStore[E, I]) Create(ctx context.Context, in I) (E, error) {
	log := logger.FromContext(ctx)
	var zero E

	for range maxIDAttempts {
		item := s.build(s.ids.Generate(), in)

		query, args, err := s.insert(item)
		if err != nil {
			return zero, err
		}

		_, err = s.db.ExecContext(ctx, query, args...)
		if err == nil {
			return item, nil
		}
		if isIDCollision(err) {
			log.Warn().Str("func", "*sqlStore.Create").Str("table", s.table).Msg("id collision, retrying")
			continue
		}

		log.Err(err).Str("func", "*sqlStore.Create").Str("table", s.table).Msg("error inserting row")
		return zero, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return zero, ErrIDExhausted
}

func (s *sqlStore[E, I]) Update(ctx context.Context, id string, in I) (E, bool, error) {
	var zero E
	item := s.build(id, in)

	query, args, err := s.update(item)
	if err != nil {
		return zero, false, err
	}

	affected, err := s.exec(ctx, "*sqlStore.Update", query, args)
	if err != nil {
		return zero, false, err
	}
	if affected == 0 {
		return zero, false, nil
	}

	return item, true, nil
}

func (s *sqlStore[E, I]) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := buildDeleteQuery(s.table, id)
	if err != nil {
		return false, err
	}

	affected, err := s.exec(ctx, "*sqlStore.Delete", query, args)
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Count implements [Counter].
func (s *sqlStore[E, I]) Count(ctx context.Context) (int, error) {
	query, args, err := buildCountQuery(s.table)
	if err != nil {
		return 0, err
	}

	var n int
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return n, nil
}

func (s *sqlStore[E, I]) exec(ctx context.Context, fn, query string, args []any) (int64, error) {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("table", s.table).Msg("error executing statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
