package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
)

type sqlPostsProvider struct {
	*sqlStore[models.Post, models.PostInput]
}

// NewSQLPostsProvider returns a [PostsProvider] over the "posts" table.
func NewSQLPostsProvider(db *DB, ids IDGenerator, log *logger.Logger) PostsProvider {
	log.Debug().Msg("creating sql posts provider")
	return &sqlPostsProvider{
		sqlStore: &sqlStore[models.Post, models.PostInput]{
			db:      db,
			table:   models.Post{}.TableName(),
			columns: postColumns,
			ids:     ids,
			build:   models.NewPost,
			scan:    scanPost,
			insert:  buildInsertPostQuery,
			update:  buildUpdatePostQuery,
		},
	}
}

func scanPost(row rowScanner) (models.Post, error) {
	var post models.Post
	var date string

	if err := row.Scan(&post.ID, &post.Author, &post.Content, &date); err != nil {
		return models.Post{}, err
	}

	parsed, err := parseDate(date)
	if err != nil {
		return models.Post{}, err
	}
	post.Date = parsed

	return post, nil
}

// Dates are stored as RFC 3339 text with nanoseconds, so a stored post reads
// back equal to what was written.
func formatDate(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return t, nil
}
