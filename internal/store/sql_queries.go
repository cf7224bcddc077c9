package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-posts/models"
)

var (
	postColumns = []string{"id", "author", "content", "date"}
	userColumns = []string{"id", "email", "nickname"}
)

// sqlBuilder emits SQLite "?" placeholders.
var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectAllQuery(table string, columns []string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Select(columns...).
		From(table).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSelectByIDQuery(table string, columns []string, id string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountQuery(table string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Select("COUNT(*)").
		From(table).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteQuery(table string, id string) (string, []any, error) {
	query, args, err := sqlBuilder.
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertPostQuery(post models.Post) (string, []any, error) {
	query, args, err := sqlBuilder.
		Insert(post.TableName()).
		Columns(postColumns...).
		Values(post.ID, post.Author, post.Content, formatDate(post.Date)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdatePostQuery(post models.Post) (string, []any, error) {
	query, args, err := sqlBuilder.
		Update(post.TableName()).
		Set("author", post.Author).
		Set("content", post.Content).
		Set("date", formatDate(post.Date)).
		Where(sq.Eq{"id": post.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	query, args, err := sqlBuilder.
		Insert(user.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Email, user.Nickname).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	query, args, err := sqlBuilder.
		Update(user.TableName()).
		Set("email", user.Email).
		Set("nickname", user.Nickname).
		Where(sq.Eq{"id": user.ID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
