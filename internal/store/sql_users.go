package store

import (
	"context"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
)

type sqlUsersProvider struct {
	*sqlStore[models.User, models.UserInput]
	tokens TokenValidator
}

// NewSQLUsersProvider returns a [UsersProvider] over the "users" table.
func NewSQLUsersProvider(db *DB, ids IDGenerator, tokens TokenValidator, log *logger.Logger) UsersProvider {
	log.Debug().Msg("creating sql users provider")
	return &sqlUsersProvider{
		sqlStore: &sqlStore[models.User, models.UserInput]{
			db:      db,
			table:   models.User{}.TableName(),
			columns: userColumns,
			ids:     ids,
			build:   models.NewUser,
			scan:    scanUser,
			insert:  buildInsertUserQuery,
			update:  buildUpdateUserQuery,
		},
		tokens: tokens,
	}
}

func (p *sqlUsersProvider) IsTokenValid(ctx context.Context, token string) bool {
	return p.tokens.IsTokenValid(ctx, token)
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	if err := row.Scan(&user.ID, &user.Email, &user.Nickname); err != nil {
		return models.User{}, err
	}
	return user, nil
}
