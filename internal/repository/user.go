package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/probox/probox-api/internal/model"
)

// FindByEmail retrieves a user by exact email match.
func (s *SQLStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	query := s.rebind(`SELECT email FROM users WHERE email = ?`)

	user := &model.User{}
	err := s.db.QueryRowContext(ctx, query, email).Scan(&user.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}
