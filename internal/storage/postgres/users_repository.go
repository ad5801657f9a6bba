package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gkevents/server/internal/domain/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var _ users.Repository = (*UserRepository)(nil)

const uniqueViolation = "23505"

func (r *UserRepository) Create(ctx context.Context, name *string, email, passwordHash, role string) (int64, error) {
	row := r.queryer().QueryRow(ctx, `
INSERT INTO users (name, email, password_hash, role)
VALUES ($1, $2, $3, $4)
RETURNING id
`, name, email, passwordHash, role)

	var id int64
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, users.ErrEmailInUse
		}
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) FindByCredentials(ctx context.Context, email, passwordHash string) (*users.User, error) {
	row := r.queryer().QueryRow(ctx, `
SELECT id, name, email, role
  FROM users
 WHERE email = $1 AND password_hash = $2
 LIMIT 1
`, email, passwordHash)

	var user users.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Role); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, users.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user by credentials: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) queryer() queryer {
	if r.tx != nil {
		return r.tx
	}
	return r.pool
}
