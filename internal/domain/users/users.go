package users

import (
	"context"
	"errors"
)

// User is an account row minus the password hash, which never leaves the
// storage layer.
type User struct {
	ID    int64   `json:"id"`
	Name  *string `json:"name"`
	Email string  `json:"email"`
	Role  string  `json:"role"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var (
	// ErrEmailInUse maps the unique constraint on users.email.
	ErrEmailInUse = errors.New("email already in use")
	// ErrInvalidCredentials means no user matched the email/digest pair.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repository is the storage gateway for accounts. Credentials are compared
// by digest equality; the repository never sees a raw password.
type Repository interface {
	Create(ctx context.Context, name *string, email, passwordHash, role string) (int64, error)
	FindByCredentials(ctx context.Context, email, passwordHash string) (*User, error)
}
