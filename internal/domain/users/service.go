package users

import (
	"context"
	"strings"

	"github.com/gkevents/server/internal/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates an account with the fixed "user" role. It does not log
// the user in; registration and login are separate steps.
func (s *Service) Register(ctx context.Context, name *string, email, password string) (*User, error) {
	email = strings.TrimSpace(email)

	id, err := s.repo.Create(ctx, name, email, auth.HashPassword(password), RoleUser)
	if err != nil {
		return nil, err
	}

	return &User{ID: id, Name: name, Email: email, Role: RoleUser}, nil
}

// Login resolves the one user matching email and password digest. The email
// is unique, so at most one row can match.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	return s.repo.FindByCredentials(ctx, strings.TrimSpace(email), auth.HashPassword(password))
}
