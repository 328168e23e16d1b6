package service

import (
	"context"
	"errors"

	"github.com/probox/probox-api/internal/crypto"
	"github.com/probox/probox-api/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// AuthService handles login.
type AuthService struct {
	users  repository.UserStore
	tokens *crypto.TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserStore, tokens *crypto.TokenService) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Login issues a token when a user with the given email exists.
func (s *AuthService) Login(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", ErrUserNotFound
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return s.tokens.Issue(user.Email)
}
