package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/store"
)

// AuthService implements the demo email-only login. No passwords, no
// sessions, no tokens: a matching user record is the whole credential.
type AuthService struct {
	store  store.UserStore
	logger *logger.Logger
}

func NewAuthService(userStore store.UserStore, logger *logger.Logger) *AuthService {
	return &AuthService{
		store:  userStore,
		logger: logger,
	}
}

// Login resolves the email to a user. An unknown email is reported as
// invalid credentials, not as a missing user, so the endpoint does not
// leak which addresses exist.
func (s *AuthService) Login(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Warn("login rejected", "email", email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	s.logger.Info("login", "user_id", user.ID)

	return user, nil
}
