package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/store"
)

type UserService struct {
	store  store.UserStore
	logger *logger.Logger
}

func NewUserService(userStore store.UserStore, logger *logger.Logger) *UserService {
	return &UserService{
		store:  userStore,
		logger: logger,
	}
}

// Profile is the display-friendly projection of a user.
type Profile struct {
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Initials    string `json:"initials"`
}

func (s *UserService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.store.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.store.FindUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// GetProfile derives the profile view for a user: display name, email
// and initials built from the first letter of each name token.
func (s *UserService) GetProfile(ctx context.Context, id string) (*Profile, error) {
	user, err := s.store.FindUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &Profile{
		DisplayName: user.Name,
		Email:       user.Email,
		Initials:    initials(user.Name),
	}, nil
}

// CreateUser inserts a new user. Email uniqueness is enforced by the
// store atomically with the insert; a duplicate surfaces as
// domain.ErrEmailExists.
func (s *UserService) CreateUser(ctx context.Context, data store.NewUser) (*domain.User, error) {
	user, err := s.store.CreateUser(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user created",
		"user_id", user.ID,
		"role", user.Role,
	)

	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, updates store.UserUpdate) (*domain.User, error) {
	user, err := s.store.UpdateUser(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info("user updated", "user_id", id)

	return user, nil
}

// DeleteUser deactivates a user; the record is kept. Idempotent.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.store.DeleteUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("user deactivated", "user_id", id)

	return user, nil
}

func initials(name string) string {
	var b strings.Builder
	for _, token := range strings.Fields(name) {
		r := []rune(token)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
