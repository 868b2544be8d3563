package store

import (
	"context"

	"github.com/acmecorp/admin-api/internal/domain"
)

// NewUser carries the caller-supplied fields for user creation.
// Role defaults to "developer" when empty.
type NewUser struct {
	Email string
	Name  string
	Role  string
}

// UserUpdate is a partial update; nil fields are left untouched.
// These four fields are the whole whitelist — anything else in a PATCH
// body is silently ignored.
type UserUpdate struct {
	Email  *string `json:"email"`
	Name   *string `json:"name"`
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// UserStore is the user half of the in-memory database.
// Lookups return domain.ErrUserNotFound for missing IDs.
type UserStore interface {
	FindUser(ctx context.Context, id string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
	CreateUser(ctx context.Context, data NewUser) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, updates UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}

// TeamStore is the team half of the in-memory database.
type TeamStore interface {
	FindTeam(ctx context.Context, id string) (*domain.Team, error)
	GetAllTeams(ctx context.Context) ([]*domain.Team, error)
	GetTeamMembers(ctx context.Context, teamID string) ([]*domain.User, error)
	CreateTeam(ctx context.Context, name string) (*domain.Team, error)
	AddTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error)
	RemoveTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error)
}
