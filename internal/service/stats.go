package service

import (
	"context"
	"fmt"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/store"
)

// StatsService aggregates dashboard summary numbers over the full
// user and team collections.
type StatsService struct {
	users  store.UserStore
	teams  store.TeamStore
	logger *logger.Logger
}

func NewStatsService(userStore store.UserStore, teamStore store.TeamStore, logger *logger.Logger) *StatsService {
	return &StatsService{
		users:  userStore,
		teams:  teamStore,
		logger: logger,
	}
}

func (s *StatsService) Summary(ctx context.Context) (*domain.Stats, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats users: %w", err)
	}
	teams, err := s.teams.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("stats teams: %w", err)
	}

	stats := &domain.Stats{
		Users: domain.UserStats{
			Total:  len(users),
			ByRole: make(map[string]int),
		},
		Teams: domain.TeamStats{
			Total: len(teams),
		},
	}

	for _, u := range users {
		switch u.Status {
		case domain.StatusActive:
			stats.Users.Active++
		case domain.StatusInactive:
			stats.Users.Inactive++
		case domain.StatusPending:
			stats.Users.Pending++
		}
		stats.Users.ByRole[u.Role]++
	}

	for _, t := range teams {
		stats.Teams.TotalMemberships += len(t.Members)
	}

	return stats, nil
}
