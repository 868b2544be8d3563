package service

import (
	"context"
	"fmt"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
	"github.com/acmecorp/admin-api/internal/store"
)

type TeamService struct {
	store  store.TeamStore
	logger *logger.Logger
}

func NewTeamService(teamStore store.TeamStore, logger *logger.Logger) *TeamService {
	return &TeamService{
		store:  teamStore,
		logger: logger,
	}
}

func (s *TeamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	teams, err := s.store.GetAllTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	team, err := s.store.FindTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	return team, nil
}

// GetTeamMembers resolves the team's member IDs into full user records.
func (s *TeamService) GetTeamMembers(ctx context.Context, teamID string) ([]*domain.User, error) {
	members, err := s.store.GetTeamMembers(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}
	return members, nil
}

func (s *TeamService) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	team, err := s.store.CreateTeam(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("create team: %w", err)
	}

	s.logger.Info("team created",
		"team_id", team.ID,
		"team_name", team.Name,
	)

	return team, nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID, userID string) (*domain.Team, error) {
	team, err := s.store.AddTeamMember(ctx, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("add team member: %w", err)
	}

	s.logger.Info("team member added",
		"team_id", teamID,
		"user_id", userID,
		"members_count", len(team.Members),
	)

	return team, nil
}

func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID string) (*domain.Team, error) {
	team, err := s.store.RemoveTeamMember(ctx, teamID, userID)
	if err != nil {
		return nil, fmt.Errorf("remove team member: %w", err)
	}

	s.logger.Info("team member removed",
		"team_id", teamID,
		"user_id", userID,
		"members_count", len(team.Members),
	)

	return team, nil
}
