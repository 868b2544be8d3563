package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/acmecorp/admin-api/internal/domain"
	"github.com/acmecorp/admin-api/internal/pkg/logger"
)

// Memory is the in-process database: two slices behind one mutex.
// It is the sole owner of the records it holds; every method hands out
// copies, never references into the slices. Not safe to share across
// processes, safe for concurrent handlers within one.
type Memory struct {
	mu      sync.Mutex
	users   []*domain.User
	teams   []*domain.Team
	latency time.Duration
	ids     IDAllocator
	now     func() time.Time
	logger  *logger.Logger
}

var _ UserStore = (*Memory)(nil)
var _ TeamStore = (*Memory)(nil)

func NewMemory(cfg *Config, ids IDAllocator, log *logger.Logger) (*Memory, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	m := &Memory{
		latency: cfg.Latency,
		ids:     ids,
		now:     time.Now,
		logger:  log.Component("store/memory"),
	}
	m.Reset()
	return m, nil
}

// Reset restores both collections to the seed snapshot.
func (m *Memory) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users = seedUsers()
	m.teams = seedTeams()
}

// wait simulates database latency while honoring cancellation. The
// mutation itself runs synchronously after the wait completes.
func (m *Memory) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(m.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Memory) FindUser(ctx context.Context, id string) (*domain.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.findUserLocked(id)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return copyUser(user), nil
}

func (m *Memory) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *Memory) GetAllUsers(ctx context.Context) ([]*domain.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]*domain.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, copyUser(u))
	}
	return users, nil
}

// CreateUser inserts a new user. The email-uniqueness check happens
// under the same lock as the insert, so two concurrent creates with
// the same email cannot both pass it.
func (m *Memory) CreateUser(ctx context.Context, data NewUser) (*domain.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Email == data.Email {
			return nil, domain.ErrEmailExists
		}
	}

	role := data.Role
	if role == "" {
		role = domain.RoleDeveloper
	}

	now := m.now().UTC()
	user := &domain.User{
		ID:        m.ids.Next(m.userIDsLocked()),
		Email:     data.Email,
		Name:      data.Name,
		Role:      role,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.users = append(m.users, user)

	return copyUser(user), nil
}

// UpdateUser applies the whitelisted fields from updates and refreshes
// updatedAt. Unset (nil) fields are left alone.
func (m *Memory) UpdateUser(ctx context.Context, id string, updates UserUpdate) (*domain.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.findUserLocked(id)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if updates.Email != nil {
		user.Email = *updates.Email
	}
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Role != nil {
		user.Role = *updates.Role
	}
	if updates.Status != nil {
		user.Status = *updates.Status
	}
	user.UpdatedAt = m.now().UTC()

	return copyUser(user), nil
}

// DeleteUser soft-deletes: the record stays, status becomes inactive.
// Deleting an already-inactive user only refreshes updatedAt.
func (m *Memory) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := m.findUserLocked(id)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	user.Status = domain.StatusInactive
	user.UpdatedAt = m.now().UTC()

	return copyUser(user), nil
}

func (m *Memory) FindTeam(ctx context.Context, id string) (*domain.Team, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	team := m.findTeamLocked(id)
	if team == nil {
		return nil, domain.ErrTeamNotFound
	}
	return copyTeam(team), nil
}

func (m *Memory) GetAllTeams(ctx context.Context) ([]*domain.Team, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	teams := make([]*domain.Team, 0, len(m.teams))
	for _, t := range m.teams {
		teams = append(teams, copyTeam(t))
	}
	return teams, nil
}

// GetTeamMembers resolves the team's member IDs to user records.
// Member IDs that no longer resolve to a user are skipped with a
// warning rather than surfacing as holes in the result.
func (m *Memory) GetTeamMembers(ctx context.Context, teamID string) ([]*domain.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	team := m.findTeamLocked(teamID)
	if team == nil {
		return nil, domain.ErrTeamNotFound
	}

	members := make([]*domain.User, 0, len(team.Members))
	for _, memberID := range team.Members {
		user := m.findUserLocked(memberID)
		if user == nil {
			m.logger.Warn("team member does not resolve to a user",
				"team_id", teamID,
				"user_id", memberID,
			)
			continue
		}
		members = append(members, copyUser(user))
	}
	return members, nil
}

func (m *Memory) CreateTeam(ctx context.Context, name string) (*domain.Team, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now().UTC()
	team := &domain.Team{
		ID:        m.ids.Next(m.teamIDsLocked()),
		Name:      name,
		Members:   []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.teams = append(m.teams, team)

	return copyTeam(team), nil
}

// AddTeamMember appends userID to the team. Adding an existing member
// is a no-op that still returns the team.
func (m *Memory) AddTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	team := m.findTeamLocked(teamID)
	if team == nil || m.findUserLocked(userID) == nil {
		return nil, domain.ErrTeamOrUserNotFound
	}

	if !contains(team.Members, userID) {
		team.Members = append(team.Members, userID)
		team.UpdatedAt = m.now().UTC()
	}

	return copyTeam(team), nil
}

// RemoveTeamMember drops userID from the team's member list. The
// timestamp is refreshed even when the user was not a member; clients
// depend on that quirk.
func (m *Memory) RemoveTeamMember(ctx context.Context, teamID, userID string) (*domain.Team, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	team := m.findTeamLocked(teamID)
	if team == nil {
		return nil, domain.ErrTeamNotFound
	}

	members := make([]string, 0, len(team.Members))
	for _, id := range team.Members {
		if id != userID {
			members = append(members, id)
		}
	}
	team.Members = members
	team.UpdatedAt = m.now().UTC()

	return copyTeam(team), nil
}

func (m *Memory) findUserLocked(id string) *domain.User {
	for _, u := range m.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (m *Memory) findTeamLocked(id string) *domain.Team {
	for _, t := range m.teams {
		if t.ID == id {
			return t
		}
	}
	return nil
}

func (m *Memory) userIDsLocked() []string {
	ids := make([]string, 0, len(m.users))
	for _, u := range m.users {
		ids = append(ids, u.ID)
	}
	return ids
}

func (m *Memory) teamIDsLocked() []string {
	ids := make([]string, 0, len(m.teams))
	for _, t := range m.teams {
		ids = append(ids, t.ID)
	}
	return ids
}

func copyUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func copyTeam(t *domain.Team) *domain.Team {
	c := *t
	c.Members = append([]string{}, t.Members...)
	return &c
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
