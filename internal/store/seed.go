package store

import (
	"time"

	"github.com/acmecorp/admin-api/internal/domain"
)

func ts(year int, month time.Month, day, hour, min int) time.Time {
	return time.Date(year, month, day, hour, min, 0, 0, time.UTC)
}

// seedUsers returns the fixture dataset the store boots with. The exact
// values are relied on by tests and by the demo front end.
func seedUsers() []*domain.User {
	return []*domain.User{
		{ID: "1", Email: "alice@acme.com", Name: "Alice Chen", Role: domain.RoleAdmin, Status: domain.StatusActive, CreatedAt: ts(2024, 1, 15, 8, 0), UpdatedAt: ts(2024, 1, 15, 8, 0)},
		{ID: "2", Email: "bob@acme.com", Name: "Bob Smith", Role: domain.RoleDeveloper, Status: domain.StatusActive, CreatedAt: ts(2024, 1, 16, 9, 30), UpdatedAt: ts(2024, 2, 1, 14, 0)},
		{ID: "3", Email: "carol@acme.com", Name: "Carol Jones", Role: domain.RoleDeveloper, Status: domain.StatusActive, CreatedAt: ts(2024, 1, 20, 11, 0), UpdatedAt: ts(2024, 1, 20, 11, 0)},
		{ID: "4", Email: "david@acme.com", Name: "David Park", Role: domain.RoleDesigner, Status: domain.StatusActive, CreatedAt: ts(2024, 2, 1, 10, 0), UpdatedAt: ts(2024, 2, 1, 10, 0)},
		{ID: "5", Email: "eve@acme.com", Name: "Eve Martinez", Role: domain.RoleDeveloper, Status: domain.StatusActive, CreatedAt: ts(2024, 2, 5, 13, 0), UpdatedAt: ts(2024, 3, 10, 9, 0)},
		{ID: "6", Email: "frank@acme.com", Name: "Frank Wilson", Role: domain.RoleProductManager, Status: domain.StatusActive, CreatedAt: ts(2024, 2, 10, 8, 30), UpdatedAt: ts(2024, 2, 10, 8, 30)},
		{ID: "7", Email: "grace@acme.com", Name: "Grace Lee", Role: domain.RoleDeveloper, Status: domain.StatusInactive, CreatedAt: ts(2024, 1, 10, 7, 0), UpdatedAt: ts(2024, 3, 15, 16, 0)},
		{ID: "8", Email: "henry@acme.com", Name: "Henry Taylor", Role: domain.RoleDeveloper, Status: domain.StatusPending, CreatedAt: ts(2024, 3, 20, 12, 0), UpdatedAt: ts(2024, 3, 20, 12, 0)},
	}
}

func seedTeams() []*domain.Team {
	return []*domain.Team{
		{ID: "1", Name: "Engineering", Members: []string{"1", "2", "3", "5"}, CreatedAt: ts(2024, 1, 15, 8, 0), UpdatedAt: ts(2024, 2, 5, 13, 0)},
		{ID: "2", Name: "Product", Members: []string{"6"}, CreatedAt: ts(2024, 1, 15, 8, 0), UpdatedAt: ts(2024, 2, 10, 8, 30)},
		{ID: "3", Name: "Design", Members: []string{"4"}, CreatedAt: ts(2024, 1, 20, 11, 0), UpdatedAt: ts(2024, 2, 1, 10, 0)},
		{ID: "4", Name: "Infrastructure", Members: []string{"1", "2"}, CreatedAt: ts(2024, 2, 1, 10, 0), UpdatedAt: ts(2024, 2, 1, 14, 0)},
	}
}
