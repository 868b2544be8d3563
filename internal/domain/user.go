package domain

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Roles are a convention between the API and its clients; the store
// accepts any string.
const (
	RoleAdmin          = "admin"
	RoleDeveloper      = "developer"
	RoleDesigner       = "designer"
	RoleProductManager = "product_manager"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusPending  = "pending"
)
