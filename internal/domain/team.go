package domain

import "time"

// Team owns the membership relation: Members holds user IDs in join
// order, no duplicates. Users carry no back-reference to their teams.
type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
