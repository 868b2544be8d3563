package domain

type UserStats struct {
	Total    int            `json:"total"`
	Active   int            `json:"active"`
	Inactive int            `json:"inactive"`
	Pending  int            `json:"pending"`
	ByRole   map[string]int `json:"byRole"`
}

type TeamStats struct {
	Total            int `json:"total"`
	TotalMemberships int `json:"totalMemberships"`
}

type Stats struct {
	Users UserStats `json:"users"`
	Teams TeamStats `json:"teams"`
}
