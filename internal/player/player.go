package player

import "time"

type Player struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	TeamID    *int64    `json:"teamId"`
	IsCaptain bool      `json:"isCaptain"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListEntry is the list-view shape with the team joined in.
type ListEntry struct {
	ID        int64    `json:"id"`
	Name      string   `json:"name"`
	Team      *TeamRef `json:"team"`
	IsCaptain bool     `json:"isCaptain"`
}

type Ref struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateInput struct {
	Name   string `json:"name"`
	TeamID *int64 `json:"teamId"`
}

type UpdateInput struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	TeamID *int64 `json:"teamId"`
}
