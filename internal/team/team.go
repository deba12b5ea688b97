package team

import "time"

type Team struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Logo      *string   `json:"logo"`
	CaptainID *int64    `json:"captainId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Summary is the list-view shape: the captain is flattened to a name.
type Summary struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Captain *string `json:"captain"`
	Logo    *string `json:"logo"`
}

type PlayerRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Detail struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Logo      *string     `json:"logo"`
	Captain   *PlayerRef  `json:"captain"`
	Players   []PlayerRef `json:"players"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

type CreateInput struct {
	Name      string  `json:"name"`
	CaptainID *int64  `json:"captainId"`
	PlayerIDs []int64 `json:"playerIds"`
	Logo      *string `json:"logo"`
}

type UpdateInput struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	CaptainID *int64  `json:"captainId"`
	PlayerIDs []int64 `json:"playerIds"`
	Logo      *string `json:"logo"`
}
