package match

import "time"

type Match struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Round     int       `json:"round"`
	Team1ID   int64     `json:"team1Id"`
	Team2ID   int64     `json:"team2Id"`
	Score1    int       `json:"scoreTeam1"`
	Score2    int       `json:"scoreTeam2"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StatLine is one player's performance sheet within a match.
type StatLine struct {
	ID            int64  `json:"id"`
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName,omitempty"`
	TeamID        int64  `json:"teamId"`
	Score         int    `json:"score"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	Catches       int    `json:"catches"`
	Interceptions int    `json:"interceptions"`
	Tackles       int    `json:"tackles"`
	Passes        int    `json:"passes"`
	Saves         int    `json:"saves"`
	Shots         int    `json:"shots"`
}

type TeamRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ListEntry struct {
	ID     int64     `json:"id"`
	Date   time.Time `json:"date"`
	Round  int       `json:"round"`
	Team1  string    `json:"team1"`
	Team2  string    `json:"team2"`
	Score1 int       `json:"scoreTeam1"`
	Score2 int       `json:"scoreTeam2"`
}

type Detail struct {
	ID         int64      `json:"id"`
	Date       time.Time  `json:"date"`
	Round      int        `json:"round"`
	Team1      TeamRef    `json:"team1"`
	Team2      TeamRef    `json:"team2"`
	Score1     int        `json:"scoreTeam1"`
	Score2     int        `json:"scoreTeam2"`
	Statistics []StatLine `json:"statistics"`
}

type StatInput struct {
	PlayerID      int64 `json:"playerId"`
	TeamID        int64 `json:"teamId"`
	Score         int   `json:"score"`
	Goals         int   `json:"goals"`
	Assists       int   `json:"assists"`
	Catches       int   `json:"catches"`
	Interceptions int   `json:"interceptions"`
	Tackles       int   `json:"tackles"`
	Passes        int   `json:"passes"`
	Saves         int   `json:"saves"`
	Shots         int   `json:"shots"`
}

type CreateInput struct {
	Date       time.Time   `json:"date"`
	Round      int         `json:"round"`
	Team1ID    int64       `json:"team1Id"`
	Team2ID    int64       `json:"team2Id"`
	Team1Score int         `json:"team1Score"`
	Team2Score int         `json:"team2Score"`
	Statistics []StatInput `json:"statistics"`
}

type UpdateInput struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	Team1ID    int64     `json:"team1Id"`
	Team2ID    int64     `json:"team2Id"`
	Team1Score int       `json:"team1Score"`
	Team2Score int       `json:"team2Score"`
}
