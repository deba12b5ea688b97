package stats

// TeamRow is a team's accumulated record across all its matches.
type TeamRow struct {
	TeamID        int64   `json:"teamId"`
	TeamName      string  `json:"teamName"`
	TeamLogo      *string `json:"teamLogo"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Scored        int     `json:"scored"`
	Conceded      int     `json:"conceded"`
	Interceptions int     `json:"interceptions"`
	Goals         int     `json:"goals"`
	Assists       int     `json:"assists"`
	Passes        int     `json:"passes"`
	Shots         int     `json:"shots"`
	Tackles       int     `json:"tackles"`
	Saves         int     `json:"saves"`
	Catches       int     `json:"catches"`
	AmountPlayed  int     `json:"amountPlayed"`
}

// PlayerRow is a player's accumulated statistics across all recorded matches.
type PlayerRow struct {
	PlayerID      int64  `json:"playerId"`
	PlayerName    string `json:"playerName"`
	Score         int    `json:"score"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`
	Catches       int    `json:"catches"`
	Interceptions int    `json:"interceptions"`
	Tackles       int    `json:"tackles"`
	Passes        int    `json:"passes"`
	Saves         int    `json:"saves"`
	Shots         int    `json:"shots"`
	AmountPlayed  int    `json:"amountPlayed"`
}

// TeamAverages carries per-match averages derived from a TeamRow.
type TeamAverages struct {
	TeamID        int64   `json:"teamId"`
	TeamName      string  `json:"teamName"`
	TeamLogo      *string `json:"teamLogo"`
	Scored        float64 `json:"scored"`
	Conceded      float64 `json:"conceded"`
	Interceptions float64 `json:"interceptions"`
	Goals         float64 `json:"goals"`
	Assists       float64 `json:"assists"`
	Passes        float64 `json:"passes"`
	Shots         float64 `json:"shots"`
	Tackles       float64 `json:"tackles"`
	Saves         float64 `json:"saves"`
	Catches       float64 `json:"catches"`
	AmountPlayed  int     `json:"amountPlayed"`
}

type PlayerAverages struct {
	PlayerID      int64   `json:"playerId"`
	PlayerName    string  `json:"playerName"`
	Score         float64 `json:"score"`
	Goals         float64 `json:"goals"`
	Assists       float64 `json:"assists"`
	Catches       float64 `json:"catches"`
	Interceptions float64 `json:"interceptions"`
	Tackles       float64 `json:"tackles"`
	Passes        float64 `json:"passes"`
	Saves         float64 `json:"saves"`
	Shots         float64 `json:"shots"`
	AmountPlayed  int     `json:"amountPlayed"`
}
