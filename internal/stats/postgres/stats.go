package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/leagueops/league-management/internal/stats"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) TeamSums(ctx context.Context) ([]*stats.TeamRow, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT t.id, t.name, t.logo,
		        COALESCE(m.wins, 0), COALESCE(m.losses, 0),
		        COALESCE(m.scored, 0), COALESCE(m.conceded, 0), COALESCE(m.played, 0),
		        COALESCE(s.interceptions, 0), COALESCE(s.goals, 0), COALESCE(s.assists, 0),
		        COALESCE(s.passes, 0), COALESCE(s.shots, 0), COALESCE(s.tackles, 0),
		        COALESCE(s.saves, 0), COALESCE(s.catches, 0)
		 FROM teams t
		 LEFT JOIN (
		     SELECT team_id,
		            SUM(CASE WHEN scored > conceded THEN 1 ELSE 0 END) AS wins,
		            SUM(CASE WHEN scored < conceded THEN 1 ELSE 0 END) AS losses,
		            SUM(scored) AS scored,
		            SUM(conceded) AS conceded,
		            COUNT(*) AS played
		     FROM (
		         SELECT team1_id AS team_id, score_team1 AS scored, score_team2 AS conceded FROM matches
		         UNION ALL
		         SELECT team2_id AS team_id, score_team2 AS scored, score_team1 AS conceded FROM matches
		     ) sides
		     GROUP BY team_id
		 ) m ON m.team_id = t.id
		 LEFT JOIN (
		     SELECT team_id,
		            SUM(interceptions) AS interceptions, SUM(goals) AS goals, SUM(assists) AS assists,
		            SUM(passes) AS passes, SUM(shots) AS shots, SUM(tackles) AS tackles,
		            SUM(saves) AS saves, SUM(catches) AS catches
		     FROM statistics
		     GROUP BY team_id
		 ) s ON s.team_id = t.id
		 ORDER BY t.name`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*stats.TeamRow{}
	for rows.Next() {
		var row stats.TeamRow
		if err := rows.Scan(&row.TeamID, &row.TeamName, &row.TeamLogo,
			&row.Wins, &row.Losses, &row.Scored, &row.Conceded, &row.AmountPlayed,
			&row.Interceptions, &row.Goals, &row.Assists, &row.Passes, &row.Shots,
			&row.Tackles, &row.Saves, &row.Catches); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}

func (r *Repository) PlayerSums(ctx context.Context) ([]*stats.PlayerRow, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT p.id, p.name,
		        COALESCE(SUM(s.score), 0), COALESCE(SUM(s.goals), 0), COALESCE(SUM(s.assists), 0),
		        COALESCE(SUM(s.catches), 0), COALESCE(SUM(s.interceptions), 0), COALESCE(SUM(s.tackles), 0),
		        COALESCE(SUM(s.passes), 0), COALESCE(SUM(s.saves), 0), COALESCE(SUM(s.shots), 0),
		        COUNT(s.id)
		 FROM players p
		 LEFT JOIN statistics s ON s.player_id = p.id
		 GROUP BY p.id, p.name
		 ORDER BY p.name`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []*stats.PlayerRow{}
	for rows.Next() {
		var row stats.PlayerRow
		if err := rows.Scan(&row.PlayerID, &row.PlayerName,
			&row.Score, &row.Goals, &row.Assists, &row.Catches, &row.Interceptions,
			&row.Tackles, &row.Passes, &row.Saves, &row.Shots, &row.AmountPlayed); err != nil {
			return nil, err
		}
		result = append(result, &row)
	}
	return result, rows.Err()
}
