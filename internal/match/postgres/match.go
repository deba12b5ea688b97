package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/match"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]*match.ListEntry, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT m.id, m.date, m.round, t1.name, t2.name, m.score_team1, m.score_team2
		 FROM matches m
		 JOIN teams t1 ON t1.id = m.team1_id
		 JOIN teams t2 ON t2.id = m.team2_id
		 ORDER BY m.date DESC, m.id DESC`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := []*match.ListEntry{}
	for rows.Next() {
		var e match.ListEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Round, &e.Team1, &e.Team2, &e.Score1, &e.Score2); err != nil {
			return nil, err
		}
		matches = append(matches, &e)
	}
	return matches, rows.Err()
}

func (r *Repository) Detail(ctx context.Context, id int64) (*match.Detail, error) {
	var d match.Detail
	row := r.db.WithContext(ctx).Raw(
		`SELECT m.id, m.date, m.round, t1.id, t1.name, t2.id, t2.name, m.score_team1, m.score_team2
		 FROM matches m
		 JOIN teams t1 ON t1.id = m.team1_id
		 JOIN teams t2 ON t2.id = m.team2_id
		 WHERE m.id = ?`, id,
	).Row()
	if err := row.Scan(&d.ID, &d.Date, &d.Round, &d.Team1.ID, &d.Team1.Name, &d.Team2.ID, &d.Team2.Name, &d.Score1, &d.Score2); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrMatchNotFound
		}
		return nil, err
	}

	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT s.id, s.player_id, p.name, s.team_id, s.score, s.goals, s.assists, s.catches,
		        s.interceptions, s.tackles, s.passes, s.saves, s.shots
		 FROM statistics s
		 JOIN players p ON p.id = s.player_id
		 WHERE s.match_id = ?
		 ORDER BY p.name`, id,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.Statistics = []match.StatLine{}
	for rows.Next() {
		var l match.StatLine
		if err := rows.Scan(&l.ID, &l.PlayerID, &l.PlayerName, &l.TeamID, &l.Score, &l.Goals, &l.Assists,
			&l.Catches, &l.Interceptions, &l.Tackles, &l.Passes, &l.Saves, &l.Shots); err != nil {
			return nil, err
		}
		d.Statistics = append(d.Statistics, l)
	}
	return &d, rows.Err()
}

func (r *Repository) Create(ctx context.Context, input match.CreateInput) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		row := tx.Raw(
			`INSERT INTO matches (date, round, team1_id, team2_id, score_team1, score_team2, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`,
			input.Date, input.Round, input.Team1ID, input.Team2ID, input.Team1Score, input.Team2Score, now, now,
		).Row()
		if err := row.Scan(&id); err != nil {
			return err
		}
		for _, s := range input.Statistics {
			if err := tx.Exec(
				`INSERT INTO statistics (match_id, player_id, team_id, score, goals, assists, catches, interceptions, tackles, passes, saves, shots, created_at)
				 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				id, s.PlayerID, s.TeamID, s.Score, s.Goals, s.Assists, s.Catches, s.Interceptions, s.Tackles, s.Passes, s.Saves, s.Shots, now,
			).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, input match.UpdateInput) error {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE matches SET date = ?, team1_id = ?, team2_id = ?, score_team1 = ?, score_team2 = ?, updated_at = ?
		 WHERE id = ?`,
		input.Date, input.Team1ID, input.Team2ID, input.Team1Score, input.Team2Score, time.Now().UTC(), input.ID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrMatchNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM statistics WHERE match_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM matches WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrMatchNotFound
		}
		return nil
	})
}
