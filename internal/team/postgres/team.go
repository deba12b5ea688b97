package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/team"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]*team.Summary, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT t.id, t.name, t.logo, p.name
		 FROM teams t
		 LEFT JOIN players p ON p.id = t.captain_id
		 ORDER BY t.name`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := []*team.Summary{}
	for rows.Next() {
		var s team.Summary
		if err := rows.Scan(&s.ID, &s.Name, &s.Logo, &s.Captain); err != nil {
			return nil, err
		}
		teams = append(teams, &s)
	}
	return teams, rows.Err()
}

func (r *Repository) Detail(ctx context.Context, id int64) (*team.Detail, error) {
	var d team.Detail
	var captainID *int64
	var captainName *string
	row := r.db.WithContext(ctx).Raw(
		`SELECT t.id, t.name, t.logo, t.created_at, t.updated_at, p.id, p.name
		 FROM teams t
		 LEFT JOIN players p ON p.id = t.captain_id
		 WHERE t.id = ?`, id,
	).Row()
	if err := row.Scan(&d.ID, &d.Name, &d.Logo, &d.CreatedAt, &d.UpdatedAt, &captainID, &captainName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrTeamNotFound
		}
		return nil, err
	}
	if captainID != nil && captainName != nil {
		d.Captain = &team.PlayerRef{ID: *captainID, Name: *captainName}
	}

	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT id, name FROM players WHERE team_id = ? ORDER BY name`, id,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	d.Players = []team.PlayerRef{}
	for rows.Next() {
		var p team.PlayerRef
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, err
		}
		d.Players = append(d.Players, p)
	}
	return &d, rows.Err()
}

func (r *Repository) Create(ctx context.Context, input team.CreateInput) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		row := tx.Raw(
			`INSERT INTO teams (name, logo, captain_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?) RETURNING id`,
			input.Name, input.Logo, input.CaptainID, now, now,
		).Row()
		if err := row.Scan(&id); err != nil {
			return err
		}
		return assignPlayers(tx, id, input.PlayerIDs, now)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, input team.UpdateInput) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Exec(
			`UPDATE teams SET name = ?, logo = ?, captain_id = ?, updated_at = ? WHERE id = ?`,
			input.Name, input.Logo, input.CaptainID, now, input.ID,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrTeamNotFound
		}
		// replace the roster: detach everyone, reattach the listed players
		if err := tx.Exec(`UPDATE players SET team_id = NULL, updated_at = ? WHERE team_id = ?`, now, input.ID).Error; err != nil {
			return err
		}
		return assignPlayers(tx, input.ID, input.PlayerIDs, now)
	})
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		if err := tx.Exec(`UPDATE players SET team_id = NULL, updated_at = ? WHERE team_id = ?`, now, id).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM teams WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrTeamNotFound
		}
		return nil
	})
}

func assignPlayers(tx *gorm.DB, teamID int64, playerIDs []int64, now time.Time) error {
	for _, playerID := range playerIDs {
		if err := tx.Exec(`UPDATE players SET team_id = ?, updated_at = ? WHERE id = ?`, teamID, now, playerID).Error; err != nil {
			return err
		}
	}
	return nil
}
