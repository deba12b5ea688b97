package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/player"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Detail(ctx context.Context, id int64) (*player.Player, error) {
	var p player.Player
	var captainOf *int64
	row := r.db.WithContext(ctx).Raw(
		`SELECT p.id, p.name, p.team_id, p.created_at, p.updated_at, t.id
		 FROM players p
		 LEFT JOIN teams t ON t.captain_id = p.id
		 WHERE p.id = ?`, id,
	).Row()
	if err := row.Scan(&p.ID, &p.Name, &p.TeamID, &p.CreatedAt, &p.UpdatedAt, &captainOf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, internal.ErrPlayerNotFound
		}
		return nil, err
	}
	p.IsCaptain = captainOf != nil
	return &p, nil
}

func (r *Repository) ListAll(ctx context.Context) ([]*player.ListEntry, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT p.id, p.name, mt.id, mt.name, ct.id
		 FROM players p
		 LEFT JOIN teams mt ON mt.id = p.team_id
		 LEFT JOIN teams ct ON ct.captain_id = p.id
		 ORDER BY p.name`,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := []*player.ListEntry{}
	for rows.Next() {
		var e player.ListEntry
		var teamID *int64
		var teamName *string
		var captainOf *int64
		if err := rows.Scan(&e.ID, &e.Name, &teamID, &teamName, &captainOf); err != nil {
			return nil, err
		}
		if teamID != nil && teamName != nil {
			e.Team = &player.TeamRef{ID: *teamID, Name: *teamName}
		}
		e.IsCaptain = captainOf != nil
		players = append(players, &e)
	}
	return players, rows.Err()
}

func (r *Repository) ListByTeam(ctx context.Context, teamID int64) ([]*player.Ref, error) {
	return r.listRefs(ctx, `SELECT id, name FROM players WHERE team_id = ? ORDER BY name`, teamID)
}

func (r *Repository) ListWithoutTeam(ctx context.Context) ([]*player.Ref, error) {
	return r.listRefs(ctx, `SELECT id, name FROM players WHERE team_id IS NULL ORDER BY name`)
}

func (r *Repository) listRefs(ctx context.Context, query string, args ...interface{}) ([]*player.Ref, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	refs := []*player.Ref{}
	for rows.Next() {
		var ref player.Ref
		if err := rows.Scan(&ref.ID, &ref.Name); err != nil {
			return nil, err
		}
		refs = append(refs, &ref)
	}
	return refs, rows.Err()
}

func (r *Repository) Create(ctx context.Context, input player.CreateInput) (int64, error) {
	now := time.Now().UTC()
	var id int64
	row := r.db.WithContext(ctx).Raw(
		`INSERT INTO players (name, team_id, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING id`,
		input.Name, input.TeamID, now, now,
	).Row()
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, input player.UpdateInput) error {
	res := r.db.WithContext(ctx).Exec(
		`UPDATE players SET name = ?, team_id = ?, updated_at = ? WHERE id = ?`,
		input.Name, input.TeamID, time.Now().UTC(), input.ID,
	)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return internal.ErrPlayerNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`UPDATE teams SET captain_id = NULL WHERE captain_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM statistics WHERE player_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM players WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return internal.ErrPlayerNotFound
		}
		return nil
	})
}
