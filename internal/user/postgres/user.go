package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/leagueops/league-management/internal/user"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByExternalID(ctx context.Context, externalID string) (*user.User, error) {
	return r.findOne(ctx, `SELECT id, external_id, name, created_at, updated_at FROM users WHERE external_id = ?`, externalID)
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	return r.findOne(ctx, `SELECT id, external_id, name, created_at, updated_at FROM users WHERE id = ?`, id)
}

func (r *Repository) findOne(ctx context.Context, query string, arg interface{}) (*user.User, error) {
	var u user.User
	row := r.db.WithContext(ctx).Raw(query, arg).Row()
	if err := row.Scan(&u.ID, &u.ExternalID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrNotFound
		}
		return nil, err
	}

	perms, err := r.permissionsFor(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.Permissions = perms
	return &u, nil
}

func (r *Repository) permissionsFor(ctx context.Context, userID int64) ([]string, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(`SELECT name FROM user_permissions WHERE user_id = ? ORDER BY name`, userID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		perms = append(perms, name)
	}
	return perms, rows.Err()
}

// Insert provisions a user with an empty permission set. The unique index on
// external_id plus ON CONFLICT DO NOTHING makes concurrent first-sight
// inserts converge: the loser reports inserted=false without an error.
func (r *Repository) Insert(ctx context.Context, externalID, name string) (bool, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).Exec(
		`INSERT INTO users (external_id, name, created_at, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT (external_id) DO NOTHING`,
		externalID, name, now, now,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *Repository) List(ctx context.Context) ([]*user.User, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(`SELECT id, external_id, name, created_at, updated_at FROM users ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []*user.User{}
	for rows.Next() {
		var u user.User
		if err := rows.Scan(&u.ID, &u.ExternalID, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, u := range users {
		perms, err := r.permissionsFor(ctx, u.ID)
		if err != nil {
			return nil, err
		}
		u.Permissions = perms
	}
	return users, nil
}

func (r *Repository) Create(ctx context.Context, externalID, name string, permissions []string) (int64, error) {
	var id int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		row := tx.Raw(
			`INSERT INTO users (external_id, name, created_at, updated_at) VALUES (?, ?, ?, ?) RETURNING id`,
			externalID, name, now, now,
		).Row()
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		return grantPermissions(tx, id, permissions, now)
	})
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repository) Update(ctx context.Context, id int64, externalID, name string, permissions []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		res := tx.Exec(
			`UPDATE users SET external_id = ?, name = ?, updated_at = ? WHERE id = ?`,
			externalID, name, now, id,
		)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return user.ErrNotFound
		}
		if err := tx.Exec(`DELETE FROM user_permissions WHERE user_id = ?`, id).Error; err != nil {
			return err
		}
		return grantPermissions(tx, id, permissions, now)
	})
}

// Delete removes the user together with its permission grants and audit
// entries, matching the storage layer's referential rules.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`DELETE FROM user_permissions WHERE user_id = ?`, id).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DELETE FROM logs WHERE user_id = ?`, id).Error; err != nil {
			return err
		}
		res := tx.Exec(`DELETE FROM users WHERE id = ?`, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return user.ErrNotFound
		}
		return nil
	})
}

// DistinctPermissionNames feeds the startup enum consistency check.
func (r *Repository) DistinctPermissionNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.WithContext(ctx).
		Raw(`SELECT DISTINCT name FROM user_permissions ORDER BY name`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func grantPermissions(tx *gorm.DB, userID int64, permissions []string, now time.Time) error {
	for _, name := range permissions {
		if err := tx.Exec(
			`INSERT INTO user_permissions (user_id, name, created_at) VALUES (?, ?, ?)`,
			userID, name, now,
		).Error; err != nil {
			return fmt.Errorf("grant permission %s: %w", name, err)
		}
	}
	return nil
}
