package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/leagueops/league-management/internal/audit"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Insert(ctx context.Context, entry *audit.Entry) error {
	input := entry.Input
	if len(input) == 0 {
		input = []byte("null")
	}
	return r.db.WithContext(ctx).Exec(
		`INSERT INTO logs (user_id, path, input, type, created_at) VALUES (?, ?, ?, ?, ?)`,
		entry.UserID, entry.Path, string(input), string(entry.Kind), entry.CreatedAt,
	).Error
}

func (r *Repository) ListByUser(ctx context.Context, userID int64, limit int) ([]*audit.Entry, error) {
	rows, err := r.db.WithContext(ctx).Raw(
		`SELECT id, user_id, path, input, type, created_at FROM logs WHERE user_id = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		userID, limit,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*audit.Entry{}
	for rows.Next() {
		var e audit.Entry
		var input string
		var kind string
		if err := rows.Scan(&e.ID, &e.UserID, &e.Path, &input, &kind, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.Input = []byte(input)
		e.Kind = audit.Kind(kind)
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
