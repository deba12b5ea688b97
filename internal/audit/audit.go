package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Kind distinguishes read-only calls from state-changing ones. Only
// mutations are recorded; queries are read-only and not worth the write
// volume.
type Kind string

const (
	KindQuery    Kind = "QUERY"
	KindMutation Kind = "MUTATION"
)

// Entry is one append-only record of an attempted mutating call. It is
// written after authorization succeeds and before the handler runs, so a
// failing handler still leaves the trail of the attempt.
type Entry struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"userId"`
	Path      string          `json:"path"`
	Input     json.RawMessage `json:"input"`
	Kind      Kind            `json:"kind"`
	CreatedAt time.Time       `json:"createdAt"`
}

type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*Entry, error)
}

// Log is the append-only audit log. Write failures propagate to the caller:
// a mutation whose entry cannot be recorded must not proceed.
type Log struct {
	repo Repository
}

func NewLog(repo Repository) *Log {
	return &Log{repo: repo}
}

func (l *Log) Record(ctx context.Context, userID int64, path string, input json.RawMessage, kind string) error {
	entry := &Entry{
		UserID:    userID,
		Path:      path,
		Input:     input,
		Kind:      Kind(kind),
		CreatedAt: time.Now().UTC(),
	}
	if err := l.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("record audit entry for %s: %w", path, err)
	}
	return nil
}

func (l *Log) ListByUser(ctx context.Context, userID int64, limit int) ([]*Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	entries, err := l.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries for user %d: %w", userID, err)
	}
	return entries, nil
}
