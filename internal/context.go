package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextUserKey ctxKey = "authenticatedUser"

// AuthenticatedUser is the resolved caller attached to the request context by
// the authorization chain. It is written once per call and never mutated.
type AuthenticatedUser struct {
	ID          int64
	ExternalID  string
	Name        string
	Permissions []string
}

func UserFromContext(ctx context.Context) (*AuthenticatedUser, bool) {
	if ctx == nil {
		return nil, false
	}
	u, ok := ctx.Value(contextUserKey).(*AuthenticatedUser)
	return u, ok && u != nil
}

func ContextWithUser(ctx context.Context, u *AuthenticatedUser) context.Context {
	return context.WithValue(ctx, contextUserKey, u)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
