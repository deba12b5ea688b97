package identity

import (
	"context"
	"errors"
)

// Identity is the external provider's notion of a user. It is produced per
// call and never cached: every call re-resolves its token so revocation at
// the provider takes effect immediately.
type Identity struct {
	ExternalID  string
	DisplayName string
}

// Resolver binds an opaque bearer token to an external identity. A failed
// resolution is terminal for the call; implementations must not retry.
type Resolver interface {
	Resolve(ctx context.Context, token string) (Identity, error)
}

var (
	// ErrInvalidToken covers empty, malformed, expired and revoked tokens.
	// The provider does not distinguish these cases for us and neither do we.
	ErrInvalidToken = errors.New("invalid token")
)
