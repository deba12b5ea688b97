package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/identity"
	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/pkg/logger"
)

// placeholderToken is the literal clients send when no token is stored
// locally; it is rejected before any provider round-trip.
const placeholderToken = "-"

// UserDirectory loads or provisions the local user bound to an identity.
type UserDirectory interface {
	GetOrCreate(ctx context.Context, ident identity.Identity) (*internal.AuthenticatedUser, error)
}

// AuditRecorder durably records a mutating call before its handler runs.
type AuditRecorder interface {
	Record(ctx context.Context, userID int64, path string, input json.RawMessage, kind string) error
}

// Call is the per-invocation state threaded through the authorization steps.
type Call struct {
	Path               string
	Kind               Kind
	Token              string
	Input              json.RawMessage
	RequiredPermission permission.Name

	Identity identity.Identity
	User     *internal.AuthenticatedUser
}

// Step is one named stage of the authorization chain. Steps run strictly in
// order; the first error is terminal for the call and short-circuits the
// handler.
type Step interface {
	Name() string
	Run(ctx context.Context, call *Call) (context.Context, error)
}

// Authorizer applies the authorization steps sequentially: token extraction,
// identity resolution, user load/provision, permission check, audit write.
// It returns a context carrying the resolved user, or the first step error.
type Authorizer struct {
	steps  []Step
	logger *slog.Logger
}

func NewAuthorizer(resolver identity.Resolver, directory UserDirectory, recorder AuditRecorder, lg *slog.Logger) *Authorizer {
	return &Authorizer{
		steps: []Step{
			tokenStep{},
			identityStep{resolver: resolver},
			userStep{directory: directory},
			permissionStep{},
			auditStep{recorder: recorder},
		},
		logger: lg,
	}
}

func (a *Authorizer) Authorize(ctx context.Context, call *Call) (context.Context, error) {
	for _, step := range a.steps {
		next, err := step.Run(ctx, call)
		if err != nil {
			a.logger.WarnContext(ctx, "authorization failed",
				"step", step.Name(), "path", call.Path, "error", err)
			return ctx, err
		}
		ctx = next
	}
	return ctx, nil
}

// Steps returns the ordered step names, for startup logging and tests.
func (a *Authorizer) Steps() []string {
	names := make([]string, len(a.steps))
	for i, s := range a.steps {
		names[i] = s.Name()
	}
	return names
}

// ---- token extraction ----

type tokenStep struct{}

func (tokenStep) Name() string { return "extract_token" }

func (tokenStep) Run(ctx context.Context, call *Call) (context.Context, error) {
	if call.Token == "" || call.Token == placeholderToken {
		return ctx, internal.ErrMissingToken
	}
	return ctx, nil
}

// ---- identity resolution ----

type identityStep struct {
	resolver identity.Resolver
}

func (identityStep) Name() string { return "resolve_identity" }

func (s identityStep) Run(ctx context.Context, call *Call) (context.Context, error) {
	ident, err := s.resolver.Resolve(ctx, call.Token)
	if err != nil {
		// The provider's failure text is passed through for diagnostics:
		// the token is proven invalid either way.
		return ctx, internal.NewUnauthorizedError(
			fmt.Sprintf("authentication failed: %v", err),
			internal.ErrCodeInvalidToken,
		).WithCause(err)
	}
	call.Identity = ident
	return ctx, nil
}

// ---- user load / first-sight provisioning ----

type userStep struct {
	directory UserDirectory
}

func (userStep) Name() string { return "load_user" }

func (s userStep) Run(ctx context.Context, call *Call) (context.Context, error) {
	u, err := s.directory.GetOrCreate(ctx, call.Identity)
	if err != nil {
		return ctx, (&internal.AppError{
			Type:       internal.ErrorTypeInternal,
			Code:       internal.ErrCodeStorageFailure,
			Message:    "failed to load user",
			StatusCode: 500,
		}).WithCause(err)
	}
	call.User = u
	return internal.ContextWithUser(logger.With(ctx, "user_id", u.ID), u), nil
}

// ---- permission check ----

type permissionStep struct{}

func (permissionStep) Name() string { return "check_permission" }

func (permissionStep) Run(ctx context.Context, call *Call) (context.Context, error) {
	if call.RequiredPermission == "" {
		// a resolved user is all the procedure asks for
		return ctx, nil
	}
	if !permission.Has(call.User.Permissions, call.RequiredPermission) {
		return ctx, internal.NewUnauthorizedError(
			fmt.Sprintf("Missing permission %s", call.RequiredPermission),
			internal.ErrCodeMissingPermission,
		)
	}
	return ctx, nil
}

// ---- audit (mutations only) ----

type auditStep struct {
	recorder AuditRecorder
}

func (auditStep) Name() string { return "record_audit" }

func (s auditStep) Run(ctx context.Context, call *Call) (context.Context, error) {
	if call.Kind != KindMutation {
		return ctx, nil
	}
	if err := s.recorder.Record(ctx, call.User.ID, call.Path, call.Input, string(call.Kind)); err != nil {
		// fail closed: without the audit entry the mutation must not run
		return ctx, (&internal.AppError{
			Type:       internal.ErrorTypeInternal,
			Code:       internal.ErrCodeAuditWriteFailed,
			Message:    "failed to record audit entry",
			StatusCode: 500,
		}).WithCause(err)
	}
	return ctx, nil
}
