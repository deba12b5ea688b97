// Package rpc is the typed procedure layer every call goes through. A
// procedure is declared once with its path, kind and permission requirement;
// the registry threads each invocation through the authorization chain
// before the handler runs.
package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/permission"
)

type Kind string

const (
	KindQuery    Kind = "QUERY"
	KindMutation Kind = "MUTATION"
)

// Handler executes a procedure. Input is the raw JSON payload from the call
// envelope; the returned value is serialized as the result.
type Handler func(ctx context.Context, input json.RawMessage) (interface{}, error)

type Procedure struct {
	Path               string
	Kind               Kind
	Public             bool
	RequiredPermission permission.Name // empty: any resolved user may call
	Handler            Handler
}

// Envelope is the uniform request shape for authenticated procedures.
type Envelope struct {
	Token string          `json:"token"`
	Input json.RawMessage `json:"input"`
}

type Registry struct {
	authorizer *Authorizer
	procedures map[string]*Procedure
	logger     *slog.Logger
}

func NewRegistry(authorizer *Authorizer, logger *slog.Logger) *Registry {
	return &Registry{
		authorizer: authorizer,
		procedures: make(map[string]*Procedure),
		logger:     logger,
	}
}

// MustRegister wires a procedure. Duplicate paths and permission names
// outside the enum are programming errors caught at startup.
func (r *Registry) MustRegister(p Procedure) {
	if p.Path == "" || p.Handler == nil {
		panic(fmt.Sprintf("rpc: procedure %q missing path or handler", p.Path))
	}
	if p.Kind != KindQuery && p.Kind != KindMutation {
		panic(fmt.Sprintf("rpc: procedure %q has invalid kind %q", p.Path, p.Kind))
	}
	if _, exists := r.procedures[p.Path]; exists {
		panic(fmt.Sprintf("rpc: procedure %q registered twice", p.Path))
	}
	if p.RequiredPermission != "" && !permission.Valid(string(p.RequiredPermission)) {
		panic(fmt.Sprintf("rpc: procedure %q requires unknown permission %q", p.Path, p.RequiredPermission))
	}
	if p.Public && p.RequiredPermission != "" {
		panic(fmt.Sprintf("rpc: procedure %q is public but requires a permission", p.Path))
	}
	registered := p
	r.procedures[p.Path] = &registered
}

func (r *Registry) Public(path string, kind Kind, h Handler) {
	r.MustRegister(Procedure{Path: path, Kind: kind, Public: true, Handler: h})
}

func (r *Registry) Protected(path string, kind Kind, h Handler) {
	r.MustRegister(Procedure{Path: path, Kind: kind, Handler: h})
}

func (r *Registry) RequirePermission(path string, kind Kind, required permission.Name, h Handler) {
	r.MustRegister(Procedure{Path: path, Kind: kind, RequiredPermission: required, Handler: h})
}

// Paths lists registered procedure paths, sorted, for startup logging.
func (r *Registry) Paths() []string {
	paths := make([]string, 0, len(r.procedures))
	for p := range r.procedures {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Dispatch resolves the procedure for path and runs it against the raw
// request body. Authenticated procedures expect the body to be an Envelope;
// public procedures take the body as input directly.
func (r *Registry) Dispatch(ctx context.Context, path string, body []byte) (interface{}, error) {
	proc, ok := r.procedures[path]
	if !ok {
		return nil, internal.NewNotFoundError(
			fmt.Sprintf("unknown procedure %q", path),
			internal.ErrCodeUnknownProcedure,
		)
	}

	if proc.Public {
		return proc.Handler(ctx, normalizeInput(body))
	}

	var env Envelope
	if len(body) > 0 {
		if err := json.Unmarshal(body, &env); err != nil {
			return nil, internal.NewValidationError(
				"request body must be a JSON envelope with token and input",
				internal.ErrCodeInvalidInput,
			).WithCause(err)
		}
	}

	call := &Call{
		Path:               proc.Path,
		Kind:               proc.Kind,
		Token:              env.Token,
		Input:              normalizeInput(env.Input),
		RequiredPermission: proc.RequiredPermission,
	}

	ctx, err := r.authorizer.Authorize(ctx, call)
	if err != nil {
		return nil, err
	}

	return proc.Handler(ctx, call.Input)
}

func normalizeInput(input json.RawMessage) json.RawMessage {
	if len(input) == 0 {
		return json.RawMessage("null")
	}
	return input
}
