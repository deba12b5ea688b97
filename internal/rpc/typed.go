package rpc

import (
	"context"
	"encoding/json"

	"github.com/leagueops/league-management/internal"
)

// Typed adapts a strongly typed handler to the raw Handler signature.
// Malformed input is a validation error owned by this layer, reported before
// the handler body runs.
func Typed[In any, Out any](fn func(ctx context.Context, input In) (Out, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (interface{}, error) {
		var input In
		if err := json.Unmarshal(raw, &input); err != nil {
			return nil, internal.NewValidationError(
				"invalid input shape",
				internal.ErrCodeInvalidInput,
			).WithCause(err)
		}
		return fn(ctx, input)
	}
}

// NoInput adapts a handler that takes no payload.
func NoInput[Out any](fn func(ctx context.Context) (Out, error)) Handler {
	return func(ctx context.Context, _ json.RawMessage) (interface{}, error) {
		return fn(ctx)
	}
}
