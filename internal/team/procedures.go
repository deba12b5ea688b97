package team

import (
	"context"

	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/internal/rpc"
)

// RegisterProcedures declares the teams.* surface. Reads require an
// authenticated caller; writes require the matching team permission.
func RegisterProcedures(reg *rpc.Registry, svc *Service) {
	reg.Protected("teams.list", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*Summary, error) {
			return svc.List(ctx)
		}))

	reg.Protected("teams.detail", rpc.KindQuery, rpc.Typed(
		func(ctx context.Context, id int64) (*Detail, error) {
			return svc.Detail(ctx, id)
		}))

	reg.RequirePermission("teams.create", rpc.KindMutation, permission.CreateTeam, rpc.Typed(
		func(ctx context.Context, input CreateInput) (int64, error) {
			return svc.Create(ctx, input)
		}))

	reg.RequirePermission("teams.update", rpc.KindMutation, permission.UpdateTeam, rpc.Typed(
		func(ctx context.Context, input UpdateInput) (struct{}, error) {
			return struct{}{}, svc.Update(ctx, input)
		}))

	reg.RequirePermission("teams.delete", rpc.KindMutation, permission.DeleteTeam, rpc.Typed(
		func(ctx context.Context, id int64) (struct{}, error) {
			return struct{}{}, svc.Delete(ctx, id)
		}))
}
