package match

import (
	"context"

	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/internal/rpc"
)

func RegisterProcedures(reg *rpc.Registry, svc *Service) {
	reg.RequirePermission("matches.list", rpc.KindQuery, permission.SeeMatches, rpc.NoInput(
		func(ctx context.Context) ([]*ListEntry, error) {
			return svc.List(ctx)
		}))

	reg.RequirePermission("matches.detail", rpc.KindQuery, permission.SeeMatches, rpc.Typed(
		func(ctx context.Context, id int64) (*Detail, error) {
			return svc.Detail(ctx, id)
		}))

	reg.RequirePermission("matches.create", rpc.KindMutation, permission.CreateMatch, rpc.Typed(
		func(ctx context.Context, input CreateInput) (int64, error) {
			return svc.Create(ctx, input)
		}))

	reg.RequirePermission("matches.update", rpc.KindMutation, permission.UpdateMatch, rpc.Typed(
		func(ctx context.Context, input UpdateInput) (struct{}, error) {
			return struct{}{}, svc.Update(ctx, input)
		}))

	reg.RequirePermission("matches.delete", rpc.KindMutation, permission.DeleteMatch, rpc.Typed(
		func(ctx context.Context, id int64) (struct{}, error) {
			return struct{}{}, svc.Delete(ctx, id)
		}))
}
