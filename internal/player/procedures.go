package player

import (
	"context"

	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/internal/rpc"
)

func RegisterProcedures(reg *rpc.Registry, svc *Service) {
	reg.Protected("players.detail", rpc.KindQuery, rpc.Typed(
		func(ctx context.Context, id int64) (*Player, error) {
			return svc.Detail(ctx, id)
		}))

	reg.Protected("players.listAll", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*ListEntry, error) {
			return svc.ListAll(ctx)
		}))

	reg.Protected("players.listByTeam", rpc.KindQuery, rpc.Typed(
		func(ctx context.Context, teamID int64) ([]*Ref, error) {
			return svc.ListByTeam(ctx, teamID)
		}))

	reg.Protected("players.listWithoutTeam", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*Ref, error) {
			return svc.ListWithoutTeam(ctx)
		}))

	reg.RequirePermission("players.create", rpc.KindMutation, permission.CreatePlayer, rpc.Typed(
		func(ctx context.Context, input CreateInput) (int64, error) {
			return svc.Create(ctx, input)
		}))

	reg.RequirePermission("players.update", rpc.KindMutation, permission.UpdatePlayer, rpc.Typed(
		func(ctx context.Context, input UpdateInput) (struct{}, error) {
			return struct{}{}, svc.Update(ctx, input)
		}))

	reg.RequirePermission("players.delete", rpc.KindMutation, permission.DeletePlayer, rpc.Typed(
		func(ctx context.Context, id int64) (struct{}, error) {
			return struct{}{}, svc.Delete(ctx, id)
		}))
}
