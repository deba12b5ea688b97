package stats

import (
	"context"

	"github.com/leagueops/league-management/internal/rpc"
)

func RegisterProcedures(reg *rpc.Registry, svc *Service) {
	reg.Protected("teamStats.listSum", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*TeamRow, error) {
			return svc.TeamSums(ctx)
		}))

	reg.Protected("teamStats.listAverage", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*TeamAverages, error) {
			return svc.TeamAverages(ctx)
		}))

	reg.Protected("playerStats.listSum", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*PlayerRow, error) {
			return svc.PlayerSums(ctx)
		}))

	reg.Protected("playerStats.listAverage", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*PlayerAverages, error) {
			return svc.PlayerAverages(ctx)
		}))
}
