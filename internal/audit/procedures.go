package audit

import (
	"context"

	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/internal/rpc"
)

type ListByUserInput struct {
	UserID int64 `json:"userId"`
	Limit  int   `json:"limit"`
}

// RegisterProcedures exposes the audit trail read side. Writes only ever
// happen through the authorization chain.
func RegisterProcedures(reg *rpc.Registry, log *Log) {
	reg.RequirePermission("auditLog.listByUser", rpc.KindQuery, permission.SeeUsers, rpc.Typed(
		func(ctx context.Context, input ListByUserInput) ([]*Entry, error) {
			return log.ListByUser(ctx, input.UserID, input.Limit)
		}))
}
