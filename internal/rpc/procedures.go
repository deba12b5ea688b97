package rpc

import (
	"context"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/permission"
)

// RegisterPermissionProcedures exposes the permission metadata owned by this
// layer. The name listing is pure enumeration and deliberately public; the
// caller-scoped reads only need a resolved user.
func RegisterPermissionProcedures(reg *Registry) {
	reg.Public("permissions.listNames", KindQuery, NoInput(
		func(ctx context.Context) ([]string, error) {
			return permission.All(), nil
		}))

	reg.Protected("permissions.getPermissions", KindQuery, NoInput(
		func(ctx context.Context) ([]string, error) {
			u, _ := internal.UserFromContext(ctx)
			return u.Permissions, nil
		}))

	reg.Protected("permissions.hasPermission", KindQuery, Typed(
		func(ctx context.Context, name string) (bool, error) {
			if !permission.Valid(name) {
				return false, internal.NewValidationError(
					"unknown permission name: "+name,
					internal.ErrCodeUnknownPermission,
				)
			}
			u, _ := internal.UserFromContext(ctx)
			return permission.Has(u.Permissions, permission.Name(name)), nil
		}))
}
