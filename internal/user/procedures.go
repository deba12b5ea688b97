package user

import (
	"context"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/internal/rpc"
)

func RegisterProcedures(reg *rpc.Registry, dir *Directory) {
	reg.Protected("users.me", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) (*internal.AuthenticatedUser, error) {
			u, _ := internal.UserFromContext(ctx)
			return u, nil
		}))

	reg.Protected("users.list", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) ([]*User, error) {
			return dir.List(ctx)
		}))

	reg.Protected("users.detail", rpc.KindQuery, rpc.Typed(
		func(ctx context.Context, id int64) (*User, error) {
			return dir.GetByID(ctx, id)
		}))

	reg.RequirePermission("users.create", rpc.KindMutation, permission.CreateUser, rpc.Typed(
		func(ctx context.Context, input CreateInput) (int64, error) {
			return dir.Create(ctx, input.ExternalID, input.Name, input.Permissions)
		}))

	reg.RequirePermission("users.update", rpc.KindMutation, permission.UpdateUser, rpc.Typed(
		func(ctx context.Context, input UpdateInput) (struct{}, error) {
			return struct{}{}, dir.Update(ctx, input.ID, input.ExternalID, input.Name, input.Permissions)
		}))

	reg.RequirePermission("users.delete", rpc.KindMutation, permission.DeleteUser, rpc.Typed(
		func(ctx context.Context, id int64) (struct{}, error) {
			return struct{}{}, dir.Delete(ctx, id)
		}))
}

type CreateInput struct {
	Name        string   `json:"name"`
	ExternalID  string   `json:"externalId"`
	Permissions []string `json:"permissions"`
}

type UpdateInput struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	ExternalID  string   `json:"externalId"`
	Permissions []string `json:"permissions"`
}
