package rest

import (
	"context"

	"github.com/leagueops/league-management/internal/identity"
	"github.com/leagueops/league-management/internal/rpc"
)

type authURLOutput struct {
	AuthURL string `json:"authUrl"`
	State   string `json:"state"`
}

// RegisterAuthProcedures declares the public authentication surface: the
// browser drives the OAuth redirect itself and only needs the authorize URL,
// the code exchange and a profile preview. None of these carry a resolved
// user, so they bypass the authorization chain.
func RegisterAuthProcedures(reg *rpc.Registry, discord *identity.DiscordClient) {
	reg.Public("auth.authUrl", rpc.KindQuery, rpc.NoInput(
		func(ctx context.Context) (authURLOutput, error) {
			authURL, state := discord.AuthURL()
			return authURLOutput{AuthURL: authURL, State: state}, nil
		}))

	reg.Public("auth.authToken", rpc.KindQuery, rpc.Typed(
		func(ctx context.Context, code string) (identity.Tokens, error) {
			return discord.ExchangeCode(ctx, code)
		}))

	reg.Public("auth.discordUser", rpc.KindQuery, rpc.Typed(
		func(ctx context.Context, token string) (identity.DiscordUser, error) {
			return discord.GetUser(ctx, token)
		}))
}
