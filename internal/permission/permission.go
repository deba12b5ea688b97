package permission

// Name is a capability gating one procedure. The list below is the single
// source of truth: a user's granted set is always a subset of it and unknown
// names are rejected at the boundary, never stored.
type Name string

const (
	SeeTeams   Name = "SEE_TEAMS"
	CreateTeam Name = "CREATE_TEAM"
	UpdateTeam Name = "UPDATE_TEAM"
	DeleteTeam Name = "DELETE_TEAM"

	SeePlayers   Name = "SEE_PLAYERS"
	CreatePlayer Name = "CREATE_PLAYER"
	UpdatePlayer Name = "UPDATE_PLAYER"
	DeletePlayer Name = "DELETE_PLAYER"

	SeeMatches  Name = "SEE_MATCHES"
	CreateMatch Name = "CREATE_MATCH"
	UpdateMatch Name = "UPDATE_MATCH"
	DeleteMatch Name = "DELETE_MATCH"

	SeeUsers   Name = "SEE_USERS"
	CreateUser Name = "CREATE_USER"
	UpdateUser Name = "UPDATE_USER"
	DeleteUser Name = "DELETE_USER"
)

var all = []Name{
	SeeTeams, CreateTeam, UpdateTeam, DeleteTeam,
	SeePlayers, CreatePlayer, UpdatePlayer, DeletePlayer,
	SeeMatches, CreateMatch, UpdateMatch, DeleteMatch,
	SeeUsers, CreateUser, UpdateUser, DeleteUser,
}

var valid = func() map[Name]struct{} {
	m := make(map[Name]struct{}, len(all))
	for _, n := range all {
		m[n] = struct{}{}
	}
	return m
}()

// All returns every permission name. The listing is metadata, not user data,
// and is served without authentication.
func All() []string {
	names := make([]string, len(all))
	for i, n := range all {
		names[i] = string(n)
	}
	return names
}

func Valid(name string) bool {
	_, ok := valid[Name(name)]
	return ok
}

// ValidateAll returns the subset of names that are not part of the enum.
func ValidateAll(names []string) (unknown []string) {
	for _, n := range names {
		if !Valid(n) {
			unknown = append(unknown, n)
		}
	}
	return unknown
}

// Has reports whether granted literally contains required. There are no
// wildcard or implication semantics: SEE_TEAMS never satisfies DELETE_MATCH.
func Has(granted []string, required Name) bool {
	for _, g := range granted {
		if g == string(required) {
			return true
		}
	}
	return false
}
