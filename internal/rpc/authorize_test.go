package rpc_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/identity"
	"github.com/leagueops/league-management/internal/permission"
	"github.com/leagueops/league-management/internal/rpc"
)

// fakeResolver maps tokens to identities and counts how often it is asked.
type fakeResolver struct {
	mu         sync.Mutex
	identities map[string]identity.Identity
	calls      int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{identities: map[string]identity.Identity{}}
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (identity.Identity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	ident, ok := f.identities[token]
	if !ok {
		return identity.Identity{}, fmt.Errorf("%w: provider rejected token", identity.ErrInvalidToken)
	}
	return ident, nil
}

func (f *fakeResolver) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeDirectory provisions users in memory with the same first-sight
// semantics as the real directory.
type fakeDirectory struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]*internal.AuthenticatedUser
	err    error
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{nextID: 1, users: map[string]*internal.AuthenticatedUser{}}
}

func (f *fakeDirectory) GetOrCreate(_ context.Context, ident identity.Identity) (*internal.AuthenticatedUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.users[ident.ExternalID]; ok {
		return u, nil
	}
	u := &internal.AuthenticatedUser{
		ID:          f.nextID,
		ExternalID:  ident.ExternalID,
		Name:        ident.DisplayName,
		Permissions: []string{},
	}
	f.nextID++
	f.users[ident.ExternalID] = u
	return u, nil
}

func (f *fakeDirectory) grant(externalID string, perms ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[externalID].Permissions = append(f.users[externalID].Permissions, perms...)
}

func (f *fakeDirectory) userCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

type recordedEntry struct {
	UserID int64
	Path   string
	Input  string
	Kind   string
}

type fakeRecorder struct {
	mu      sync.Mutex
	entries []recordedEntry
	err     error
}

func (f *fakeRecorder) Record(_ context.Context, userID int64, path string, input json.RawMessage, kind string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, recordedEntry{UserID: userID, Path: path, Input: string(input), Kind: kind})
	return nil
}

func (f *fakeRecorder) recorded() []recordedEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedEntry{}, f.entries...)
}

var _ = Describe("Authorizer", func() {
	var (
		resolver   *fakeResolver
		directory  *fakeDirectory
		recorder   *fakeRecorder
		authorizer *rpc.Authorizer
	)

	newCall := func(kind rpc.Kind, token string, required permission.Name) *rpc.Call {
		return &rpc.Call{
			Path:               "teams.list",
			Kind:               kind,
			Token:              token,
			Input:              json.RawMessage(`null`),
			RequiredPermission: required,
		}
	}

	BeforeEach(func() {
		resolver = newFakeResolver()
		resolver.identities["tok-alice"] = identity.Identity{ExternalID: "d-1", DisplayName: "Alice"}
		directory = newFakeDirectory()
		recorder = &fakeRecorder{}
		authorizer = rpc.NewAuthorizer(resolver, directory, recorder, slog.Default())
	})

	Describe("token extraction", func() {
		It("rejects an empty token without calling the resolver", func() {
			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "", ""))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeUnauthorized))
			Expect(resolver.callCount()).To(Equal(0))
		})

		It("rejects the placeholder token without calling the resolver", func() {
			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "-", ""))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeUnauthorized))
			Expect(resolver.callCount()).To(Equal(0))
		})
	})

	Describe("identity resolution", func() {
		It("fails unauthorized with the provider message for an unknown token", func() {
			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-bogus", ""))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeUnauthorized))
			Expect(appErr.Code).To(Equal(internal.ErrCodeInvalidToken))
			Expect(appErr.Message).To(ContainSubstring("provider rejected token"))
			Expect(resolver.callCount()).To(Equal(1))
		})
	})

	Describe("user provisioning", func() {
		It("provisions a user with an empty permission set on first sight", func() {
			call := newCall(rpc.KindQuery, "tok-alice", "")
			ctx, err := authorizer.Authorize(context.Background(), call)

			Expect(err).NotTo(HaveOccurred())
			Expect(directory.userCount()).To(Equal(1))
			Expect(call.User.Permissions).To(BeEmpty())

			u, ok := internal.UserFromContext(ctx)
			Expect(ok).To(BeTrue())
			Expect(u.ExternalID).To(Equal("d-1"))
		})

		It("returns the same user id on repeated calls", func() {
			first := newCall(rpc.KindQuery, "tok-alice", "")
			_, err := authorizer.Authorize(context.Background(), first)
			Expect(err).NotTo(HaveOccurred())

			second := newCall(rpc.KindQuery, "tok-alice", "")
			_, err = authorizer.Authorize(context.Background(), second)
			Expect(err).NotTo(HaveOccurred())

			Expect(directory.userCount()).To(Equal(1))
			Expect(second.User.ID).To(Equal(first.User.ID))
		})

		It("fails internal when the directory is unavailable", func() {
			directory.err = errors.New("connection refused")

			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", ""))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
			Expect(appErr.Code).To(Equal(internal.ErrCodeStorageFailure))
		})
	})

	Describe("permission check", func() {
		It("denies a call requiring a permission the user does not hold", func() {
			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", ""))
			Expect(err).NotTo(HaveOccurred())
			directory.grant("d-1", string(permission.SeeTeams))

			_, err = authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", permission.DeleteMatch))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeUnauthorized))
			Expect(appErr.Message).To(ContainSubstring("DELETE_MATCH"))
		})

		It("allows a call requiring a permission the user holds", func() {
			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", ""))
			Expect(err).NotTo(HaveOccurred())
			directory.grant("d-1", string(permission.SeeTeams))

			_, err = authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", permission.SeeTeams))
			Expect(err).NotTo(HaveOccurred())
		})

		It("never satisfies a requirement from an unrelated grant", func() {
			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", ""))
			Expect(err).NotTo(HaveOccurred())
			directory.grant("d-1", string(permission.CreateUser), string(permission.DeleteUser))

			_, err = authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", permission.CreatePlayer))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("audit recording", func() {
		It("records exactly one entry per authorized mutation", func() {
			call := newCall(rpc.KindMutation, "tok-alice", "")
			call.Path = "players.create"
			call.Input = json.RawMessage(`{"name":"Bob"}`)

			_, err := authorizer.Authorize(context.Background(), call)
			Expect(err).NotTo(HaveOccurred())

			entries := recorder.recorded()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].UserID).To(Equal(call.User.ID))
			Expect(entries[0].Path).To(Equal("players.create"))
			Expect(entries[0].Kind).To(Equal("MUTATION"))
			Expect(entries[0].Input).To(MatchJSON(`{"name":"Bob"}`))
		})

		It("records nothing for queries", func() {
			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindQuery, "tok-alice", ""))
			Expect(err).NotTo(HaveOccurred())
			Expect(recorder.recorded()).To(BeEmpty())
		})

		It("fails internal when the audit write fails", func() {
			recorder.err = errors.New("disk full")

			_, err := authorizer.Authorize(context.Background(), newCall(rpc.KindMutation, "tok-alice", ""))

			appErr, ok := internal.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(internal.ErrorTypeInternal))
			Expect(appErr.Code).To(Equal(internal.ErrCodeAuditWriteFailed))
		})
	})

	It("runs the steps in the documented order", func() {
		Expect(authorizer.Steps()).To(Equal([]string{
			"extract_token",
			"resolve_identity",
			"load_user",
			"check_permission",
			"record_audit",
		}))
	})
})
