package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leagueops/league-management/internal"
	"github.com/leagueops/league-management/internal/identity"
	"github.com/leagueops/league-management/internal/permission"
)

// Repository is the storage contract for local user records. Insert must be
// idempotent for a given external id: on conflict it reports inserted=false
// without failing, so concurrent first-sight races converge to one row.
type Repository interface {
	FindByExternalID(ctx context.Context, externalID string) (*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Insert(ctx context.Context, externalID, name string) (inserted bool, err error)
	Create(ctx context.Context, externalID, name string, permissions []string) (int64, error)
	Update(ctx context.Context, id int64, externalID, name string, permissions []string) error
	Delete(ctx context.Context, id int64) error
}

// Directory maps external identities to local users and owns the admin-side
// user CRUD.
type Directory struct {
	repo   Repository
	logger *slog.Logger
}

func NewDirectory(repo Repository, logger *slog.Logger) *Directory {
	return &Directory{repo: repo, logger: logger}
}

// GetOrCreate returns the user bound to the identity, provisioning a record
// with an empty permission set on first sight. Two callers racing on the
// same never-seen external id both get the single persisted row.
func (d *Directory) GetOrCreate(ctx context.Context, ident identity.Identity) (*internal.AuthenticatedUser, error) {
	u, err := d.repo.FindByExternalID(ctx, ident.ExternalID)
	if err == nil {
		return u.Authenticated(), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("lookup user %q: %w", ident.ExternalID, err)
	}

	inserted, err := d.repo.Insert(ctx, ident.ExternalID, ident.DisplayName)
	if err != nil {
		return nil, fmt.Errorf("provision user %q: %w", ident.ExternalID, err)
	}
	if inserted {
		d.logger.Info("provisioned user on first sight",
			"external_id", ident.ExternalID, "name", ident.DisplayName)
	}

	u, err = d.repo.FindByExternalID(ctx, ident.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("reread user %q after provision: %w", ident.ExternalID, err)
	}
	return u.Authenticated(), nil
}

func (d *Directory) GetByID(ctx context.Context, id int64) (*User, error) {
	u, err := d.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

func (d *Directory) List(ctx context.Context) ([]*User, error) {
	users, err := d.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (d *Directory) Create(ctx context.Context, externalID, name string, permissions []string) (int64, error) {
	if err := validatePermissions(permissions); err != nil {
		return 0, err
	}
	id, err := d.repo.Create(ctx, externalID, name, permissions)
	if err != nil {
		return 0, fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// Update replaces name, external id and the whole granted permission set.
func (d *Directory) Update(ctx context.Context, id int64, externalID, name string, permissions []string) error {
	if err := validatePermissions(permissions); err != nil {
		return err
	}
	if err := d.repo.Update(ctx, id, externalID, name, permissions); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrUserNotFound
		}
		return fmt.Errorf("update user %d: %w", id, err)
	}
	return nil
}

func (d *Directory) Delete(ctx context.Context, id int64) error {
	if err := d.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return internal.ErrUserNotFound
		}
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

func validatePermissions(names []string) error {
	if unknown := permission.ValidateAll(names); len(unknown) > 0 {
		return internal.NewValidationError(
			fmt.Sprintf("unknown permission names: %v", unknown),
			internal.ErrCodeUnknownPermission,
		)
	}
	return nil
}
