package permission

import (
	"context"
	"fmt"
	"log/slog"
)

// StoredNamesLister reads the distinct permission names currently persisted
// in the user_permissions table.
type StoredNamesLister interface {
	DistinctPermissionNames(ctx context.Context) ([]string, error)
}

// VerifyStored compares persisted permission names against the enum at
// startup. Names that fell out of the enum are logged and ignored by checks;
// they are left in place for an operator-driven migration rather than
// deleted or treated as fatal.
func VerifyStored(ctx context.Context, lister StoredNamesLister, logger *slog.Logger) error {
	stored, err := lister.DistinctPermissionNames(ctx)
	if err != nil {
		return fmt.Errorf("verify stored permissions: %w", err)
	}

	if unknown := ValidateAll(stored); len(unknown) > 0 {
		logger.Warn("stored permission rows not present in enum; they will never match a check",
			"unknown_names", unknown)
	}
	return nil
}
