package user

import (
	"errors"
	"time"

	"github.com/leagueops/league-management/internal"
)

// User is the local record bound to an external identity. ExternalID is
// unique and immutable after creation; Name tracks the provider display name
// at first sight and is mutable by admins afterwards.
type User struct {
	ID          int64     `json:"id"`
	ExternalID  string    `json:"externalId"`
	Name        string    `json:"name"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (u *User) HasPermission(name string) bool {
	for _, p := range u.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// Authenticated converts the record into the immutable context value the
// authorization chain attaches to the call.
func (u *User) Authenticated() *internal.AuthenticatedUser {
	perms := make([]string, len(u.Permissions))
	copy(perms, u.Permissions)
	return &internal.AuthenticatedUser{
		ID:          u.ID,
		ExternalID:  u.ExternalID,
		Name:        u.Name,
		Permissions: perms,
	}
}

var ErrNotFound = errors.New("user not found")
