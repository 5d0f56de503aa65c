// Package hub holds the domain core: the entity registry for clubs and
// events and the registration ledger that tracks event attendance. Both
// services share one storage handle and one mutex so that a registration
// can never be inserted in the middle of a cascading delete.
package hub

import (
	"errors"
	"slices"
	"sync"

	"github.com/campushub/clubhub/server/database"
)

var (
	// ErrForbidden is returned when an identity may not perform an
	// operation. Acting on a missing record yields the same outcome as
	// acting on someone else's record.
	ErrForbidden = errors.New("forbidden")

	// ErrMissingField is returned when a record is created without one of
	// its required fields.
	ErrMissingField = errors.New("missing required field")
)

type Identity struct {
	Username string
	Role     string
}

func (i Identity) IsAdmin() bool {
	return i.Role == database.RoleAdmin
}

// Policy decides whether an identity may modify a record owned by owner.
type Policy func(identity Identity, owner string) bool

// OwnerOrAdmin allows the record's owner, any admin-role identity, and
// any username on the extra admins list.
func OwnerOrAdmin(admins []string) Policy {
	return func(identity Identity, owner string) bool {
		if identity.Username == "" {
			return false
		}
		return identity.Username == owner || identity.IsAdmin() || slices.Contains(admins, identity.Username)
	}
}

func New(db *database.Database, canModify Policy) *Hub {
	mu := &sync.Mutex{}
	return &Hub{
		Registry: &Registry{
			db:        db,
			canModify: canModify,
			mu:        mu,
		},
		Ledger: &Ledger{
			db: db,
			mu: mu,
		},
	}
}

type Hub struct {
	Registry *Registry
	Ledger   *Ledger
}
