package hub

import (
	"context"
	"sync"
	"time"

	"github.com/campushub/clubhub/server/database"
)

// Ledger is the authoritative record of event attendance. Each
// (event, user) pair is either registered or not; double registration is
// reported, not an error, and unregistering an absent pair is a no-op.
type Ledger struct {
	db *database.Database
	mu *sync.Mutex
}

// Register records the identity's registration for an event. It returns
// false when the identity was already registered.
func (l *Ledger) Register(ctx context.Context, identity Identity, eventID string) (bool, error) {
	if identity.Username == "" {
		return false, ErrForbidden
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.db.InsertRegistration(ctx, database.Registration{
		EventID:   eventID,
		Username:  identity.Username,
		CreatedAt: time.Now().Unix(),
	})
}

func (l *Ledger) Unregister(ctx context.Context, identity Identity, eventID string) error {
	if identity.Username == "" {
		return ErrForbidden
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	return l.db.DeleteRegistration(ctx, eventID, identity.Username)
}

func (l *Ledger) CountForEvent(ctx context.Context, eventID string) (int, error) {
	return l.db.CountRegistrations(ctx, eventID)
}

func (l *Ledger) IsRegistered(ctx context.Context, eventID string, username string) (bool, error) {
	return l.db.HasRegistration(ctx, eventID, username)
}

// EventIDsForUser returns the set of event ids the user holds a
// registration for.
func (l *Ledger) EventIDsForUser(ctx context.Context, username string) (map[string]bool, error) {
	if username == "" {
		return nil, nil
	}

	eventIDs, err := l.db.GetUserRegistrations(ctx, username)
	if err != nil {
		return nil, err
	}

	registered := make(map[string]bool, len(eventIDs))
	for _, eventID := range eventIDs {
		registered[eventID] = true
	}

	return registered, nil
}
