package hub

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/campushub/clubhub/server/database"
)

// Registry owns the club and event collections and their invariants:
// unique club names, stable surrogate event ids, and cascading deletes.
type Registry struct {
	db        *database.Database
	canModify Policy
	mu        *sync.Mutex
}

// CanModify reports whether the identity may delete or mutate a record
// owned by owner, per the configured policy.
func (r *Registry) CanModify(identity Identity, owner string) bool {
	return r.canModify(identity, owner)
}

func (r *Registry) CreateClub(ctx context.Context, identity Identity, club database.Club) (database.Club, error) {
	if identity.Username == "" {
		return database.Club{}, ErrForbidden
	}
	if strings.TrimSpace(club.Name) == "" {
		return database.Club{}, fmt.Errorf("%w: name", ErrMissingField)
	}
	if strings.TrimSpace(club.Leader) == "" {
		return database.Club{}, fmt.Errorf("%w: leader", ErrMissingField)
	}

	if club.Founded == "" {
		club.Founded = time.Now().Format(time.DateOnly)
	}
	club.CreatedBy = identity.Username

	if err := r.db.InsertClub(ctx, club); err != nil {
		return database.Club{}, err
	}

	return club, nil
}

func (r *Registry) DeleteClub(ctx context.Context, identity Identity, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	club, err := r.db.GetClub(ctx, name)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}

	if !r.canModify(identity, club.CreatedBy) {
		return ErrForbidden
	}

	return r.db.DeleteClubCascade(ctx, name)
}

func (r *Registry) Clubs(ctx context.Context) ([]database.Club, error) {
	return r.db.GetClubs(ctx)
}

func (r *Registry) Club(ctx context.Context, name string) (*database.Club, error) {
	return r.db.GetClub(ctx, name)
}

// CreateEvent assigns a fresh surrogate id and stores the event. An
// unknown club name is accepted: the create form only offers existing
// clubs, and events are never orphaned after the fact because clubs only
// go away through the cascading delete.
func (r *Registry) CreateEvent(ctx context.Context, identity Identity, event database.Event) (database.Event, error) {
	if identity.Username == "" {
		return database.Event{}, ErrForbidden
	}
	if strings.TrimSpace(event.Title) == "" {
		return database.Event{}, fmt.Errorf("%w: title", ErrMissingField)
	}
	if strings.TrimSpace(event.ClubName) == "" {
		return database.Event{}, fmt.Errorf("%w: club", ErrMissingField)
	}

	event.ID = uuid.NewString()
	event.CreatedBy = identity.Username

	if err := r.db.InsertEvent(ctx, event); err != nil {
		return database.Event{}, err
	}

	return event, nil
}

func (r *Registry) DeleteEvent(ctx context.Context, identity Identity, eventID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, err := r.db.GetEvent(ctx, eventID)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return ErrForbidden
		}
		return err
	}

	if !r.canModify(identity, event.CreatedBy) {
		return ErrForbidden
	}

	return r.db.DeleteEventCascade(ctx, eventID)
}

func (r *Registry) Event(ctx context.Context, eventID string) (*database.Event, error) {
	return r.db.GetEvent(ctx, eventID)
}

// Events returns all events sorted ascending by date. Events without a
// parseable date sort after all dated events, in insertion order.
func (r *Registry) Events(ctx context.Context) ([]database.EventWithRegistrations, error) {
	events, err := r.db.GetEvents(ctx)
	if err != nil {
		return nil, err
	}

	sortEventsByDate(events)
	return events, nil
}

// MigrateEventIDs backfills surrogate ids onto legacy events. Run once at
// startup; idempotent.
func (r *Registry) MigrateEventIDs(ctx context.Context) (int, error) {
	return r.db.BackfillEventIDs(ctx, uuid.NewString)
}

func sortEventsByDate(events []database.EventWithRegistrations) {
	key := func(event database.EventWithRegistrations) (time.Time, bool) {
		date, err := time.Parse(time.DateOnly, event.Date)
		return date, err == nil
	}

	slices.SortStableFunc(events, func(a, b database.EventWithRegistrations) int {
		aDate, aOK := key(a)
		bDate, bOK := key(b)
		switch {
		case aOK && bOK:
			return aDate.Compare(bDate)
		case aOK:
			return -1
		case bOK:
			return 1
		default:
			return 0
		}
	})
}
