package hub_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/clubhub/server/database"
	"github.com/campushub/clubhub/server/hub"
)

var (
	alice = hub.Identity{Username: "alice", Role: database.RoleStudent}
	bob   = hub.Identity{Username: "bob", Role: database.RoleStudent}
	root  = hub.Identity{Username: "root", Role: database.RoleAdmin}
)

func newTestHub(t *testing.T) *hub.Hub {
	t.Helper()

	db, err := database.New(database.Config{Path: filepath.Join(t.TempDir(), "clubhub.db")})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	return hub.New(db, hub.OwnerOrAdmin(nil))
}

func TestOwnerOrAdmin(t *testing.T) {
	policy := hub.OwnerOrAdmin([]string{"dean"})

	tests := []struct {
		name     string
		identity hub.Identity
		owner    string
		want     bool
	}{
		{name: "owner", identity: alice, owner: "alice", want: true},
		{name: "other student", identity: bob, owner: "alice", want: false},
		{name: "admin role", identity: root, owner: "alice", want: true},
		{name: "listed admin", identity: hub.Identity{Username: "dean", Role: database.RoleStudent}, owner: "alice", want: true},
		{name: "anonymous", identity: hub.Identity{}, owner: "alice", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy(tt.identity, tt.owner))
		})
	}
}

func TestCreateClub(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	club, err := h.Registry.CreateClub(ctx, alice, database.Club{
		Name:   "Campus Tech",
		Leader: "Alice",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", club.CreatedBy)
	assert.NotEmpty(t, club.Founded)

	_, err = h.Registry.CreateClub(ctx, bob, database.Club{Name: "Campus Tech", Leader: "Bob"})
	require.ErrorIs(t, err, database.ErrDuplicateName)

	_, err = h.Registry.CreateClub(ctx, alice, database.Club{Name: "  ", Leader: "Alice"})
	require.ErrorIs(t, err, hub.ErrMissingField)

	_, err = h.Registry.CreateClub(ctx, alice, database.Club{Name: "Chess Club"})
	require.ErrorIs(t, err, hub.ErrMissingField)

	_, err = h.Registry.CreateClub(ctx, hub.Identity{}, database.Club{Name: "Chess Club", Leader: "Alice"})
	require.ErrorIs(t, err, hub.ErrForbidden)
}

func TestCreateEvent(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	event, err := h.Registry.CreateEvent(ctx, alice, database.Event{
		Title:    "Hackathon",
		ClubName: "Campus Tech",
		Date:     "2026-10-01",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "alice", event.CreatedBy)

	other, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.NoError(t, err)
	assert.NotEqual(t, event.ID, other.ID)

	_, err = h.Registry.CreateEvent(ctx, alice, database.Event{ClubName: "Campus Tech"})
	require.ErrorIs(t, err, hub.ErrMissingField)

	_, err = h.Registry.CreateEvent(ctx, hub.Identity{}, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.ErrorIs(t, err, hub.ErrForbidden)
}

func TestRegisterTwice(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	event, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.NoError(t, err)

	created, err := h.Ledger.Register(ctx, bob, event.ID)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = h.Ledger.Register(ctx, bob, event.ID)
	require.NoError(t, err)
	assert.False(t, created)

	count, err := h.Ledger.CountForEvent(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = h.Ledger.Register(ctx, hub.Identity{}, event.ID)
	require.ErrorIs(t, err, hub.ErrForbidden)
}

func TestUnregisterAbsentIsNoop(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	event, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.NoError(t, err)

	require.NoError(t, h.Ledger.Unregister(ctx, bob, event.ID))

	_, err = h.Ledger.Register(ctx, bob, event.ID)
	require.NoError(t, err)
	require.NoError(t, h.Ledger.Unregister(ctx, bob, event.ID))

	registered, err := h.Ledger.IsRegistered(ctx, event.ID, "bob")
	require.NoError(t, err)
	assert.False(t, registered)
}

func TestDeleteClubCascadesRegistrations(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	_, err := h.Registry.CreateClub(ctx, alice, database.Club{Name: "Campus Tech", Leader: "Alice"})
	require.NoError(t, err)
	_, err = h.Registry.CreateClub(ctx, alice, database.Club{Name: "Drama Club", Leader: "Alice"})
	require.NoError(t, err)

	techEvent, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.NoError(t, err)
	dramaEvent, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Improv Night", ClubName: "Drama Club"})
	require.NoError(t, err)

	_, err = h.Ledger.Register(ctx, bob, techEvent.ID)
	require.NoError(t, err)
	_, err = h.Ledger.Register(ctx, bob, dramaEvent.ID)
	require.NoError(t, err)

	require.NoError(t, h.Registry.DeleteClub(ctx, alice, "Campus Tech"))

	events, err := h.Registry.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, dramaEvent.ID, events[0].ID)

	count, err := h.Ledger.CountForEvent(ctx, techEvent.ID)
	require.NoError(t, err)
	assert.Zero(t, count)

	registered, err := h.Ledger.EventIDsForUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{dramaEvent.ID: true}, registered)
}

func TestDeleteEventCascadesOwnRegistrationsOnly(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	first, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.NoError(t, err)
	second, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Workshop", ClubName: "Campus Tech"})
	require.NoError(t, err)

	_, err = h.Ledger.Register(ctx, bob, first.ID)
	require.NoError(t, err)
	_, err = h.Ledger.Register(ctx, bob, second.ID)
	require.NoError(t, err)

	require.NoError(t, h.Registry.DeleteEvent(ctx, alice, first.ID))

	registered, err := h.Ledger.EventIDsForUser(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{second.ID: true}, registered)
}

func TestDeleteAuthorization(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	_, err := h.Registry.CreateClub(ctx, alice, database.Club{Name: "Campus Tech", Leader: "Alice"})
	require.NoError(t, err)
	event, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.NoError(t, err)

	// Someone else's record and a missing record fail the same way.
	require.ErrorIs(t, h.Registry.DeleteClub(ctx, bob, "Campus Tech"), hub.ErrForbidden)
	require.ErrorIs(t, h.Registry.DeleteClub(ctx, alice, "No Such Club"), hub.ErrForbidden)
	require.ErrorIs(t, h.Registry.DeleteEvent(ctx, bob, event.ID), hub.ErrForbidden)
	require.ErrorIs(t, h.Registry.DeleteEvent(ctx, alice, "no-such-event"), hub.ErrForbidden)

	require.NoError(t, h.Registry.DeleteEvent(ctx, root, event.ID))
	require.NoError(t, h.Registry.DeleteClub(ctx, root, "Campus Tech"))
}

func TestEventsSortedByDate(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	dates := []string{"2026-12-01", "2026-09-15", "", "not a date", "2026-09-15"}
	for i, date := range dates {
		_, err := h.Registry.CreateEvent(ctx, alice, database.Event{
			Title:    "Event " + string(rune('A'+i)),
			ClubName: "Campus Tech",
			Date:     date,
		})
		require.NoError(t, err)
	}

	events, err := h.Registry.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 5)

	assert.Equal(t, "2026-09-15", events[0].Date)
	assert.Equal(t, "Event B", events[0].Title)
	assert.Equal(t, "2026-09-15", events[1].Date)
	assert.Equal(t, "Event E", events[1].Title)
	assert.Equal(t, "2026-12-01", events[2].Date)

	// Undated events trail in insertion order.
	assert.Equal(t, "Event C", events[3].Title)
	assert.Equal(t, "Event D", events[4].Title)
}

func TestMigrateEventIDs(t *testing.T) {
	h := newTestHub(t)
	ctx := context.Background()

	_, err := h.Registry.CreateEvent(ctx, alice, database.Event{Title: "Hackathon", ClubName: "Campus Tech"})
	require.NoError(t, err)

	migrated, err := h.Registry.MigrateEventIDs(ctx)
	require.NoError(t, err)
	assert.Zero(t, migrated)
}
