package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (d *Database) GetEvents(ctx context.Context) ([]EventWithRegistrations, error) {
	query := `
		SELECT events.*, COUNT(registrations.registration_username) AS registrations
		FROM events
		LEFT JOIN registrations ON events.event_id = registrations.registration_event_id
		GROUP BY events.rowid
		ORDER BY events.rowid ASC
	`

	var events []EventWithRegistrations
	if err := d.db.SelectContext(ctx, &events, query); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	return events, nil
}

func (d *Database) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	var event Event
	err := d.db.GetContext(ctx, &event, "SELECT * FROM events WHERE event_id = $1", eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (d *Database) InsertEvent(ctx context.Context, event Event) error {
	query := `
		INSERT INTO events (event_id, event_title, event_club_name, event_type, event_date, event_location, event_description, event_created_by)
		VALUES (:event_id, :event_title, :event_club_name, :event_type, :event_date, :event_location, :event_description, :event_created_by)
	`

	if _, err := d.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// DeleteEventCascade removes an event and every registration referencing
// it in a single transaction.
func (d *Database) DeleteEventCascade(ctx context.Context, eventID string) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM registrations WHERE registration_event_id = $1", eventID); err != nil {
		return fmt.Errorf("failed to delete registrations: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM events WHERE event_id = $1", eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// BackfillEventIDs assigns a fresh id to every event that predates the id
// column being mandatory. Safe to re-run: rows that already carry an id
// are left untouched. Returns the number of migrated rows.
func (d *Database) BackfillEventIDs(ctx context.Context, newID func() string) (int, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var rowIDs []int64
	if err = tx.SelectContext(ctx, &rowIDs, "SELECT rowid FROM events WHERE event_id = ''"); err != nil {
		return 0, fmt.Errorf("failed to find events without id: %w", err)
	}

	for _, rowID := range rowIDs {
		if _, err = tx.ExecContext(ctx, "UPDATE events SET event_id = $1 WHERE rowid = $2", newID(), rowID); err != nil {
			return 0, fmt.Errorf("failed to assign event id: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(rowIDs), nil
}

func (d *Database) CountEvents(ctx context.Context) (int, error) {
	var count int
	if err := d.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM events"); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return count, nil
}
