package database

import (
	"context"
	"fmt"
)

// InsertRegistration records a registration for an (event, user) pair.
// The pair is unique: if a registration already exists nothing is
// inserted and false is returned.
func (d *Database) InsertRegistration(ctx context.Context, registration Registration) (bool, error) {
	query := `
		INSERT INTO registrations (registration_event_id, registration_username, registration_created_at)
		VALUES (:registration_event_id, :registration_username, :registration_created_at)
		ON CONFLICT (registration_event_id, registration_username) DO NOTHING
	`

	res, err := d.db.NamedExecContext(ctx, query, registration)
	if err != nil {
		return false, fmt.Errorf("failed to insert registration: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return rows > 0, nil
}

// DeleteRegistration removes a registration if it exists. Removing a
// missing registration is a no-op.
func (d *Database) DeleteRegistration(ctx context.Context, eventID string, username string) error {
	if _, err := d.db.ExecContext(ctx,
		"DELETE FROM registrations WHERE registration_event_id = $1 AND registration_username = $2",
		eventID, username,
	); err != nil {
		return fmt.Errorf("failed to delete registration: %w", err)
	}

	return nil
}

func (d *Database) CountRegistrations(ctx context.Context, eventID string) (int, error) {
	var count int
	if err := d.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM registrations WHERE registration_event_id = $1", eventID,
	); err != nil {
		return 0, fmt.Errorf("failed to count registrations: %w", err)
	}

	return count, nil
}

func (d *Database) HasRegistration(ctx context.Context, eventID string, username string) (bool, error) {
	var count int
	if err := d.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM registrations WHERE registration_event_id = $1 AND registration_username = $2",
		eventID, username,
	); err != nil {
		return false, fmt.Errorf("failed to check registration: %w", err)
	}

	return count > 0, nil
}

// GetUserRegistrations returns the event ids the user is registered for.
func (d *Database) GetUserRegistrations(ctx context.Context, username string) ([]string, error) {
	var eventIDs []string
	if err := d.db.SelectContext(ctx, &eventIDs,
		"SELECT registration_event_id FROM registrations WHERE registration_username = $1", username,
	); err != nil {
		return nil, fmt.Errorf("failed to get registrations: %w", err)
	}

	return eventIDs, nil
}
