package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (d *Database) GetClubs(ctx context.Context) ([]Club, error) {
	// rowid preserves insertion order.
	var clubs []Club
	if err := d.db.SelectContext(ctx, &clubs, "SELECT * FROM clubs ORDER BY rowid ASC"); err != nil {
		return nil, fmt.Errorf("failed to get clubs: %w", err)
	}

	return clubs, nil
}

func (d *Database) GetClub(ctx context.Context, name string) (*Club, error) {
	var club Club
	err := d.db.GetContext(ctx, &club, "SELECT * FROM clubs WHERE club_name = $1", name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get club: %w", err)
	}

	return &club, nil
}

func (d *Database) InsertClub(ctx context.Context, club Club) error {
	query := `
		INSERT INTO clubs (club_name, club_description, club_leader, club_founded, club_created_by)
		VALUES (:club_name, :club_description, :club_leader, :club_founded, :club_created_by)
		ON CONFLICT (club_name) DO NOTHING
	`

	res, err := d.db.NamedExecContext(ctx, query, club)
	if err != nil {
		return fmt.Errorf("failed to insert club: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return ErrDuplicateName
	}

	return nil
}

// DeleteClubCascade removes a club together with its events and every
// registration for those events in a single transaction.
func (d *Database) DeleteClubCascade(ctx context.Context, name string) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx, `
		DELETE FROM registrations
		WHERE registration_event_id IN (
			SELECT event_id FROM events WHERE event_club_name = $1
		)`, name); err != nil {
		return fmt.Errorf("failed to delete registrations: %w", err)
	}

	if _, err = tx.ExecContext(ctx, "DELETE FROM events WHERE event_club_name = $1", name); err != nil {
		return fmt.Errorf("failed to delete events: %w", err)
	}

	res, err := tx.ExecContext(ctx, "DELETE FROM clubs WHERE club_name = $1", name)
	if err != nil {
		return fmt.Errorf("failed to delete club: %w", err)
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

func (d *Database) CountClubs(ctx context.Context) (int, error) {
	var count int
	if err := d.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM clubs"); err != nil {
		return 0, fmt.Errorf("failed to count clubs: %w", err)
	}
	return count, nil
}
