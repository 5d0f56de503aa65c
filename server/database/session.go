package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

func (d *Database) GetSession(ctx context.Context, sessionID string) (*SessionWithUser, error) {
	query := `
		SELECT sessions.*, users.*
		FROM sessions
		JOIN users ON sessions.session_username = users.user_username
		WHERE session_id = $1
	`

	var session SessionWithUser
	err := d.db.GetContext(ctx, &session, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if session.ExpiresAt < time.Now().Unix() {
		return nil, ErrSessionExpired
	}

	return &session, nil
}

func (d *Database) CreateSession(ctx context.Context, session Session) error {
	query := `
		INSERT INTO sessions (session_id, session_username, session_created_at, session_expires_at)
		VALUES (:session_id, :session_username, :session_created_at, :session_expires_at)
	`

	if _, err := d.db.NamedExecContext(ctx, query, session); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

func (d *Database) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_id = $1", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (d *Database) DeleteExpiredSessions(ctx context.Context) error {
	if _, err := d.db.ExecContext(ctx, "DELETE FROM sessions WHERE session_expires_at < $1", time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	return nil
}
