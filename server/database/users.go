package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

func (d *Database) CreateUser(ctx context.Context, user User) error {
	query := `
		INSERT INTO users (user_username, user_password_hash, user_role, user_created_at)
		VALUES (:user_username, :user_password_hash, :user_role, :user_created_at)
		ON CONFLICT (user_username) DO NOTHING
	`

	res, err := d.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return ErrUsernameTaken
	}

	return nil
}

func (d *Database) GetUser(ctx context.Context, username string) (*User, error) {
	var user User
	err := d.db.GetContext(ctx, &user, "SELECT * FROM users WHERE user_username = $1", username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
