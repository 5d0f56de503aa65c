package database

import "errors"

// Sentinel errors shared by the store methods. Callers distinguish
// failure modes with errors.Is instead of parsing driver errors.
var (
	// ErrDuplicateName is returned when a club is inserted under a name
	// that is already taken.
	ErrDuplicateName = errors.New("name already exists")

	// ErrUsernameTaken is returned when a user is inserted under an
	// existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrSessionExpired is returned for sessions past their expiry.
	ErrSessionExpired = errors.New("session expired")
)
