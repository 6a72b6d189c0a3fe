package repository

import (
	"errors"
	"strings"
)

var (
	// ErrEmailTaken and ErrLoginTaken surface unique-index violations on the
	// users table. Uniqueness is enforced by the database, not by an
	// in-process cache, so the check is atomic with the write.
	ErrEmailTaken = errors.New("email is already in use")
	ErrLoginTaken = errors.New("login is already in use")
)

// translateUserConflict maps a duplicate-key error on users to the matching
// sentinel. Non-conflict errors pass through unchanged.
func translateUserConflict(err error) error {
	if err == nil || !isUniqueViolation(err) {
		return err
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return ErrEmailTaken
	case strings.Contains(msg, "login"):
		return ErrLoginTaken
	}
	return err
}

// isUniqueViolation matches both the Postgres SQLSTATE and the SQLite message
// for unique-constraint failures.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint")
}
