package db

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrConstraintViolation covers unique, foreign key and NOT NULL
	// violations reported by the store.
	ErrConstraintViolation = errors.New("constraint violation")
	// ErrTransactionFailure covers begin/commit failures and lock contention.
	ErrTransactionFailure = errors.New("transaction failure")
)

// Classify wraps driver errors with the matching sentinel. The driver error
// stays in the chain.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrConstraintViolation) || errors.Is(err, ErrTransactionFailure) {
		return err
	}

	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}

	switch se.Code() & 0xff {
	case sqlite3.SQLITE_CONSTRAINT:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
		return fmt.Errorf("%w: %w", ErrTransactionFailure, err)
	default:
		return err
	}
}
