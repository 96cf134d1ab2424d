package storage

import (
	"fmt"
	"strings"
)

// DatabaseError wraps any storage-layer failure: driver errors, constraint
// violations, or a mutation that matched no rows when one was required.
// The original cause is preserved for errors.Is/As.
type DatabaseError struct {
	Message string
	Err     error
}

func (e *DatabaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DatabaseError) Unwrap() error {
	return e.Err
}

func NewDatabaseError(message string, err error) *DatabaseError {
	return &DatabaseError{Message: message, Err: err}
}

// ConnectionError means the pool could not produce a usable connection.
// Typically fatal to the request that hit it.
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IsUniqueViolation reports whether err came from a violated unique index.
// The embedded engine surfaces these as plain error strings, so this is a
// text match on the constraint failure it emits.
func IsUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "unique constraint")
}

func isAlreadyExists(err error) bool {
	return err != nil && strings.Contains(err.Error(), "already exists")
}
