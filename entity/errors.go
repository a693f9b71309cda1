package entity

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrInvalidID        = errors.New("invalid identifier")
	ErrNotFound         = errors.New("not found")
	ErrUnauthorized     = errors.New("invalid email or password")
	ErrAlreadyProcessed = errors.New("admission already processed")
	ErrStoreUnavailable = errors.New("database not available")
)

const maxStoreMessage = 120

// StoreFailure reports a database error as ErrStoreUnavailable with a trimmed
// message. Identifier errors pass through unchanged.
func StoreFailure(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrInvalidID) || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	msg := err.Error()
	if len(msg) > maxStoreMessage {
		msg = msg[:maxStoreMessage]
	}
	return fmt.Errorf("%w: %s", ErrStoreUnavailable, msg)
}
