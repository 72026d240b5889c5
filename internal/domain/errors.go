package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrInvalidState  = errors.New("invalid state")

	// ErrLockConflict is returned when a change-set lock is held by someone
	// else or the caller's lock version is stale. Retryable after refresh.
	ErrLockConflict = fmt.Errorf("lock conflict: %w", ErrConflict)

	// ErrPublishBlocked is returned when accepted items still carry identities
	// that need reviewer intervention.
	ErrPublishBlocked = errors.New("publish blocked")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// LockConflictError describes why a change-set lock could not be taken or
// used. It carries enough for the UI to show who holds the lock and whether
// an admin could force-unlock it.
type LockConflictError struct {
	ChangeSetID     uuid.UUID
	HolderID        *uuid.UUID
	LockedAt        *time.Time
	ExpectedVersion int64
	CurrentVersion  int64
	// StaleVersion is set when the caller acted on an outdated lock version.
	StaleVersion bool
	// HolderStale is set when the holder has been idle long enough that an
	// admin may force-unlock.
	HolderStale bool
	// Publishing is set when another publish of the change-set is in flight.
	Publishing bool
}

func (e *LockConflictError) Error() string {
	switch {
	case e.Publishing:
		return fmt.Sprintf("change set %s is already being published", e.ChangeSetID)
	case e.HolderID != nil:
		return fmt.Sprintf("change set %s is locked by %s", e.ChangeSetID, *e.HolderID)
	case e.StaleVersion:
		return fmt.Sprintf("change set %s lock version is %d, expected %d", e.ChangeSetID, e.CurrentVersion, e.ExpectedVersion)
	default:
		return fmt.Sprintf("change set %s lock is not held", e.ChangeSetID)
	}
}

func (e *LockConflictError) Unwrap() error { return ErrLockConflict }
