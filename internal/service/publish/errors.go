package publish

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// ErrorKind tells callers why a publish was refused or stopped.
type ErrorKind string

const (
	KindMeetingNotFound      ErrorKind = "meeting_not_found"
	KindMeetingNotReviewable ErrorKind = "meeting_not_reviewable"
	KindChangeSetMissing     ErrorKind = "change_set_missing"
	KindInvalidItem          ErrorKind = "invalid_item"
	KindIdentityBlocked      ErrorKind = "identity_blocked"
	KindLockConflict         ErrorKind = "lock_conflict"
	KindApplyFailed          ErrorKind = "apply_failed"
)

// Error is returned by Publish. It unwraps to the domain error that best
// describes the failure, so errors.Is(err, domain.ErrLockConflict) and
// similar checks keep working.
type Error struct {
	Kind      ErrorKind
	MeetingID uuid.UUID
	// Blocked lists accepted items whose identity needs a reviewer.
	Blocked []domain.BlockedItem
	// Applied counts items written before an apply failure. They stay written.
	Applied int
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIdentityBlocked:
		return fmt.Sprintf("publish meeting %s: %d item(s) need identity review", e.MeetingID, len(e.Blocked))
	case KindApplyFailed:
		return fmt.Sprintf("publish meeting %s: stopped after %d item(s): %v", e.MeetingID, e.Applied, e.Err)
	default:
		return fmt.Sprintf("publish meeting %s: %s: %v", e.MeetingID, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Retryable reports whether refreshing and trying again can succeed.
func (e *Error) Retryable() bool { return e.Kind == KindLockConflict }

func newError(kind ErrorKind, meetingID uuid.UUID, err error) *Error {
	return &Error{Kind: kind, MeetingID: meetingID, Err: err}
}
