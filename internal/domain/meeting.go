package domain

import (
	"time"

	"github.com/google/uuid"
)

// Meeting is a processed meeting whose extracted items await review.
type Meeting struct {
	ID          uuid.UUID
	ProjectID   uuid.UUID
	Title       string
	Status      MeetingStatus
	HeldAt      *time.Time
	PublishedAt *time.Time
	PublishedBy *uuid.UUID
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsDeleted reports whether the meeting was soft-deleted.
func (m *Meeting) IsDeleted() bool {
	return m.DeletedAt != nil
}

// IsReviewable reports whether the meeting's change-set may be edited or published.
func (m *Meeting) IsReviewable() bool {
	return !m.IsDeleted() && m.Status == MeetingStatusReview
}
