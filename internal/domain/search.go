package domain

import (
	"time"

	"github.com/google/uuid"
)

// SearchDocument is the indexed form of a canonical record.
type SearchDocument struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	EntityType EntityType
	Title      string
	Body       string
	Status     string
	Owner      string
	MeetingID  *uuid.UUID
	UpdatedAt  time.Time
}
