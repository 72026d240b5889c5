package publish

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// AppliedItem describes one canonical record written by a publish.
type AppliedItem struct {
	TempID     string
	EntityType domain.EntityType
	Operation  domain.Operation
	EntityID   uuid.UUID
	// WithoutEmbedding is set when the vector could not be computed.
	WithoutEmbedding bool
}

// Result summarizes a successful publish.
type Result struct {
	MeetingID   uuid.UUID
	ChangeSetID uuid.UUID
	PublishedAt time.Time
	Items       []AppliedItem
	// Skipped counts proposals that were not accepted.
	Skipped int
}

// Count returns how many items were applied with the given operation.
func (r *Result) Count(op domain.Operation) int {
	n := 0
	for _, it := range r.Items {
		if it.Operation == op {
			n++
		}
	}
	return n
}
