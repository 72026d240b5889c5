// Package meeting implements the meeting repository using PostgreSQL.
package meeting

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Repo provides meeting persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new meeting repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const meetingColumns = `id, project_id, title, status, held_at, published_at, published_by, deleted_at, created_at, updated_at`

const getByIDSQL = `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`

// GetByID returns a meeting by primary key, including soft-deleted ones.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	var (
		m      domain.Meeting
		status string
	)
	err := q.QueryRow(ctx, getByIDSQL, id).Scan(
		&m.ID, &m.ProjectID, &m.Title, &status, &m.HeldAt,
		&m.PublishedAt, &m.PublishedBy, &m.DeletedAt, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "meeting", id)
	}
	m.Status = domain.MeetingStatus(status)

	return &m, nil
}

const transitionSQL = `
UPDATE meetings SET status = $3, updated_at = $4
WHERE id = $1 AND status = $2 AND deleted_at IS NULL`

// TransitionStatus moves a meeting from one status to another.
// Returns domain.ErrInvalidState when the meeting is not in the from status.
func (r *Repo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.MeetingStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, transitionSQL, id, string(from), string(to), time.Now().UTC())
	if err != nil {
		return postgres.MapError(err, "meeting", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meeting %s: not in %s status: %w", id, from, domain.ErrInvalidState)
	}
	return nil
}

const markPublishedSQL = `
UPDATE meetings SET status = 'published', published_at = $2, published_by = $3, updated_at = $2
WHERE id = $1 AND status = 'review' AND deleted_at IS NULL`

// MarkPublished moves a reviewable meeting to published.
// Returns domain.ErrInvalidState when the meeting is no longer reviewable.
func (r *Repo) MarkPublished(ctx context.Context, id, actorID uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, markPublishedSQL, id, at, actorID)
	if err != nil {
		return postgres.MapError(err, "meeting", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("meeting %s: not reviewable: %w", id, domain.ErrInvalidState)
	}
	return nil
}
