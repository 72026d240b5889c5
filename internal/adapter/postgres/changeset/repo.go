// Package changeset implements the proposed change-set repository using
// PostgreSQL. Lock mutations are single conditional UPDATE statements so
// concurrent reviewers never observe a half-applied lock.
package changeset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Repo provides change-set persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new change-set repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const columns = `id, meeting_id, project_id, proposed_items, locked_by, locked_at, lock_version, publishing_at, created_at, updated_at`

const (
	insertSQL = `
INSERT INTO proposed_change_sets (id, meeting_id, project_id, proposed_items, lock_version, created_at, updated_at)
VALUES ($1, $2, $3, $4, 0, $5, $5)`

	getByIDSQL        = `SELECT ` + columns + ` FROM proposed_change_sets WHERE id = $1`
	getByMeetingIDSQL = `SELECT ` + columns + ` FROM proposed_change_sets WHERE meeting_id = $1`

	// The holder may always re-acquire; anyone may take a free or expired
	// lock. A takeover drops the previous holder's lapsed publish claim.
	acquireSQL = `
UPDATE proposed_change_sets
SET locked_by = $2, locked_at = $3, lock_version = lock_version + 1, updated_at = $3,
    publishing_at = CASE WHEN locked_by = $2 THEN publishing_at END
WHERE id = $1
  AND (locked_by = $2 OR locked_by IS NULL OR locked_at < $4)
RETURNING ` + columns

	// Strict compare-and-swap on the version, and no live publish claim.
	claimPublishSQL = `
UPDATE proposed_change_sets
SET locked_by = $2, locked_at = $4, lock_version = lock_version + 1, publishing_at = $4, updated_at = $4
WHERE id = $1
  AND lock_version = $3
  AND (locked_by = $2 OR locked_by IS NULL OR locked_at < $5)
  AND (publishing_at IS NULL OR publishing_at < $5)
RETURNING ` + columns

	abortPublishSQL = `
UPDATE proposed_change_sets
SET publishing_at = NULL, updated_at = $3
WHERE id = $1 AND locked_by = $2 AND publishing_at IS NOT NULL`

	releaseSQL = `
UPDATE proposed_change_sets
SET locked_by = NULL, locked_at = NULL, publishing_at = NULL, lock_version = lock_version + 1, updated_at = $3
WHERE id = $1 AND locked_by = $2`

	forceReleaseSQL = `
UPDATE proposed_change_sets
SET locked_by = NULL, locked_at = NULL, publishing_at = NULL, lock_version = lock_version + 1, updated_at = $2
WHERE id = $1
RETURNING ` + columns

	saveItemsSQL = `
UPDATE proposed_change_sets
SET proposed_items = $3, locked_at = $4, updated_at = $4
WHERE id = $1 AND locked_by = $2 AND locked_at >= $5
  AND (publishing_at IS NULL OR publishing_at < $5)`

	releaseStaleSQL = `
UPDATE proposed_change_sets
SET locked_by = NULL, locked_at = NULL, publishing_at = NULL, lock_version = lock_version + 1, updated_at = $2
WHERE locked_by IS NOT NULL AND locked_at < $1`
)

// Create inserts a new unlocked change-set at version 0.
// Returns domain.ErrAlreadyExists if the meeting already has one.
func (r *Repo) Create(ctx context.Context, cs *domain.ProposedChangeSet) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	items, err := json.Marshal(cs.Items)
	if err != nil {
		return fmt.Errorf("marshal proposed items: %w", err)
	}

	if _, err := q.Exec(ctx, insertSQL, cs.ID, cs.MeetingID, cs.ProjectID, items, cs.CreatedAt); err != nil {
		return postgres.MapError(err, "change_set", cs.ID)
	}
	return nil
}

// GetByID returns a change-set by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ProposedChangeSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cs, err := scanChangeSet(q.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "change_set", id)
	}
	return cs, nil
}

// GetByMeetingID returns the change-set extracted from a meeting.
func (r *Repo) GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*domain.ProposedChangeSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cs, err := scanChangeSet(q.QueryRow(ctx, getByMeetingIDSQL, meetingID))
	if err != nil {
		return nil, postgres.MapError(err, "change_set for meeting", meetingID)
	}
	return cs, nil
}

// TryAcquire grants the lock to actor in one atomic statement. Locks whose
// locked_at is before staleBefore count as expired. It returns
// (nil, nil) when another actor holds a live lock; the row is left untouched.
func (r *Repo) TryAcquire(ctx context.Context, id, actor uuid.UUID, now, staleBefore time.Time) (*domain.ProposedChangeSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cs, err := scanChangeSet(q.QueryRow(ctx, acquireSQL, id, actor, now, staleBefore))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "change_set", id)
	}
	return cs, nil
}

// ClaimForPublish takes the lock for a publish run. Unlike TryAcquire it
// requires lock_version to equal expectedVersion even for the holder, and
// refuses while another publish claim is live. It returns (nil, nil) when
// the claim was refused.
func (r *Repo) ClaimForPublish(ctx context.Context, id, actor uuid.UUID, expectedVersion int64, now, staleBefore time.Time) (*domain.ProposedChangeSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cs, err := scanChangeSet(q.QueryRow(ctx, claimPublishSQL, id, actor, expectedVersion, now, staleBefore))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, postgres.MapError(err, "change_set", id)
	}
	return cs, nil
}

// AbortPublish drops actor's publish claim and keeps the lock.
func (r *Repo) AbortPublish(ctx context.Context, id, actor uuid.UUID, now time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, abortPublishSQL, id, actor, now)
	if err != nil {
		return false, postgres.MapError(err, "change_set", id)
	}
	return tag.RowsAffected() > 0, nil
}

// Release clears the lock if actor holds it and reports whether it did.
func (r *Repo) Release(ctx context.Context, id, actor uuid.UUID, now time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, releaseSQL, id, actor, now)
	if err != nil {
		return false, postgres.MapError(err, "change_set", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ForceRelease clears the lock regardless of the holder.
func (r *Repo) ForceRelease(ctx context.Context, id uuid.UUID, now time.Time) (*domain.ProposedChangeSet, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	cs, err := scanChangeSet(q.QueryRow(ctx, forceReleaseSQL, id, now))
	if err != nil {
		return nil, postgres.MapError(err, "change_set", id)
	}
	return cs, nil
}

// SaveItems stores edited proposals if actor still holds a live lock and
// refreshes locked_at. It reports false when the lock was lost or a publish
// of the change-set is in flight.
func (r *Repo) SaveItems(ctx context.Context, id, actor uuid.UUID, items domain.ProposedItems, now, staleBefore time.Time) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	raw, err := json.Marshal(items)
	if err != nil {
		return false, fmt.Errorf("marshal proposed items: %w", err)
	}

	tag, err := q.Exec(ctx, saveItemsSQL, id, actor, raw, now, staleBefore)
	if err != nil {
		return false, postgres.MapError(err, "change_set", id)
	}
	return tag.RowsAffected() > 0, nil
}

// ReleaseStale clears every lock last touched before staleBefore and
// returns the number of change-sets released.
func (r *Repo) ReleaseStale(ctx context.Context, staleBefore, now time.Time) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := q.Exec(ctx, releaseStaleSQL, staleBefore, now)
	if err != nil {
		return 0, fmt.Errorf("release stale locks: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanChangeSet(row pgx.Row) (*domain.ProposedChangeSet, error) {
	var (
		cs  domain.ProposedChangeSet
		raw []byte
	)
	if err := row.Scan(
		&cs.ID, &cs.MeetingID, &cs.ProjectID, &raw,
		&cs.LockedBy, &cs.LockedAt, &cs.LockVersion, &cs.PublishingAt, &cs.CreatedAt, &cs.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &cs.Items); err != nil {
			return nil, fmt.Errorf("unmarshal proposed items: %w", err)
		}
	}
	return &cs, nil
}
