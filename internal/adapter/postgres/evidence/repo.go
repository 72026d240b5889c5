// Package evidence implements storage of transcript quotes that justify
// changes to canonical records. Rows are immutable once written.
package evidence

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Repo provides evidence persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new evidence repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO evidence (id, entity_type, entity_id, meeting_id, quote, speaker, ts_label, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

const listByEntitySQL = `
SELECT id, entity_type, entity_id, meeting_id, quote, speaker, ts_label, created_at
FROM evidence
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at, id`

// Create inserts evidence rows in order. Callers run it inside the item's
// transaction so a failed row leaves none behind.
func (r *Repo) Create(ctx context.Context, rows []domain.Evidence) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	for _, e := range rows {
		_, err := q.Exec(ctx, insertSQL, e.ID, string(e.EntityType), e.EntityID, e.MeetingID,
			e.Quote, e.Speaker, e.Timestamp, e.CreatedAt)
		if err != nil {
			return postgres.MapError(err, "evidence", e.ID)
		}
	}
	return nil
}

// ListByEntity returns the evidence recorded for one canonical record, oldest first.
func (r *Repo) ListByEntity(ctx context.Context, kind domain.EntityType, entityID uuid.UUID) ([]domain.Evidence, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByEntitySQL, string(kind), entityID)
	if err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}
	defer rows.Close()

	out := []domain.Evidence{}
	for rows.Next() {
		var (
			e          domain.Evidence
			entityType string
		)
		if err := rows.Scan(&e.ID, &entityType, &e.EntityID, &e.MeetingID, &e.Quote, &e.Speaker, &e.Timestamp, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan evidence: %w", err)
		}
		e.EntityType = domain.EntityType(entityType)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list evidence: %w", err)
	}
	return out, nil
}
