// Package audit implements the audit log repository using PostgreSQL.
// The log is append-only: records are inserted and read, never changed.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const insertSQL = `
INSERT INTO audit_log (id, actor_id, project_id, entity_type, entity_id, action, before, after, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

const listByEntitySQL = `
SELECT id, actor_id, project_id, entity_type, entity_id, action, before, after, created_at
FROM audit_log
WHERE entity_type = $1 AND entity_id = $2
ORDER BY created_at DESC, id
LIMIT $3`

// Log appends an audit record. A nil Before is stored as SQL NULL.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	var before []byte
	if record.Before != nil {
		raw, err := json.Marshal(record.Before)
		if err != nil {
			return fmt.Errorf("audit_record marshal before: %w", err)
		}
		before = raw
	}

	after, err := json.Marshal(record.After)
	if err != nil {
		return fmt.Errorf("audit_record marshal after: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertSQL,
		record.ID, record.ActorID, record.ProjectID, string(record.EntityType),
		record.EntityID, string(record.Action), before, after, record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}

// ListByEntity returns the change history of one record, newest first.
func (r *Repo) ListByEntity(ctx context.Context, kind domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, listByEntitySQL, string(kind), entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit_records by entity: %w", err)
	}
	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec                 domain.AuditRecord
		kind, action        string
		beforeRaw, afterRaw []byte
	)
	if err := row.Scan(
		&rec.ID, &rec.ActorID, &rec.ProjectID, &kind, &rec.EntityID,
		&action, &beforeRaw, &afterRaw, &rec.CreatedAt,
	); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("scan audit_record: %w", err)
	}
	rec.EntityType = domain.EntityType(kind)
	rec.Action = domain.AuditAction(action)

	if len(beforeRaw) > 0 {
		if err := json.Unmarshal(beforeRaw, &rec.Before); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record unmarshal before: %w", err)
		}
	}
	if err := json.Unmarshal(afterRaw, &rec.After); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record unmarshal after: %w", err)
	}
	return rec, nil
}
