// Package entity implements persistence for the canonical project records
// (action items, decisions and risks) using PostgreSQL. Statements are built
// with squirrel; history entries are appended to a JSONB array.
package entity

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Repo provides canonical record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new canonical record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func tableFor(kind domain.EntityType) (string, error) {
	switch kind {
	case domain.EntityTypeActionItem:
		return "action_items", nil
	case domain.EntityTypeDecision:
		return "decisions", nil
	case domain.EntityTypeRisk:
		return "risks", nil
	default:
		return "", fmt.Errorf("entity type %q: %w", kind, domain.ErrValidation)
	}
}

// AppendUpdate appends one history entry to the record's updates array.
func (r *Repo) AppendUpdate(ctx context.Context, kind domain.EntityType, id uuid.UUID, u domain.EntityUpdate) error {
	table, err := tableFor(kind)
	if err != nil {
		return err
	}

	raw, err := json.Marshal([]domain.EntityUpdate{u})
	if err != nil {
		return fmt.Errorf("marshal update: %w", err)
	}

	query, args, err := postgres.Builder().
		Update(table).
		Set("updates", sq.Expr("updates || ?::jsonb", string(raw))).
		Set("updated_at", u.CreatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build append update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, string(kind), id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
	}
	return nil
}

// personColumns maps a PersonRef onto the three reference columns sharing prefix.
func personColumns(prefix string, p domain.PersonRef) map[string]any {
	return map[string]any{
		prefix + "_user_id":    p.UserID,
		prefix + "_contact_id": p.ContactID,
		prefix + "_name":       p.Name,
	}
}

func decodeUpdates(raw []byte) ([]domain.EntityUpdate, error) {
	if len(raw) == 0 {
		return []domain.EntityUpdate{}, nil
	}
	var out []domain.EntityUpdate
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("unmarshal updates: %w", err)
	}
	return out, nil
}

func notClosed() sq.Sqlizer {
	return sq.NotEq{"status": "closed"}
}

func encodeUpdates(u []domain.EntityUpdate) (string, error) {
	if u == nil {
		u = []domain.EntityUpdate{}
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return "", fmt.Errorf("marshal updates: %w", err)
	}
	return string(raw), nil
}
