package entity

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/domain"
)

var decisionColumns = []string{
	"id", "project_id", "title", "rationale", "status", "decision_date",
	"maker_user_id", "maker_contact_id", "maker_name",
	"embedding", "source_meeting_id", "updates", "created_at", "updated_at",
}

// CreateDecision inserts a new decision.
func (r *Repo) CreateDecision(ctx context.Context, d *domain.Decision) error {
	updates, err := encodeUpdates(d.Updates)
	if err != nil {
		return err
	}

	values := map[string]any{
		"id":                d.ID,
		"project_id":        d.ProjectID,
		"title":             d.Title,
		"rationale":         d.Rationale,
		"status":            string(d.Status),
		"decision_date":     d.DecisionDate,
		"embedding":         d.Embedding,
		"source_meeting_id": d.SourceMeetingID,
		"updates":           updates,
		"created_at":        d.CreatedAt,
		"updated_at":        d.UpdatedAt,
	}
	for k, v := range personColumns("maker", d.DecisionMaker) {
		values[k] = v
	}

	query, args, err := postgres.Builder().Insert("decisions").SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("build insert decision: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "decision", d.ID)
	}
	return nil
}

// GetDecision returns a decision scoped to the project.
func (r *Repo) GetDecision(ctx context.Context, projectID, id uuid.UUID) (*domain.Decision, error) {
	query, args, err := postgres.Builder().
		Select(decisionColumns...).
		From("decisions").
		Where(sq.Eq{"id": id, "project_id": projectID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get decision: %w", err)
	}

	d, err := scanDecision(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "decision", id)
	}
	return d, nil
}

// UpdateDecision overwrites the mutable fields. A nil embedding keeps the stored vector.
func (r *Repo) UpdateDecision(ctx context.Context, d *domain.Decision) error {
	b := postgres.Builder().
		Update("decisions").
		Set("title", d.Title).
		Set("rationale", d.Rationale).
		Set("status", string(d.Status)).
		Set("decision_date", d.DecisionDate).
		Set("updated_at", d.UpdatedAt).
		SetMap(personColumns("maker", d.DecisionMaker)).
		Where(sq.Eq{"id": d.ID, "project_id": d.ProjectID})
	if d.Embedding != nil {
		b = b.Set("embedding", d.Embedding)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update decision: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "decision", d.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("decision %s: %w", d.ID, domain.ErrNotFound)
	}
	return nil
}

// ListOpenDecisions returns the project's non-closed decisions, most recently
// updated first.
func (r *Repo) ListOpenDecisions(ctx context.Context, projectID uuid.UUID) ([]domain.Decision, error) {
	query, args, err := postgres.Builder().
		Select(decisionColumns...).
		From("decisions").
		Where(sq.Eq{"project_id": projectID}).
		Where(notClosed()).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decisions: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	defer rows.Close()

	out := []domain.Decision{}
	for rows.Next() {
		d, err := scanDecision(rows)
		if err != nil {
			return nil, fmt.Errorf("scan decision: %w", err)
		}
		out = append(out, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list decisions: %w", err)
	}
	return out, nil
}

func scanDecision(row pgx.Row) (*domain.Decision, error) {
	var (
		d       domain.Decision
		status  string
		updates []byte
	)
	if err := row.Scan(
		&d.ID, &d.ProjectID, &d.Title, &d.Rationale, &status, &d.DecisionDate,
		&d.DecisionMaker.UserID, &d.DecisionMaker.ContactID, &d.DecisionMaker.Name,
		&d.Embedding, &d.SourceMeetingID, &updates, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Status = domain.DecisionStatus(status)

	var err error
	if d.Updates, err = decodeUpdates(updates); err != nil {
		return nil, err
	}
	return &d, nil
}
