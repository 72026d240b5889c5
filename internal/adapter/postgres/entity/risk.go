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

var riskColumns = []string{
	"id", "project_id", "title", "description", "status", "probability", "impact", "mitigation",
	"owner_user_id", "owner_contact_id", "owner_name",
	"embedding", "source_meeting_id", "updates", "created_at", "updated_at",
}

// CreateRisk inserts a new risk.
func (r *Repo) CreateRisk(ctx context.Context, rk *domain.Risk) error {
	updates, err := encodeUpdates(rk.Updates)
	if err != nil {
		return err
	}

	values := map[string]any{
		"id":                rk.ID,
		"project_id":        rk.ProjectID,
		"title":             rk.Title,
		"description":       rk.Description,
		"status":            string(rk.Status),
		"probability":       string(rk.Probability),
		"impact":            string(rk.Impact),
		"mitigation":        rk.Mitigation,
		"embedding":         rk.Embedding,
		"source_meeting_id": rk.SourceMeetingID,
		"updates":           updates,
		"created_at":        rk.CreatedAt,
		"updated_at":        rk.UpdatedAt,
	}
	for k, v := range personColumns("owner", rk.Owner) {
		values[k] = v
	}

	query, args, err := postgres.Builder().Insert("risks").SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("build insert risk: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "risk", rk.ID)
	}
	return nil
}

// GetRisk returns a risk scoped to the project.
func (r *Repo) GetRisk(ctx context.Context, projectID, id uuid.UUID) (*domain.Risk, error) {
	query, args, err := postgres.Builder().
		Select(riskColumns...).
		From("risks").
		Where(sq.Eq{"id": id, "project_id": projectID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get risk: %w", err)
	}

	rk, err := scanRisk(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "risk", id)
	}
	return rk, nil
}

// UpdateRisk overwrites the mutable fields. A nil embedding keeps the stored vector.
func (r *Repo) UpdateRisk(ctx context.Context, rk *domain.Risk) error {
	b := postgres.Builder().
		Update("risks").
		Set("title", rk.Title).
		Set("description", rk.Description).
		Set("status", string(rk.Status)).
		Set("probability", string(rk.Probability)).
		Set("impact", string(rk.Impact)).
		Set("mitigation", rk.Mitigation).
		Set("updated_at", rk.UpdatedAt).
		SetMap(personColumns("owner", rk.Owner)).
		Where(sq.Eq{"id": rk.ID, "project_id": rk.ProjectID})
	if rk.Embedding != nil {
		b = b.Set("embedding", rk.Embedding)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update risk: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "risk", rk.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("risk %s: %w", rk.ID, domain.ErrNotFound)
	}
	return nil
}

// ListOpenRisks returns the project's non-closed risks, most recently updated first.
func (r *Repo) ListOpenRisks(ctx context.Context, projectID uuid.UUID) ([]domain.Risk, error) {
	query, args, err := postgres.Builder().
		Select(riskColumns...).
		From("risks").
		Where(sq.Eq{"project_id": projectID}).
		Where(notClosed()).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list risks: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	defer rows.Close()

	out := []domain.Risk{}
	for rows.Next() {
		rk, err := scanRisk(rows)
		if err != nil {
			return nil, fmt.Errorf("scan risk: %w", err)
		}
		out = append(out, *rk)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list risks: %w", err)
	}
	return out, nil
}

func scanRisk(row pgx.Row) (*domain.Risk, error) {
	var (
		rk                   domain.Risk
		status, prob, impact string
		updates              []byte
	)
	if err := row.Scan(
		&rk.ID, &rk.ProjectID, &rk.Title, &rk.Description, &status, &prob, &impact, &rk.Mitigation,
		&rk.Owner.UserID, &rk.Owner.ContactID, &rk.Owner.Name,
		&rk.Embedding, &rk.SourceMeetingID, &updates, &rk.CreatedAt, &rk.UpdatedAt,
	); err != nil {
		return nil, err
	}
	rk.Status = domain.RiskStatus(status)
	rk.Probability = domain.RiskLevel(prob)
	rk.Impact = domain.RiskLevel(impact)

	var err error
	if rk.Updates, err = decodeUpdates(updates); err != nil {
		return nil, err
	}
	return &rk, nil
}
