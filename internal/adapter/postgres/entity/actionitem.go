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

var actionItemColumns = []string{
	"id", "project_id", "title", "description", "status", "due_date",
	"owner_user_id", "owner_contact_id", "owner_name",
	"embedding", "source_meeting_id", "updates", "created_at", "updated_at",
}

// CreateActionItem inserts a new action item. Updates are stored as given.
func (r *Repo) CreateActionItem(ctx context.Context, a *domain.ActionItem) error {
	updates, err := encodeUpdates(a.Updates)
	if err != nil {
		return err
	}

	values := map[string]any{
		"id":                a.ID,
		"project_id":        a.ProjectID,
		"title":             a.Title,
		"description":       a.Description,
		"status":            string(a.Status),
		"due_date":          a.DueDate,
		"embedding":         a.Embedding,
		"source_meeting_id": a.SourceMeetingID,
		"updates":           updates,
		"created_at":        a.CreatedAt,
		"updated_at":        a.UpdatedAt,
	}
	for k, v := range personColumns("owner", a.Owner) {
		values[k] = v
	}

	query, args, err := postgres.Builder().Insert("action_items").SetMap(values).ToSql()
	if err != nil {
		return fmt.Errorf("build insert action item: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "action_item", a.ID)
	}
	return nil
}

// GetActionItem returns an action item scoped to the project.
// Returns domain.ErrNotFound when it does not exist in that project.
func (r *Repo) GetActionItem(ctx context.Context, projectID, id uuid.UUID) (*domain.ActionItem, error) {
	query, args, err := postgres.Builder().
		Select(actionItemColumns...).
		From("action_items").
		Where(sq.Eq{"id": id, "project_id": projectID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get action item: %w", err)
	}

	a, err := scanActionItem(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "action_item", id)
	}
	return a, nil
}

// UpdateActionItem overwrites the mutable fields. A nil embedding keeps the
// stored vector. The updates history is not touched; use AppendUpdate.
func (r *Repo) UpdateActionItem(ctx context.Context, a *domain.ActionItem) error {
	b := postgres.Builder().
		Update("action_items").
		Set("title", a.Title).
		Set("description", a.Description).
		Set("status", string(a.Status)).
		Set("due_date", a.DueDate).
		Set("updated_at", a.UpdatedAt).
		SetMap(personColumns("owner", a.Owner)).
		Where(sq.Eq{"id": a.ID, "project_id": a.ProjectID})
	if a.Embedding != nil {
		b = b.Set("embedding", a.Embedding)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build update action item: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "action_item", a.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("action_item %s: %w", a.ID, domain.ErrNotFound)
	}
	return nil
}

// ListOpenActionItems returns the project's non-closed action items, most
// recently updated first.
func (r *Repo) ListOpenActionItems(ctx context.Context, projectID uuid.UUID) ([]domain.ActionItem, error) {
	query, args, err := postgres.Builder().
		Select(actionItemColumns...).
		From("action_items").
		Where(sq.Eq{"project_id": projectID}).
		Where(notClosed()).
		OrderBy("updated_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list action items: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	defer rows.Close()

	out := []domain.ActionItem{}
	for rows.Next() {
		a, err := scanActionItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan action item: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list action items: %w", err)
	}
	return out, nil
}

func scanActionItem(row pgx.Row) (*domain.ActionItem, error) {
	var (
		a       domain.ActionItem
		status  string
		updates []byte
	)
	if err := row.Scan(
		&a.ID, &a.ProjectID, &a.Title, &a.Description, &status, &a.DueDate,
		&a.Owner.UserID, &a.Owner.ContactID, &a.Owner.Name,
		&a.Embedding, &a.SourceMeetingID, &updates, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}
	a.Status = domain.ActionItemStatus(status)

	var err error
	if a.Updates, err = decodeUpdates(updates); err != nil {
		return nil, err
	}
	return &a, nil
}
