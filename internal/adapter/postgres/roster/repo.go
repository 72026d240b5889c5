// Package roster loads the people a free-text name can resolve to: project
// members, external contacts and the attendees of a meeting.
package roster

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Repo provides roster reads and contact writes backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new roster repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const (
	listMembersSQL = `
SELECT user_id, name, email FROM project_members
WHERE project_id = $1
ORDER BY name, user_id`

	listContactsSQL = `
SELECT id, project_id, name, email FROM project_contacts
WHERE project_id = $1
ORDER BY name, id`

	listAttendeesSQL = `
SELECT name, email FROM meeting_attendees
WHERE meeting_id = $1
ORDER BY position`

	insertContactSQL = `
INSERT INTO project_contacts (id, project_id, name, email)
VALUES ($1, $2, $3, $4)`
)

// Snapshot builds an immutable roster for the project. Attendees are only
// loaded when meetingID is non-nil.
func (r *Repo) Snapshot(ctx context.Context, projectID uuid.UUID, meetingID *uuid.UUID) (domain.Roster, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	members, err := r.listMembers(ctx, q, projectID)
	if err != nil {
		return domain.Roster{}, err
	}

	contacts, err := r.listContacts(ctx, q, projectID)
	if err != nil {
		return domain.Roster{}, err
	}

	var attendees []domain.Attendee
	if meetingID != nil {
		if attendees, err = r.listAttendees(ctx, q, *meetingID); err != nil {
			return domain.Roster{}, err
		}
	}

	return domain.NewRoster(members, contacts, attendees), nil
}

// CreateContact inserts an external contact.
// Returns domain.ErrAlreadyExists when the email is already used in the project.
func (r *Repo) CreateContact(ctx context.Context, c domain.Contact) error {
	_, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, insertContactSQL, c.ID, c.ProjectID, c.Name, c.Email)
	if err != nil {
		return postgres.MapError(err, "contact", c.ID)
	}
	return nil
}

func (r *Repo) listMembers(ctx context.Context, q postgres.Querier, projectID uuid.UUID) ([]domain.Member, error) {
	rows, err := q.Query(ctx, listMembersSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.UserID, &m.Name, &m.Email); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *Repo) listContacts(ctx context.Context, q postgres.Querier, projectID uuid.UUID) ([]domain.Contact, error) {
	rows, err := q.Query(ctx, listContactsSQL, projectID)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []domain.Contact
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Name, &c.Email); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *Repo) listAttendees(ctx context.Context, q postgres.Querier, meetingID uuid.UUID) ([]domain.Attendee, error) {
	rows, err := q.Query(ctx, listAttendeesSQL, meetingID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var out []domain.Attendee
	for rows.Next() {
		var a domain.Attendee
		if err := rows.Scan(&a.Name, &a.Email); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
