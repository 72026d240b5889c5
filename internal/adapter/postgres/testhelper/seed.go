package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProject creates an empty project and returns its ID.
func SeedProject(t *testing.T, pool *pgxpool.Pool) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO projects (id, name) VALUES ($1, $2)`,
		id, "Project "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProject: %v", err)
	}
	return id
}

// SeedMember adds a member with the given name to the project. The email is
// derived from the name and made unique.
func SeedMember(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, name string) domain.Member {
	t.Helper()

	m := domain.Member{
		UserID: uuid.New(),
		Name:   name,
		Email:  "member-" + uniqueSuffix() + "@example.com",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO project_members (project_id, user_id, name, email) VALUES ($1, $2, $3, $4)`,
		projectID, m.UserID, m.Name, m.Email,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMember: %v", err)
	}
	return m
}

// SeedContact adds an external contact without an email to the project.
func SeedContact(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, name string) domain.Contact {
	t.Helper()

	c := domain.Contact{ID: uuid.New(), ProjectID: projectID, Name: name}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO project_contacts (id, project_id, name) VALUES ($1, $2, $3)`,
		c.ID, c.ProjectID, c.Name,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}
	return c
}

// SeedMeeting creates a meeting in the given status with the listed attendees.
func SeedMeeting(t *testing.T, pool *pgxpool.Pool, projectID uuid.UUID, status domain.MeetingStatus, attendees ...domain.Attendee) domain.Meeting {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	m := domain.Meeting{
		ID:        uuid.New(),
		ProjectID: projectID,
		Title:     "Weekly sync " + uniqueSuffix(),
		Status:    status,
		HeldAt:    &now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO meetings (id, project_id, title, status, held_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ProjectID, m.Title, string(m.Status), m.HeldAt, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedMeeting: %v", err)
	}

	for i, a := range attendees {
		_, err := pool.Exec(ctx,
			`INSERT INTO meeting_attendees (meeting_id, position, name, email) VALUES ($1, $2, $3, $4)`,
			m.ID, i, a.Name, a.Email,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedMeeting attendee %d: %v", i, err)
		}
	}

	return m
}
