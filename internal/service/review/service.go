// Package review prepares extracted meeting proposals for publishing: it
// stores the change-set with resolved identities and applies reviewer edits
// under the change-set lock.
package review

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/metrics"
)

type meetingRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to domain.MeetingStatus) error
}

type changeSetRepo interface {
	Create(ctx context.Context, cs *domain.ProposedChangeSet) error
	GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*domain.ProposedChangeSet, error)
	SaveItems(ctx context.Context, id, actor uuid.UUID, items domain.ProposedItems, now, staleBefore time.Time) (bool, error)
}

type rosterRepo interface {
	Snapshot(ctx context.Context, projectID uuid.UUID, meetingID *uuid.UUID) (domain.Roster, error)
	CreateContact(ctx context.Context, c domain.Contact) error
}

type lockManager interface {
	RequireHeld(ctx context.Context, changeSetID, actorID uuid.UUID) (*domain.ProposedChangeSet, error)
	Window() (now, staleBefore time.Time)
	Status(cs *domain.ProposedChangeSet) domain.LockStatus
}

type nameResolver interface {
	Resolve(name string, email *string, roster domain.Roster) domain.ResolvedIdentity
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides change-set review operations.
type Service struct {
	meetings   meetingRepo
	changeSets changeSetRepo
	roster     rosterRepo
	locks      lockManager
	resolver   nameResolver
	tx         txManager
	metrics    *metrics.Metrics
	log        *slog.Logger
}

// NewService creates a new review service.
func NewService(
	log *slog.Logger,
	meetings meetingRepo,
	changeSets changeSetRepo,
	roster rosterRepo,
	locks lockManager,
	resolver nameResolver,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		meetings:   meetings,
		changeSets: changeSets,
		roster:     roster,
		locks:      locks,
		resolver:   resolver,
		tx:         tx,
		metrics:    m,
		log:        log.With("service", "review"),
	}
}

// ChangeSetView is a change-set together with what a reviewer needs to act on it.
type ChangeSetView struct {
	ChangeSet *domain.ProposedChangeSet
	Lock      domain.LockStatus
	Blocking  []domain.BlockedItem
}
