package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// CreateChangeSet stores the extraction output of a processed meeting.
// Every proposed owner and decision maker is resolved against the roster
// snapshot, and the meeting moves from processing to review.
func (s *Service) CreateChangeSet(ctx context.Context, input CreateChangeSetInput) (*domain.ProposedChangeSet, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	meeting, err := s.meetings.GetByID(ctx, input.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if meeting.IsDeleted() || meeting.Status != domain.MeetingStatusProcessing {
		return nil, fmt.Errorf("meeting %s is %s: %w", meeting.ID, meeting.Status, domain.ErrInvalidState)
	}

	roster, err := s.roster.Snapshot(ctx, meeting.ProjectID, &meeting.ID)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}

	items := input.Items
	for _, item := range items.All() {
		person := item.Person()
		if person == nil {
			continue
		}
		resolved := s.resolver.Resolve(person.Name, person.Email, roster)
		s.metrics.IncResolution(resolved.Status.String())
		item.SetPerson(&resolved)
	}

	now := time.Now().UTC()
	cs := &domain.ProposedChangeSet{
		ID:        uuid.New(),
		MeetingID: meeting.ID,
		ProjectID: meeting.ProjectID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.changeSets.Create(txCtx, cs); err != nil {
			return fmt.Errorf("create change set: %w", err)
		}
		if err := s.meetings.TransitionStatus(txCtx, meeting.ID, domain.MeetingStatusProcessing, domain.MeetingStatusReview); err != nil {
			return fmt.Errorf("move meeting to review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "change set created",
		slog.String("meeting_id", meeting.ID.String()),
		slog.String("change_set_id", cs.ID.String()),
		slog.Int("items", len(items.All())),
		slog.Int("blocking", len(items.BlockingItems())),
	)

	return cs, nil
}

// GetChangeSet returns the meeting's change-set with its lock view and the
// accepted items that currently block publishing.
func (s *Service) GetChangeSet(ctx context.Context, meetingID uuid.UUID) (*ChangeSetView, error) {
	cs, err := s.changeSets.GetByMeetingID(ctx, meetingID)
	if err != nil {
		return nil, fmt.Errorf("get change set: %w", err)
	}
	return s.view(cs), nil
}

// ResolveName runs identity resolution against a fresh roster snapshot.
func (s *Service) ResolveName(ctx context.Context, input ResolveNameInput) (domain.ResolvedIdentity, error) {
	if err := input.Validate(); err != nil {
		return domain.ResolvedIdentity{}, err
	}

	roster, err := s.roster.Snapshot(ctx, input.ProjectID, input.MeetingID)
	if err != nil {
		return domain.ResolvedIdentity{}, fmt.Errorf("load roster: %w", err)
	}

	resolved := s.resolver.Resolve(input.Name, input.Email, roster)
	s.metrics.IncResolution(resolved.Status.String())
	return resolved, nil
}

func (s *Service) view(cs *domain.ProposedChangeSet) *ChangeSetView {
	return &ChangeSetView{
		ChangeSet: cs,
		Lock:      s.locks.Status(cs),
		Blocking:  cs.Items.BlockingItems(),
	}
}
