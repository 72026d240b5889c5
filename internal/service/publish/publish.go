package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Publish applies every accepted proposal of the meeting's change-set.
//
// Preconditions are checked in order and each failure has its own Kind.
// The change-set is then claimed with the version read at the start. The
// claim is a strict compare-and-swap that also marks the change-set as
// publishing, so of two concurrent publishes only one gets past that point
// and the other writes nothing. On success the meeting is marked published
// and the actor's lock is released; on failure the claim is dropped and the
// lock kept.
func (s *Service) Publish(ctx context.Context, meetingID, actorID uuid.UUID) (*Result, error) {
	start := s.clock()
	result, err := s.publish(ctx, meetingID, actorID)

	outcome := "published"
	var perr *Error
	if errors.As(err, &perr) {
		outcome = string(perr.Kind)
	} else if err != nil {
		outcome = "error"
	}
	s.metrics.IncPublish(outcome)
	s.metrics.ObservePublishLatency(s.clock().Sub(start))

	return result, err
}

func (s *Service) publish(ctx context.Context, meetingID, actorID uuid.UUID) (*Result, error) {
	meeting, err := s.meetings.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, newError(KindMeetingNotFound, meetingID, err)
		}
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if !meeting.IsReviewable() {
		return nil, newError(KindMeetingNotReviewable, meetingID,
			fmt.Errorf("meeting is %s: %w", meeting.Status, domain.ErrInvalidState))
	}

	cs, err := s.changeSets.GetByMeetingID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, newError(KindChangeSetMissing, meetingID, err)
		}
		return nil, fmt.Errorf("get change set: %w", err)
	}

	if err := s.validateItems(ctx, cs); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return nil, newError(KindInvalidItem, meetingID, err)
		}
		return nil, fmt.Errorf("validate items: %w", err)
	}

	if blocked := cs.Items.BlockingItems(); len(blocked) > 0 {
		e := newError(KindIdentityBlocked, meetingID, domain.ErrPublishBlocked)
		e.Blocked = blocked
		return nil, e
	}

	if _, err := s.locks.ClaimForPublish(ctx, cs.ID, actorID, cs.LockVersion); err != nil {
		if errors.Is(err, domain.ErrLockConflict) {
			return nil, newError(KindLockConflict, meetingID, err)
		}
		return nil, fmt.Errorf("claim change set: %w", err)
	}

	run := &run{
		meeting: meeting,
		cs:      cs,
		actorID: actorID,
		now:     s.clock(),
	}
	result := &Result{MeetingID: meeting.ID, ChangeSetID: cs.ID}

	for _, item := range cs.Items.All() {
		if !item.Base().Accepted {
			result.Skipped++
			continue
		}
		applied, err := s.applyItem(ctx, run, item)
		if err != nil {
			e := newError(KindApplyFailed, meetingID, err)
			e.Applied = len(result.Items)
			s.log.ErrorContext(ctx, "publish stopped",
				slog.String("meeting_id", meetingID.String()),
				slog.String("entity_type", item.EntityType().String()),
				slog.String("temp_id", item.Base().TempID),
				slog.Int("applied", e.Applied),
				slog.String("error", err.Error()),
			)
			s.abort(ctx, cs.ID, actorID)
			return nil, e
		}
		result.Items = append(result.Items, applied)
	}

	if err := s.meetings.MarkPublished(ctx, meeting.ID, actorID, run.now); err != nil {
		e := newError(KindApplyFailed, meetingID, fmt.Errorf("mark published: %w", err))
		e.Applied = len(result.Items)
		s.abort(ctx, cs.ID, actorID)
		return nil, e
	}
	result.PublishedAt = run.now

	if err := s.locks.Release(ctx, cs.ID, actorID); err != nil {
		// The lock expires on its own; the publish itself succeeded.
		s.log.WarnContext(ctx, "release lock after publish",
			slog.String("change_set_id", cs.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	s.log.InfoContext(ctx, "meeting published",
		slog.String("meeting_id", meeting.ID.String()),
		slog.String("actor_id", actorID.String()),
		slog.Int("created", result.Count(domain.OperationCreate)),
		slog.Int("updated", result.Count(domain.OperationUpdate)),
		slog.Int("closed", result.Count(domain.OperationClose)),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}

// abort drops the publish claim after a failed run. A claim that cannot be
// dropped lapses with the lock timeout.
func (s *Service) abort(ctx context.Context, changeSetID, actorID uuid.UUID) {
	if err := s.locks.AbortPublish(ctx, changeSetID, actorID); err != nil {
		s.log.WarnContext(ctx, "drop publish claim",
			slog.String("change_set_id", changeSetID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// validateItems checks that accepted update and close proposals point at
// an existing record of the change-set's project.
func (s *Service) validateItems(ctx context.Context, cs *domain.ProposedChangeSet) error {
	var errs []domain.FieldError

	for _, item := range cs.Items.Accepted() {
		base := item.Base()
		field := fmt.Sprintf("%s[%s]", item.EntityType(), base.TempID)

		if !base.Operation.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".operation", Message: "must be create, update or close"})
			continue
		}
		if !base.Operation.RequiresExternalID() {
			continue
		}
		if base.ExternalID == nil {
			errs = append(errs, domain.FieldError{Field: field + ".externalId", Message: "required for " + base.Operation.String()})
			continue
		}

		if err := s.checkExists(ctx, item.EntityType(), cs.ProjectID, *base.ExternalID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return err
			}
			errs = append(errs, domain.FieldError{Field: field + ".externalId", Message: "no such record in project"})
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (s *Service) checkExists(ctx context.Context, kind domain.EntityType, projectID, id uuid.UUID) error {
	var err error
	switch kind {
	case domain.EntityTypeActionItem:
		_, err = s.entities.GetActionItem(ctx, projectID, id)
	case domain.EntityTypeDecision:
		_, err = s.entities.GetDecision(ctx, projectID, id)
	case domain.EntityTypeRisk:
		_, err = s.entities.GetRisk(ctx, projectID, id)
	default:
		return fmt.Errorf("entity type %q: %w", kind, domain.ErrNotFound)
	}
	return err
}
