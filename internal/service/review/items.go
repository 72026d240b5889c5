package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/pkg/ctxutil"
)

// SetAccepted marks a proposal accepted or rejected for publishing.
func (s *Service) SetAccepted(ctx context.Context, input SetAcceptedInput) (*ChangeSetView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, input.ItemRef, func(_ context.Context, _ *domain.ProposedChangeSet, item domain.Proposal) error {
		item.Base().Accepted = input.Accepted
		return nil
	})
}

// EditItem changes the reviewable fields of a proposal.
func (s *Service) EditItem(ctx context.Context, input EditItemInput) (*ChangeSetView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, input.ItemRef, func(_ context.Context, _ *domain.ProposedChangeSet, item domain.Proposal) error {
		switch p := item.(type) {
		case *domain.ActionItemProposal:
			applyTitle(&p.Title, input.Title)
			applyText(&p.Description, input.Description)
			if input.DueDate != nil {
				due := input.DueDate.UTC()
				p.DueDate = &due
			}
			if input.Status != nil {
				st := domain.ActionItemStatus(*input.Status)
				p.Status = &st
			}
		case *domain.DecisionProposal:
			applyTitle(&p.Title, input.Title)
			applyText(&p.Rationale, input.Rationale)
			if input.DecisionDate != nil {
				date := input.DecisionDate.UTC()
				p.DecisionDate = &date
			}
			if input.Status != nil {
				st := domain.DecisionStatus(*input.Status)
				p.Status = &st
			}
		case *domain.RiskProposal:
			applyTitle(&p.Title, input.Title)
			applyText(&p.Description, input.Description)
			applyText(&p.Mitigation, input.Mitigation)
			if input.Probability != nil {
				lvl := domain.RiskLevel(*input.Probability)
				p.Probability = &lvl
			}
			if input.Impact != nil {
				lvl := domain.RiskLevel(*input.Impact)
				p.Impact = &lvl
			}
			if input.Status != nil {
				st := domain.RiskStatus(*input.Status)
				p.Status = &st
			}
		default:
			return fmt.Errorf("unsupported proposal %T: %w", item, domain.ErrValidation)
		}
		return nil
	})
}

// mutate applies fn to one proposal and persists the items while the
// caller's lock is still live. fn and the save share one transaction, so
// rows fn writes are rolled back when the lock turns out to be lost. Each
// successful save extends the lock.
func (s *Service) mutate(
	ctx context.Context,
	ref ItemRef,
	fn func(ctx context.Context, cs *domain.ProposedChangeSet, item domain.Proposal) error,
) (*ChangeSetView, error) {
	actorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	cs, err := s.locks.RequireHeld(ctx, ref.ChangeSetID, actorID)
	if err != nil {
		return nil, err
	}

	meeting, err := s.meetings.GetByID(ctx, cs.MeetingID)
	if err != nil {
		return nil, fmt.Errorf("get meeting: %w", err)
	}
	if !meeting.IsReviewable() {
		return nil, fmt.Errorf("meeting %s is %s: %w", meeting.ID, meeting.Status, domain.ErrInvalidState)
	}

	item, ok := cs.Items.Find(ref.EntityType, ref.TempID)
	if !ok {
		return nil, fmt.Errorf("%s %q: %w", ref.EntityType, ref.TempID, domain.ErrNotFound)
	}

	now, staleBefore := s.locks.Window()
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := fn(txCtx, cs, item); err != nil {
			return err
		}

		saved, err := s.changeSets.SaveItems(txCtx, cs.ID, actorID, cs.Items, now, staleBefore)
		if err != nil {
			return fmt.Errorf("save items: %w", err)
		}
		if !saved {
			// Lost the lock between the check and the write.
			if _, err := s.locks.RequireHeld(txCtx, cs.ID, actorID); err != nil {
				return err
			}
			return fmt.Errorf("save items: %w", domain.ErrLockConflict)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	cs.LockedAt = &now
	cs.UpdatedAt = now

	s.log.InfoContext(ctx, "proposal updated",
		slog.String("change_set_id", cs.ID.String()),
		slog.String("entity_type", ref.EntityType.String()),
		slog.String("temp_id", ref.TempID),
		slog.String("actor_id", actorID.String()),
	)

	return s.view(cs), nil
}

func applyTitle(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

// applyText sets an optional text field. A blank value is kept as "" rather
// than nil so that publishing an update clears the record's field.
func applyText(dst **string, v *string) {
	if v == nil {
		return
	}
	trimmed := strings.TrimSpace(*v)
	*dst = &trimmed
}
