package lock

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/pkg/ctxutil"
)

// Acquire takes or renews the lock for actor.
//
// The current holder always succeeds, and so does anyone when the lock is
// free or expired. Otherwise nothing is written and a
// *domain.LockConflictError is returned; expectedVersion is compared with
// the stored version to tell the caller whether its view was outdated.
func (s *Service) Acquire(ctx context.Context, changeSetID, actorID uuid.UUID, expectedVersion int64) (*domain.ProposedChangeSet, error) {
	now, staleBefore := s.Window()

	cs, err := s.repo.TryAcquire(ctx, changeSetID, actorID, now, staleBefore)
	if err != nil {
		s.metrics.IncLock("acquire", "error")
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if cs != nil {
		s.metrics.IncLock("acquire", "acquired")
		s.log.InfoContext(ctx, "change set locked",
			slog.String("change_set_id", changeSetID.String()),
			slog.String("actor_id", actorID.String()),
			slog.Int64("version", cs.LockVersion),
		)
		return cs, nil
	}

	current, err := s.repo.GetByID(ctx, changeSetID)
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	s.metrics.IncLock("acquire", "conflict")
	conflict := s.conflict(current, expectedVersion)
	s.log.InfoContext(ctx, "lock conflict",
		slog.String("change_set_id", changeSetID.String()),
		slog.String("actor_id", actorID.String()),
		slog.Int64("expected_version", expectedVersion),
		slog.Int64("current_version", current.LockVersion),
	)
	return nil, conflict
}

// ClaimForPublish takes the lock for a publish run. It succeeds only when
// the stored version still equals expectedVersion, the lock is held by actor
// or free or expired, and no other publish is in flight. Of two publishes
// that read the same change-set at most one gets the claim.
func (s *Service) ClaimForPublish(ctx context.Context, changeSetID, actorID uuid.UUID, expectedVersion int64) (*domain.ProposedChangeSet, error) {
	now, staleBefore := s.Window()

	cs, err := s.repo.ClaimForPublish(ctx, changeSetID, actorID, expectedVersion, now, staleBefore)
	if err != nil {
		s.metrics.IncLock("claim_publish", "error")
		return nil, fmt.Errorf("claim for publish: %w", err)
	}
	if cs != nil {
		s.metrics.IncLock("claim_publish", "claimed")
		return cs, nil
	}

	current, err := s.repo.GetByID(ctx, changeSetID)
	if err != nil {
		return nil, fmt.Errorf("claim for publish: %w", err)
	}

	s.metrics.IncLock("claim_publish", "conflict")
	conflict := s.conflict(current, expectedVersion)
	s.log.InfoContext(ctx, "publish claim refused",
		slog.String("change_set_id", changeSetID.String()),
		slog.String("actor_id", actorID.String()),
		slog.Int64("expected_version", expectedVersion),
		slog.Int64("current_version", current.LockVersion),
		slog.Bool("publishing", conflict.Publishing),
	)
	return nil, conflict
}

// AbortPublish drops actor's publish claim after a failed run. The lock
// stays with actor so the reviewer can fix the change-set and retry.
func (s *Service) AbortPublish(ctx context.Context, changeSetID, actorID uuid.UUID) error {
	now, _ := s.Window()

	if _, err := s.repo.AbortPublish(ctx, changeSetID, actorID, now); err != nil {
		s.metrics.IncLock("abort_publish", "error")
		return fmt.Errorf("abort publish: %w", err)
	}
	s.metrics.IncLock("abort_publish", "aborted")
	return nil
}

// Release clears the lock if actor holds it. It is a no-op for anyone else;
// only datastore failures are returned.
func (s *Service) Release(ctx context.Context, changeSetID, actorID uuid.UUID) error {
	now, _ := s.Window()

	released, err := s.repo.Release(ctx, changeSetID, actorID, now)
	if err != nil {
		s.metrics.IncLock("release", "error")
		return fmt.Errorf("release lock: %w", err)
	}

	if !released {
		s.metrics.IncLock("release", "noop")
		s.log.DebugContext(ctx, "release ignored, actor is not the holder",
			slog.String("change_set_id", changeSetID.String()),
			slog.String("actor_id", actorID.String()),
		)
		return nil
	}

	s.metrics.IncLock("release", "released")
	s.log.InfoContext(ctx, "change set unlocked",
		slog.String("change_set_id", changeSetID.String()),
		slog.String("actor_id", actorID.String()),
	)
	return nil
}

// ForceUnlock clears the lock regardless of the holder. Only admins may call it.
func (s *Service) ForceUnlock(ctx context.Context, changeSetID, actorID uuid.UUID) (*domain.ProposedChangeSet, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		s.metrics.IncLock("force_unlock", "forbidden")
		return nil, domain.ErrForbidden
	}

	now, _ := s.Window()
	cs, err := s.repo.ForceRelease(ctx, changeSetID, now)
	if err != nil {
		s.metrics.IncLock("force_unlock", "error")
		return nil, fmt.Errorf("force unlock: %w", err)
	}

	s.metrics.IncLock("force_unlock", "released")
	s.log.WarnContext(ctx, "change set force-unlocked",
		slog.String("change_set_id", changeSetID.String()),
		slog.String("actor_id", actorID.String()),
	)
	return cs, nil
}

// RequireHeld loads the change-set and checks that actor holds a live lock
// and that no publish of it is in flight.
func (s *Service) RequireHeld(ctx context.Context, changeSetID, actorID uuid.UUID) (*domain.ProposedChangeSet, error) {
	cs, err := s.repo.GetByID(ctx, changeSetID)
	if err != nil {
		return nil, fmt.Errorf("load change set: %w", err)
	}

	now, _ := s.Window()
	if !cs.IsHeldBy(actorID, now, s.timeout) || cs.IsPublishing(now, s.timeout) {
		return nil, s.conflict(cs, cs.LockVersion)
	}
	return cs, nil
}

func (s *Service) conflict(cs *domain.ProposedChangeSet, expectedVersion int64) *domain.LockConflictError {
	now, _ := s.Window()
	return &domain.LockConflictError{
		ChangeSetID:     cs.ID,
		HolderID:        cs.LockedBy,
		LockedAt:        cs.LockedAt,
		ExpectedVersion: expectedVersion,
		CurrentVersion:  cs.LockVersion,
		StaleVersion:    expectedVersion != cs.LockVersion,
		HolderStale:     cs.LockedBy != nil && cs.IsLockExpired(now, s.timeout),
		Publishing:      cs.IsPublishing(now, s.timeout),
	}
}
