// Package lock arbitrates which reviewer may edit or publish a meeting's
// change-set. The lock version stored on the change-set is the single
// serialization point; every mutation is one conditional UPDATE.
//
// A lock is free, held, or expired. Anyone may take a free or expired lock;
// the version a reviewer read only matters for explaining a refusal. A
// publish run additionally claims the change-set with a strict version
// compare-and-swap, which the holder is not exempt from.
package lock

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/metrics"
)

type changeSetRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ProposedChangeSet, error)
	TryAcquire(ctx context.Context, id, actor uuid.UUID, now, staleBefore time.Time) (*domain.ProposedChangeSet, error)
	ClaimForPublish(ctx context.Context, id, actor uuid.UUID, expectedVersion int64, now, staleBefore time.Time) (*domain.ProposedChangeSet, error)
	AbortPublish(ctx context.Context, id, actor uuid.UUID, now time.Time) (bool, error)
	Release(ctx context.Context, id, actor uuid.UUID, now time.Time) (bool, error)
	ForceRelease(ctx context.Context, id uuid.UUID, now time.Time) (*domain.ProposedChangeSet, error)
}

// Service provides lock operations on proposed change-sets.
type Service struct {
	repo    changeSetRepo
	timeout time.Duration
	metrics *metrics.Metrics
	clock   func() time.Time
	log     *slog.Logger
}

// NewService creates a new lock service. A non-positive timeout falls back
// to domain.DefaultLockTimeout.
func NewService(
	log *slog.Logger,
	repo changeSetRepo,
	m *metrics.Metrics,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = domain.DefaultLockTimeout
	}
	return &Service{
		repo:    repo,
		timeout: timeout,
		metrics: m,
		clock:   func() time.Time { return time.Now().UTC() },
		log:     log.With("service", "lock"),
	}
}

// Window returns the current time and the cutoff before which a lock's
// last activity counts as expired.
func (s *Service) Window() (now, staleBefore time.Time) {
	now = s.clock()
	return now, now.Add(-s.timeout)
}

// Status returns the lock view of cs at the current time.
func (s *Service) Status(cs *domain.ProposedChangeSet) domain.LockStatus {
	return cs.LockStatusAt(s.clock(), s.timeout)
}
