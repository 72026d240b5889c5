// Package publish applies a reviewed change-set to the project's canonical
// records.
//
// Publishing is best-effort across items: each accepted item is written in
// its own transaction, in a fixed order, and a datastore failure stops the
// loop without undoing items already written.
package publish

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
	MarkPublished(ctx context.Context, id, actorID uuid.UUID, at time.Time) error
}

type changeSetRepo interface {
	GetByMeetingID(ctx context.Context, meetingID uuid.UUID) (*domain.ProposedChangeSet, error)
}

type lockManager interface {
	ClaimForPublish(ctx context.Context, changeSetID, actorID uuid.UUID, expectedVersion int64) (*domain.ProposedChangeSet, error)
	AbortPublish(ctx context.Context, changeSetID, actorID uuid.UUID) error
	Release(ctx context.Context, changeSetID, actorID uuid.UUID) error
}

type entityRepo interface {
	CreateActionItem(ctx context.Context, a *domain.ActionItem) error
	GetActionItem(ctx context.Context, projectID, id uuid.UUID) (*domain.ActionItem, error)
	UpdateActionItem(ctx context.Context, a *domain.ActionItem) error

	CreateDecision(ctx context.Context, d *domain.Decision) error
	GetDecision(ctx context.Context, projectID, id uuid.UUID) (*domain.Decision, error)
	UpdateDecision(ctx context.Context, d *domain.Decision) error

	CreateRisk(ctx context.Context, rk *domain.Risk) error
	GetRisk(ctx context.Context, projectID, id uuid.UUID) (*domain.Risk, error)
	UpdateRisk(ctx context.Context, rk *domain.Risk) error

	AppendUpdate(ctx context.Context, kind domain.EntityType, id uuid.UUID, u domain.EntityUpdate) error
}

type evidenceRepo interface {
	Create(ctx context.Context, rows []domain.Evidence) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

type searchIndexer interface {
	Index(ctx context.Context, doc domain.SearchDocument) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config tunes narrative generation.
type Config struct {
	// NarrativeQuoteMax caps the evidence quote embedded in narratives, in runes.
	NarrativeQuoteMax int
	// NarratorName is the author shown on generated narratives.
	NarratorName string
}

const (
	defaultNarrativeQuoteMax = 300
	defaultNarratorName      = "Meeting Processing"
)

// Deps groups the collaborators of the publish service. Embedder and
// Indexer are optional.
type Deps struct {
	Meetings   meetingRepo
	ChangeSets changeSetRepo
	Locks      lockManager
	Entities   entityRepo
	Evidence   evidenceRepo
	Audit      auditLogger
	Embedder   embedder
	Indexer    searchIndexer
	Tx         txManager
	Metrics    *metrics.Metrics
}

// Service publishes reviewed change-sets.
type Service struct {
	meetings   meetingRepo
	changeSets changeSetRepo
	locks      lockManager
	entities   entityRepo
	evidence   evidenceRepo
	audit      auditLogger
	embedder   embedder
	indexer    searchIndexer
	tx         txManager
	metrics    *metrics.Metrics
	cfg        Config
	clock      func() time.Time
	log        *slog.Logger
}

// NewService creates a new publish service.
func NewService(log *slog.Logger, deps Deps, cfg Config) *Service {
	if cfg.NarrativeQuoteMax <= 0 {
		cfg.NarrativeQuoteMax = defaultNarrativeQuoteMax
	}
	if cfg.NarratorName == "" {
		cfg.NarratorName = defaultNarratorName
	}
	return &Service{
		meetings:   deps.Meetings,
		changeSets: deps.ChangeSets,
		locks:      deps.Locks,
		entities:   deps.Entities,
		evidence:   deps.Evidence,
		audit:      deps.Audit,
		embedder:   deps.Embedder,
		indexer:    deps.Indexer,
		tx:         deps.Tx,
		metrics:    deps.Metrics,
		cfg:        cfg,
		clock:      func() time.Time { return time.Now().UTC() },
		log:        log.With("service", "publish"),
	}
}
