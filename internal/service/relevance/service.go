// Package relevance picks which existing open records are shown to the
// extraction step for a new transcript.
package relevance

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/metrics"
)

type entityRepo interface {
	ListOpenActionItems(ctx context.Context, projectID uuid.UUID) ([]domain.ActionItem, error)
	ListOpenDecisions(ctx context.Context, projectID uuid.UUID) ([]domain.Decision, error)
	ListOpenRisks(ctx context.Context, projectID uuid.UUID) ([]domain.Risk, error)
}

type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Config tunes selection.
type Config struct {
	Limit              int
	MinSimilarity      float64
	MaxTranscriptChars int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Limit:              40,
		MinSimilarity:      0.25,
		MaxTranscriptChars: 8000,
	}
}

// Service implements relevance selection.
type Service struct {
	log      *slog.Logger
	entities entityRepo
	embedder embedder
	metrics  *metrics.Metrics
	cfg      Config
}

// NewService creates a relevance service. embedder may be nil, in which case
// oversized projects always fall back to recency.
func NewService(log *slog.Logger, entities entityRepo, emb embedder, m *metrics.Metrics, cfg Config) *Service {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultConfig().Limit
	}
	if cfg.MaxTranscriptChars <= 0 {
		cfg.MaxTranscriptChars = DefaultConfig().MaxTranscriptChars
	}
	return &Service{
		log:      log.With("service", "relevance"),
		entities: entities,
		embedder: emb,
		metrics:  m,
		cfg:      cfg,
	}
}

// Strategy names how a selection was made.
type Strategy string

const (
	StrategyAll      Strategy = "all"
	StrategyRecency  Strategy = "recency"
	StrategySemantic Strategy = "semantic"
)

// Item is one open record offered to the extraction step.
type Item struct {
	EntityType domain.EntityType `json:"entityType"`
	ID         uuid.UUID         `json:"id"`
	Title      string            `json:"title"`
	Body       string            `json:"body,omitempty"`
	Status     string            `json:"status"`
	Owner      string            `json:"owner,omitempty"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	// Similarity is set only for items picked by the semantic ranking.
	Similarity *float64 `json:"similarity,omitempty"`

	embedding []float32
}

// Selection is the result of Select.
type Selection struct {
	Strategy Strategy `json:"strategy"`
	// Total is the number of open records the project has.
	Total int    `json:"total"`
	Items []Item `json:"items"`
}
