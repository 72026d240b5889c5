package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres"
	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres/changeset"
	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres/entity"
	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres/evidence"
	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres/meeting"
	"github.com/heartmarshall/minutes-backend/internal/adapter/postgres/roster"
	"github.com/heartmarshall/minutes-backend/internal/adapter/provider/embedding"
	"github.com/heartmarshall/minutes-backend/internal/adapter/redis/embedcache"
	"github.com/heartmarshall/minutes-backend/internal/adapter/search"
	"github.com/heartmarshall/minutes-backend/internal/config"
	"github.com/heartmarshall/minutes-backend/internal/metrics"
	"github.com/heartmarshall/minutes-backend/internal/service/identity"
	"github.com/heartmarshall/minutes-backend/internal/service/lock"
	"github.com/heartmarshall/minutes-backend/internal/service/publish"
	"github.com/heartmarshall/minutes-backend/internal/service/relevance"
	"github.com/heartmarshall/minutes-backend/internal/service/review"
	"github.com/heartmarshall/minutes-backend/internal/transport/rest"
)

type embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// services holds the wired application layer.
type services struct {
	locks     *lock.Service
	review    *review.Service
	publish   *publish.Service
	relevance *relevance.Service

	redis *goredis.Client
	meili *search.Meili
}

// buildDeps constructs repositories, optional adapters and services. The
// returned cleanup closes the optional adapters.
func buildDeps(
	ctx context.Context,
	cfg *config.Config,
	pool *pgxpool.Pool,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*services, func(), error) {
	s := &services{}

	txm := postgres.NewTxManager(pool)
	meetings := meeting.New(pool)
	changeSets := changeset.New(pool)
	rosters := roster.New(pool)
	entities := entity.New(pool)
	evidenceRepo := evidence.New(pool)
	auditRepo := audit.New(pool)

	emb, err := s.buildEmbedder(ctx, cfg, m, logger)
	if err != nil {
		return nil, nil, err
	}

	scorer, err := identity.NewScorer(cfg.Identity.Scorer)
	if err != nil {
		s.close()
		return nil, nil, fmt.Errorf("identity scorer: %w", err)
	}
	resolver := identity.NewResolver(identity.Config{
		RoomKeywords:           cfg.Identity.RoomKeywords,
		FuzzyMaxDistance:       cfg.Identity.FuzzyMaxDistance,
		ConfirmationConfidence: cfg.Identity.ConfirmationConfidence,
		MaxCandidates:          cfg.Identity.MaxCandidates,
	}, scorer)

	s.locks = lock.NewService(logger, changeSets, m, cfg.Review.LockTimeout)
	s.review = review.NewService(logger, meetings, changeSets, rosters, s.locks, resolver, txm, m)

	deps := publish.Deps{
		Meetings:   meetings,
		ChangeSets: changeSets,
		Locks:      s.locks,
		Entities:   entities,
		Evidence:   evidenceRepo,
		Audit:      auditRepo,
		Embedder:   emb,
		Tx:         txm,
		Metrics:    m,
	}
	if cfg.Search.Enabled() {
		s.meili = search.NewMeili(cfg.Search.MeiliURL, cfg.Search.MeiliAPIKey, cfg.Search.IndexPrefix, logger)
		deps.Indexer = s.meili
	}
	s.publish = publish.NewService(logger, deps, publish.Config{
		NarrativeQuoteMax: cfg.Review.NarrativeQuoteMax,
		NarratorName:      cfg.Review.NarratorName,
	})

	s.relevance = relevance.NewService(logger, entities, emb, m, relevance.Config{
		Limit:              cfg.Relevance.Limit,
		MinSimilarity:      cfg.Relevance.MinSimilarity,
		MaxTranscriptChars: cfg.Relevance.MaxTranscriptChars,
	})

	return s, s.close, nil
}

// buildEmbedder returns nil when no embeddings endpoint is configured. With
// Redis configured the provider sits behind the vector cache.
func (s *services) buildEmbedder(ctx context.Context, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) (embedder, error) {
	if !cfg.Embedding.Enabled() {
		logger.Info("embeddings disabled, relevance falls back to recency")
		return nil, nil
	}

	provider := embedding.NewProvider(embedding.Config{
		BaseURL:       cfg.Embedding.BaseURL,
		APIKey:        cfg.Embedding.APIKey,
		Model:         cfg.Embedding.Model,
		Timeout:       cfg.Embedding.Timeout,
		MaxInputChars: cfg.Embedding.MaxInputChars,
	}, logger)

	if cfg.Redis.URL == "" {
		return provider, nil
	}

	client, err := embedcache.NewClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	s.redis = client

	return embedcache.New(client, provider, embedcache.Options{
		Prefix: cfg.Redis.KeyPrefix,
		Model:  provider.Model(),
		TTL:    cfg.Redis.EmbeddingTTL,
	}, m, logger), nil
}

func (s *services) health(db *pgxpool.Pool) *rest.HealthHandler {
	h := rest.NewHealthHandler(db, BuildVersion())
	if s.redis != nil {
		h.WithCheck("redis", func(ctx context.Context) error {
			return s.redis.Ping(ctx).Err()
		})
	}
	if s.meili != nil {
		h.WithCheck("search", func(context.Context) error {
			if !s.meili.Healthy() {
				return errors.New("meilisearch unhealthy")
			}
			return nil
		})
	}
	return h
}

func (s *services) close() {
	if s.meili != nil {
		s.meili.Close()
	}
	if s.redis != nil {
		_ = s.redis.Close()
	}
}
