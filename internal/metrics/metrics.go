// Package metrics holds the Prometheus instruments of the review pipeline.
// All methods are nil-safe so components can run without metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for locking, publishing, identity
// resolution and embeddings.
type Metrics struct {
	// Lock operations by operation and outcome
	LockOperations *prometheus.CounterVec

	// Publish attempts by outcome
	PublishOutcomes *prometheus.CounterVec

	// Applied items by entity type and operation
	PublishedItems *prometheus.CounterVec

	// Full publish duration
	PublishLatency prometheus.Histogram

	// Identity resolutions by status
	Resolutions *prometheus.CounterVec

	// Embedding failures by caller
	EmbeddingFailures *prometheus.CounterVec

	// Embedding cache lookups by result
	EmbeddingCache *prometheus.CounterVec

	// Relevance selections by strategy
	RelevanceStrategy *prometheus.CounterVec
}

// New creates a Metrics instance registered with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		LockOperations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minutes_lock_operations_total",
			Help: "Change-set lock operations by operation and outcome",
		}, []string{"operation", "outcome"}), // operation: acquire, release, force_unlock

		PublishOutcomes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minutes_publish_outcomes_total",
			Help: "Publish attempts by outcome",
		}, []string{"outcome"}),

		PublishedItems: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minutes_published_items_total",
			Help: "Canonical records written by publish, by entity type and operation",
		}, []string{"entity_type", "operation"}),

		PublishLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "minutes_publish_duration_seconds",
			Help:    "Duration of a full publish including embeddings",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		Resolutions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minutes_identity_resolutions_total",
			Help: "Identity resolutions by resulting status",
		}, []string{"status"}),

		EmbeddingFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minutes_embedding_failures_total",
			Help: "Embedding calls that failed and degraded to no vector",
		}, []string{"caller"}), // caller: publish, relevance

		EmbeddingCache: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minutes_embedding_cache_total",
			Help: "Embedding cache lookups by result",
		}, []string{"result"}), // result: hit, miss, error

		RelevanceStrategy: f.NewCounterVec(prometheus.CounterOpts{
			Name: "minutes_relevance_selections_total",
			Help: "Relevance selections by strategy",
		}, []string{"strategy"}),
	}
}

// IncLock records a lock operation outcome.
func (m *Metrics) IncLock(operation, outcome string) {
	if m != nil {
		m.LockOperations.WithLabelValues(operation, outcome).Inc()
	}
}

// IncPublish records a publish outcome.
func (m *Metrics) IncPublish(outcome string) {
	if m != nil {
		m.PublishOutcomes.WithLabelValues(outcome).Inc()
	}
}

// IncPublishedItem records one applied canonical record.
func (m *Metrics) IncPublishedItem(entityType, operation string) {
	if m != nil {
		m.PublishedItems.WithLabelValues(entityType, operation).Inc()
	}
}

// ObservePublishLatency records the duration of a publish.
func (m *Metrics) ObservePublishLatency(d time.Duration) {
	if m != nil {
		m.PublishLatency.Observe(d.Seconds())
	}
}

// IncResolution records one identity resolution.
func (m *Metrics) IncResolution(status string) {
	if m != nil {
		m.Resolutions.WithLabelValues(status).Inc()
	}
}

// IncEmbeddingFailure records an embedding call that degraded.
func (m *Metrics) IncEmbeddingFailure(caller string) {
	if m != nil {
		m.EmbeddingFailures.WithLabelValues(caller).Inc()
	}
}

// IncEmbeddingCache records a cache lookup result.
func (m *Metrics) IncEmbeddingCache(result string) {
	if m != nil {
		m.EmbeddingCache.WithLabelValues(result).Inc()
	}
}

// IncRelevanceStrategy records which strategy a relevance selection used.
func (m *Metrics) IncRelevanceStrategy(strategy string) {
	if m != nil {
		m.RelevanceStrategy.WithLabelValues(strategy).Inc()
	}
}
