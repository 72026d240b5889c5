// Package search indexes published canonical records in Meilisearch.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	meili "github.com/meilisearch/meilisearch-go"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

const (
	recordsIndex        = "records"
	defaultHealthPeriod = 10 * time.Second
)

// Meili writes records to a single Meilisearch index filterable by
// project, entity type and status.
type Meili struct {
	client  meili.ServiceManager
	uid     string
	log     *slog.Logger
	healthy atomic.Bool
	done    chan struct{}
	period  time.Duration
}

// NewMeili connects to Meilisearch and configures the index. An unreachable
// server is not an error: the indexer starts unhealthy and recovers in the
// background.
func NewMeili(url, apiKey, indexPrefix string, logger *slog.Logger) *Meili {
	return newMeili(meili.New(url, meili.WithAPIKey(apiKey)), indexPrefix, logger, defaultHealthPeriod)
}

func newMeili(client meili.ServiceManager, indexPrefix string, logger *slog.Logger, period time.Duration) *Meili {
	m := &Meili{
		client: client,
		uid:    indexPrefix + recordsIndex,
		log:    logger.With("adapter", "meilisearch"),
		done:   make(chan struct{}),
		period: period,
	}

	if _, err := client.Health(); err != nil {
		m.log.Warn("meilisearch unavailable", slog.String("error", err.Error()))
	} else {
		m.healthy.Store(true)
		m.configureIndex()
	}

	go m.healthLoop()
	return m
}

func (m *Meili) configureIndex() {
	if _, err := m.client.CreateIndex(&meili.IndexConfig{Uid: m.uid, PrimaryKey: "id"}); err != nil {
		m.log.Debug("create index (may already exist)", slog.String("index", m.uid), slog.String("error", err.Error()))
	}

	index := m.client.Index(m.uid)
	filterable := []interface{}{"projectId", "entityType", "status", "meetingId"}
	if _, err := index.UpdateFilterableAttributes(&filterable); err != nil {
		m.log.Warn("update filterable attributes", slog.String("index", m.uid), slog.String("error", err.Error()))
	}
	searchable := []string{"title", "body", "owner"}
	if _, err := index.UpdateSearchableAttributes(&searchable); err != nil {
		m.log.Warn("update searchable attributes", slog.String("index", m.uid), slog.String("error", err.Error()))
	}
}

func (m *Meili) healthLoop() {
	ticker := time.NewTicker(m.period)
	defer ticker.Stop()
	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			_, err := m.client.Health()
			wasHealthy := m.healthy.Load()
			m.healthy.Store(err == nil)
			if err == nil && !wasHealthy {
				m.log.Info("meilisearch recovered, reconfiguring index")
				m.configureIndex()
			}
		}
	}
}

// Close stops the background health monitor.
func (m *Meili) Close() {
	close(m.done)
}

// Healthy reports whether Meilisearch is reachable.
func (m *Meili) Healthy() bool {
	return m.healthy.Load()
}

// record is the indexed shape of a canonical entity.
type record struct {
	ID         string `json:"id"`
	ProjectID  string `json:"projectId"`
	EntityType string `json:"entityType"`
	Title      string `json:"title"`
	Body       string `json:"body,omitempty"`
	Status     string `json:"status"`
	Owner      string `json:"owner,omitempty"`
	MeetingID  string `json:"meetingId,omitempty"`
	UpdatedAt  int64  `json:"updatedAt"`
}

func toRecord(doc domain.SearchDocument) record {
	r := record{
		ID:         doc.ID.String(),
		ProjectID:  doc.ProjectID.String(),
		EntityType: doc.EntityType.String(),
		Title:      doc.Title,
		Body:       doc.Body,
		Status:     doc.Status,
		Owner:      doc.Owner,
		UpdatedAt:  doc.UpdatedAt.Unix(),
	}
	if doc.MeetingID != nil {
		r.MeetingID = doc.MeetingID.String()
	}
	return r
}

// Index adds or replaces the record in the search index. Indexing is
// asynchronous on the Meilisearch side; a nil error means the task was
// enqueued.
func (m *Meili) Index(ctx context.Context, doc domain.SearchDocument) error {
	if !m.healthy.Load() {
		return fmt.Errorf("meilisearch unhealthy")
	}
	if _, err := m.client.Index(m.uid).AddDocumentsWithContext(ctx, []record{toRecord(doc)}, nil); err != nil {
		return fmt.Errorf("meilisearch add document: %w", err)
	}
	return nil
}
