package relevance

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// Select returns the project's open records that best match the transcript.
// Projects within the limit get everything; larger ones are ranked by
// embedding similarity and topped up by recency, or by recency alone when
// the transcript cannot be embedded.
func (s *Service) Select(ctx context.Context, input SelectInput) (*Selection, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	limit := s.cfg.Limit
	if input.Limit > 0 {
		limit = input.Limit
	}

	items, err := s.loadOpen(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	sel := &Selection{Total: len(items)}
	switch {
	case len(items) <= limit:
		sel.Strategy = StrategyAll
		sel.Items = items
	default:
		query := s.embedTranscript(ctx, input.Transcript)
		if query == nil {
			sel.Strategy = StrategyRecency
			sel.Items = byRecency(items)[:limit]
		} else {
			sel.Strategy = StrategySemantic
			sel.Items = s.rank(items, query, limit)
		}
	}

	s.metrics.IncRelevanceStrategy(string(sel.Strategy))
	s.log.DebugContext(ctx, "relevant items selected",
		slog.String("project_id", input.ProjectID.String()),
		slog.String("strategy", string(sel.Strategy)),
		slog.Int("total", sel.Total),
		slog.Int("selected", len(sel.Items)),
	)

	return sel, nil
}

// loadOpen fetches the three open lists concurrently. The result is ordered
// action items, decisions, risks, each most recently updated first.
func (s *Service) loadOpen(ctx context.Context, projectID uuid.UUID) ([]Item, error) {
	var (
		actionItems []domain.ActionItem
		decisions   []domain.Decision
		risks       []domain.Risk
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		actionItems, err = s.entities.ListOpenActionItems(gctx, projectID)
		if err != nil {
			return fmt.Errorf("list action items: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		decisions, err = s.entities.ListOpenDecisions(gctx, projectID)
		if err != nil {
			return fmt.Errorf("list decisions: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		risks, err = s.entities.ListOpenRisks(gctx, projectID)
		if err != nil {
			return fmt.Errorf("list risks: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	items := make([]Item, 0, len(actionItems)+len(decisions)+len(risks))
	for _, a := range actionItems {
		items = append(items, Item{
			EntityType: domain.EntityTypeActionItem, ID: a.ID, Title: a.Title,
			Body: deref(a.Description), Status: string(a.Status), Owner: ownerLabel(a.Owner),
			UpdatedAt: a.UpdatedAt, embedding: a.Embedding,
		})
	}
	for _, d := range decisions {
		items = append(items, Item{
			EntityType: domain.EntityTypeDecision, ID: d.ID, Title: d.Title,
			Body: deref(d.Rationale), Status: string(d.Status), Owner: ownerLabel(d.DecisionMaker),
			UpdatedAt: d.UpdatedAt, embedding: d.Embedding,
		})
	}
	for _, rk := range risks {
		items = append(items, Item{
			EntityType: domain.EntityTypeRisk, ID: rk.ID, Title: rk.Title,
			Body: deref(rk.Description), Status: string(rk.Status), Owner: ownerLabel(rk.Owner),
			UpdatedAt: rk.UpdatedAt, embedding: rk.Embedding,
		})
	}
	return items, nil
}

func (s *Service) embedTranscript(ctx context.Context, transcript string) []float32 {
	if s.embedder == nil {
		return nil
	}
	vec, err := s.embedder.Embed(ctx, truncateRunes(transcript, s.cfg.MaxTranscriptChars))
	if err != nil {
		s.metrics.IncEmbeddingFailure("relevance")
		s.log.WarnContext(ctx, "transcript embedding failed, falling back to recency",
			slog.String("error", err.Error()))
		return nil
	}
	if len(vec) == 0 {
		return nil
	}
	return vec
}

// rank keeps embedded items whose similarity clears the threshold, best
// first, and fills the rest of the limit with the most recent leftovers.
func (s *Service) rank(items []Item, query []float32, limit int) []Item {
	var matched, rest []Item
	for _, it := range items {
		sim, ok := cosine(query, it.embedding)
		if ok && sim >= s.cfg.MinSimilarity {
			it.Similarity = &sim
			matched = append(matched, it)
			continue
		}
		rest = append(rest, it)
	}

	slices.SortFunc(matched, func(a, b Item) int {
		if c := cmp.Compare(*b.Similarity, *a.Similarity); c != 0 {
			return c
		}
		return compareID(a, b)
	})
	if len(matched) >= limit {
		return matched[:limit]
	}

	out := make([]Item, 0, limit)
	out = append(out, matched...)
	rest = byRecency(rest)
	return append(out, rest[:min(limit-len(out), len(rest))]...)
}

func byRecency(items []Item) []Item {
	out := slices.Clone(items)
	slices.SortFunc(out, func(a, b Item) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return compareID(a, b)
	})
	return out
}

func compareID(a, b Item) int {
	return cmp.Compare(a.ID.String(), b.ID.String())
}

func truncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}

func ownerLabel(p domain.PersonRef) string {
	if p.IsZero() {
		return ""
	}
	return p.Label()
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
