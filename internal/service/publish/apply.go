package publish

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// run is the state shared by all items of one publish call.
type run struct {
	meeting *domain.Meeting
	cs      *domain.ProposedChangeSet
	actorID uuid.UUID
	now     time.Time
}

// change is what applying one proposal wrote.
type change struct {
	entityID uuid.UUID
	before   map[string]any
	after    map[string]any
	history  *domain.EntityUpdate
	doc      domain.SearchDocument
}

// applyItem writes one accepted proposal: the record, its narrative, its
// evidence rows and its audit entry, all in one transaction.
func (s *Service) applyItem(ctx context.Context, r *run, item domain.Proposal) (AppliedItem, error) {
	base := item.Base()
	kind := item.EntityType()
	embedding := s.embed(ctx, item)

	var ch change
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		switch p := item.(type) {
		case *domain.ActionItemProposal:
			ch, err = s.applyActionItem(txCtx, r, p, embedding)
		case *domain.DecisionProposal:
			ch, err = s.applyDecision(txCtx, r, p, embedding)
		case *domain.RiskProposal:
			ch, err = s.applyRisk(txCtx, r, p, embedding)
		default:
			err = fmt.Errorf("unsupported proposal %T", item)
		}
		if err != nil {
			return err
		}

		if ch.history != nil {
			if err := s.entities.AppendUpdate(txCtx, kind, ch.entityID, *ch.history); err != nil {
				return fmt.Errorf("append narrative: %w", err)
			}
		}

		if rows := evidenceRows(r, kind, ch.entityID, base.Evidence); len(rows) > 0 {
			if err := s.evidence.Create(txCtx, rows); err != nil {
				return fmt.Errorf("write evidence: %w", err)
			}
		}

		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			ActorID:    r.actorID,
			ProjectID:  r.meeting.ProjectID,
			EntityType: kind,
			EntityID:   ch.entityID,
			Action:     domain.AuditActionFor(base.Operation),
			Before:     ch.before,
			After:      ch.after,
			CreatedAt:  r.now,
		}); err != nil {
			return fmt.Errorf("audit log: %w", err)
		}
		return nil
	})
	if err != nil {
		return AppliedItem{}, fmt.Errorf("%s %s %q: %w", base.Operation, kind, base.TempID, err)
	}

	s.metrics.IncPublishedItem(kind.String(), base.Operation.String())
	s.index(ctx, ch.doc)

	return AppliedItem{
		TempID:           base.TempID,
		EntityType:       kind,
		Operation:        base.Operation,
		EntityID:         ch.entityID,
		WithoutEmbedding: embedding == nil,
	}, nil
}

// embed computes the item's vector. Failures are logged and yield nil so
// the item is still written.
func (s *Service) embed(ctx context.Context, item domain.Proposal) []float32 {
	if s.embedder == nil {
		return nil
	}
	text := item.EmbeddingText()
	if text == "" {
		return nil
	}

	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		s.metrics.IncEmbeddingFailure("publish")
		s.log.WarnContext(ctx, "embedding failed, continuing without vector",
			slog.String("entity_type", item.EntityType().String()),
			slog.String("temp_id", item.Base().TempID),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return vec
}

// index pushes the record to the search index. Failures are logged only.
func (s *Service) index(ctx context.Context, doc domain.SearchDocument) {
	if s.indexer == nil {
		return
	}
	if err := s.indexer.Index(ctx, doc); err != nil {
		s.log.WarnContext(ctx, "search indexing failed",
			slog.String("entity_type", doc.EntityType.String()),
			slog.String("entity_id", doc.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Service) narrator(r *run) narrative {
	return narrative{
		author:   s.cfg.NarratorName,
		quoteMax: s.cfg.NarrativeQuoteMax,
		meeting:  r.meeting,
		now:      r.now,
	}
}

func (s *Service) applyActionItem(ctx context.Context, r *run, p *domain.ActionItemProposal, embedding []float32) (change, error) {
	if p.Operation == domain.OperationCreate {
		a := &domain.ActionItem{
			ID:              uuid.New(),
			ProjectID:       r.meeting.ProjectID,
			Title:           strings.TrimSpace(p.Title),
			Description:     textOrNil(p.Description),
			Status:          orDefault(p.Status, domain.ActionItemStatusOpen),
			DueDate:         p.DueDate,
			Owner:           domain.PersonRefFrom(p.Owner),
			Embedding:       embedding,
			SourceMeetingID: &r.meeting.ID,
			Updates:         []domain.EntityUpdate{},
			CreatedAt:       r.now,
			UpdatedAt:       r.now,
		}
		if err := s.entities.CreateActionItem(ctx, a); err != nil {
			return change{}, fmt.Errorf("create action item: %w", err)
		}
		return change{entityID: a.ID, after: a.Snapshot(), doc: actionItemDoc(a)}, nil
	}

	cur, err := s.entities.GetActionItem(ctx, r.meeting.ProjectID, *p.ExternalID)
	if err != nil {
		return change{}, fmt.Errorf("get action item: %w", err)
	}
	next := *cur
	next.Embedding = embedding
	next.UpdatedAt = r.now

	var history domain.EntityUpdate
	if p.Operation == domain.OperationClose {
		next.Status = domain.ActionItemStatusClosed
		history = s.narrator(r).closed(p.FirstQuote())
	} else {
		next.Title = nonEmpty(p.Title, cur.Title)
		next.Description = orClear(p.Description, cur.Description)
		next.Status = orDefault(p.Status, cur.Status)
		next.DueDate = orKeep(p.DueDate, cur.DueDate)
		if p.Owner != nil {
			next.Owner = domain.PersonRefFrom(p.Owner)
		}

		var changes changeList
		changes.text("status", string(cur.Status), string(next.Status))
		changes.text("title", cur.Title, next.Title)
		changes.optText("description", cur.Description, next.Description)
		changes.date("due date", cur.DueDate, next.DueDate)
		changes.person("owner", cur.Owner, next.Owner)
		history = s.narrator(r).updated(changes, p.FirstQuote())
	}

	if err := s.entities.UpdateActionItem(ctx, &next); err != nil {
		return change{}, fmt.Errorf("update action item: %w", err)
	}
	return change{
		entityID: cur.ID,
		before:   cur.Snapshot(),
		after:    next.Snapshot(),
		history:  &history,
		doc:      actionItemDoc(&next),
	}, nil
}

func (s *Service) applyDecision(ctx context.Context, r *run, p *domain.DecisionProposal, embedding []float32) (change, error) {
	if p.Operation == domain.OperationCreate {
		d := &domain.Decision{
			ID:              uuid.New(),
			ProjectID:       r.meeting.ProjectID,
			Title:           strings.TrimSpace(p.Title),
			Rationale:       textOrNil(p.Rationale),
			Status:          orDefault(p.Status, domain.DecisionStatusActive),
			DecisionDate:    p.DecisionDate,
			DecisionMaker:   domain.PersonRefFrom(p.DecisionMaker),
			Embedding:       embedding,
			SourceMeetingID: &r.meeting.ID,
			Updates:         []domain.EntityUpdate{},
			CreatedAt:       r.now,
			UpdatedAt:       r.now,
		}
		if err := s.entities.CreateDecision(ctx, d); err != nil {
			return change{}, fmt.Errorf("create decision: %w", err)
		}
		return change{entityID: d.ID, after: d.Snapshot(), doc: decisionDoc(d)}, nil
	}

	cur, err := s.entities.GetDecision(ctx, r.meeting.ProjectID, *p.ExternalID)
	if err != nil {
		return change{}, fmt.Errorf("get decision: %w", err)
	}
	next := *cur
	next.Embedding = embedding
	next.UpdatedAt = r.now

	var history domain.EntityUpdate
	if p.Operation == domain.OperationClose {
		next.Status = domain.DecisionStatusClosed
		history = s.narrator(r).closed(p.FirstQuote())
	} else {
		next.Title = nonEmpty(p.Title, cur.Title)
		next.Rationale = orClear(p.Rationale, cur.Rationale)
		next.Status = orDefault(p.Status, cur.Status)
		next.DecisionDate = orKeep(p.DecisionDate, cur.DecisionDate)
		if p.DecisionMaker != nil {
			next.DecisionMaker = domain.PersonRefFrom(p.DecisionMaker)
		}

		var changes changeList
		changes.text("status", string(cur.Status), string(next.Status))
		changes.text("title", cur.Title, next.Title)
		changes.optText("rationale", cur.Rationale, next.Rationale)
		changes.date("decision date", cur.DecisionDate, next.DecisionDate)
		changes.person("decision maker", cur.DecisionMaker, next.DecisionMaker)
		history = s.narrator(r).updated(changes, p.FirstQuote())
	}

	if err := s.entities.UpdateDecision(ctx, &next); err != nil {
		return change{}, fmt.Errorf("update decision: %w", err)
	}
	return change{
		entityID: cur.ID,
		before:   cur.Snapshot(),
		after:    next.Snapshot(),
		history:  &history,
		doc:      decisionDoc(&next),
	}, nil
}

func (s *Service) applyRisk(ctx context.Context, r *run, p *domain.RiskProposal, embedding []float32) (change, error) {
	if p.Operation == domain.OperationCreate {
		rk := &domain.Risk{
			ID:              uuid.New(),
			ProjectID:       r.meeting.ProjectID,
			Title:           strings.TrimSpace(p.Title),
			Description:     textOrNil(p.Description),
			Status:          orDefault(p.Status, domain.RiskStatusOpen),
			Probability:     orDefault(p.Probability, domain.RiskLevelMedium),
			Impact:          orDefault(p.Impact, domain.RiskLevelMedium),
			Mitigation:      textOrNil(p.Mitigation),
			Owner:           domain.PersonRefFrom(p.Owner),
			Embedding:       embedding,
			SourceMeetingID: &r.meeting.ID,
			Updates:         []domain.EntityUpdate{},
			CreatedAt:       r.now,
			UpdatedAt:       r.now,
		}
		if err := s.entities.CreateRisk(ctx, rk); err != nil {
			return change{}, fmt.Errorf("create risk: %w", err)
		}
		return change{entityID: rk.ID, after: rk.Snapshot(), doc: riskDoc(rk)}, nil
	}

	cur, err := s.entities.GetRisk(ctx, r.meeting.ProjectID, *p.ExternalID)
	if err != nil {
		return change{}, fmt.Errorf("get risk: %w", err)
	}
	next := *cur
	next.Embedding = embedding
	next.UpdatedAt = r.now

	var history domain.EntityUpdate
	if p.Operation == domain.OperationClose {
		next.Status = domain.RiskStatusClosed
		history = s.narrator(r).closed(p.FirstQuote())
	} else {
		next.Title = nonEmpty(p.Title, cur.Title)
		next.Description = orClear(p.Description, cur.Description)
		next.Status = orDefault(p.Status, cur.Status)
		next.Probability = orDefault(p.Probability, cur.Probability)
		next.Impact = orDefault(p.Impact, cur.Impact)
		next.Mitigation = orClear(p.Mitigation, cur.Mitigation)
		if p.Owner != nil {
			next.Owner = domain.PersonRefFrom(p.Owner)
		}

		var changes changeList
		changes.text("status", string(cur.Status), string(next.Status))
		changes.text("title", cur.Title, next.Title)
		changes.optText("description", cur.Description, next.Description)
		changes.text("probability", string(cur.Probability), string(next.Probability))
		changes.text("impact", string(cur.Impact), string(next.Impact))
		changes.optText("mitigation", cur.Mitigation, next.Mitigation)
		changes.person("owner", cur.Owner, next.Owner)
		history = s.narrator(r).updated(changes, p.FirstQuote())
	}

	if err := s.entities.UpdateRisk(ctx, &next); err != nil {
		return change{}, fmt.Errorf("update risk: %w", err)
	}
	return change{
		entityID: cur.ID,
		before:   cur.Snapshot(),
		after:    next.Snapshot(),
		history:  &history,
		doc:      riskDoc(&next),
	}, nil
}

func evidenceRows(r *run, kind domain.EntityType, entityID uuid.UUID, quotes []domain.EvidenceQuote) []domain.Evidence {
	rows := make([]domain.Evidence, 0, len(quotes))
	for _, q := range quotes {
		if strings.TrimSpace(q.Quote) == "" {
			continue
		}
		rows = append(rows, domain.Evidence{
			ID:         uuid.New(),
			EntityType: kind,
			EntityID:   entityID,
			MeetingID:  r.meeting.ID,
			Quote:      q.Quote,
			Speaker:    q.Speaker,
			Timestamp:  q.Timestamp,
			CreatedAt:  r.now,
		})
	}
	return rows
}

func actionItemDoc(a *domain.ActionItem) domain.SearchDocument {
	return domain.SearchDocument{
		ID: a.ID, ProjectID: a.ProjectID, EntityType: domain.EntityTypeActionItem,
		Title: a.Title, Body: deref(a.Description), Status: string(a.Status),
		Owner: a.Owner.Label(), MeetingID: a.SourceMeetingID, UpdatedAt: a.UpdatedAt,
	}
}

func decisionDoc(d *domain.Decision) domain.SearchDocument {
	return domain.SearchDocument{
		ID: d.ID, ProjectID: d.ProjectID, EntityType: domain.EntityTypeDecision,
		Title: d.Title, Body: deref(d.Rationale), Status: string(d.Status),
		Owner: d.DecisionMaker.Label(), MeetingID: d.SourceMeetingID, UpdatedAt: d.UpdatedAt,
	}
}

func riskDoc(rk *domain.Risk) domain.SearchDocument {
	return domain.SearchDocument{
		ID: rk.ID, ProjectID: rk.ProjectID, EntityType: domain.EntityTypeRisk,
		Title: rk.Title, Body: deref(rk.Description), Status: string(rk.Status),
		Owner: rk.Owner.Label(), MeetingID: rk.SourceMeetingID, UpdatedAt: rk.UpdatedAt,
	}
}

func orDefault[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func orKeep[T any](p, cur *T) *T {
	if p == nil {
		return cur
	}
	return p
}

// orClear resolves an optional text field of an update: nil keeps cur and
// a blank value clears the field.
func orClear(p, cur *string) *string {
	if p == nil {
		return cur
	}
	return textOrNil(p)
}

func textOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	if t == "" {
		return nil
	}
	return &t
}

func nonEmpty(s, fallback string) string {
	if t := strings.TrimSpace(s); t != "" {
		return t
	}
	return fallback
}
