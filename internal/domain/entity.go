package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonRef points a canonical record at its owner or decision maker.
// Name keeps the free-text reference when no member or contact backs it.
type PersonRef struct {
	UserID    *uuid.UUID `json:"userId,omitempty"`
	ContactID *uuid.UUID `json:"contactId,omitempty"`
	Name      *string    `json:"name,omitempty"`
}

// PersonRefFrom converts a resolved identity into a record reference.
// A nil identity yields an empty reference.
func PersonRefFrom(r *ResolvedIdentity) PersonRef {
	if r == nil {
		return PersonRef{}
	}
	ref := PersonRef{UserID: r.ResolvedUserID, ContactID: r.ResolvedContactID}
	if r.Name != "" {
		name := r.Name
		ref.Name = &name
	}
	return ref
}

// IsZero reports whether the reference points at nobody.
func (p PersonRef) IsZero() bool {
	return p.UserID == nil && p.ContactID == nil && p.Name == nil
}

// Equal compares references by backing record, falling back to name.
func (p PersonRef) Equal(o PersonRef) bool {
	if p.UserID != nil || o.UserID != nil {
		return p.UserID != nil && o.UserID != nil && *p.UserID == *o.UserID
	}
	if p.ContactID != nil || o.ContactID != nil {
		return p.ContactID != nil && o.ContactID != nil && *p.ContactID == *o.ContactID
	}
	return derefString(p.Name) == derefString(o.Name)
}

// Label is the human-readable form used in narratives.
func (p PersonRef) Label() string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	if p.IsZero() {
		return "unassigned"
	}
	return "a project member"
}

// EntityUpdate is one entry of a canonical record's append-only history.
type EntityUpdate struct {
	ID            uuid.UUID    `json:"id"`
	Content       string       `json:"content"`
	CreatedAt     time.Time    `json:"createdAt"`
	CreatedByName string       `json:"createdByName"`
	Source        UpdateSource `json:"source"`
	MeetingID     *uuid.UUID   `json:"meetingId,omitempty"`
	MeetingTitle  *string      `json:"meetingTitle,omitempty"`
	EvidenceQuote *string      `json:"evidenceQuote,omitempty"`
}

// ActionItem is a canonical project task.
type ActionItem struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	Title           string
	Description     *string
	Status          ActionItemStatus
	DueDate         *time.Time
	Owner           PersonRef
	Embedding       []float32
	SourceMeetingID *uuid.UUID
	Updates         []EntityUpdate
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Snapshot returns the audited fields of the action item.
func (a ActionItem) Snapshot() map[string]any {
	return map[string]any{
		"title":       a.Title,
		"description": a.Description,
		"status":      a.Status,
		"dueDate":     a.DueDate,
		"owner":       a.Owner,
	}
}

// Decision is a canonical project decision.
type Decision struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	Title           string
	Rationale       *string
	Status          DecisionStatus
	DecisionDate    *time.Time
	DecisionMaker   PersonRef
	Embedding       []float32
	SourceMeetingID *uuid.UUID
	Updates         []EntityUpdate
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Snapshot returns the audited fields of the decision.
func (d Decision) Snapshot() map[string]any {
	return map[string]any{
		"title":         d.Title,
		"rationale":     d.Rationale,
		"status":        d.Status,
		"decisionDate":  d.DecisionDate,
		"decisionMaker": d.DecisionMaker,
	}
}

// Risk is a canonical project risk.
type Risk struct {
	ID              uuid.UUID
	ProjectID       uuid.UUID
	Title           string
	Description     *string
	Status          RiskStatus
	Probability     RiskLevel
	Impact          RiskLevel
	Mitigation      *string
	Owner           PersonRef
	Embedding       []float32
	SourceMeetingID *uuid.UUID
	Updates         []EntityUpdate
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Snapshot returns the audited fields of the risk.
func (r Risk) Snapshot() map[string]any {
	return map[string]any{
		"title":       r.Title,
		"description": r.Description,
		"status":      r.Status,
		"probability": r.Probability,
		"impact":      r.Impact,
		"mitigation":  r.Mitigation,
		"owner":       r.Owner,
	}
}

// Evidence links a canonical record to the transcript quote that justified a change.
type Evidence struct {
	ID         uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	MeetingID  uuid.UUID
	Quote      string
	Speaker    string
	Timestamp  string
	CreatedAt  time.Time
}

// AuditRecord logs one mutation of a canonical record. Before is nil on create.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	ProjectID  uuid.UUID
	EntityType EntityType
	EntityID   uuid.UUID
	Action     AuditAction
	Before     map[string]any
	After      map[string]any
	CreatedAt  time.Time
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
