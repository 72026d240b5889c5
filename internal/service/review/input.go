package review

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

const (
	maxTitleLength = 500
	maxTextLength  = 5000
	maxNameLength  = 200
)

// CreateChangeSetInput is the extraction output for one meeting.
type CreateChangeSetInput struct {
	MeetingID uuid.UUID
	Items     domain.ProposedItems
}

// Validate checks all fields and collects all errors.
func (i CreateChangeSetInput) Validate() error {
	var errs []domain.FieldError

	if i.MeetingID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "meeting_id", Message: "required"})
	}

	seen := make(map[string]bool)
	for _, item := range i.Items.All() {
		base := item.Base()
		field := fmt.Sprintf("%s[%s]", item.EntityType(), base.TempID)

		if strings.TrimSpace(base.TempID) == "" {
			errs = append(errs, domain.FieldError{Field: string(item.EntityType()), Message: "temp_id required"})
			continue
		}
		key := string(item.EntityType()) + "/" + base.TempID
		if seen[key] {
			errs = append(errs, domain.FieldError{Field: field, Message: "duplicate temp_id"})
		}
		seen[key] = true

		if !base.Operation.IsValid() {
			errs = append(errs, domain.FieldError{Field: field + ".operation", Message: "must be create, update or close"})
		}
		if strings.TrimSpace(titleOf(item)) == "" {
			errs = append(errs, domain.FieldError{Field: field + ".title", Message: "required"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ItemRef addresses one proposal inside a change-set.
type ItemRef struct {
	ChangeSetID uuid.UUID
	EntityType  domain.EntityType
	TempID      string
}

func (r ItemRef) validate() []domain.FieldError {
	var errs []domain.FieldError
	if r.ChangeSetID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "change_set_id", Message: "required"})
	}
	if !r.EntityType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_type", Message: "must be action_item, decision or risk"})
	}
	if strings.TrimSpace(r.TempID) == "" {
		errs = append(errs, domain.FieldError{Field: "temp_id", Message: "required"})
	}
	return errs
}

// Validate checks all fields and collects all errors.
func (r ItemRef) Validate() error {
	if errs := r.validate(); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SetAcceptedInput marks a proposal accepted or rejected.
type SetAcceptedInput struct {
	ItemRef
	Accepted bool
}

// EditItemInput changes reviewable fields of a proposal. Nil fields are
// left as they are; an empty string clears an optional text field.
type EditItemInput struct {
	ItemRef
	Title        *string
	Description  *string // action items and risks
	Rationale    *string // decisions
	DueDate      *time.Time
	DecisionDate *time.Time
	Status       *string
	Probability  *string
	Impact       *string
	Mitigation   *string
}

// Validate checks all fields and collects all errors.
func (i EditItemInput) Validate() error {
	errs := i.ItemRef.validate()

	if i.Title == nil && i.Description == nil && i.Rationale == nil && i.DueDate == nil &&
		i.DecisionDate == nil && i.Status == nil && i.Probability == nil && i.Impact == nil && i.Mitigation == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}

	if i.Title != nil {
		title := strings.TrimSpace(*i.Title)
		if title == "" {
			errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
		}
		if len(title) > maxTitleLength {
			errs = append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)})
		}
	}
	for _, f := range []struct {
		name  string
		value *string
	}{{"description", i.Description}, {"rationale", i.Rationale}, {"mitigation", i.Mitigation}} {
		if f.value != nil && len(*f.value) > maxTextLength {
			errs = append(errs, domain.FieldError{Field: f.name, Message: fmt.Sprintf("max %d characters", maxTextLength)})
		}
	}

	kind := i.EntityType
	notFor := func(field string) {
		errs = append(errs, domain.FieldError{Field: field, Message: "not applicable to " + string(kind)})
	}
	if kind != domain.EntityTypeActionItem && i.DueDate != nil {
		notFor("due_date")
	}
	if kind == domain.EntityTypeDecision && i.Description != nil {
		notFor("description")
	}
	if kind != domain.EntityTypeDecision && i.Rationale != nil {
		notFor("rationale")
	}
	if kind != domain.EntityTypeDecision && i.DecisionDate != nil {
		notFor("decision_date")
	}
	if kind != domain.EntityTypeRisk && (i.Probability != nil || i.Impact != nil || i.Mitigation != nil) {
		notFor("probability, impact, mitigation")
	}

	if i.Status != nil && !validStatus(kind, *i.Status) {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid for " + string(kind)})
	}
	if i.Probability != nil && !domain.RiskLevel(*i.Probability).IsValid() {
		errs = append(errs, domain.FieldError{Field: "probability", Message: "must be low, medium or high"})
	}
	if i.Impact != nil && !domain.RiskLevel(*i.Impact).IsValid() {
		errs = append(errs, domain.FieldError{Field: "impact", Message: "must be low, medium or high"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveNameInput asks how a name would resolve against a project roster.
type ResolveNameInput struct {
	ProjectID uuid.UUID
	MeetingID *uuid.UUID
	Name      string
	Email     *string
}

// Validate checks all fields and collects all errors.
func (i ResolveNameInput) Validate() error {
	var errs []domain.FieldError
	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if len(i.Name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveManuallyInput points a proposal's person at a roster entry.
type ResolveManuallyInput struct {
	ItemRef
	Kind     domain.CandidateKind
	PersonID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ResolveManuallyInput) Validate() error {
	errs := i.ItemRef.validate()
	if i.Kind != domain.CandidateKindMember && i.Kind != domain.CandidateKindContact {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be member or contact"})
	}
	if i.PersonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "person_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddContactInput records the proposal's person as a new project contact.
// An empty Name falls back to the name found in the transcript.
type AddContactInput struct {
	ItemRef
	Name  string
	Email *string
}

// Validate checks all fields and collects all errors.
func (i AddContactInput) Validate() error {
	errs := i.ItemRef.validate()
	if len(strings.TrimSpace(i.Name)) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: fmt.Sprintf("max %d characters", maxNameLength)})
	}
	if i.Email != nil {
		email := strings.TrimSpace(*i.Email)
		if email != "" && !strings.Contains(email, "@") {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validStatus(kind domain.EntityType, status string) bool {
	switch kind {
	case domain.EntityTypeActionItem:
		return domain.ActionItemStatus(status).IsValid()
	case domain.EntityTypeDecision:
		return domain.DecisionStatus(status).IsValid()
	case domain.EntityTypeRisk:
		return domain.RiskStatus(status).IsValid()
	}
	return false
}

func titleOf(p domain.Proposal) string {
	switch v := p.(type) {
	case *domain.ActionItemProposal:
		return v.Title
	case *domain.DecisionProposal:
		return v.Title
	case *domain.RiskProposal:
		return v.Title
	}
	return ""
}
