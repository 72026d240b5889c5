package domain

// Operation is what a proposal asks the publisher to do with a canonical record.
type Operation string

const (
	OperationCreate Operation = "create"
	OperationUpdate Operation = "update"
	OperationClose  Operation = "close"
)

func (o Operation) String() string { return string(o) }

func (o Operation) IsValid() bool {
	switch o {
	case OperationCreate, OperationUpdate, OperationClose:
		return true
	}
	return false
}

// RequiresExternalID reports whether the operation targets an existing record.
func (o Operation) RequiresExternalID() bool {
	return o == OperationUpdate || o == OperationClose
}

// ResolutionStatus grades how confidently a free-text name was matched to a person.
type ResolutionStatus string

const (
	ResolutionResolved          ResolutionStatus = "resolved"
	ResolutionNeedsConfirmation ResolutionStatus = "needs_confirmation"
	ResolutionAmbiguous         ResolutionStatus = "ambiguous"
	ResolutionConferenceRoom    ResolutionStatus = "conference_room"
	ResolutionUnknown           ResolutionStatus = "unknown"
	ResolutionPlaceholder       ResolutionStatus = "placeholder"
)

func (s ResolutionStatus) String() string { return string(s) }

func (s ResolutionStatus) IsValid() bool {
	switch s {
	case ResolutionResolved, ResolutionNeedsConfirmation, ResolutionAmbiguous,
		ResolutionConferenceRoom, ResolutionUnknown, ResolutionPlaceholder:
		return true
	}
	return false
}

// BlocksPublish reports whether an accepted item with this status must be
// handled by a reviewer before publishing.
func (s ResolutionStatus) BlocksPublish() bool {
	return s == ResolutionAmbiguous || s == ResolutionConferenceRoom
}

// EntityType identifies the kind of canonical entity (used in evidence and audit logs).
type EntityType string

const (
	EntityTypeActionItem EntityType = "action_item"
	EntityTypeDecision   EntityType = "decision"
	EntityTypeRisk       EntityType = "risk"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeActionItem, EntityTypeDecision, EntityTypeRisk:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionClose  AuditAction = "close"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionClose:
		return true
	}
	return false
}

// AuditActionFor maps a proposal operation to its audit action.
func AuditActionFor(op Operation) AuditAction {
	switch op {
	case OperationUpdate:
		return AuditActionUpdate
	case OperationClose:
		return AuditActionClose
	default:
		return AuditActionCreate
	}
}

// UpdateSource says who authored an entity update.
type UpdateSource string

const (
	UpdateSourceHuman               UpdateSource = "human"
	UpdateSourceAIMeetingProcessing UpdateSource = "ai_meeting_processing"
)

func (s UpdateSource) String() string { return string(s) }

// MeetingStatus is the processing state of a meeting.
type MeetingStatus string

const (
	MeetingStatusProcessing MeetingStatus = "processing"
	MeetingStatusReview     MeetingStatus = "review"
	MeetingStatusPublished  MeetingStatus = "published"
	MeetingStatusFailed     MeetingStatus = "failed"
)

func (s MeetingStatus) String() string { return string(s) }

func (s MeetingStatus) IsValid() bool {
	switch s {
	case MeetingStatusProcessing, MeetingStatusReview, MeetingStatusPublished, MeetingStatusFailed:
		return true
	}
	return false
}

// ActionItemStatus is the lifecycle state of an action item.
type ActionItemStatus string

const (
	ActionItemStatusOpen       ActionItemStatus = "open"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusBlocked    ActionItemStatus = "blocked"
	ActionItemStatusClosed     ActionItemStatus = "closed"
)

func (s ActionItemStatus) String() string { return string(s) }

func (s ActionItemStatus) IsValid() bool {
	switch s {
	case ActionItemStatusOpen, ActionItemStatusInProgress, ActionItemStatusBlocked, ActionItemStatusClosed:
		return true
	}
	return false
}

// DecisionStatus is the lifecycle state of a decision.
type DecisionStatus string

const (
	DecisionStatusActive     DecisionStatus = "active"
	DecisionStatusSuperseded DecisionStatus = "superseded"
	DecisionStatusClosed     DecisionStatus = "closed"
)

func (s DecisionStatus) String() string { return string(s) }

func (s DecisionStatus) IsValid() bool {
	switch s {
	case DecisionStatusActive, DecisionStatusSuperseded, DecisionStatusClosed:
		return true
	}
	return false
}

// RiskStatus is the lifecycle state of a risk.
type RiskStatus string

const (
	RiskStatusOpen      RiskStatus = "open"
	RiskStatusMitigated RiskStatus = "mitigated"
	RiskStatusClosed    RiskStatus = "closed"
)

func (s RiskStatus) String() string { return string(s) }

func (s RiskStatus) IsValid() bool {
	switch s {
	case RiskStatusOpen, RiskStatusMitigated, RiskStatusClosed:
		return true
	}
	return false
}

// RiskLevel grades probability and impact.
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

func (l RiskLevel) String() string { return string(l) }

func (l RiskLevel) IsValid() bool {
	switch l {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// CandidateKind says which roster a candidate came from.
type CandidateKind string

const (
	CandidateKindMember  CandidateKind = "member"
	CandidateKindContact CandidateKind = "contact"
)
