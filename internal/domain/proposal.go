package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EvidenceQuote is a transcript excerpt supporting a proposal.
type EvidenceQuote struct {
	Quote     string `json:"quote"`
	Speaker   string `json:"speaker,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ProposalBase holds the fields every proposal kind shares.
type ProposalBase struct {
	TempID     string          `json:"tempId"`
	Operation  Operation       `json:"operation"`
	ExternalID *uuid.UUID      `json:"externalId,omitempty"`
	Accepted   bool            `json:"accepted"`
	Evidence   []EvidenceQuote `json:"evidence,omitempty"`
}

// FirstQuote returns the first evidence quote, or "" if there is none.
func (b *ProposalBase) FirstQuote() string {
	if len(b.Evidence) == 0 {
		return ""
	}
	return b.Evidence[0].Quote
}

// Proposal is one candidate change extracted from a meeting. The concrete
// type is one of *ActionItemProposal, *DecisionProposal or *RiskProposal.
type Proposal interface {
	Base() *ProposalBase
	EntityType() EntityType
	// Person returns the owner or decision maker, nil if none was proposed.
	Person() *ResolvedIdentity
	SetPerson(*ResolvedIdentity)
	// EmbeddingText is the text used to compute the item's semantic vector.
	EmbeddingText() string
}

// ActionItemProposal proposes a change to an action item.
type ActionItemProposal struct {
	ProposalBase
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	DueDate     *time.Time        `json:"dueDate,omitempty"`
	Status      *ActionItemStatus `json:"status,omitempty"`
	Owner       *ResolvedIdentity `json:"owner,omitempty"`
}

func (p *ActionItemProposal) Base() *ProposalBase { return &p.ProposalBase }
func (p *ActionItemProposal) EntityType() EntityType { return EntityTypeActionItem }
func (p *ActionItemProposal) Person() *ResolvedIdentity { return p.Owner }
func (p *ActionItemProposal) SetPerson(r *ResolvedIdentity) { p.Owner = r }
func (p *ActionItemProposal) EmbeddingText() string { return joinText(p.Title, p.Description) }

// DecisionProposal proposes a change to a decision.
type DecisionProposal struct {
	ProposalBase
	Title         string            `json:"title"`
	Rationale     *string           `json:"rationale,omitempty"`
	DecisionDate  *time.Time        `json:"decisionDate,omitempty"`
	Status        *DecisionStatus   `json:"status,omitempty"`
	DecisionMaker *ResolvedIdentity `json:"decisionMaker,omitempty"`
}

func (p *DecisionProposal) Base() *ProposalBase { return &p.ProposalBase }
func (p *DecisionProposal) EntityType() EntityType { return EntityTypeDecision }
func (p *DecisionProposal) Person() *ResolvedIdentity { return p.DecisionMaker }
func (p *DecisionProposal) SetPerson(r *ResolvedIdentity) { p.DecisionMaker = r }
func (p *DecisionProposal) EmbeddingText() string { return joinText(p.Title, p.Rationale) }

// RiskProposal proposes a change to a risk.
type RiskProposal struct {
	ProposalBase
	Title       string            `json:"title"`
	Description *string           `json:"description,omitempty"`
	Probability *RiskLevel        `json:"probability,omitempty"`
	Impact      *RiskLevel        `json:"impact,omitempty"`
	Mitigation  *string           `json:"mitigation,omitempty"`
	Status      *RiskStatus       `json:"status,omitempty"`
	Owner       *ResolvedIdentity `json:"owner,omitempty"`
}

func (p *RiskProposal) Base() *ProposalBase { return &p.ProposalBase }
func (p *RiskProposal) EntityType() EntityType { return EntityTypeRisk }
func (p *RiskProposal) Person() *ResolvedIdentity { return p.Owner }
func (p *RiskProposal) SetPerson(r *ResolvedIdentity) { p.Owner = r }
func (p *RiskProposal) EmbeddingText() string { return joinText(p.Title, p.Description) }

var (
	_ Proposal = (*ActionItemProposal)(nil)
	_ Proposal = (*DecisionProposal)(nil)
	_ Proposal = (*RiskProposal)(nil)
)

// ProposedItems groups a change-set's proposals by kind, each list in
// extraction order.
type ProposedItems struct {
	ActionItems []*ActionItemProposal `json:"actionItems"`
	Decisions   []*DecisionProposal   `json:"decisions"`
	Risks       []*RiskProposal       `json:"risks"`
}

// All returns every proposal in publish order: action items, decisions, risks.
func (p ProposedItems) All() []Proposal {
	out := make([]Proposal, 0, len(p.ActionItems)+len(p.Decisions)+len(p.Risks))
	for _, a := range p.ActionItems {
		out = append(out, a)
	}
	for _, d := range p.Decisions {
		out = append(out, d)
	}
	for _, r := range p.Risks {
		out = append(out, r)
	}
	return out
}

// Find returns the proposal of the given kind and temp ID.
func (p ProposedItems) Find(kind EntityType, tempID string) (Proposal, bool) {
	for _, item := range p.All() {
		if item.EntityType() == kind && item.Base().TempID == tempID {
			return item, true
		}
	}
	return nil, false
}

// Accepted returns the accepted proposals in publish order.
func (p ProposedItems) Accepted() []Proposal {
	var out []Proposal
	for _, item := range p.All() {
		if item.Base().Accepted {
			out = append(out, item)
		}
	}
	return out
}

func joinText(title string, body *string) string {
	title = strings.TrimSpace(title)
	if body == nil || strings.TrimSpace(*body) == "" {
		return title
	}
	return title + "\n" + strings.TrimSpace(*body)
}
