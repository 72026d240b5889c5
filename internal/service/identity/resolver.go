// Package identity matches free-text person references from meeting
// transcripts to project members and contacts.
//
// Resolution is pure: it reads an immutable domain.Roster snapshot and
// never touches a store, so identical inputs always give identical output.
package identity

import (
	"cmp"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

const (
	// InferredEmailConfidence is reported when the email came from the attendee list.
	InferredEmailConfidence = 0.8
)

// Config tunes the resolver.
type Config struct {
	// RoomKeywords are lowercase substrings marking a conference room.
	RoomKeywords []string
	// FuzzyMaxDistance discards fuzzy candidates farther than this.
	FuzzyMaxDistance float64
	// ConfirmationConfidence is the bar a single fuzzy match must clear to
	// be offered for confirmation instead of flagged as ambiguous.
	ConfirmationConfidence float64
	// MaxCandidates caps the ranked candidate list.
	MaxCandidates int
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		RoomKeywords:           []string{"room", "conference", "boardroom"},
		FuzzyMaxDistance:       0.3,
		ConfirmationConfidence: 0.7,
		MaxCandidates:          5,
	}
}

// Resolver applies the resolution rules in order; the first match wins.
type Resolver struct {
	cfg    Config
	scorer Scorer
}

// NewResolver creates a resolver. A nil scorer defaults to LevenshteinScorer.
func NewResolver(cfg Config, scorer Scorer) *Resolver {
	if scorer == nil {
		scorer = LevenshteinScorer{}
	}
	if cfg.MaxCandidates <= 0 {
		cfg.MaxCandidates = DefaultConfig().MaxCandidates
	}
	return &Resolver{cfg: cfg, scorer: scorer}
}

// Resolve matches name (and optional email) against the roster.
func (r *Resolver) Resolve(name string, email *string, roster domain.Roster) domain.ResolvedIdentity {
	out := domain.ResolvedIdentity{
		Name:   strings.TrimSpace(name),
		Email:  trimmedEmail(email),
		Status: domain.ResolutionUnknown,
	}
	normName := domain.NormalizeText(name)

	if given := domain.NormalizeEmail(email); given != "" {
		if r.matchEmail(given, roster, &out) {
			out.Status = domain.ResolutionResolved
			out.Confidence = 1
			return out
		}
	} else if inferred := inferEmail(normName, roster); inferred != "" {
		if r.matchEmail(inferred, roster, &out) {
			out.Status = domain.ResolutionNeedsConfirmation
			out.Confidence = InferredEmailConfidence
			return out
		}
	}

	if r.isConferenceRoom(normName) {
		out.Status = domain.ResolutionConferenceRoom
		return out
	}

	if normName == "" {
		return out
	}

	candidates := r.fuzzyCandidates(normName, roster)
	switch len(candidates) {
	case 0:
		return out
	case 1:
		c := candidates[0]
		out.Candidates = candidates
		out.Confidence = c.Score
		if c.Score > r.cfg.ConfirmationConfidence {
			out.Status = domain.ResolutionNeedsConfirmation
			setCandidateID(&out, c)
		} else {
			out.Status = domain.ResolutionAmbiguous
		}
		return out
	default:
		out.Status = domain.ResolutionAmbiguous
		out.Candidates = candidates[:min(len(candidates), r.cfg.MaxCandidates)]
		return out
	}
}

// matchEmail sets the matching member (preferred) or contact ID on out.
func (r *Resolver) matchEmail(email string, roster domain.Roster, out *domain.ResolvedIdentity) bool {
	for _, m := range roster.Members() {
		if strings.EqualFold(strings.TrimSpace(m.Email), email) {
			id := m.UserID
			out.ResolvedUserID = &id
			return true
		}
	}
	for _, c := range roster.Contacts() {
		if domain.NormalizeEmail(c.Email) == email {
			id := c.ID
			out.ResolvedContactID = &id
			return true
		}
	}
	return false
}

// inferEmail returns the email of the first attendee with an email whose
// name contains, or is contained in, the candidate name.
func inferEmail(normName string, roster domain.Roster) string {
	if normName == "" {
		return ""
	}
	for _, a := range roster.Attendees() {
		attendee := domain.NormalizeText(a.Name)
		email := domain.NormalizeEmail(a.Email)
		if attendee == "" || email == "" {
			continue
		}
		if strings.Contains(attendee, normName) || strings.Contains(normName, attendee) {
			return email
		}
	}
	return ""
}

func (r *Resolver) isConferenceRoom(normName string) bool {
	for _, kw := range r.cfg.RoomKeywords {
		if kw != "" && strings.Contains(normName, kw) {
			return true
		}
	}
	return false
}

// fuzzyCandidates scores every member and contact and keeps those within
// FuzzyMaxDistance, best first.
func (r *Resolver) fuzzyCandidates(normName string, roster domain.Roster) []domain.Candidate {
	var out []domain.Candidate

	for _, m := range roster.Members() {
		email := domain.NormalizeEmail(&m.Email)
		if d := r.bestDistance(normName, m.Name, email); d <= r.cfg.FuzzyMaxDistance {
			out = append(out, domain.Candidate{
				Kind: domain.CandidateKindMember, ID: m.UserID, Name: m.Name, Email: m.Email, Score: 1 - d,
			})
		}
	}
	for _, c := range roster.Contacts() {
		email := domain.NormalizeEmail(c.Email)
		if d := r.bestDistance(normName, c.Name, email); d <= r.cfg.FuzzyMaxDistance {
			out = append(out, domain.Candidate{
				Kind: domain.CandidateKindContact, ID: c.ID, Name: c.Name, Email: email, Score: 1 - d,
			})
		}
	}

	slices.SortFunc(out, compareCandidates)
	return out
}

// bestDistance compares the name with the person's full name, each name
// token, the full email and its local part, and keeps the closest.
func (r *Resolver) bestDistance(normName, personName, email string) float64 {
	targets := append([]string{domain.NormalizeText(personName)}, domain.NameTokens(personName)...)
	if email != "" {
		targets = append(targets, email, domain.EmailLocalPart(email))
	}

	best := 1.0
	for _, t := range targets {
		if t == "" {
			continue
		}
		if d := r.scorer.Distance(normName, t); d < best {
			best = d
		}
	}
	return best
}

func compareCandidates(a, b domain.Candidate) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if a.Kind != b.Kind {
		// members first
		if a.Kind == domain.CandidateKindMember {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID.String(), b.ID.String())
}

func setCandidateID(out *domain.ResolvedIdentity, c domain.Candidate) {
	id := c.ID
	switch c.Kind {
	case domain.CandidateKindMember:
		out.ResolvedUserID = &id
	case domain.CandidateKindContact:
		out.ResolvedContactID = &id
	}
}

func trimmedEmail(email *string) *string {
	if email == nil {
		return nil
	}
	e := strings.TrimSpace(*email)
	if e == "" {
		return nil
	}
	return &e
}

// Resolved builds the identity produced when a reviewer picks a person manually.
func Resolved(name string, email *string, kind domain.CandidateKind, id uuid.UUID) domain.ResolvedIdentity {
	out := domain.ResolvedIdentity{
		Name:       strings.TrimSpace(name),
		Email:      trimmedEmail(email),
		Status:     domain.ResolutionResolved,
		Confidence: 1,
	}
	setCandidateID(&out, domain.Candidate{Kind: kind, ID: id})
	return out
}

// Placeholder builds the identity produced when a reviewer accepts a name
// without a backing record.
func Placeholder(prev domain.ResolvedIdentity) domain.ResolvedIdentity {
	return domain.ResolvedIdentity{
		Name:   prev.Name,
		Email:  prev.Email,
		Status: domain.ResolutionPlaceholder,
	}
}
