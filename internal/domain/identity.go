package domain

import "github.com/google/uuid"

// Candidate is a roster entry that fuzzily matched a name.
type Candidate struct {
	Kind  CandidateKind `json:"kind"`
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email,omitempty"`
	Score float64       `json:"score"`
}

// ResolvedIdentity is the outcome of matching a free-text person reference
// against a project roster. Exactly one of ResolvedUserID and
// ResolvedContactID is set when Status is resolved.
type ResolvedIdentity struct {
	Name              string           `json:"name"`
	Email             *string          `json:"email,omitempty"`
	ResolvedUserID    *uuid.UUID       `json:"resolvedUserId,omitempty"`
	ResolvedContactID *uuid.UUID       `json:"resolvedContactId,omitempty"`
	Status            ResolutionStatus `json:"status"`
	Confidence        float64          `json:"confidence"`
	Candidates        []Candidate      `json:"candidates,omitempty"`
}

// HasBackingRecord reports whether the identity points at a member or contact.
func (r ResolvedIdentity) HasBackingRecord() bool {
	return r.ResolvedUserID != nil || r.ResolvedContactID != nil
}

// Member is a project member with a user account.
type Member struct {
	UserID uuid.UUID
	Name   string
	Email  string
}

// Contact is an external person known to the project without an account.
type Contact struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Name      string
	Email     *string
}

// Attendee is a person listed on a meeting invite.
type Attendee struct {
	Name  string
	Email *string
}

// Roster is an immutable snapshot of the people a name can resolve to.
// It is built once per resolution pass and never mutated afterwards.
type Roster struct {
	members   []Member
	contacts  []Contact
	attendees []Attendee
}

// NewRoster copies the given slices into a new snapshot.
func NewRoster(members []Member, contacts []Contact, attendees []Attendee) Roster {
	return Roster{
		members:   append([]Member(nil), members...),
		contacts:  append([]Contact(nil), contacts...),
		attendees: append([]Attendee(nil), attendees...),
	}
}

// Members returns a copy of the member list.
func (r Roster) Members() []Member { return append([]Member(nil), r.members...) }

// Contacts returns a copy of the contact list.
func (r Roster) Contacts() []Contact { return append([]Contact(nil), r.contacts...) }

// Attendees returns a copy of the attendee list.
func (r Roster) Attendees() []Attendee { return append([]Attendee(nil), r.attendees...) }

// HasMember reports whether the user is a member of the roster.
func (r Roster) HasMember(userID uuid.UUID) (Member, bool) {
	for _, m := range r.members {
		if m.UserID == userID {
			return m, true
		}
	}
	return Member{}, false
}

// HasContact reports whether the contact belongs to the roster.
func (r Roster) HasContact(contactID uuid.UUID) (Contact, bool) {
	for _, c := range r.contacts {
		if c.ID == contactID {
			return c, true
		}
	}
	return Contact{}, false
}
