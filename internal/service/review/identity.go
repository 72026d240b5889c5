package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/service/identity"
)

// AcceptPlaceholder keeps the proposal's person as a bare name with no
// backing record. Placeholders never block publishing.
func (s *Service) AcceptPlaceholder(ctx context.Context, ref ItemRef) (*ChangeSetView, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, ref, func(_ context.Context, _ *domain.ProposedChangeSet, item domain.Proposal) error {
		person := item.Person()
		if person == nil {
			return domain.NewValidationError("person", "item has no owner or decision maker")
		}
		placeholder := identity.Placeholder(*person)
		item.SetPerson(&placeholder)
		return nil
	})
}

// ResolveManually points the proposal's person at a member or contact the
// reviewer picked from the project roster.
func (s *Service) ResolveManually(ctx context.Context, input ResolveManuallyInput) (*ChangeSetView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, input.ItemRef, func(ctx context.Context, cs *domain.ProposedChangeSet, item domain.Proposal) error {
		roster, err := s.roster.Snapshot(ctx, cs.ProjectID, nil)
		if err != nil {
			return fmt.Errorf("load roster: %w", err)
		}

		var name string
		var email *string
		switch input.Kind {
		case domain.CandidateKindMember:
			m, ok := roster.HasMember(input.PersonID)
			if !ok {
				return domain.NewValidationError("person_id", "not a member of the project")
			}
			name, email = m.Name, &m.Email
		case domain.CandidateKindContact:
			c, ok := roster.HasContact(input.PersonID)
			if !ok {
				return domain.NewValidationError("person_id", "not a contact of the project")
			}
			name, email = c.Name, c.Email
		}

		resolved := identity.Resolved(name, email, input.Kind, input.PersonID)
		item.SetPerson(&resolved)
		return nil
	})
}

// AddContact records the proposal's person as a new project contact and
// resolves the proposal against the refreshed roster.
func (s *Service) AddContact(ctx context.Context, input AddContactInput) (*ChangeSetView, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, input.ItemRef, func(ctx context.Context, cs *domain.ProposedChangeSet, item domain.Proposal) error {
		name := strings.TrimSpace(input.Name)
		if person := item.Person(); name == "" && person != nil {
			name = person.Name
		}
		if name == "" {
			return domain.NewValidationError("name", "required")
		}

		contact := domain.Contact{
			ID:        uuid.New(),
			ProjectID: cs.ProjectID,
			Name:      name,
			Email:     normalizedEmail(input.Email),
		}
		if err := s.roster.CreateContact(ctx, contact); err != nil {
			return fmt.Errorf("create contact: %w", err)
		}

		var resolved domain.ResolvedIdentity
		if contact.Email == nil {
			resolved = identity.Resolved(contact.Name, nil, domain.CandidateKindContact, contact.ID)
		} else {
			roster, err := s.roster.Snapshot(ctx, cs.ProjectID, nil)
			if err != nil {
				return fmt.Errorf("load roster: %w", err)
			}
			resolved = s.resolver.Resolve(contact.Name, contact.Email, roster)
		}
		s.metrics.IncResolution(resolved.Status.String())
		item.SetPerson(&resolved)
		return nil
	})
}

func normalizedEmail(email *string) *string {
	e := domain.NormalizeEmail(email)
	if e == "" {
		return nil
	}
	return &e
}
