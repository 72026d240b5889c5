package relevance

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
)

// SelectInput asks for the records most relevant to a transcript.
type SelectInput struct {
	ProjectID  uuid.UUID
	Transcript string
	// Limit overrides the configured limit when > 0.
	Limit int
}

func (i SelectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if strings.TrimSpace(i.Transcript) == "" {
		errs = append(errs, domain.FieldError{Field: "transcript", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
