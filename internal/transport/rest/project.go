package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/service/relevance"
	"github.com/heartmarshall/minutes-backend/internal/service/review"
)

type nameResolver interface {
	ResolveName(ctx context.Context, input review.ResolveNameInput) (domain.ResolvedIdentity, error)
}

type relevanceSelector interface {
	Select(ctx context.Context, input relevance.SelectInput) (*relevance.Selection, error)
}

// ProjectHandler serves project-scoped helper endpoints used by the
// extraction pipeline.
type ProjectHandler struct {
	resolver nameResolver
	selector relevanceSelector
	log      *slog.Logger
}

// NewProjectHandler creates a ProjectHandler.
func NewProjectHandler(resolver nameResolver, selector relevanceSelector, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		resolver: resolver,
		selector: selector,
		log:      logger.With("handler", "project"),
	}
}

// Register mounts the project routes on r.
func (h *ProjectHandler) Register(r chi.Router) {
	r.Route("/projects/{projectID}", func(r chi.Router) {
		r.Post("/identity/resolve", h.ResolveIdentity)
		r.Post("/relevant-items", h.RelevantItems)
	})
}

type resolveIdentityRequest struct {
	Name      string     `json:"name"`
	Email     *string    `json:"email"`
	MeetingID *uuid.UUID `json:"meetingId"`
}

// ResolveIdentity handles POST /projects/{projectID}/identity/resolve.
func (h *ProjectHandler) ResolveIdentity(w http.ResponseWriter, r *http.Request) {
	projectID, ok := uuidParam(w, r, "projectID")
	if !ok {
		return
	}

	var req resolveIdentityRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	resolved, err := h.resolver.ResolveName(r.Context(), review.ResolveNameInput{
		ProjectID: projectID,
		MeetingID: req.MeetingID,
		Name:      req.Name,
		Email:     req.Email,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resolved)
}

type relevantItemsRequest struct {
	Transcript string `json:"transcript"`
	Limit      int    `json:"limit"`
}

// RelevantItems handles POST /projects/{projectID}/relevant-items.
func (h *ProjectHandler) RelevantItems(w http.ResponseWriter, r *http.Request) {
	projectID, ok := uuidParam(w, r, "projectID")
	if !ok {
		return
	}

	var req relevantItemsRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	selection, err := h.selector.Select(r.Context(), relevance.SelectInput{
		ProjectID:  projectID,
		Transcript: req.Transcript,
		Limit:      req.Limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, selection)
}
