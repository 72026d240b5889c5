package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/service/review"
	"github.com/heartmarshall/minutes-backend/internal/transport/middleware"
)

type lockManager interface {
	Acquire(ctx context.Context, changeSetID, actorID uuid.UUID, expectedVersion int64) (*domain.ProposedChangeSet, error)
	Release(ctx context.Context, changeSetID, actorID uuid.UUID) error
	ForceUnlock(ctx context.Context, changeSetID, actorID uuid.UUID) (*domain.ProposedChangeSet, error)
	Status(cs *domain.ProposedChangeSet) domain.LockStatus
}

type itemReviewer interface {
	SetAccepted(ctx context.Context, input review.SetAcceptedInput) (*review.ChangeSetView, error)
	EditItem(ctx context.Context, input review.EditItemInput) (*review.ChangeSetView, error)
	AcceptPlaceholder(ctx context.Context, ref review.ItemRef) (*review.ChangeSetView, error)
	ResolveManually(ctx context.Context, input review.ResolveManuallyInput) (*review.ChangeSetView, error)
	AddContact(ctx context.Context, input review.AddContactInput) (*review.ChangeSetView, error)
}

// ChangeSetHandler serves lock and item-review endpoints of a change-set.
type ChangeSetHandler struct {
	locks  lockManager
	review itemReviewer
	log    *slog.Logger
}

// NewChangeSetHandler creates a ChangeSetHandler.
func NewChangeSetHandler(locks lockManager, review itemReviewer, logger *slog.Logger) *ChangeSetHandler {
	return &ChangeSetHandler{
		locks:  locks,
		review: review,
		log:    logger.With("handler", "change_set"),
	}
}

// Register mounts the change-set routes on r.
func (h *ChangeSetHandler) Register(r chi.Router) {
	r.Route("/change-sets/{changeSetID}", func(r chi.Router) {
		r.Post("/lock", h.AcquireLock)
		r.Delete("/lock", h.ReleaseLock)
		r.Post("/lock/force", h.ForceUnlock)

		r.Route("/items/{kind}/{tempID}", func(r chi.Router) {
			r.Patch("/", h.EditItem)
			r.Post("/owner/placeholder", h.AcceptPlaceholder)
			r.Post("/owner/resolve", h.ResolveOwner)
			r.Post("/owner/contact", h.AddContact)
		})
	})
}

type acquireLockRequest struct {
	ExpectedVersion *int64 `json:"expectedVersion"`
}

// AcquireLock handles POST /change-sets/{changeSetID}/lock.
func (h *ChangeSetHandler) AcquireLock(w http.ResponseWriter, r *http.Request) {
	csID, ok := uuidParam(w, r, "changeSetID")
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	var req acquireLockRequest
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.ExpectedVersion == nil {
		writeJSON(w, http.StatusBadRequest, validationResponse(domain.NewValidationError("expectedVersion", "required")))
		return
	}

	cs, err := h.locks.Acquire(r.Context(), csID, actor, *req.ExpectedVersion)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.locks.Status(cs))
}

// ReleaseLock handles DELETE /change-sets/{changeSetID}/lock. Releasing a
// lock the caller does not hold succeeds without effect.
func (h *ChangeSetHandler) ReleaseLock(w http.ResponseWriter, r *http.Request) {
	csID, ok := uuidParam(w, r, "changeSetID")
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := h.locks.Release(r.Context(), csID, actor); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ForceUnlock handles POST /change-sets/{changeSetID}/lock/force. Admin only.
func (h *ChangeSetHandler) ForceUnlock(w http.ResponseWriter, r *http.Request) {
	csID, ok := uuidParam(w, r, "changeSetID")
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	if err := middleware.RequireAdmin(r.Context(), "force unlock"); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cs, err := h.locks.ForceUnlock(r.Context(), csID, actor)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.locks.Status(cs))
}

type editItemRequest struct {
	Accepted     *bool      `json:"accepted"`
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Rationale    *string    `json:"rationale"`
	DueDate      *time.Time `json:"dueDate"`
	DecisionDate *time.Time `json:"decisionDate"`
	Status       *string    `json:"status"`
	Probability  *string    `json:"probability"`
	Impact       *string    `json:"impact"`
	Mitigation   *string    `json:"mitigation"`
}

func (req editItemRequest) hasEdits() bool {
	return req.Title != nil || req.Description != nil || req.Rationale != nil ||
		req.DueDate != nil || req.DecisionDate != nil || req.Status != nil ||
		req.Probability != nil || req.Impact != nil || req.Mitigation != nil
}

// EditItem handles PATCH /change-sets/{changeSetID}/items/{kind}/{tempID}.
// The body may toggle acceptance, edit fields, or both.
func (h *ChangeSetHandler) EditItem(w http.ResponseWriter, r *http.Request) {
	ref, ok := itemRef(w, r)
	if !ok {
		return
	}

	var req editItemRequest
	if !decodeBody(w, r, &req, false) {
		return
	}
	if req.Accepted == nil && !req.hasEdits() {
		writeError(w, http.StatusBadRequest, "nothing to change")
		return
	}

	var (
		view *review.ChangeSetView
		err  error
	)
	if req.hasEdits() {
		view, err = h.review.EditItem(r.Context(), review.EditItemInput{
			ItemRef:      ref,
			Title:        req.Title,
			Description:  req.Description,
			Rationale:    req.Rationale,
			DueDate:      req.DueDate,
			DecisionDate: req.DecisionDate,
			Status:       req.Status,
			Probability:  req.Probability,
			Impact:       req.Impact,
			Mitigation:   req.Mitigation,
		})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}
	if req.Accepted != nil {
		view, err = h.review.SetAccepted(r.Context(), review.SetAcceptedInput{ItemRef: ref, Accepted: *req.Accepted})
		if err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

// AcceptPlaceholder handles POST .../owner/placeholder: the item keeps its
// person as an unlinked name.
func (h *ChangeSetHandler) AcceptPlaceholder(w http.ResponseWriter, r *http.Request) {
	ref, ok := itemRef(w, r)
	if !ok {
		return
	}

	view, err := h.review.AcceptPlaceholder(r.Context(), ref)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

type resolveOwnerRequest struct {
	Kind     domain.CandidateKind `json:"kind"`
	PersonID uuid.UUID            `json:"personId"`
}

// ResolveOwner handles POST .../owner/resolve: the reviewer picks a member
// or contact.
func (h *ChangeSetHandler) ResolveOwner(w http.ResponseWriter, r *http.Request) {
	ref, ok := itemRef(w, r)
	if !ok {
		return
	}

	var req resolveOwnerRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	view, err := h.review.ResolveManually(r.Context(), review.ResolveManuallyInput{
		ItemRef:  ref,
		Kind:     req.Kind,
		PersonID: req.PersonID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

type addContactRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

// AddContact handles POST .../owner/contact: creates a project contact and
// links the item to it. An empty body uses the proposed name.
func (h *ChangeSetHandler) AddContact(w http.ResponseWriter, r *http.Request) {
	ref, ok := itemRef(w, r)
	if !ok {
		return
	}

	var req addContactRequest
	if !decodeBody(w, r, &req, true) {
		return
	}

	view, err := h.review.AddContact(r.Context(), review.AddContactInput{
		ItemRef: ref,
		Name:    req.Name,
		Email:   req.Email,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toViewResponse(view))
}

func itemRef(w http.ResponseWriter, r *http.Request) (review.ItemRef, bool) {
	csID, ok := uuidParam(w, r, "changeSetID")
	if !ok {
		return review.ItemRef{}, false
	}
	return review.ItemRef{
		ChangeSetID: csID,
		EntityType:  domain.EntityType(chi.URLParam(r, "kind")),
		TempID:      chi.URLParam(r, "tempID"),
	}, true
}
