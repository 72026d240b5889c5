package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/service/publish"
	"github.com/heartmarshall/minutes-backend/internal/service/review"
)

type changeSetReviewer interface {
	CreateChangeSet(ctx context.Context, input review.CreateChangeSetInput) (*domain.ProposedChangeSet, error)
	GetChangeSet(ctx context.Context, meetingID uuid.UUID) (*review.ChangeSetView, error)
}

type publisher interface {
	Publish(ctx context.Context, meetingID, actorID uuid.UUID) (*publish.Result, error)
}

// MeetingHandler serves the per-meeting review endpoints.
type MeetingHandler struct {
	review    changeSetReviewer
	publisher publisher
	log       *slog.Logger
}

// NewMeetingHandler creates a MeetingHandler.
func NewMeetingHandler(review changeSetReviewer, publisher publisher, logger *slog.Logger) *MeetingHandler {
	return &MeetingHandler{
		review:    review,
		publisher: publisher,
		log:       logger.With("handler", "meeting"),
	}
}

// Register mounts the meeting routes on r.
func (h *MeetingHandler) Register(r chi.Router) {
	r.Route("/meetings/{meetingID}", func(r chi.Router) {
		r.Post("/change-set", h.CreateChangeSet)
		r.Get("/change-set", h.GetChangeSet)
		r.Post("/publish", h.Publish)
	})
}

type createChangeSetRequest struct {
	Items domain.ProposedItems `json:"items"`
}

type changeSetResponse struct {
	ID            uuid.UUID            `json:"id"`
	MeetingID     uuid.UUID            `json:"meetingId"`
	ProjectID     uuid.UUID            `json:"projectId"`
	Items         domain.ProposedItems `json:"items"`
	Lock          *domain.LockStatus   `json:"lock,omitempty"`
	BlockingItems []domain.BlockedItem `json:"blockingItems"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// CreateChangeSet handles POST /meetings/{meetingID}/change-set.
func (h *MeetingHandler) CreateChangeSet(w http.ResponseWriter, r *http.Request) {
	meetingID, ok := uuidParam(w, r, "meetingID")
	if !ok {
		return
	}

	var req createChangeSetRequest
	if !decodeBody(w, r, &req, false) {
		return
	}

	cs, err := h.review.CreateChangeSet(r.Context(), review.CreateChangeSetInput{
		MeetingID: meetingID,
		Items:     req.Items,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toChangeSetResponse(cs, nil))
}

// GetChangeSet handles GET /meetings/{meetingID}/change-set.
func (h *MeetingHandler) GetChangeSet(w http.ResponseWriter, r *http.Request) {
	meetingID, ok := uuidParam(w, r, "meetingID")
	if !ok {
		return
	}

	view, err := h.review.GetChangeSet(r.Context(), meetingID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

type appliedItemResponse struct {
	TempID           string            `json:"tempId"`
	EntityType       domain.EntityType `json:"entityType"`
	Operation        domain.Operation  `json:"operation"`
	EntityID         uuid.UUID         `json:"entityId"`
	WithoutEmbedding bool              `json:"withoutEmbedding,omitempty"`
}

type publishResponse struct {
	MeetingID   uuid.UUID             `json:"meetingId"`
	ChangeSetID uuid.UUID             `json:"changeSetId"`
	PublishedAt time.Time             `json:"publishedAt"`
	Created     int                   `json:"created"`
	Updated     int                   `json:"updated"`
	Closed      int                   `json:"closed"`
	Skipped     int                   `json:"skipped"`
	Items       []appliedItemResponse `json:"items"`
}

// Publish handles POST /meetings/{meetingID}/publish.
func (h *MeetingHandler) Publish(w http.ResponseWriter, r *http.Request) {
	meetingID, ok := uuidParam(w, r, "meetingID")
	if !ok {
		return
	}
	actor, ok := actorID(w, r)
	if !ok {
		return
	}

	result, err := h.publisher.Publish(r.Context(), meetingID, actor)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPublishResponse(result))
}

func toChangeSetResponse(cs *domain.ProposedChangeSet, lock *domain.LockStatus) changeSetResponse {
	blocking := cs.Items.BlockingItems()
	if blocking == nil {
		blocking = []domain.BlockedItem{}
	}
	return changeSetResponse{
		ID:            cs.ID,
		MeetingID:     cs.MeetingID,
		ProjectID:     cs.ProjectID,
		Items:         cs.Items,
		Lock:          lock,
		BlockingItems: blocking,
		CreatedAt:     cs.CreatedAt,
		UpdatedAt:     cs.UpdatedAt,
	}
}

func toViewResponse(view *review.ChangeSetView) changeSetResponse {
	lock := view.Lock
	return toChangeSetResponse(view.ChangeSet, &lock)
}

func toPublishResponse(result *publish.Result) publishResponse {
	items := make([]appliedItemResponse, len(result.Items))
	for i, it := range result.Items {
		items[i] = appliedItemResponse{
			TempID:           it.TempID,
			EntityType:       it.EntityType,
			Operation:        it.Operation,
			EntityID:         it.EntityID,
			WithoutEmbedding: it.WithoutEmbedding,
		}
	}
	return publishResponse{
		MeetingID:   result.MeetingID,
		ChangeSetID: result.ChangeSetID,
		PublishedAt: result.PublishedAt,
		Created:     result.Count(domain.OperationCreate),
		Updated:     result.Count(domain.OperationUpdate),
		Closed:      result.Count(domain.OperationClose),
		Skipped:     result.Skipped,
		Items:       items,
	}
}
