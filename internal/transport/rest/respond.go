package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/minutes-backend/internal/domain"
	"github.com/heartmarshall/minutes-backend/internal/service/publish"
	"github.com/heartmarshall/minutes-backend/pkg/ctxutil"
)

// maxBodyBytes caps request bodies. Extraction output for a long meeting is
// the largest payload the API accepts.
const maxBodyBytes = 4 << 20

type errorResponse struct {
	Error         string               `json:"error"`
	Kind          string               `json:"kind,omitempty"`
	Fields        []fieldErrorBody     `json:"fields,omitempty"`
	BlockingItems []domain.BlockedItem `json:"blockingItems,omitempty"`
	Applied       *int                 `json:"applied,omitempty"`
	*lockConflictBody
}

type fieldErrorBody struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type lockConflictBody struct {
	Holder             *uuid.UUID `json:"holder"`
	LockedAt           *time.Time `json:"lockedAt"`
	Stale              bool       `json:"stale"`
	StaleVersion       bool       `json:"staleVersion"`
	Publishing         bool       `json:"publishing"`
	CurrentVersion     int64      `json:"currentVersion"`
	ForceUnlockAllowed bool       `json:"forceUnlockAllowed"`
	Retryable          bool       `json:"retryable"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeBody reads a JSON request body into dst. An empty body leaves dst
// untouched when allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if allowEmpty && errors.Is(err, io.EOF) {
			return true
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// uuidParam parses a chi URL parameter as a UUID and writes a 400 if it is
// not one.
func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
		return uuid.Nil, false
	}
	return id, true
}

// actorID returns the authenticated caller or writes a 401.
func actorID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := ctxutil.UserIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return uuid.Nil, false
	}
	return id, true
}

// handleError maps service errors to HTTP responses. Unknown errors are
// logged and reported as 500 without detail.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var pubErr *publish.Error
	if errors.As(err, &pubErr) {
		writePublishError(log, w, r, pubErr)
		return
	}

	var lockErr *domain.LockConflictError
	if errors.As(err, &lockErr) {
		writeJSON(w, http.StatusConflict, lockConflictResponse(r, lockErr))
		return
	}

	var valErr *domain.ValidationError
	switch {
	case errors.As(err, &valErr):
		writeJSON(w, http.StatusBadRequest, validationResponse(valErr))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrInvalidState), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPublishBlocked):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writePublishError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err *publish.Error) {
	resp := errorResponse{Error: err.Error(), Kind: string(err.Kind)}

	switch err.Kind {
	case publish.KindMeetingNotFound, publish.KindChangeSetMissing:
		writeJSON(w, http.StatusNotFound, resp)
	case publish.KindMeetingNotReviewable:
		writeJSON(w, http.StatusConflict, resp)
	case publish.KindInvalidItem:
		var valErr *domain.ValidationError
		if errors.As(err, &valErr) {
			resp.Fields = fieldErrors(valErr)
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case publish.KindIdentityBlocked:
		resp.BlockingItems = err.Blocked
		writeJSON(w, http.StatusUnprocessableEntity, resp)
	case publish.KindLockConflict:
		var lockErr *domain.LockConflictError
		if errors.As(err, &lockErr) {
			resp.lockConflictBody = lockConflictResponse(r, lockErr).lockConflictBody
		}
		writeJSON(w, http.StatusConflict, resp)
	default:
		log.ErrorContext(r.Context(), "publish failed",
			slog.String("meeting_id", err.MeetingID.String()),
			slog.Int("applied", err.Applied),
			slog.String("error", err.Error()),
		)
		applied := err.Applied
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "publish stopped by an internal failure",
			Kind:    string(err.Kind),
			Applied: &applied,
		})
	}
}

func lockConflictResponse(r *http.Request, err *domain.LockConflictError) errorResponse {
	return errorResponse{
		Error: err.Error(),
		Kind:  "lock_conflict",
		lockConflictBody: &lockConflictBody{
			Holder:             err.HolderID,
			LockedAt:           err.LockedAt,
			Stale:              err.HolderStale,
			StaleVersion:       err.StaleVersion,
			Publishing:         err.Publishing,
			CurrentVersion:     err.CurrentVersion,
			ForceUnlockAllowed: err.HolderID != nil && ctxutil.IsAdminCtx(r.Context()),
			Retryable:          true,
		},
	}
}

func validationResponse(err *domain.ValidationError) errorResponse {
	return errorResponse{Error: "validation failed", Fields: fieldErrors(err)}
}

func fieldErrors(err *domain.ValidationError) []fieldErrorBody {
	out := make([]fieldErrorBody, len(err.Errors))
	for i, fe := range err.Errors {
		out[i] = fieldErrorBody{Field: fe.Field, Message: fe.Message}
	}
	return out
}
