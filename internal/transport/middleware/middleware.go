// Package middleware holds the HTTP middleware mounted by the REST router.
package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
)

// Middleware is a function that wraps an http.Handler. chi's Use accepts it
// directly.
type Middleware func(http.Handler) http.Handler

// writeError writes the same {"error": ...} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// actorRecorder is implemented by the Logger's response writer. Auth runs
// on an inner context, so it reports the actor back through the writer.
type actorRecorder interface {
	recordActor(userID uuid.UUID, role string)
}

func recordActor(w http.ResponseWriter, userID uuid.UUID, role string) {
	if rec, ok := w.(actorRecorder); ok {
		rec.recordActor(userID, role)
	}
}
