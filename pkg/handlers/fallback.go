package handlers

import (
	"log/slog"
	"net/http"
)

// NotFound returns a handler answering 404 with a JSON failure body.
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondStatus(w, logger, http.StatusNotFound, "The requested endpoint does not exist")
	}
}

// MethodNotAllowed returns a handler answering 405 with a JSON failure body.
// The Allow header set by the router is preserved.
func MethodNotAllowed(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		RespondStatus(w, logger, http.StatusMethodNotAllowed, "The requested method is not allowed for this endpoint")
	}
}
