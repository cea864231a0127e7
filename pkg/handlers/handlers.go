// Package handlers provides the JSON response writers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Failure is the body written for every unsuccessful response.
// Details and Message are mutually exclusive in practice; both are omitted when empty.
type Failure struct {
	Success bool              `json:"success"`
	Error   string            `json:"error"`
	Message string            `json:"message,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// RespondJSON writes data as a JSON body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondFailure logs the failure and writes it as a JSON body.
// Server errors log at error level, client errors at warn.
func RespondFailure(w http.ResponseWriter, logger *slog.Logger, status int, f Failure) {
	f.Success = false

	attrs := []any{"status", status, "error", f.Error}
	if f.Message != "" {
		attrs = append(attrs, "message", f.Message)
	}
	if len(f.Details) > 0 {
		attrs = append(attrs, "details", f.Details)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("handler error", attrs...)
	} else {
		logger.Warn("request rejected", attrs...)
	}

	RespondJSON(w, status, f)
}

// RespondStatus writes a failure labelled with the standard status text.
func RespondStatus(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondFailure(w, logger, status, Failure{
		Error:   http.StatusText(status),
		Message: message,
	})
}
