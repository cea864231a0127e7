package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/JaimeStill/promptmatch/pkg/handlers"
)

// Recovery returns middleware that converts a panic in a downstream handler
// into a 500 JSON failure. http.ErrAbortHandler is re-panicked so the server
// can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)
				handlers.RespondStatus(w, logger, http.StatusInternalServerError, "An internal server error occurred")
			}()
			next.ServeHTTP(w, r)
		})
	}
}
