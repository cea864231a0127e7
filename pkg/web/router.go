// Package web provides a ServeMux wrapper that answers unmatched requests
// with configurable handlers instead of the mux's plain-text errors.
package web

import (
	"net/http"
)

// Router wraps http.ServeMux with fallback handlers for unknown paths and
// for known paths requested with an unsupported method.
type Router struct {
	mux              *http.ServeMux
	notFound         http.HandlerFunc
	methodNotAllowed http.HandlerFunc
}

// NewRouter creates a Router with default ServeMux behavior.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// SetNotFound configures the handler for paths no pattern matches.
func (r *Router) SetNotFound(handler http.HandlerFunc) {
	r.notFound = handler
}

// SetMethodNotAllowed configures the handler for paths that match a pattern
// under a different method. The Allow header is set before it runs.
func (r *Router) SetMethodNotAllowed(handler http.HandlerFunc) {
	r.methodNotAllowed = handler
}

// Handle registers a handler for the given pattern.
func (r *Router) Handle(pattern string, handler http.Handler) {
	r.mux.Handle(pattern, handler)
}

// HandleFunc registers a handler function for the given pattern.
func (r *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	r.mux.HandleFunc(pattern, handler)
}

// ServeHTTP implements http.Handler with fallbacks for unmatched routes.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	h, pattern := r.mux.Handler(req)
	if pattern != "" {
		r.mux.ServeHTTP(w, req)
		return
	}

	probe := &statusProbe{header: make(http.Header)}
	h.ServeHTTP(probe, req)

	switch {
	case probe.status == http.StatusMethodNotAllowed && r.methodNotAllowed != nil:
		if allow := probe.header.Get("Allow"); allow != "" {
			w.Header().Set("Allow", allow)
		}
		r.methodNotAllowed(w, req)
	case probe.status == http.StatusNotFound && r.notFound != nil:
		r.notFound(w, req)
	default:
		h.ServeHTTP(w, req)
	}
}

// statusProbe records the status and headers the mux's internal error
// handlers would write, discarding the body.
type statusProbe struct {
	header http.Header
	status int
}

func (p *statusProbe) Header() http.Header { return p.header }

func (p *statusProbe) Write(b []byte) (int, error) {
	if p.status == 0 {
		p.status = http.StatusOK
	}
	return len(b), nil
}

func (p *statusProbe) WriteHeader(status int) {
	if p.status == 0 {
		p.status = status
	}
}
