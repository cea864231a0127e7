package module

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/promptmatch/pkg/middleware"
	"github.com/JaimeStill/promptmatch/pkg/web"
)

// Router dispatches requests to mounted modules by path prefix,
// falling back to a native router for unmatched prefixes.
// Middleware added with Use wraps every request, module or native.
type Router struct {
	modules    map[string]*Module
	native     *web.Router
	middleware middleware.System
}

// NewRouter creates a Router with an empty module map and native fallback router.
func NewRouter() *Router {
	return &Router{
		modules:    make(map[string]*Module),
		native:     web.NewRouter(),
		middleware: middleware.New(),
	}
}

// HandleFunc registers a handler on the native router.
func (r *Router) HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	r.native.HandleFunc(pattern, handler)
}

// SetNotFound configures the native router's handler for unknown paths.
func (r *Router) SetNotFound(handler http.HandlerFunc) {
	r.native.SetNotFound(handler)
}

// SetMethodNotAllowed configures the native router's handler for known
// paths requested with an unsupported method.
func (r *Router) SetMethodNotAllowed(handler http.HandlerFunc) {
	r.native.SetMethodNotAllowed(handler)
}

// Mount registers a module to handle requests matching its prefix.
func (r *Router) Mount(m *Module) {
	r.modules[m.prefix] = m
}

// Use adds router-wide middleware.
func (r *Router) Use(mw func(http.Handler) http.Handler) {
	r.middleware.Use(mw)
}

// Handler returns the router wrapped with its middleware stack.
func (r *Router) Handler() http.Handler {
	return r.middleware.Apply(http.HandlerFunc(r.dispatch))
}

// ServeHTTP dispatches through the middleware stack.
// Prefer Handler when serving many requests to avoid rebuilding the chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.Handler().ServeHTTP(w, req)
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	path := normalizePath(req)
	prefix := extractPrefix(path)

	if m, ok := r.modules[prefix]; ok {
		m.Serve(w, req)
		return
	}

	r.native.ServeHTTP(w, req)
}

func extractPrefix(path string) string {
	parts := strings.SplitN(path, "/", 3)
	if len(parts) >= 2 {
		return "/" + parts[1]
	}
	return path
}

func normalizePath(req *http.Request) string {
	path := req.URL.Path
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
		req.URL.Path = path
	}
	return path
}
