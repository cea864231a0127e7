package module_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/promptmatch/pkg/module"
)

func echoPath(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte(r.URL.Path))
}

func TestNewValidatesPrefix(t *testing.T) {
	tests := []struct {
		prefix    string
		wantPanic bool
	}{
		{"/docs", false},
		{"", true},
		{"docs", true},
		{"/", true},
		{"/docs/v1", true},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			defer func() {
				if r := recover(); (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, wantPanic %v", r, tt.wantPanic)
				}
			}()
			module.New(tt.prefix, http.HandlerFunc(echoPath))
		})
	}
}

func TestModuleStripsPrefix(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /", echoPath)

	m := module.New("/docs", mux)
	if m.Prefix() != "/docs" {
		t.Errorf("prefix: got %q", m.Prefix())
	}

	tests := []struct {
		path string
		want string
	}{
		{"/docs", "/"},
		{"/docs/openapi.json", "/openapi.json"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest("GET", tt.path, nil)
			m.Serve(rec, req)

			if got := rec.Body.String(); got != tt.want {
				t.Errorf("inner path: got %q, want %q", got, tt.want)
			}
			if req.URL.Path != tt.path {
				t.Errorf("original request mutated: %q", req.URL.Path)
			}
		})
	}
}

func TestModuleMiddleware(t *testing.T) {
	m := module.New("/docs", http.HandlerFunc(echoPath))
	m.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Module", "docs")
			next.ServeHTTP(w, r)
		})
	})

	rec := httptest.NewRecorder()
	m.Serve(rec, httptest.NewRequest("GET", "/docs/", nil))

	if got := rec.Header().Get("X-Module"); got != "docs" {
		t.Errorf("module middleware not applied: %q", got)
	}
}

func TestRouterDispatch(t *testing.T) {
	inner := http.NewServeMux()
	inner.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("docs index"))
	})

	router := module.NewRouter()
	router.Mount(module.New("/docs", inner))
	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("healthy"))
	})
	router.SetNotFound(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("json 404"))
	})
	router.SetMethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte("json 405"))
	})

	var hits int
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits++
			next.ServeHTTP(w, r)
		})
	})

	tests := []struct {
		method string
		path   string
		status int
		body   string
	}{
		{"GET", "/docs/", http.StatusOK, "docs index"},
		{"GET", "/health", http.StatusOK, "healthy"},
		{"GET", "/health/", http.StatusOK, "healthy"},
		{"POST", "/health", http.StatusMethodNotAllowed, "json 405"},
		{"GET", "/missing", http.StatusNotFound, "json 404"},
	}

	handler := router.Handler()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			if got := rec.Body.String(); got != tt.body {
				t.Errorf("body: got %q, want %q", got, tt.body)
			}
		})
	}

	if hits != len(tests) {
		t.Errorf("router middleware hits: got %d, want %d", hits, len(tests))
	}
}
