package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/promptmatch/internal/api"
	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/infrastructure"
	"github.com/JaimeStill/promptmatch/internal/prompts"
)

type fixture struct {
	api   *api.API
	infra *infrastructure.Infrastructure
	mux   *http.ServeMux
}

func setup(t *testing.T) *fixture {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvPromptMatchVersion, "2.3.4")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	infra, err := infrastructure.NewWithWriter(cfg, io.Discard)
	if err != nil {
		t.Fatalf("infrastructure: %v", err)
	}

	a := api.New(cfg, infra)
	mux := http.NewServeMux()
	a.Register(mux)

	return &fixture{api: a, infra: infra, mux: mux}
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.mux.ServeHTTP(rec, req)
	return rec
}

func TestIndex(t *testing.T) {
	f := setup(t)
	rec := f.do("GET", "/", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var got api.Info
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := api.Info{
		Message: "Prompt Matching API",
		Version: "2.3.4",
		Endpoints: map[string]string{
			"GET /":              "API information",
			"GET /health":        "Health check endpoint",
			"GET /readyz":        "Readiness check endpoint",
			"POST /match-prompt": "Match a system prompt based on input criteria",
		},
		SupportedValues: api.SupportedValues{
			Situation: prompts.Situations(),
			Level:     prompts.Levels(),
			FileType:  prompts.FileTypes(),
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("info (-want +got):\n%s", diff)
	}
}

func TestIndexIsExact(t *testing.T) {
	f := setup(t)
	if rec := f.do("GET", "/unknown", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHealth(t *testing.T) {
	f := setup(t)
	rec := f.do("GET", "/health", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var got map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := map[string]string{"status": "healthy", "message": "Prompt Matching API is running"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("health (-want +got):\n%s", diff)
	}
}

func TestReadiness(t *testing.T) {
	f := setup(t)

	rec := f.do("GET", "/readyz", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("before startup: got %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}

	if err := f.infra.Lifecycle.WaitForStartup(); err != nil {
		t.Fatalf("startup: %v", err)
	}

	rec = f.do("GET", "/readyz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("after startup: got %d, want %d", rec.Code, http.StatusOK)
	}

	var got api.Health
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != "ready" {
		t.Errorf("status: got %q, want ready", got.Status)
	}
}

func TestMatchPrompt(t *testing.T) {
	f := setup(t)
	rec := f.do("POST", "/match-prompt", `{"situation":"Workers Compensation","level":"Structure","file_type":"Medical Records","data":"x"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}

	var got prompts.Response
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Success || got.Prompt != "Prompt 4" {
		t.Errorf("response: got %+v", got)
	}
}

func TestSpec(t *testing.T) {
	f := setup(t)
	spec := f.api.Spec

	if spec.Info.Title != "Prompt Matching API" {
		t.Errorf("title: got %q", spec.Info.Title)
	}
	if spec.Info.Version != "2.3.4" {
		t.Errorf("version: got %q", spec.Info.Version)
	}

	for _, path := range []string{"/", "/health", "/readyz", "/match-prompt"} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("spec missing path %s", path)
		}
	}

	for _, name := range []string{"MatchRequest", "MatchResponse", "Info", "Health"} {
		if _, ok := spec.Components.Schemas[name]; !ok {
			t.Errorf("spec missing schema %s", name)
		}
	}
}
