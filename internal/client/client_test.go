package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/promptmatch/internal/api"
	"github.com/JaimeStill/promptmatch/internal/client"
	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/infrastructure"
	"github.com/JaimeStill/promptmatch/internal/prompts"
)

func newService(t *testing.T) *client.Client {
	t.Helper()
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	infra, err := infrastructure.NewWithWriter(cfg, io.Discard)
	if err != nil {
		t.Fatalf("infrastructure: %v", err)
	}

	mux := http.NewServeMux()
	api.New(cfg, infra).Register(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL+"/", srv.Client())
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return c
}

func TestNewRejectsRelativeURL(t *testing.T) {
	for _, raw := range []string{"", "localhost:5000", "/match-prompt", "://bad"} {
		if _, err := client.New(raw, nil); err == nil {
			t.Errorf("New(%q) succeeded", raw)
		}
	}
}

func TestMatch(t *testing.T) {
	c := newService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		fields any
		want   client.Outcome
	}{
		{
			name: "success",
			fields: prompts.Request{
				Situation: "Commercial Auto",
				Level:     "Structure",
				FileType:  "Summary Report",
				Data:      "notes",
			},
			want: client.Outcome{Status: 200, Success: true, Prompt: "Prompt 1"},
		},
		{
			name:   "missing",
			fields: map[string]any{"situation": "Commercial Auto"},
			want: client.Outcome{
				Status:  400,
				Error:   "Missing Data",
				Message: "Missing Data: Required fields missing: level, file_type, data",
			},
		},
		{
			name: "invalid",
			fields: map[string]any{
				"situation": "Commercial Auto",
				"level":     "Outline",
				"file_type": "Summons",
				"data":      "x",
			},
			want: client.Outcome{
				Status:  422,
				Error:   "Invalid Prompt",
				Details: map[string]string{"level": "Invalid level. Must be one of: Structure, Summarize"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Match(ctx, tt.fields)
			if err != nil {
				t.Fatalf("match: %v", err)
			}
			if diff := cmp.Diff(tt.want, *got); diff != "" {
				t.Errorf("outcome (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMatchRaw(t *testing.T) {
	c := newService(t)

	got, err := c.MatchRaw(context.Background(), "text/plain", []byte("not json"))
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	want := client.Outcome{Status: 400, Error: "Missing Data", Message: "Request must contain JSON data"}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("outcome (-want +got):\n%s", diff)
	}
}

func TestHealthAndInfo(t *testing.T) {
	c := newService(t)
	ctx := context.Background()

	h, err := c.Health(ctx)
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if h.Status != "healthy" {
		t.Errorf("status: got %q", h.Status)
	}

	info, err := c.Info(ctx)
	if err != nil {
		t.Fatalf("info: %v", err)
	}
	if info.Version != "1.0.0" {
		t.Errorf("version: got %q", info.Version)
	}
	if len(info.SupportedValues.FileType) != 4 {
		t.Errorf("file types: got %v", info.SupportedValues.FileType)
	}
}

func TestDo(t *testing.T) {
	c := newService(t)

	resp, err := c.Do(context.Background(), http.MethodGet, "/health", "", nil)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if resp.Status != http.StatusOK {
		t.Errorf("status: got %d", resp.Status)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	var h api.Health
	if err := resp.JSON(&h); err != nil {
		t.Fatalf("json: %v", err)
	}
	if h.Message != "Prompt Matching API is running" {
		t.Errorf("message: got %q", h.Message)
	}
}

func TestErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	c, err := client.New(srv.URL, srv.Client())
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Health(ctx); err == nil || !strings.Contains(err.Error(), "unexpected status 503") {
		t.Errorf("health error: got %v", err)
	}
	if _, err := c.Match(ctx, map[string]string{}); err == nil || !strings.Contains(err.Error(), "decode 200 response") {
		t.Errorf("match error: got %v", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := c.Info(cancelled); err == nil {
		t.Error("info succeeded with cancelled context")
	}
}
