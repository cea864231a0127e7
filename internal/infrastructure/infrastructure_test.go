package infrastructure_test

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/infrastructure"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("PROMPTMATCH_OTEL_ENDPOINT", "")
	t.Setenv("PROMPTMATCH_LOG_FORMAT", "json")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func TestNewWithoutTelemetry(t *testing.T) {
	cfg := loadConfig(t)

	var buf bytes.Buffer
	infra, err := infrastructure.NewWithWriter(cfg, &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	if infra.Lifecycle == nil || infra.Logger == nil {
		t.Fatal("lifecycle and logger must be set")
	}
	if infra.Telemetry.Enabled() {
		t.Error("telemetry enabled without an endpoint")
	}

	if err := infra.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !strings.Contains(buf.String(), `"msg":"telemetry disabled"`) {
		t.Errorf("log output: %s", buf.String())
	}

	if err := infra.Lifecycle.Shutdown(time.Second); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestNewWithTelemetry(t *testing.T) {
	cfg := loadConfig(t)
	cfg.Telemetry.Endpoint = "http://127.0.0.1:1"
	cfg.ShutdownTimeout = "200ms"

	var buf bytes.Buffer
	infra, err := infrastructure.NewWithWriter(cfg, &buf)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if !infra.Telemetry.Enabled() {
		t.Fatal("telemetry disabled with an endpoint")
	}

	if err := infra.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	// The flush is bounded by the shutdown timeout even though the endpoint is unreachable.
	if err := infra.Lifecycle.Shutdown(5 * time.Second); err != nil {
		t.Errorf("shutdown: %v", err)
	}
	if !strings.Contains(buf.String(), "flushing telemetry") {
		t.Errorf("log output: %s", buf.String())
	}
}
