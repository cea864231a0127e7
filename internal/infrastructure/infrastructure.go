// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every domain system shares: lifecycle
// coordination, logging, and telemetry.
package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/pkg/lifecycle"
	"github.com/JaimeStill/promptmatch/pkg/logging"
	"github.com/JaimeStill/promptmatch/pkg/telemetry"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Telemetry *telemetry.Telemetry

	flushTimeout time.Duration
}

// New creates an Infrastructure from the application configuration,
// logging to stderr. Telemetry exporters are installed when configured.
func New(cfg *config.Config) (*Infrastructure, error) {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter is New with an explicit destination for console logs.
func NewWithWriter(cfg *config.Config, w io.Writer) (*Infrastructure, error) {
	lc := lifecycle.New()

	tel, err := telemetry.Setup(lc.Context(), &cfg.Telemetry)
	if err != nil {
		return nil, fmt.Errorf("telemetry init failed: %w", err)
	}

	logger := logging.NewWithProvider(
		&cfg.Logging,
		w,
		cfg.Telemetry.ServiceName,
		tel.LoggerProvider(),
	)

	return &Infrastructure{
		Lifecycle:    lc,
		Logger:       logger,
		Telemetry:    tel,
		flushTimeout: cfg.ShutdownTimeoutDuration(),
	}, nil
}

// Start registers infrastructure shutdown hooks with the lifecycle coordinator.
// Telemetry is flushed once the coordinator's context is cancelled.
func (i *Infrastructure) Start() error {
	if !i.Telemetry.Enabled() {
		i.Logger.Info("telemetry disabled")
		return nil
	}

	i.Lifecycle.OnShutdown(func() {
		<-i.Lifecycle.Context().Done()
		i.Logger.Info("flushing telemetry")

		ctx, cancel := context.WithTimeout(context.Background(), i.flushTimeout)
		defer cancel()

		if err := i.Telemetry.Shutdown(ctx); err != nil {
			i.Logger.Error("telemetry shutdown failed", "error", err)
			return
		}
	})

	return nil
}
