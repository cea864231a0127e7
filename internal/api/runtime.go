package api

import (
	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Version     string
	MaxBodySize int64
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Telemetry: infra.Telemetry,
		},
		Version:     cfg.Version,
		MaxBodySize: cfg.API.MaxBodySizeBytes(),
	}
}
