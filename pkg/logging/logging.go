// Package logging builds the service's slog logger.
//
// Console output is text or JSON. When an OpenTelemetry logger provider is
// supplied, every record is also bridged to it through otelslog.
package logging

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"
)

// New creates a logger writing to w using the configured format and level.
func New(cfg *Config, w io.Writer) *slog.Logger {
	return slog.New(NewTraceHandler(console(cfg, w)))
}

// NewWithProvider creates a logger that writes to w and also exports
// records through the given OpenTelemetry logger provider.
// A nil provider yields the same logger as New.
func NewWithProvider(cfg *Config, w io.Writer, name string, provider log.LoggerProvider) *slog.Logger {
	if provider == nil {
		return New(cfg, w)
	}
	bridge := otelslog.NewHandler(name, otelslog.WithLoggerProvider(provider))
	return slog.New(fanout{
		NewTraceHandler(console(cfg, w)),
		leveled{Handler: bridge, level: cfg.SlogLevel()},
	})
}

func console(cfg *Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

// leveled applies a minimum level to a handler that has none of its own.
type leveled struct {
	slog.Handler
	level slog.Level
}

func (h leveled) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.level && h.Handler.Enabled(ctx, l)
}

func (h leveled) WithAttrs(attrs []slog.Attr) slog.Handler {
	return leveled{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h leveled) WithGroup(name string) slog.Handler {
	return leveled{Handler: h.Handler.WithGroup(name), level: h.level}
}

// fanout sends each record to every enabled handler.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, l slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, l) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}
