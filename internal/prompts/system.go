package prompts

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/JaimeStill/promptmatch/internal/prompts"

// System defines the public contract for prompt matching.
type System interface {
	Handler() *Handler

	// Match validates fields and resolves them to a prompt.
	// Failures are typed errors classified by KindOf.
	Match(ctx context.Context, fields Fields) (PromptID, error)
}

type processor struct {
	matcher     Matcher
	logger      *slog.Logger
	tracer      trace.Tracer
	maxBodySize int64
}

// New creates a prompt matching System backed by matcher.
// maxBodySize bounds the request bodies accepted by the system's Handler.
func New(
	matcher Matcher,
	logger *slog.Logger,
	maxBodySize int64,
) System {
	return &processor{
		matcher:     matcher,
		logger:      logger.With("system", "prompts"),
		tracer:      otel.Tracer(tracerName),
		maxBodySize: maxBodySize,
	}
}

func (p *processor) Handler() *Handler {
	return NewHandler(p, p.logger, p.maxBodySize)
}

func (p *processor) Match(ctx context.Context, fields Fields) (id PromptID, err error) {
	ctx, span := p.tracer.Start(ctx, "prompts.match")

	defer func() {
		if r := recover(); r != nil {
			id = ""
			err = &InternalError{Err: fmt.Errorf("%v", r)}
			p.logger.ErrorContext(ctx, "match panicked", "panic", r)
		}

		if err != nil {
			span.SetAttributes(attribute.String("prompts.failure", string(KindOf(err))))
			span.SetStatus(codes.Error, err.Error())
		} else {
			span.SetAttributes(attribute.String("prompts.prompt", string(id)))
		}
		span.End()
	}()

	key, err := Validate(fields)
	if err != nil {
		return "", err
	}

	span.SetAttributes(
		attribute.String("prompts.situation", string(key.Situation)),
		attribute.String("prompts.level", string(key.Level)),
		attribute.String("prompts.file_type", string(key.FileType)),
	)

	id, err = p.matcher.Match(key)
	if err != nil {
		return "", err
	}

	p.logger.DebugContext(ctx, "prompt matched", "prompt", id)
	return id, nil
}
