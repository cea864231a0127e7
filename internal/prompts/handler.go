package prompts

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/JaimeStill/promptmatch/pkg/formatting"
	"github.com/JaimeStill/promptmatch/pkg/handlers"
	"github.com/JaimeStill/promptmatch/pkg/openapi"
	"github.com/JaimeStill/promptmatch/pkg/routes"
)

// Handler provides the HTTP endpoint for prompt matching.
type Handler struct {
	sys         System
	logger      *slog.Logger
	maxBodySize int64
}

// NewHandler creates a Handler with the given system, logger, and body size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	maxBodySize int64,
) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "prompts"),
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/match-prompt",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Match, OpenAPI: matchOperation},
		},
	}
}

// Match decodes a JSON body and resolves it to a prompt.
// Bodies that are not JSON objects are rejected before matching.
func (h *Handler) Match(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(w, r, h.maxBodySize)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	id, err := h.sys.Match(r.Context(), fields)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "prompt matched", "prompt", id)
	handlers.RespondJSON(w, http.StatusOK, Response{Success: true, Prompt: id})
}

func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapHTTPStatus(err)

	if errors.Is(err, ErrBodyTooLarge) {
		handlers.RespondStatus(w, h.logger, status, err.Error())
		return
	}

	failure := handlers.Failure{Error: string(KindOf(err))}

	var fields FieldErrors
	if errors.As(err, &fields) {
		failure.Details = fields
	} else {
		failure.Message = err.Error()
	}

	handlers.RespondFailure(w, h.logger.With("path", r.URL.Path), status, failure)
}

func decodeFields(w http.ResponseWriter, r *http.Request, limit int64) (Fields, error) {
	if !isJSON(r.Header.Get("Content-Type")) {
		return nil, ErrNotJSON
	}

	body := io.Reader(r.Body)
	if limit > 0 {
		body = http.MaxBytesReader(w, r.Body, limit)
	}

	dec := json.NewDecoder(body)

	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyBody
		}
		return nil, decodeError(err, limit)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, decodeError(err, limit)
	}

	switch obj := v.(type) {
	case nil:
		return nil, ErrEmptyBody
	case map[string]any:
		return Fields(obj), nil
	default:
		return nil, ErrNotObject
	}
}

func decodeError(err error, limit int64) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return fmt.Errorf("%w: limit is %s", ErrBodyTooLarge, formatting.FormatBytes(limit, 0))
	}
	return ErrInvalidJSON
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if mediaType == "application/json" {
		return true
	}
	return strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json")
}

var matchOperation = &openapi.Operation{
	Summary:     "Match a system prompt based on input criteria",
	Description: "Resolves situation, level and file_type to one of the predefined prompts.",
	Tags:        []string{"Prompts"},
	RequestBody: openapi.RequestBodyJSON("MatchRequest", true),
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Matched prompt", "MatchResponse"),
		400: openapi.ResponseRef("MissingData"),
		413: openapi.ResponseRef("PayloadTooLarge"),
		422: openapi.ResponseRef("InvalidPrompt"),
		500: openapi.ResponseRef("InternalError"),
	},
}
