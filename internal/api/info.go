package api

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/promptmatch/internal/prompts"
	"github.com/JaimeStill/promptmatch/pkg/handlers"
	"github.com/JaimeStill/promptmatch/pkg/lifecycle"
	"github.com/JaimeStill/promptmatch/pkg/openapi"
	"github.com/JaimeStill/promptmatch/pkg/routes"
)

const apiName = "Prompt Matching API"

// Info is the capability document served at the root path.
type Info struct {
	Message         string            `json:"message"`
	Version         string            `json:"version"`
	Endpoints       map[string]string `json:"endpoints"`
	SupportedValues SupportedValues   `json:"supported_values"`
}

// SupportedValues lists every accepted value per categorical field, in domain order.
type SupportedValues struct {
	Situation []prompts.Situation `json:"situation"`
	Level     []prompts.Level     `json:"level"`
	FileType  []prompts.FileType  `json:"file_type"`
}

// Health is the body served by the health and readiness checks.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

type infoHandler struct {
	version   string
	readiness lifecycle.ReadinessChecker
	logger    *slog.Logger
	endpoints map[string]string
}

func newInfoHandler(
	version string,
	readiness lifecycle.ReadinessChecker,
	logger *slog.Logger,
) *infoHandler {
	return &infoHandler{
		version:   version,
		readiness: readiness,
		logger:    logger.With("handler", "info"),
	}
}

// describe records the documented endpoints of groups for the capability document.
func (h *infoHandler) describe(groups ...routes.Group) {
	h.endpoints = routes.Endpoints(groups...)
}

func (h *infoHandler) routes() routes.Group {
	return routes.Group{
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{$}", Handler: h.index, OpenAPI: indexOperation},
			{Method: "GET", Pattern: "/health", Handler: h.health, OpenAPI: healthOperation},
			{Method: "GET", Pattern: "/readyz", Handler: h.ready, OpenAPI: readyOperation},
		},
	}
}

func (h *infoHandler) index(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Info{
		Message:   apiName,
		Version:   h.version,
		Endpoints: h.endpoints,
		SupportedValues: SupportedValues{
			Situation: prompts.Situations(),
			Level:     prompts.Levels(),
			FileType:  prompts.FileTypes(),
		},
	})
}

func (h *infoHandler) health(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Health{
		Status:  "healthy",
		Message: apiName + " is running",
	})
}

func (h *infoHandler) ready(w http.ResponseWriter, r *http.Request) {
	if h.readiness == nil || !h.readiness.Ready() {
		h.logger.Warn("readiness check failed")
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Health{Status: "not ready"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, Health{Status: "ready"})
}

func infoSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Info": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"message": {Type: "string", Example: apiName},
				"version": {Type: "string", Example: "1.0.0"},
				"endpoints": {
					Type:                 "object",
					Description:          "Method and path mapped to a description",
					AdditionalProperties: &openapi.Schema{Type: "string"},
				},
				"supported_values": {
					Type: "object",
					Properties: map[string]*openapi.Schema{
						prompts.FieldSituation: {Type: "array", Items: openapi.StringEnum("", prompts.Situations())},
						prompts.FieldLevel:     {Type: "array", Items: openapi.StringEnum("", prompts.Levels())},
						prompts.FieldFileType:  {Type: "array", Items: openapi.StringEnum("", prompts.FileTypes())},
					},
				},
			},
		},
		"Health": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*openapi.Schema{
				"status":  {Type: "string", Example: "healthy"},
				"message": {Type: "string"},
			},
		},
	}
}

var indexOperation = &openapi.Operation{
	Summary: "API information",
	Tags:    []string{"Service"},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Capability document", "Info"),
	},
}

var healthOperation = &openapi.Operation{
	Summary: "Health check endpoint",
	Tags:    []string{"Service"},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Service is running", "Health"),
	},
}

var readyOperation = &openapi.Operation{
	Summary: "Readiness check endpoint",
	Tags:    []string{"Service"},
	Responses: map[int]*openapi.Response{
		200: openapi.ResponseJSON("Startup completed", "Health"),
		503: openapi.ResponseJSON("Startup still in progress", "Health"),
	},
}
