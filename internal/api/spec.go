package api

import (
	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/prompts"
	"github.com/JaimeStill/promptmatch/pkg/openapi"
	"github.com/JaimeStill/promptmatch/pkg/routes"
)

func buildSpec(cfg *config.Config, groups []routes.Group) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)

	spec.Components.AddSchemas(prompts.Schemas())
	spec.Components.AddSchemas(infoSchemas())
	spec.Components.AddResponses(prompts.Responses())

	routes.Describe(spec, groups...)
	return spec
}
