// Package api assembles the prompt matching API: domain systems, the
// service information endpoints, and the OpenAPI document describing them.
package api

import (
	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/infrastructure"
	"github.com/JaimeStill/promptmatch/pkg/openapi"
	"github.com/JaimeStill/promptmatch/pkg/routes"
)

// API holds the assembled route groups and their OpenAPI description.
type API struct {
	Groups []routes.Group
	Spec   *openapi.Spec
}

// New builds every API route group from the configuration and infrastructure.
// Routes are registered separately with Register.
func New(cfg *config.Config, infra *infrastructure.Infrastructure) *API {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)
	groups := buildGroups(domain, runtime)

	return &API{
		Groups: groups,
		Spec:   buildSpec(cfg, groups),
	}
}

// Register adds every API route to mux.
func (a *API) Register(mux routes.Mux) {
	routes.Register(mux, a.Groups...)
}
