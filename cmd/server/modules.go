package main

import (
	"net/http"

	"github.com/JaimeStill/promptmatch/internal/api"
	"github.com/JaimeStill/promptmatch/internal/config"
	"github.com/JaimeStill/promptmatch/internal/infrastructure"
	"github.com/JaimeStill/promptmatch/pkg/handlers"
	"github.com/JaimeStill/promptmatch/pkg/middleware"
	"github.com/JaimeStill/promptmatch/pkg/module"
	"github.com/JaimeStill/promptmatch/web/scalar"
)

const docsPrefix = "/docs"

// buildHandler assembles the root router: API routes at the root, the docs
// module under /docs, JSON fallbacks, and the global middleware stack.
func buildHandler(cfg *config.Config, infra *infrastructure.Infrastructure) (http.Handler, error) {
	notFound := handlers.NotFound(infra.Logger)
	methodNotAllowed := handlers.MethodNotAllowed(infra.Logger)

	router := module.NewRouter()
	router.SetNotFound(notFound)
	router.SetMethodNotAllowed(methodNotAllowed)

	a := api.New(cfg, infra)
	a.Register(router)

	docs, err := scalar.NewSpecModule(docsPrefix, a.Spec, scalar.Options{
		NotFound:         notFound,
		MethodNotAllowed: methodNotAllowed,
	})
	if err != nil {
		return nil, err
	}
	router.Mount(docs)

	if infra.Telemetry.Enabled() {
		router.Use(middleware.Trace(cfg.Telemetry.ServiceName))
	}
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(infra.Logger.With("system", "access")))
	router.Use(middleware.Recovery(infra.Logger))
	router.Use(middleware.CORS(&cfg.API.CORS))

	return router.Handler(), nil
}
