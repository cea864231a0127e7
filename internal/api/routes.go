package api

import "github.com/JaimeStill/promptmatch/pkg/routes"

func buildGroups(domain *Domain, runtime *Runtime) []routes.Group {
	info := newInfoHandler(
		runtime.Version,
		runtime.Lifecycle,
		runtime.Logger,
	)

	groups := []routes.Group{
		info.routes(),
		domain.Prompts.Handler().Routes(),
	}
	info.describe(groups...)

	return groups
}
