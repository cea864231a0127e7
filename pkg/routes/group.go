package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/promptmatch/pkg/openapi"
)

// Mux is the registration surface shared by http.ServeMux and the module router.
type Mux interface {
	HandleFunc(pattern string, handler func(http.ResponseWriter, *http.Request))
}

// Group organizes routes under a common prefix.
type Group struct {
	Prefix   string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux Mux, groups ...Group) {
	for _, group := range groups {
		walk("", group, func(path string, route Route) {
			mux.HandleFunc(route.Method+" "+path, route.Handler)
		})
	}
}

// Describe adds every route carrying an OpenAPI operation to spec.
// Exact-match suffixes ({$}) are dropped from documented paths.
func Describe(spec *openapi.Spec, groups ...Group) {
	for _, group := range groups {
		walk("", group, func(path string, route Route) {
			if route.OpenAPI == nil {
				return
			}
			spec.AddOperation(route.Method, strings.TrimSuffix(path, "{$}"), route.OpenAPI)
		})
	}
}

// Endpoints maps "METHOD /path" to the operation summary of every
// documented route.
func Endpoints(groups ...Group) map[string]string {
	endpoints := make(map[string]string)
	for _, group := range groups {
		walk("", group, func(path string, route Route) {
			if route.OpenAPI == nil {
				return
			}
			endpoints[route.Method+" "+strings.TrimSuffix(path, "{$}")] = route.OpenAPI.Summary
		})
	}
	return endpoints
}

func walk(parentPrefix string, group Group, fn func(path string, route Route)) {
	fullPrefix := parentPrefix + group.Prefix
	for _, route := range group.Routes {
		fn(fullPrefix+route.Pattern, route)
	}
	for _, child := range group.Children {
		walk(fullPrefix, child, fn)
	}
}
