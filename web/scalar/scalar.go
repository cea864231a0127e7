// Package scalar serves the Scalar API reference page and the OpenAPI
// document it renders.
package scalar

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/promptmatch/pkg/module"
	"github.com/JaimeStill/promptmatch/pkg/openapi"
	"github.com/JaimeStill/promptmatch/pkg/web"
)

//go:embed index.html
var staticFS embed.FS

var index = template.Must(template.ParseFS(staticFS, "index.html"))

// Options configure the docs module.
type Options struct {
	Title            string
	Spec             []byte
	NotFound         http.HandlerFunc
	MethodNotAllowed http.HandlerFunc
}

// NewModule creates a module serving the reference page at basePath
// and the OpenAPI document at basePath + "/openapi.json".
func NewModule(basePath string, opts Options) (*module.Module, error) {
	page, err := render(basePath, opts.Title)
	if err != nil {
		return nil, err
	}

	router := web.NewRouter()
	router.SetNotFound(opts.NotFound)
	router.SetMethodNotAllowed(opts.MethodNotAllowed)

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})
	router.HandleFunc("GET /openapi.json", openapi.ServeSpec(opts.Spec))

	return module.New(basePath, router), nil
}

// NewSpecModule serializes spec and creates the docs module for it.
func NewSpecModule(basePath string, spec *openapi.Spec, opts Options) (*module.Module, error) {
	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	opts.Spec = data
	if opts.Title == "" {
		opts.Title = spec.Info.Title
	}
	return NewModule(basePath, opts)
}

func render(basePath, title string) ([]byte, error) {
	var buf bytes.Buffer
	err := index.Execute(&buf, map[string]string{
		"BasePath": basePath,
		"Title":    title,
	})
	return buf.Bytes(), err
}
