package api

import (
	"bytes"
	"context"
	"embed"
	"net/http"
	"strings"
	"text/template"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed swagger/index.html
var swagFS embed.FS

// SwaggerHandler returns an http.Handler that serves the Swagger UI for doc
// on paths ending in "/" or "/index.html" and the raw document on paths
// ending in "/docs.json", so it works at any mount point. doc is validated
// first.
//
//	h, err := api.SwaggerHandler(doc)
//	...
//	r.Handle("/swagger/*", h)
func SwaggerHandler(doc *openapi3.T) (http.Handler, error) {
	if err := doc.Validate(context.Background()); err != nil {
		return nil, err
	}

	specJSON, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}

	tmpl, err := template.ParseFS(swagFS, "swagger/index.html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"Title": doc.Info.Title,
		"Docs":  string(specJSON),
	}); err != nil {
		return nil, err
	}
	index := buf.Bytes()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch p := r.URL.Path; {
		case strings.HasSuffix(p, "/"), strings.HasSuffix(p, "/index.html"):
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(index)
		case strings.HasSuffix(p, "/docs.json"):
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(specJSON)
		default:
			http.NotFound(w, r)
		}
	}), nil
}
