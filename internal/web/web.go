// Package web holds the embedded dashboard page and its static assets.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

//go:embed templates/index.html
var templates embed.FS

//go:embed static
var static embed.FS

// Filter is one dropdown on the dashboard, bound to a document field.
type Filter struct {
	ID    string
	Label string
	Field string
}

// IndexData is the data rendered into the index page.
type IndexData struct {
	Title      string
	Version    string
	DataScript string
	Filters    []Filter
}

// DefaultFilters are the dashboard dropdowns.
var DefaultFilters = []Filter{
	{ID: "end-year", Label: "End year", Field: "end_year"},
	{ID: "topic", Label: "Topic", Field: "topic"},
	{ID: "sector", Label: "Sector", Field: "sector"},
	{ID: "region", Label: "Region", Field: "region"},
	{ID: "pestle", Label: "PESTLE", Field: "pestle"},
	{ID: "source", Label: "Source", Field: "source"},
	{ID: "country", Label: "Country", Field: "country"},
}

// RenderIndex renders the index page once. The result is served verbatim on every request.
func RenderIndex(data IndexData) ([]byte, error) {
	tmpl, err := template.ParseFS(templates, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render index template: %w", err)
	}
	return buf.Bytes(), nil
}

// Static returns the static asset tree rooted at static/.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// static is embedded at compile time; Sub only fails on an invalid path.
		panic(err)
	}
	return sub
}
