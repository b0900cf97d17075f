package handler

import (
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer adapts html/template to echo's Renderer interface
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses all templates matching the glob pattern
func NewTemplateRenderer(pattern string) (*TemplateRenderer, error) {
	templates, err := template.ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &TemplateRenderer{templates: templates}, nil
}

// Render executes the named template with the given data
func (r *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
