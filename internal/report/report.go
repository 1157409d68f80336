// Package report renders an aggregated collection into a Typst spending report:
// budget overview, a 12-month column chart, and per-window category tables
// with allowance colouring.
package report

import (
	"embed"
	"fmt"
	"io"
	"os"
	"text/template"

	"battista/internal/core"
	"battista/internal/stats"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Options carries presentation inputs that are not part of the statistics.
type Options struct {
	SourcePath string
	Version    string
}

// Render writes the full Typst document for the collection.
func Render(w io.Writer, c *stats.Collection, budget core.Budget, today core.Date, opts Options) error {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}
	doc := buildDocument(c, budget, today, opts)
	if err := tmpl.ExecuteTemplate(w, "report.typ.tmpl", doc); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

// WriteFile renders the report to path.
func WriteFile(path string, c *stats.Collection, budget core.Budget, today core.Date, opts Options) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := Render(fh, c, budget, today, opts); err != nil {
		fh.Close()
		return err
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
