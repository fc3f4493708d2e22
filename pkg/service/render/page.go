// Package render turns dashboard descriptors into HTML pages and PNG
// chart images. It performs no computation on the plotted values.
package render

import (
	"html/template"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/frontend"
	"github.com/epiview/epiview/pkg/domain/model"
)

// Mount points the page template must define. Rendering refuses to
// start when one is absent instead of producing a half-empty page.
var requiredMounts = []string{"tiles", "charts"}

// Page renders the dashboard HTML from the embedded template
type Page struct {
	tmpl *template.Template
}

// pageData is the template context
type pageData struct {
	Dashboard *model.Dashboard

	// AssetPrefix is prepended to stylesheet paths, ChartPrefix to
	// chart image paths. They differ between served and exported pages.
	AssetPrefix string
	ChartPrefix string
}

// NewPage parses the embedded dashboard template and verifies all
// mount points are present
func NewPage() (*Page, error) {
	tfs, err := frontend.Templates()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded templates")
	}

	tmpl, err := template.ParseFS(tfs, "dashboard.html")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse dashboard template")
	}

	for _, mount := range requiredMounts {
		if tmpl.Lookup(mount) == nil {
			return nil, goerr.Wrap(model.ErrRenderTargetMissing, "page template lacks mount point",
				goerr.V("mount", mount))
		}
	}

	return &Page{tmpl: tmpl}, nil
}

// Render writes the dashboard page HTML
func (p *Page) Render(w io.Writer, d *model.Dashboard, assetPrefix, chartPrefix string) error {
	if d == nil {
		return goerr.New("dashboard is nil")
	}

	data := pageData{
		Dashboard:   d,
		AssetPrefix: assetPrefix,
		ChartPrefix: chartPrefix,
	}
	if err := p.tmpl.Execute(w, data); err != nil {
		return goerr.Wrap(err, "failed to render dashboard page")
	}
	return nil
}
