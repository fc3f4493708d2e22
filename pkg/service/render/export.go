package render

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/epiview/epiview/frontend"
	"github.com/epiview/epiview/pkg/domain/model"
)

const exportPageName = "covid_dashboard.html"

// Export writes a static copy of the dashboard into dir: the HTML
// page, the stylesheet, and one PNG per chart. The page references the
// images and stylesheet relatively so the directory is self-contained.
func Export(ctx context.Context, page *Page, d *model.Dashboard, dir string) error {
	if dir == "" {
		return goerr.Wrap(model.ErrRenderTargetMissing, "export directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return goerr.Wrap(err, "failed to create export directory", goerr.V("dir", dir))
	}

	logger := ctxlog.From(ctx)

	var buf bytes.Buffer
	if err := page.Render(&buf, d, "", ""); err != nil {
		return err
	}
	pagePath := filepath.Join(dir, exportPageName)
	if err := os.WriteFile(pagePath, buf.Bytes(), 0o644); err != nil {
		return goerr.Wrap(err, "failed to write dashboard page", goerr.V("path", pagePath))
	}
	logger.Info("Wrote dashboard page", "path", pagePath)

	css, err := fs.ReadFile(frontend.FS, "static/style.css")
	if err != nil {
		return goerr.Wrap(err, "failed to read embedded stylesheet")
	}
	if err := os.WriteFile(filepath.Join(dir, "style.css"), css, 0o644); err != nil {
		return goerr.Wrap(err, "failed to write stylesheet", goerr.V("dir", dir))
	}

	for i := range d.Charts {
		desc := &d.Charts[i]

		var img bytes.Buffer
		if err := PNG(&img, desc); err != nil {
			return err
		}
		imgPath := filepath.Join(dir, fmt.Sprintf("%s.png", desc.ID))
		if err := os.WriteFile(imgPath, img.Bytes(), 0o644); err != nil {
			return goerr.Wrap(err, "failed to write chart image", goerr.V("path", imgPath))
		}
		logger.Info("Wrote chart image", "path", imgPath, "chart", desc.ID)
	}

	return nil
}
