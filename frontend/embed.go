package frontend

import (
	"embed"
	"io/fs"
	"net/http"
)

// FS embeds the dashboard page template and static assets
//
//go:embed templates static
var FS embed.FS

// Templates returns the filesystem holding page templates
func Templates() (fs.FS, error) {
	return fs.Sub(FS, "templates")
}

// StaticHTTPFS returns the embedded static assets for HTTP serving
func StaticHTTPFS() (http.FileSystem, error) {
	sub, err := fs.Sub(FS, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
