// Package view holds the embedded HTML templates and static assets.
package view

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. Each page is addressable by its file
// name, e.g. "index.html"; layout.html only contributes the header and footer.
func Templates() (*template.Template, error) {
	return template.ParseFS(templateFS, "templates/*.html")
}

// Static returns the embedded assets rooted at the static directory.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static is embedded above, Sub cannot fail on it
		panic(err)
	}
	return http.FS(sub)
}
