package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"js-portal/pkg/services"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// FuncMap exposes the presentation lookups to the templates.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"number":             services.FormatNumber,
		"won":                services.FormatWon,
		"categoryBadge":      services.CategoryBadge,
		"statusBadge":        services.StatusBadge,
		"keywordStatusBadge": services.KeywordStatusBadge,
		"batchBadge":         services.BatchHealthBadge,
		"articlePath":        services.ArticlePath,
		"adminArticlePath":   services.AdminArticlePath,
		"keywordPath":        services.KeywordFilterPath,
		"tagPath":            services.TagFilterPath,
	}
}

// Templates parses every page template together with the shared layout blocks.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// Static serves the bundled stylesheet and images.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
