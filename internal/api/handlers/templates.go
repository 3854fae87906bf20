package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templatesFS embed.FS

// pageTemplates holds all dashboard page templates, parsed once at startup.
var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// renderPage executes the named page template with the given data. The page
// is rendered into a buffer first so that a template error can still produce
// a clean 500 response instead of a half-written page.
func renderPage(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		slog.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderMarkdown converts generated article Markdown to HTML for the read
// view. On conversion failure the raw text is shown preformatted rather
// than dropping the content.
func renderMarkdown(md string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		slog.Warn("failed to convert markdown", "error", err)
		return template.HTML("<pre>" + template.HTMLEscapeString(md) + "</pre>")
	}
	return template.HTML(buf.String())
}
