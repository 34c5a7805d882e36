package api

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/yuin/goldmark"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed about.md
var aboutMarkdown []byte

type pages struct {
	search *template.Template
	about  *template.Template

	// aboutHTML is the rendered about.md.
	aboutHTML template.HTML
}

func mustParsePages() *pages {
	p, err := parsePages()
	if err != nil {
		panic(err)
	}
	return p
}

func parsePages() (*pages, error) {
	search, err := template.ParseFS(templateFS, "templates/layout.html", "templates/search.html")
	if err != nil {
		return nil, err
	}
	about, err := template.ParseFS(templateFS, "templates/layout.html", "templates/about.html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := goldmark.Convert(aboutMarkdown, &buf); err != nil {
		return nil, err
	}

	return &pages{
		search:    search,
		about:     about,
		aboutHTML: template.HTML(buf.String()),
	}, nil
}
