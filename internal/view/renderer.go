package view

import (
	"embed"
	"fmt"
	"html"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("folio").
		Funcs(template.FuncMap{
			"reveal": revealAttrs,
			"icon":   icon,
		}).
		ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page.
func (r *Renderer) Render(w io.Writer, page *Page) error {
	if err := r.tmpl.ExecuteTemplate(w, "page", page); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}

// Static exposes the embedded CSS and JS.
func Static() fs.FS {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

// revealAttrs renders the attributes of a reveal wrapper. Values come from
// RevealView and are escaped here because the result is emitted as trusted
// attribute text.
func revealAttrs(r RevealView) template.HTMLAttr {
	var b strings.Builder
	b.WriteString(`class="`)
	b.WriteString(html.EscapeString(r.Class))
	b.WriteString(`"`)
	if r.Style != "" {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(r.Style))
		b.WriteString(`"`)
	}
	b.WriteString(` data-reveal="`)
	b.WriteString(strconv.FormatFloat(r.Threshold, 'f', -1, 64))
	b.WriteString(`"`)
	return template.HTMLAttr(b.String())
}
