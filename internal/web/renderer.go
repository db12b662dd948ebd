// Package web holds the embedded HTML templates and the gin renderer that
// serves them. Every page is parsed together with layout.html and rendered
// through its "layout" template.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"

	"github.com/gin-gonic/gin/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

const layoutFile = "templates/layout.html"

var funcs = template.FuncMap{
	// errorDe returns the message for a form field, or "".
	"errorDe": func(errores map[string]string, campo string) string {
		return errores[campo]
	},
	"siNo": func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	},
}

// Renderer implements gin's render.HTMLRender over one template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses every embedded page. Page names are file names without
// the .html suffix, e.g. "login" or "niveles_form".
func NewRenderer() (*Renderer, error) {
	files, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(files))}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		t, err := template.New(path.Base(f)).Funcs(funcs).ParseFS(templatesFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		r.pages[strings.TrimSuffix(path.Base(f), ".html")] = t
	}
	return r, nil
}

// MustNewRenderer is NewRenderer for the composition root and tests.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Instance implements render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	t, ok := r.pages[name]
	if !ok {
		t = template.Must(template.New("missing").Parse(`{{define "layout"}}plantilla desconocida{{end}}`))
	}
	return render.HTML{Template: t, Name: "layout", Data: data}
}

// Pages lists the parsed page names.
func (r *Renderer) Pages() []string {
	names := make([]string, 0, len(r.pages))
	for n := range r.pages {
		names = append(names, n)
	}
	return names
}
