package view

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"gigboard/internal/domain/session"
	"gigboard/internal/domain/user"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer holds one parsed template set per page, each paired with the
// shared base layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "base.html" || !strings.HasSuffix(name, ".html") {
			continue
		}
		parsed, err := template.ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[strings.TrimSuffix(name, ".html")] = parsed
	}
	return &Renderer{pages: pages}, nil
}

// Data is what every template receives: the signed-in user (or nil),
// drained flashes, and page-specific content.
type Data struct {
	Title   string
	User    *user.User
	Flashes []session.Flash
	Page    any
}

func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data Data) {
	parsed, ok := r.pages[page]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := parsed.ExecuteTemplate(&buf, "base", data); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// NotFound renders the shared 404 page.
func (r *Renderer) NotFound(w http.ResponseWriter, data Data) {
	data.Title = "Page not found"
	r.Render(w, http.StatusNotFound, "not-found", data)
}
