// Package web renderiza las páginas HTML. Los templates van embebidos en el
// binario; cada página se parsea junto con base.html.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"

	"cat-collector/internal/middleware"
	"cat-collector/internal/platform/logger"
	"cat-collector/internal/platform/validate"

	chimw "github.com/go-chi/chi/v5/middleware"
)

//go:embed templates
var templatesFS embed.FS

const baseTemplate = "templates/base.html"

// Page es el contexto común de todos los templates.
type Page struct {
	Title string

	// Se completan en Render.
	LoggedIn bool
	Username string

	// Form: valores a re-mostrar tras un POST inválido.
	Form   map[string]string
	Errors validate.FieldErrors
	// Message: error general (login/signup).
	Message string
	Next    string

	Data any
}

// Value devuelve el valor del formulario para name (o "").
func (p Page) Value(name string) string {
	if p.Form == nil {
		return ""
	}
	return p.Form[name]
}

func (p Page) Error(name string) string {
	if p.Errors == nil {
		return ""
	}
	return p.Errors[name]
}

type Renderer struct {
	pages map[string]*template.Template
	log   logger.Logger
}

func NewRenderer(log logger.Logger) (*Renderer, error) {
	if log == nil {
		log = logger.Nop()
	}

	r := &Renderer{
		pages: make(map[string]*template.Template),
		log:   log,
	}

	err := fs.WalkDir(templatesFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || path == baseTemplate || !strings.HasSuffix(path, ".html") {
			return nil
		}

		name := strings.TrimPrefix(path, "templates/")
		t, err := template.New("base.html").Funcs(funcs).ParseFS(templatesFS, baseTemplate, path)
		if err != nil {
			return fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

// MustRenderer es para tests y main: los templates están embebidos, un
// error aquí es de build.
func MustRenderer(log logger.Logger) *Renderer {
	r, err := NewRenderer(log)
	if err != nil {
		panic(err)
	}
	return r
}

// Render ejecuta la página en un buffer y solo escribe si no hubo error.
func (rn *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, p Page) {
	t, ok := rn.pages[name]
	if !ok {
		rn.ServerError(w, r, fmt.Errorf("template %q not found", name))
		return
	}

	if c, ok := middleware.GetClaims(r.Context()); ok {
		p.LoggedIn = true
		p.Username = c.Username
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base.html", p); err != nil {
		rn.ServerError(w, r, fmt.Errorf("execute %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (rn *Renderer) NotFound(w http.ResponseWriter, r *http.Request) {
	rn.Render(w, r, http.StatusNotFound, "errors/404.html", Page{Title: "Not found"})
}

// ServerError loguea el error con el request id y responde 500 sin detalles.
func (rn *Renderer) ServerError(w http.ResponseWriter, r *http.Request, err error) {
	rn.log.Error("request failed", map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"error":      err,
	})
	http.Error(w, "internal error", http.StatusInternalServerError)
}

var funcs = template.FuncMap{
	"date": func(v interface{ Format(string) string }) string {
		return v.Format("2006-01-02")
	},
}
