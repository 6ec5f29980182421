// Package view parses the HTML templates and renders pages through the shared layout.
//
// Templates live in three directories under the root: layouts/ defines "base",
// partials/ holds named fragments, and every file in pages/ is one page that
// defines "content". Each page is parsed into its own clone of the shared set
// so pages can reuse block names.
package view

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"trenchsniffer.io/web/internal/icons"
	"trenchsniffer.io/web/internal/motion"
)

// ErrTemplateNotFound is returned when rendering a page that was not parsed.
var ErrTemplateNotFound = errors.New("view: template not found")

const (
	layoutsDir  = "layouts"
	partialsDir = "partials"
	pagesDir    = "pages"
	ext         = ".tmpl"
	entry       = "base"
)

// Funcs is the function map every template can use.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"now":  time.Now,
		"icon": icons.HTML,
		"animate": func(ts ...motion.Transition) template.CSS {
			return template.CSS(motion.Style(ts...))
		},
		"jsonld": func(s string) template.JS { return template.JS(s) },
		"add":    func(a, b int) int { return a + b },
	}
}

// Renderer holds one parsed template set per page. It is safe for concurrent use.
type Renderer struct {
	fsys fs.FS
	name string

	mu    sync.RWMutex
	pages map[string]*template.Template
}

// New parses the templates under dir.
func New(dir string) (*Renderer, error) {
	return NewFS(os.DirFS(dir), dir)
}

// NewFS parses templates from fsys. name identifies the source in errors.
func NewFS(fsys fs.FS, name string) (*Renderer, error) {
	r := &Renderer{fsys: fsys, name: name}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload reparses every template. On failure the previous set stays active.
func (r *Renderer) Reload() error {
	pages, err := parse(r.fsys, r.name)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.pages = pages
	r.mu.Unlock()
	return nil
}

// Pages lists the parsed page names in sorted order.
func (r *Renderer) Pages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.pages))
	for name := range r.pages {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render executes page through the layout into w. Output is buffered so a
// failed execution writes nothing.
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	r.mu.RLock()
	t, ok := r.pages[page]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, entry, data); err != nil {
		return fmt.Errorf("view: execute %s: %w", page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderHTTP writes page with the given status, or a 500 when rendering fails.
func (r *Renderer) RenderHTTP(w http.ResponseWriter, status int, page string, data any) error {
	var buf bytes.Buffer
	if err := r.Render(&buf, page, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

func parse(fsys fs.FS, name string) (map[string]*template.Template, error) {
	shared, err := collect(fsys, layoutsDir, partialsDir)
	if err != nil {
		return nil, err
	}
	pageFiles, err := collect(fsys, pagesDir)
	if err != nil {
		return nil, err
	}
	if len(shared) == 0 || len(pageFiles) == 0 {
		return nil, fmt.Errorf("view: no templates found under %s", name)
	}

	base, err := template.New("_root").Funcs(Funcs()).ParseFS(fsys, shared...)
	if err != nil {
		return nil, fmt.Errorf("view: parse layouts: %w", err)
	}
	if base.Lookup(entry) == nil {
		return nil, fmt.Errorf("%w: layout %q under %s", ErrTemplateNotFound, entry, name)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, file := range pageFiles {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("view: clone layout: %w", err)
		}
		if _, err := t.ParseFS(fsys, file); err != nil {
			return nil, fmt.Errorf("view: parse %s: %w", file, err)
		}
		pages[strings.TrimSuffix(path.Base(file), ext)] = t
	}
	return pages, nil
}

// collect walks dirs recursively for template files. ParseGlob doesn't support **.
func collect(fsys fs.FS, dirs ...string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) && p == dir {
					return fs.SkipDir
				}
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ext) {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("view: walk %s: %w", dir, err)
		}
	}
	return files, nil
}
