package template

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"sync"
)

const baseTemplate = "base.html"

// Renderer parses a view together with the base layout the first time it is
// rendered and reuses the parsed result afterwards.
type Renderer struct {
	fsys fs.FS

	mu    sync.Mutex
	cache map[string]*template.Template
}

func NewRenderer(fsys fs.FS) *Renderer {
	return &Renderer{
		fsys:  fsys,
		cache: map[string]*template.Template{},
	}
}

func (r *Renderer) load(view string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.cache[view]; ok {
		return t, nil
	}

	t, err := template.ParseFS(r.fsys, view, baseTemplate)
	if err != nil {
		return nil, err
	}

	r.cache[view] = t
	return t, nil
}

// Loaded reports whether view has been parsed already.
func (r *Renderer) Loaded(view string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.cache[view]
	return ok
}

func (r *Renderer) Render(w http.ResponseWriter, view string, data any) error {
	t, err := r.load(view)
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}

	err = t.Execute(buf, data)
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err = buf.WriteTo(w)
	return err
}
