// Package render is the single presentation entry point. Handlers render
// through it instead of calling the template engine directly, so every page
// shares one layout and tests can capture what would have been drawn.
package render

import (
	"net/http"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Renderer draws named templates.
type Renderer interface {
	// Page renders a full page (layout included).
	Page(w http.ResponseWriter, r *http.Request, name string, data any)
	// Snippet renders a fragment for HTMX swaps.
	Snippet(w http.ResponseWriter, name string, data any)
}

type engine struct{}

func (engine) Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	templates.Render(w, r, name, data)
}

func (engine) Snippet(w http.ResponseWriter, name string, data any) {
	templates.RenderSnippet(w, name, data)
}

var (
	mu      sync.RWMutex
	current Renderer = engine{}
)

// Use swaps the renderer and returns a func restoring the previous one.
func Use(rn Renderer) (restore func()) {
	mu.Lock()
	prev := current
	current = rn
	mu.Unlock()
	return func() {
		mu.Lock()
		current = prev
		mu.Unlock()
	}
}

func get() Renderer {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Page renders a full page with the current renderer.
func Page(w http.ResponseWriter, r *http.Request, name string, data any) {
	get().Page(w, r, name, data)
}

// Snippet renders a fragment with the current renderer.
func Snippet(w http.ResponseWriter, name string, data any) {
	get().Snippet(w, name, data)
}

// Auto renders a snippet for HTMX requests and a full page otherwise.
func Auto(w http.ResponseWriter, r *http.Request, page, snippet string, data any) {
	if IsHTMX(r) && snippet != "" {
		Snippet(w, snippet, data)
		return
	}
	Page(w, r, page, data)
}

// IsHTMX reports whether r was issued by htmx.
func IsHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
