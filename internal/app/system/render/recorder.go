package render

import (
	"fmt"
	"net/http"
	"sync"
)

// Call is one render captured by Recorder.
type Call struct {
	Name    string
	Data    any
	Snippet bool
}

// Recorder is a Renderer that remembers what it was asked to draw and
// writes a marker comment instead of HTML. Handler tests install it with Use.
type Recorder struct {
	mu    sync.Mutex
	calls []Call
}

func (rec *Recorder) Page(w http.ResponseWriter, _ *http.Request, name string, data any) {
	rec.add(Call{Name: name, Data: data})
	fmt.Fprintf(w, "<!-- page:%s -->", name)
}

func (rec *Recorder) Snippet(w http.ResponseWriter, name string, data any) {
	rec.add(Call{Name: name, Data: data, Snippet: true})
	fmt.Fprintf(w, "<!-- snippet:%s -->", name)
}

func (rec *Recorder) add(c Call) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.calls = append(rec.calls, c)
}

// Calls returns the captured renders in order.
func (rec *Recorder) Calls() []Call {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return append([]Call(nil), rec.calls...)
}

// Last returns the most recent render, or a zero Call.
func (rec *Recorder) Last() Call {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if len(rec.calls) == 0 {
		return Call{}
	}
	return rec.calls[len(rec.calls)-1]
}
