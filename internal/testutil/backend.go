package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"go.uber.org/zap"
)

// Hit is one request the fake backend received.
type Hit struct {
	Method string
	Path   string
	Query  url.Values
	Body   string
	Auth   string
}

// Backend is an httptest server standing in for the hotel REST API.
// Routes are "METHOD /path" keys; unrouted requests get a 404.
type Backend struct {
	t      *testing.T
	srv    *httptest.Server
	mu     sync.Mutex
	routes map[string]http.HandlerFunc
	hits   []Hit
}

// NewBackend starts a fake backend that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{t: t, routes: map[string]http.HandlerFunc{}}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

// Handle registers h for method and path (no query string).
func (b *Backend) Handle(method, path string, h http.HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = h
}

// JSON registers a handler answering with status and v encoded as JSON.
func (b *Backend) JSON(method, path string, status int, v any) {
	b.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, status, v)
	})
}

// Client returns a backend.Client pointed at the fake.
func (b *Backend) Client() *backend.Client {
	return backend.New(b.srv.URL, 0, zap.NewNop(), backend.WithHTTPClient(b.srv.Client()))
}

// URL is the fake's origin.
func (b *Backend) URL() string { return b.srv.URL }

// Hits returns a copy of the requests received so far.
func (b *Backend) Hits() []Hit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Hit(nil), b.hits...)
}

// HitCount is len(Hits()).
func (b *Backend) HitCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.hits)
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.hits = append(b.hits, Hit{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Body:   string(body),
		Auth:   r.Header.Get("Authorization"),
	})
	h, ok := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		http.Error(w, "no route", http.StatusNotFound)
		return
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	h(w, r)
}

// WriteJSON writes v with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// PageOf wraps content in the backend's list envelope.
func PageOf[T any](content []T, totalPages int, totalElements int64) backend.Page[T] {
	return backend.Page[T]{Content: content, TotalPages: totalPages, TotalElements: totalElements}
}
