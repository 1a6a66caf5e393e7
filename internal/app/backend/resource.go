package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// StatusMode selects how a resource's status endpoint takes the new value.
type StatusMode int

const (
	// StatusPatchQuery sends PATCH /api/{resource}/{id}/status?status=X.
	StatusPatchQuery StatusMode = iota
	// StatusPutBody sends PUT /api/{resource}/{id}/status with the raw
	// status string as the body.
	StatusPutBody
)

// PageQuery is a list request in backend terms: Page is 0-based.
type PageQuery struct {
	Page    int
	Size    int
	Filters map[string]string
}

// Values encodes the query. Empty filter values are omitted.
func (q PageQuery) Values() url.Values {
	v := url.Values{}
	page := q.Page
	if page < 0 {
		page = 0
	}
	v.Set("page", strconv.Itoa(page))
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	for k, val := range q.Filters {
		if val = strings.TrimSpace(val); val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Page is the backend's paged list envelope.
type Page[T any] struct {
	Content       []T   `json:"content"`
	TotalPages    int   `json:"totalPages"`
	TotalElements int64 `json:"totalElements"`
}

// Resource is the typed client for one /api/{name} collection.
type Resource[T any] struct {
	client     *Client
	name       string
	statusMode StatusMode
}

// NewResource binds a collection name such as "folios".
func NewResource[T any](c *Client, name string, mode StatusMode) *Resource[T] {
	return &Resource[T]{client: c, name: strings.Trim(name, "/"), statusMode: mode}
}

// Name is the collection segment.
func (r *Resource[T]) Name() string { return r.name }

// StatusMode reports how SetStatus sends the new value.
func (r *Resource[T]) StatusMode() StatusMode { return r.statusMode }

func (r *Resource[T]) path(id int64, tail ...string) string {
	p := "/api/" + r.name
	if id > 0 {
		p += "/" + strconv.FormatInt(id, 10)
	}
	for _, t := range tail {
		p += "/" + t
	}
	return p
}

// List fetches one page.
func (r *Resource[T]) List(ctx context.Context, token string, q PageQuery) (Page[T], error) {
	var page Page[T]
	err := r.client.do(ctx, call{
		resource: r.name,
		method:   http.MethodGet,
		path:     r.path(0),
		query:    q.Values(),
		token:    token,
	}, &page)
	if err != nil {
		return Page[T]{}, err
	}
	if page.Content == nil {
		page.Content = []T{}
	}
	return page, nil
}

// ListAll walks pages from the first until the backend runs out or max
// records have been collected. It returns the records and the backend's
// total element count.
func (r *Resource[T]) ListAll(ctx context.Context, token string, q PageQuery, max int) ([]T, int64, error) {
	if q.Size <= 0 {
		q.Size = 100
	}
	q.Page = 0
	var (
		out   []T
		total int64
	)
	for {
		page, err := r.List(ctx, token, q)
		if err != nil {
			return nil, 0, err
		}
		total = page.TotalElements
		out = append(out, page.Content...)
		if max > 0 && len(out) >= max {
			return out[:max], total, nil
		}
		q.Page++
		if len(page.Content) == 0 || q.Page >= page.TotalPages {
			return out, total, nil
		}
	}
}

// Count returns the number of records matching filters by asking for a
// one-row page.
func (r *Resource[T]) Count(ctx context.Context, token string, filters map[string]string) (int64, error) {
	page, err := r.List(ctx, token, PageQuery{Size: 1, Filters: filters})
	if err != nil {
		return 0, err
	}
	return page.TotalElements, nil
}

// Count is Resource.Count for a collection known only by name.
func (c *Client) Count(ctx context.Context, token, name string) (int64, error) {
	return NewResource[json.RawMessage](c, name, StatusPatchQuery).Count(ctx, token, nil)
}

// Get fetches one record.
func (r *Resource[T]) Get(ctx context.Context, token string, id int64) (T, error) {
	var out T
	err := r.client.do(ctx, call{
		resource: r.name,
		method:   http.MethodGet,
		path:     r.path(id),
		token:    token,
	}, &out)
	return out, err
}

// Update replaces a record with PUT and returns the backend's version.
func (r *Resource[T]) Update(ctx context.Context, token string, id int64, body any) (T, error) {
	var out T
	b, err := jsonBody(body)
	if err != nil {
		return out, err
	}
	err = r.client.do(ctx, call{
		resource: r.name,
		method:   http.MethodPut,
		path:     r.path(id),
		token:    token,
		body:     b,
	}, &out)
	return out, err
}

// Patch sends an RFC 7386 merge patch holding only the fields that differ
// between original and draft. When nothing differs no request is made and
// ok is false.
func (r *Resource[T]) Patch(ctx context.Context, token string, id int64, original, draft any) (out T, ok bool, err error) {
	patch, err := MergePatch(original, draft)
	if err != nil {
		return out, false, err
	}
	if patch == nil {
		return out, false, nil
	}
	err = r.client.do(ctx, call{
		resource: r.name,
		method:   http.MethodPatch,
		path:     r.path(id),
		token:    token,
		body:     patch,
	}, &out)
	return out, err == nil, err
}

// SetStatus changes only the status field, in whichever form the resource
// accepts.
func (r *Resource[T]) SetStatus(ctx context.Context, token string, id int64, status string) (T, error) {
	var out T
	cl := call{resource: r.name, path: r.path(id, "status"), token: token}
	switch r.statusMode {
	case StatusPutBody:
		cl.method = http.MethodPut
		cl.body = []byte(status)
		cl.contentType = "text/plain"
	default:
		cl.method = http.MethodPatch
		cl.query = url.Values{"status": {status}}
	}
	err := r.client.do(ctx, cl, &out)
	return out, err
}

// Create POSTs a new record and returns it as stored.
func (r *Resource[T]) Create(ctx context.Context, token string, body any) (T, error) {
	var out T
	b, err := jsonBody(body)
	if err != nil {
		return out, err
	}
	err = r.client.do(ctx, call{
		resource: r.name,
		method:   http.MethodPost,
		path:     r.path(0),
		token:    token,
		body:     b,
	}, &out)
	return out, err
}

// MergePatch returns the merge patch turning original into draft, or nil
// when they are equal.
func MergePatch(original, draft any) ([]byte, error) {
	a, err := jsonBody(original)
	if err != nil {
		return nil, err
	}
	b, err := jsonBody(draft)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("backend: merge patch: %w", err)
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, patch); err != nil {
		return nil, fmt.Errorf("backend: merge patch: %w", err)
	}
	if compact.String() == "{}" {
		return nil, nil
	}
	return compact.Bytes(), nil
}
