// internal/app/system/paging/paging.go
package paging

import (
	"hash/fnv"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
)

// DefaultSize is the page size used when the request and config give none.
const DefaultSize = 20

// MaxSize caps the "size" query parameter.
const MaxSize = 100

// Query is a list request as the dashboard sees it: a 1-based page, a page
// size and the non-empty filter values keyed by filter name.
type Query struct {
	Page    int
	Size    int
	Filters map[string]string
}

// ParseQuery reads page, size and the declared filter keys from the request.
//
// Blank filter values are dropped. If the request carries an "fs" filter
// signature that no longer matches the filters (the user edited a filter
// on a page other than the first), the page resets to 1.
func ParseQuery(r *http.Request, filterKeys []string, defaultSize int) Query {
	if defaultSize < 1 {
		defaultSize = DefaultSize
	}
	q := Query{
		Page:    parsePositive(query.Get(r, "page"), 1),
		Size:    clampSize(parsePositive(query.Get(r, "size"), defaultSize)),
		Filters: make(map[string]string, len(filterKeys)),
	}
	for _, k := range filterKeys {
		if v := strings.TrimSpace(query.Get(r, k)); v != "" {
			q.Filters[k] = v
		}
	}
	if fs := query.Get(r, "fs"); fs != "" && fs != Signature(q.Filters) {
		q.Page = 1
	}
	return q
}

func parsePositive(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return def
	}
	return n
}

func clampSize(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxSize:
		return MaxSize
	}
	return n
}

// BackendPage is the 0-based page index the REST backend expects.
func (q Query) BackendPage() int { return q.Page - 1 }

// Offset is the number of rows before the first row of this page.
func (q Query) Offset() int { return (q.Page - 1) * q.Size }

// Filter returns a single filter value ("" when unset).
func (q Query) Filter(key string) string { return q.Filters[key] }

// WithPage returns a copy pointing at page p (values below 1 become 1).
// Filters are kept.
func (q Query) WithPage(p int) Query {
	if p < 1 {
		p = 1
	}
	q.Filters = cloneFilters(q.Filters)
	q.Page = p
	return q
}

// WithFilters returns a copy with new filter values. Blank values are
// dropped. When the effective filters differ from the current ones the page
// goes back to 1.
func (q Query) WithFilters(f map[string]string) Query {
	next := make(map[string]string, len(f))
	for k, v := range f {
		if v = strings.TrimSpace(v); v != "" {
			next[k] = v
		}
	}
	if Signature(next) != Signature(q.Filters) {
		q.Page = 1
	}
	q.Filters = next
	return q
}

// Values encodes the query for a link: filters, page, size and the filter
// signature.
func (q Query) Values() url.Values {
	v := url.Values{}
	for k, val := range q.Filters {
		v.Set(k, val)
	}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	if len(q.Filters) > 0 {
		v.Set("fs", Signature(q.Filters))
	}
	return v
}

// Href builds basePath?query for this Query.
func (q Query) Href(basePath string) string {
	return basePath + "?" + q.Values().Encode()
}

// Signature is a short stable hash of the filter set. Key order does not
// matter; an empty set hashes to "".
func Signature(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New32a()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(filters[k]))
		h.Write([]byte{0})
	}
	return strconv.FormatUint(uint64(h.Sum32()), 36)
}

func cloneFilters(f map[string]string) map[string]string {
	out := make(map[string]string, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}
