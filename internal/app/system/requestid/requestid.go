// Package requestid tags each incoming request with an ID that is echoed in
// the response and forwarded to the REST backend, so one dashboard action
// can be followed through both services' logs.
package requestid

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Header is the header carrying the ID in both directions.
const Header = "X-Request-ID"

type ctxKey struct{}

// Middleware reuses a sane inbound X-Request-ID or generates one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(Header))
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(With(r.Context(), id)))
	})
}

// With stores id in ctx.
func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// From returns the request ID in ctx, or "".
func From(ctx context.Context) string {
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

// FromOrNew returns the ID in ctx or a fresh one for calls made outside an
// HTTP request (the CLI, background jobs).
func FromOrNew(ctx context.Context) string {
	if id := From(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
