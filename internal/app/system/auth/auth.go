package auth

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// SessionUser is the signed-in operator as far as the dashboard knows.
type SessionUser struct {
	Name      string
	Role      string
	ExpiresAt time.Time
	Token     string
}

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// CurrentUser returns the user loaded by LoadSessionUser.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok && u != nil
}

// Token returns the bearer token for backend calls, or "".
func Token(r *http.Request) string {
	if u, ok := CurrentUser(r); ok {
		return u.Token
	}
	return ""
}

// WithTestUser injects u into the request context. Used by handler tests.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}

// LoadSessionUser puts the session's token and its claims into the request
// context. Expired tokens are ignored so RequireToken treats the request as
// signed out.
func (sm *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := sm.token(r)
		if tok == "" {
			next.ServeHTTP(w, r)
			return
		}

		u := &SessionUser{Token: tok, Name: "Staff"}
		if c, ok := ParseClaims(tok); ok {
			if c.Expired(sm.clock()) {
				sm.log.Debug("session token expired", zap.Time("exp", c.ExpiresAt))
				next.ServeHTTP(w, r)
				return
			}
			if c.Name != "" {
				u.Name = c.Name
			}
			u.Role = c.Role
			u.ExpiresAt = c.ExpiresAt
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

// RequireToken guards every page that talks to the backend. Without a
// usable token:
//   - HTMX: HX-Redirect to /login?return=...
//   - HTML: 303 to /login?return=...
//   - API:  401
func (sm *SessionManager) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); ok {
			next.ServeHTTP(w, r)
			return
		}
		RedirectToLogin(w, r)
	})
}

// RedirectToLogin sends the browser to the login page, preserving the
// current URL as the return target.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	dest := LoginURL(currentURI(r))

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", dest)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if wantsHTML(r) {
		http.Redirect(w, r, dest, http.StatusSeeOther)
		return
	}
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}

// LoginURL builds /login?return=ret.
func LoginURL(ret string) string {
	if ret == "" || ret == "/" {
		return "/login"
	}
	return "/login?return=" + url.QueryEscape(ret)
}

func withUser(r *http.Request, u *SessionUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

func wantsHTML(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return true
	}
	accept := r.Header.Get("Accept")
	return accept == "" || strings.Contains(accept, "text/html") || strings.Contains(accept, "*/*")
}

// currentURI is the URL to come back to after login. Non-GET requests
// return to the page the form was on.
func currentURI(r *http.Request) string {
	if r.Method == http.MethodGet {
		return r.URL.RequestURI()
	}
	for _, ref := range []string{r.Header.Get("HX-Current-URL"), r.Referer()} {
		if ref == "" {
			continue
		}
		if u, err := url.Parse(ref); err == nil && (u.Host == "" || u.Host == r.Host) {
			return u.RequestURI()
		}
	}
	return "/"
}
