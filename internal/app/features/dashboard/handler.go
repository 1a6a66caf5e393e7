// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/format"
	"github.com/dalemusser/hotelhub/internal/app/system/navigation"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Counter returns a collection's record count. *backend.Client satisfies it.
type Counter interface {
	Count(ctx context.Context, token, name string) (int64, error)
}

// Sessions ends a session whose token the backend rejected.
type Sessions interface {
	SignOut(w http.ResponseWriter, r *http.Request) error
}

type Handler struct {
	Counter  Counter
	Sessions Sessions
	Log      *zap.Logger
}

func NewHandler(counter Counter, sessions Sessions, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Counter: counter, Sessions: sessions, Log: logger}
}

// Tile is one resource on the landing page.
type Tile struct {
	Label string
	Href  string
	Count string // "—" when the count could not be fetched
}

type section struct {
	Title string
	Tiles []Tile
}

type dashboardData struct {
	viewdata.BaseVM
	Sections []section
}

// counted lists the menu keys that are backend collections. The activity
// page is local and has no count.
func counted(key string) bool { return key != "activity" }

func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	menu := navigation.Menu("")

	var keys []string
	for _, s := range menu {
		for _, it := range s.Items {
			if counted(it.Key) {
				keys = append(keys, it.Key)
			}
		}
	}

	counts, err := h.fetchCounts(r.Context(), auth.Token(r), keys)
	if errors.Is(err, backend.ErrUnauthorized) {
		if h.Sessions != nil {
			if serr := h.Sessions.SignOut(w, r); serr != nil {
				h.Log.Warn("sign out after 401", zap.Error(serr))
			}
		}
		auth.RedirectToLogin(w, r)
		return
	}

	data := dashboardData{BaseVM: viewdata.NewBaseVM(w, r, "Dashboard", "/")}
	for _, s := range menu {
		sec := section{Title: s.Title}
		for _, it := range s.Items {
			t := Tile{Label: it.Label, Href: it.Href}
			if counted(it.Key) {
				t.Count = format.Fallback("")
				if n, ok := counts[it.Key]; ok {
					t.Count = format.Int(n)
				}
			}
			sec.Tiles = append(sec.Tiles, t)
		}
		data.Sections = append(data.Sections, sec)
	}

	render.Page(w, r, "dashboard", data)
}

// fetchCounts asks the backend for every count in parallel. Failed counts
// are left out of the map; the returned error is ErrUnauthorized when the
// token was rejected and nil otherwise.
func (h *Handler) fetchCounts(ctx context.Context, token string, keys []string) (map[string]int64, error) {
	ctx, cancel := timeouts.WithTimeout(ctx, timeouts.List(), h.Log, "dashboard counts")
	defer cancel()

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		out    = make(map[string]int64, len(keys))
		denied bool
	)
	for _, key := range keys {
		wg.Add(1)
		go func(key string) {
			defer wg.Done()
			n, err := h.Counter.Count(ctx, token, key)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				out[key] = n
			case errors.Is(err, backend.ErrUnauthorized):
				denied = true
			default:
				h.Log.Warn("dashboard count failed", zap.String("resource", key), zap.Error(err))
			}
		}(key)
	}
	wg.Wait()

	if denied {
		return out, backend.ErrUnauthorized
	}
	return out, nil
}
