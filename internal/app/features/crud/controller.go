package crud

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	errorsfeature "github.com/dalemusser/hotelhub/internal/app/features/errors"
	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/auditlog"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/inputval"
	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form"
	"go.uber.org/zap"
)

// DefaultExportMaxRows caps a spreadsheet export when Deps gives no limit.
const DefaultExportMaxRows = 5000

// Sessions ends a session whose backend token was rejected.
type Sessions interface {
	SignOut(w http.ResponseWriter, r *http.Request) error
}

// History returns the recorded dashboard writes for one record.
type History interface {
	ForRecord(ctx context.Context, resource string, id int64, limit int64) ([]audit.Event, error)
}

// Deps is what every resource controller shares. Only Log is required;
// the rest degrade to no-ops when nil.
type Deps struct {
	ErrLog   *errorsfeature.ErrorLogger
	Audit    *auditlog.Logger
	Notify   *notify.Notifier
	Sessions Sessions
	History  History
	Log      *zap.Logger

	PageSize      int
	ExportMaxRows int
}

// Controller serves the list, detail, edit, status and create pages of one
// resource.
type Controller[T any, In any] struct {
	def     Definition[T, In]
	deps    Deps
	decoder *form.Decoder
	encoder *form.Encoder
}

// New validates def and builds its controller.
func New[T any, In any](def Definition[T, In], deps Deps) (*Controller[T, In], error) {
	if err := def.check(); err != nil {
		return nil, err
	}
	if deps.Log == nil {
		deps.Log = zap.NewNop()
	}
	if deps.ErrLog == nil {
		deps.ErrLog = errorsfeature.NewErrorLogger(deps.Log)
	}
	if deps.Audit == nil {
		deps.Audit = auditlog.NewNopLogger()
	}
	if deps.PageSize < 1 {
		deps.PageSize = paging.DefaultSize
	}
	if deps.ExportMaxRows < 1 {
		deps.ExportMaxRows = DefaultExportMaxRows
	}
	deps.Log = deps.Log.With(zap.String("resource", def.Key))
	return &Controller[T, In]{
		def:     def,
		deps:    deps,
		decoder: form.NewDecoder(),
		encoder: form.NewEncoder(),
	}, nil
}

// MustNew is New for definitions fixed at compile time.
func MustNew[T any, In any](def Definition[T, In], deps Deps) *Controller[T, In] {
	c, err := New(def, deps)
	if err != nil {
		panic(err)
	}
	return c
}

// Key is the URL segment the controller is mounted under.
func (c *Controller[T, In]) Key() string { return c.def.Key }

// routeID parses the {id} URL parameter.
func routeID(r *http.Request) (int64, bool) {
	return inputval.ParseID(chi.URLParam(r, "id"))
}

// badID answers a request whose {id} is missing or not a positive integer.
// No backend call is made.
func (c *Controller[T, In]) badID(w http.ResponseWriter, r *http.Request) {
	msg := "Invalid " + lower(c.def.Singular) + " id."
	if render.IsHTMX(r) {
		errorsfeature.HTMXBadRequest(w, msg)
		return
	}
	errorsfeature.RenderBadRequest(w, r, msg, c.def.base())
}

// unauthorized reports whether err is a rejected token and, if so, ends the
// session and sends the user to the login page.
func (c *Controller[T, In]) unauthorized(w http.ResponseWriter, r *http.Request, err error) bool {
	if !stderrors.Is(err, backend.ErrUnauthorized) {
		return false
	}
	c.deps.Log.Info("backend rejected token", zap.String("path", r.URL.Path))
	c.deps.Audit.SessionExpired(r.Context(), r, c.def.Key)
	if c.deps.Sessions != nil {
		if serr := c.deps.Sessions.SignOut(w, r); serr != nil {
			c.deps.Log.Warn("sign out after 401", zap.Error(serr))
		}
	}
	c.deps.Notify.Add(w, r, notify.Warning, "Your session has expired. Please sign in again.")
	auth.RedirectToLogin(w, r)
	return true
}

// redirect sends the browser to target, through HX-Redirect for htmx.
func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if render.IsHTMX(r) {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// previousList returns the list URL the user came from when it is on this
// host, under this resource's list path, and not the URL being served.
func (c *Controller[T, In]) previousList(r *http.Request) string {
	ref := r.Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	if u.Host != "" && !strings.EqualFold(u.Host, r.Host) {
		return ""
	}
	if strings.TrimSuffix(u.Path, "/") != c.def.base() {
		return ""
	}
	if u.RequestURI() == r.URL.RequestURI() {
		return ""
	}
	return u.RequestURI()
}

func (c *Controller[T, In]) displayID(id int64) string {
	return fmt.Sprintf("%s #%d", c.def.Singular, id)
}

func lower(s string) string { return strings.ToLower(s) }
