package crud

import (
	"net/http"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	errorsfeature "github.com/dalemusser/hotelhub/internal/app/features/errors"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/navigation"
	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleStatus changes a record's status from the badge dropdown. The value
// is checked against the resource's enum before anything is sent.
func (c *Controller[T, In]) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(r)
	if !ok {
		c.badID(w, r)
		return
	}
	htmx := render.IsHTMX(r)
	back := navigation.ForResource(c.def.Key)
	back.Fallback = c.def.detailHref(id)

	if err := r.ParseForm(); err != nil {
		c.deps.ErrLog.LogBadRequest(w, r, "parse status form", err, "The form could not be read.", back.Fallback)
		return
	}
	next, valid := status.MustLookup(c.def.StatusEnum).Canonical(r.PostForm.Get("status"))
	if !valid {
		msg := "Choose a valid status."
		if htmx {
			errorsfeature.HTMXBadRequest(w, msg)
			return
		}
		errorsfeature.RenderBadRequest(w, r, msg, back.Fallback)
		return
	}
	from := strings.TrimSpace(r.PostForm.Get("from"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), c.deps.Log, c.def.Key+" status")
	defer cancel()

	updated, err := c.def.Resource.SetStatus(ctx, auth.Token(r), id, next)
	if err != nil {
		if c.unauthorized(w, r, err) {
			return
		}
		doing := "Could not change the status of " + lower(c.displayID(id))
		if code := backend.StatusCode(err); code > 0 {
			c.deps.Audit.WriteRejected(r.Context(), r, c.def.Key, id, code, notify.Describe("", err))
		}
		if htmx {
			c.deps.Log.Warn("status change failed", zap.Int64("id", id), zap.Error(err))
			errorsfeature.HTMXError(w, http.StatusBadGateway, notify.Describe(doing, err))
			return
		}
		c.deps.ErrLog.LogBackendError(w, r, "set status "+c.def.Key, err,
			c.displayID(id)+" was not found.", back.Fallback)
		return
	}

	to := c.def.StatusOf(updated)
	if to == "" {
		to = next
	}
	c.deps.Audit.StatusChanged(r.Context(), r, c.def.Key, id, from, to)
	c.deps.Log.Info("status changed", zap.Int64("id", id), zap.String("from", from), zap.String("to", to))

	if htmx {
		vm := c.statusVM(updated, r.PostForm.Get("return"))
		vm.Current, vm.Label, vm.Class = to, status.Label(to), status.BadgeClass(to)
		vm.Options = status.MustLookup(c.def.StatusEnum).Options(to)
		vm.Action = c.def.detailHref(id) + "/status"
		render.Snippet(w, "crud_status_badge", vm)
		return
	}
	c.deps.Notify.Success(w, r, c.displayID(id)+" is now "+status.Label(to)+".")
	http.Redirect(w, r, navigation.SafeBackURL(r, back), http.StatusSeeOther)
}
