package crud

import (
	"net/http"

	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/navigation"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// historyLimit bounds the activity shown on a detail page.
const historyLimit = 10

func (c *Controller[T, In]) newViewData(w http.ResponseWriter, r *http.Request, v T) viewData {
	id := c.def.ID(v)
	title := c.def.titleOf(v)
	back := navigation.SafeBackURL(r, navigation.ForResource(c.def.Key))
	data := viewData{
		BaseVM:      viewdata.NewBaseVM(w, r, title, back),
		Key:         c.def.Key,
		Singular:    c.def.Singular,
		ID:          id,
		RecordTitle: title,
		Fields:      c.fields(v),
		Child:       c.child(v),
		Status:      c.statusVM(v, c.def.detailHref(id)),
		Record:      v,
		Partial:     render.IsHTMX(r),
	}
	data.BackURL = back
	if c.def.AllowEdit {
		data.EditHref = c.def.detailHref(id) + "/edit"
	}
	data.History = c.history(r, id)
	return data
}

// history is best effort: the page renders without it if the activity
// store is missing or failing.
func (c *Controller[T, In]) history(r *http.Request, id int64) []historyVM {
	if c.deps.History == nil {
		return nil
	}
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), c.deps.Log, c.def.Key+" history")
	defer cancel()
	events, err := c.deps.History.ForRecord(ctx, c.def.Key, id, historyLimit)
	if err != nil {
		c.deps.Log.Warn("load record history", zap.Int64("id", id), zap.Error(err))
		return nil
	}
	return historyVMs(events)
}

// ServeView renders one record.
func (c *Controller[T, In]) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(r)
	if !ok {
		c.badID(w, r)
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Read(), c.deps.Log, c.def.Key+" get")
	defer cancel()

	rec, err := c.def.Resource.Get(ctx, auth.Token(r), id)
	if err != nil {
		if c.unauthorized(w, r, err) {
			return
		}
		c.deps.ErrLog.LogBackendError(w, r, "get "+c.def.Key, err,
			c.displayID(id)+" was not found.", c.def.base())
		return
	}

	render.Auto(w, r, "crud_view", "crud_view_body", c.newViewData(w, r, rec))
}
