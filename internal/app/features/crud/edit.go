package crud

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"sort"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hotelhub/internal/app/system/inputval"
	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// formValues encodes a record's draft into the values the form shows.
func (c *Controller[T, In]) formValues(v T) url.Values {
	in := c.def.ToInput(v)
	vals, err := c.encoder.Encode(&in)
	if err != nil {
		c.deps.Log.Warn("encode form draft", zap.Error(err))
		return url.Values{}
	}
	return vals
}

// renderForm draws the edit (id > 0) or create form.
func (c *Controller[T, In]) renderForm(w http.ResponseWriter, r *http.Request, id int64, vals url.Values, errs map[string]string, formErr string) {
	creating := id == 0
	var (
		title  = "New " + lower(c.def.Singular)
		action = c.def.base()
		cancel = c.def.base()
	)
	if !creating {
		title = "Edit " + c.displayID(id)
		action = c.def.detailHref(id) + "/edit"
		cancel = c.def.detailHref(id)
	}
	data := editData{
		BaseVM:     viewdata.NewBaseVM(w, r, title, cancel),
		Key:        c.def.Key,
		Singular:   c.def.Singular,
		ID:         id,
		Creating:   creating,
		Action:     action,
		CancelHref: cancel,
		Inputs:     c.inputs(vals, errs, creating),
	}
	data.SetError(formErr)
	render.Auto(w, r, "crud_edit", "crud_edit_form", data)
}

// ServeEdit shows the edit form prefilled from the current record.
func (c *Controller[T, In]) ServeEdit(w http.ResponseWriter, r *http.Request) {
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
		c.deps.ErrLog.LogBackendError(w, r, "get "+c.def.Key+" for edit", err,
			c.displayID(id)+" was not found.", c.def.base())
		return
	}

	c.renderForm(w, r, id, c.formValues(rec), nil, "")
}

// decode reads and validates the posted form. On failure it re-renders the
// form with the messages and returns ok=false; nothing is sent to the
// backend.
func (c *Controller[T, In]) decode(w http.ResponseWriter, r *http.Request, id int64) (in In, ok bool) {
	if err := r.ParseForm(); err != nil {
		c.deps.Log.Warn("parse form", zap.Error(err))
		c.renderForm(w, r, id, url.Values{}, nil, "The form could not be read. Please try again.")
		return in, false
	}
	if err := c.decoder.Decode(&in, r.PostForm); err != nil {
		c.deps.Log.Warn("decode form", zap.Error(err))
		c.renderForm(w, r, id, r.PostForm, nil, "The form could not be read. Please try again.")
		return in, false
	}
	if res := inputval.Validate(&in); res.HasErrors() {
		c.deps.Log.Debug("form rejected", zap.Int64("id", id), zap.String("errors", res.All()))
		c.renderForm(w, r, id, r.PostForm, res.Fields(), res.First())
		return in, false
	}
	return in, true
}

// HandleEdit validates the form, sends the update and renders the record
// the backend returned.
func (c *Controller[T, In]) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := routeID(r)
	if !ok {
		c.badID(w, r)
		return
	}
	in, ok := c.decode(w, r, id)
	if !ok {
		return
	}

	token := auth.Token(r)

	readCtx, cancelRead := timeouts.WithTimeout(r.Context(), timeouts.Read(), c.deps.Log, c.def.Key+" get")
	original, err := c.def.Resource.Get(readCtx, token, id)
	cancelRead()
	if err != nil {
		if c.unauthorized(w, r, err) {
			return
		}
		c.deps.ErrLog.LogBackendError(w, r, "get "+c.def.Key+" before update", err,
			c.displayID(id)+" was not found.", c.def.base())
		return
	}

	draft, err := c.def.Build(in, original)
	if err != nil {
		c.renderForm(w, r, id, r.PostForm, nil, htmlsanitize.Text(err.Error()))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), c.deps.Log, c.def.Key+" update")
	defer cancel()

	var updated T
	switch c.def.Update {
	case UpdatePatch:
		var sent bool
		updated, sent, err = c.def.Resource.Patch(ctx, token, id, original, draft)
		if err == nil && !sent {
			data := c.newViewData(w, r, original)
			data.AddNotice(notify.Info, "No changes to save.")
			render.Auto(w, r, "crud_view", "crud_view_body", data)
			return
		}
		if err == nil {
			c.deps.Audit.RecordPatched(r.Context(), r, c.def.Key, id, patchedFields(original, draft))
		}
	default:
		updated, err = c.def.Resource.Update(ctx, token, id, draft)
		if err == nil {
			c.deps.Audit.RecordUpdated(r.Context(), r, c.def.Key, id)
		}
	}
	if err != nil {
		c.writeFailed(w, r, id, "Could not save "+lower(c.displayID(id)), err)
		return
	}

	c.deps.Log.Info("record updated", zap.Int64("id", id))
	if render.IsHTMX(r) {
		w.Header().Set("HX-Push-Url", c.def.detailHref(id))
	}
	data := c.newViewData(w, r, updated)
	data.AddNotice(notify.Success, c.displayID(id)+" saved.")
	render.Auto(w, r, "crud_view", "crud_view_body", data)
}

// writeFailed handles a rejected PUT, PATCH or POST. The form is shown
// again with the backend's reason so the user can correct it.
func (c *Controller[T, In]) writeFailed(w http.ResponseWriter, r *http.Request, id int64, doing string, err error) {
	if c.unauthorized(w, r, err) {
		return
	}
	if id > 0 && stderrors.Is(err, backend.ErrNotFound) {
		c.deps.ErrLog.LogBackendError(w, r, "write "+c.def.Key, err,
			c.displayID(id)+" no longer exists.", c.def.base())
		return
	}
	var apiErr *backend.APIError
	if stderrors.As(err, &apiErr) {
		c.deps.Audit.WriteRejected(r.Context(), r, c.def.Key, id, apiErr.Status, htmlsanitize.Text(apiErr.Message()))
		c.deps.Log.Warn("backend rejected write", zap.Int64("id", id), zap.Error(err))
	} else {
		c.deps.Log.Error("write failed", zap.Int64("id", id), zap.Error(err))
	}
	c.renderForm(w, r, id, r.PostForm, nil, notify.Describe(doing, err))
}

// patchedFields lists the top-level keys a merge patch would carry.
func patchedFields(original, draft any) []string {
	patch, err := backend.MergePatch(original, draft)
	if err != nil || patch == nil {
		return nil
	}
	var m map[string]json.RawMessage
	if json.Unmarshal(patch, &m) != nil {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
