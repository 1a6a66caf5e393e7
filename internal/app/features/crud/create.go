package crud

import (
	"net/http"

	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeNew shows an empty create form.
func (c *Controller[T, In]) ServeNew(w http.ResponseWriter, r *http.Request) {
	var zero T
	c.renderForm(w, r, 0, c.formValues(zero), nil, "")
}

// HandleCreate validates the form, POSTs the new record and redirects to
// the record the backend created.
func (c *Controller[T, In]) HandleCreate(w http.ResponseWriter, r *http.Request) {
	in, ok := c.decode(w, r, 0)
	if !ok {
		return
	}
	var zero T
	draft, err := c.def.Build(in, zero)
	if err != nil {
		c.renderForm(w, r, 0, r.PostForm, nil, htmlsanitize.Text(err.Error()))
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), c.deps.Log, c.def.Key+" create")
	defer cancel()

	created, err := c.def.Resource.Create(ctx, auth.Token(r), draft)
	if err != nil {
		c.writeFailed(w, r, 0, "Could not create the "+lower(c.def.Singular), err)
		return
	}

	id := c.def.ID(created)
	c.deps.Audit.RecordCreated(r.Context(), r, c.def.Key, id)
	c.deps.Log.Info("record created", zap.Int64("id", id))
	c.deps.Notify.Success(w, r, c.displayID(id)+" created.")

	if id <= 0 {
		redirect(w, r, c.def.base())
		return
	}
	redirect(w, r, c.def.detailHref(id))
}
