package crud

import (
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	errorsfeature "github.com/dalemusser/hotelhub/internal/app/features/errors"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// query parses the list query, canonicalises select filters and drops the
// ones whose value is not in their enum, so a hand-edited URL cannot send
// garbage to the backend.
func (c *Controller[T, In]) query(r *http.Request) paging.Query {
	q := paging.ParseQuery(r, c.def.filterKeys(), c.deps.PageSize)
	clean := make(map[string]string, len(q.Filters))
	for _, f := range c.def.Filters {
		v, ok := q.Filters[f.Key]
		if !ok {
			continue
		}
		if f.Kind == KindSelect || f.Kind == KindStatus {
			canon, member := status.MustLookup(f.Enum).Canonical(v)
			if !member {
				continue
			}
			v = canon
		}
		clean[f.Key] = v
	}
	q.Filters = clean
	return q
}

func (c *Controller[T, In]) newListData(w http.ResponseWriter, r *http.Request, q paging.Query) listData {
	base := c.def.base()
	data := listData{
		BaseVM:     viewdata.NewBaseVM(w, r, c.def.Plural, "/dashboard"),
		Key:        c.def.Key,
		Singular:   c.def.Singular,
		Plural:     c.def.Plural,
		BasePath:   base,
		Filters:    c.filterVMs(q),
		HasFilters: len(q.Filters) > 0,
		Size:       q.Size,
		ResetHref:  base,
		ExportHref: base + "/export.xlsx",
		Query:      q,
		Headers:    c.headers(),
		HasStatus:  c.def.StatusEnum != "",
	}
	data.Colspan = len(data.Headers)
	if data.HasStatus {
		data.Colspan++
	}
	if len(q.Filters) > 0 {
		data.ExportHref += "?" + q.WithPage(1).Values().Encode()
	}
	if c.def.AllowCreate {
		data.NewHref = base + "/new"
	}
	return data
}

// ServeList renders one page of the filtered list.
func (c *Controller[T, In]) ServeList(w http.ResponseWriter, r *http.Request) {
	q := c.query(r)
	base := c.def.base()

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.List(), c.deps.Log, c.def.Key+" list")
	defer cancel()

	page, err := c.def.Resource.List(ctx, auth.Token(r), backend.PageQuery{
		Page:    q.BackendPage(),
		Size:    q.Size,
		Filters: q.Filters,
	})
	if err != nil {
		if c.unauthorized(w, r, err) {
			return
		}
		c.listFailed(w, r, q, err)
		return
	}

	// Past the end (rows were removed, or a stale link): go to the last page.
	if page.TotalPages > 0 && q.Page > page.TotalPages && len(page.Content) == 0 {
		redirect(w, r, q.WithPage(page.TotalPages).Href(base))
		return
	}

	data := c.newListData(w, r, q)
	ret := q.Href(base)
	data.Rows = c.rows(page.Content, ret)
	data.Pager = paging.NewPager(q, base, page.TotalPages, int(page.TotalElements), len(page.Content))

	render.Auto(w, r, "crud_list", "crud_list_table", data)
}

// listFailed leaves whatever list the user was looking at in place: htmx
// requests get the error as a notice instead of a table swap, full page
// loads go back to the previous list URL with a notice. With nowhere to go back to, an empty list is shown.
func (c *Controller[T, In]) listFailed(w http.ResponseWriter, r *http.Request, q paging.Query, err error) {
	logf := c.deps.Log.Warn
	if stderrors.Is(err, backend.ErrTransport) || backend.StatusCode(err) >= 500 {
		logf = c.deps.Log.Error
	}
	logf("list failed", zap.Int("page", q.Page), zap.Any("filters", q.Filters), zap.Error(err))

	doing := "Could not load " + lower(c.def.Plural)
	if render.IsHTMX(r) {
		errorsfeature.HTMXError(w, http.StatusBadGateway, notify.Describe(doing, err))
		return
	}
	if prev := c.previousList(r); prev != "" {
		c.deps.Notify.BackendError(w, r, doing, err)
		http.Redirect(w, r, prev, http.StatusSeeOther)
		return
	}

	data := c.newListData(w, r, q)
	data.Rows = []rowVM{}
	data.Failed = true
	data.Pager = paging.NewPager(q, c.def.base(), 1, 0, 0)
	data.AddNotice(notify.Error, notify.Describe(doing, err))
	render.Page(w, r, "crud_list", data)
}
