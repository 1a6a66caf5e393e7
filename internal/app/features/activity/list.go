// internal/app/features/activity/list.go
package activity

import (
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/format"
	"github.com/dalemusser/hotelhub/internal/app/system/navigation"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ServeList handles GET /activity. HTMX requests get just the table.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	q, f := parseFilter(paging.ParseQuery(r, filterKeys, h.PageSize))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.List(), h.Log, "activity list")
	defer cancel()

	total, err := h.Events.CountByFilter(ctx, f)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "count activity", err, "Could not load the activity log.", "/")
		return
	}

	totalPages := int((total + int64(q.Size) - 1) / int64(q.Size))
	if totalPages > 0 && q.Page > totalPages {
		http.Redirect(w, r, q.WithPage(totalPages).Href(basePath), http.StatusSeeOther)
		return
	}

	f.Limit = int64(q.Size)
	f.Offset = int64(q.Offset())
	events, err := h.Events.Query(ctx, f)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "query activity", err, "Could not load the activity log.", "/")
		return
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(w, r, "Activity", "/"),
		Resources:  resourceOptions(q.Filter(filterResource)),
		Actions:    actionOptions(q.Filter(filterAction)),
		Actor:      q.Filter(filterActor),
		From:       q.Filter(filterFrom),
		To:         q.Filter(filterTo),
		Size:       q.Size,
		HasFilters: len(q.Filters) > 0,
		ResetHref:  basePath,
		ExportHref: exportHref(q),
		Rows:       rows(events),
		Pager:      paging.NewPager(q, basePath, totalPages, int(total), len(events)),
	}

	h.Log.Debug("activity list served", zap.Int("rows", len(events)), zap.Int64("total", total))
	render.Auto(w, r, "activity_list", "activity_table", data)
}

// parseFilter drops filter values the store cannot use (unknown resources
// and actions, malformed dates) and builds the store filter from the rest.
// The returned Query carries only the values that were applied.
func parseFilter(q paging.Query) (paging.Query, audit.QueryFilter) {
	var f audit.QueryFilter
	clean := make(map[string]string, len(q.Filters))

	if v := q.Filter(filterResource); isResource(v) {
		clean[filterResource] = v
		f.Resource = v
	}
	if v := q.Filter(filterAction); actionLabel(v) != v {
		clean[filterAction] = v
		f.EventType = v
	}
	if v := q.Filter(filterActor); v != "" {
		clean[filterActor] = v
		f.Actor = v
	}
	if t, ok := parseDate(q.Filter(filterFrom)); ok {
		clean[filterFrom] = q.Filter(filterFrom)
		f.StartTime = &t
	}
	if t, ok := parseDate(q.Filter(filterTo)); ok {
		clean[filterTo] = q.Filter(filterTo)
		// "to" is inclusive: stop before the next midnight.
		end := t.AddDate(0, 0, 1)
		f.EndTime = &end
	}

	q.Filters = clean
	return q, f
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(time.DateOnly, s, time.UTC)
	return t, err == nil
}

// isResource reports whether key names a backend collection in the menu.
func isResource(key string) bool {
	return key != "" && key != "activity" && navigation.Label(key) != ""
}

func resourceOptions(selected string) []option {
	var out []option
	for _, k := range navigation.Keys() {
		if !isResource(k) {
			continue
		}
		out = append(out, option{Value: k, Label: navigation.Label(k), Selected: k == selected})
	}
	return out
}

func actionOptions(selected string) []option {
	out := make([]option, len(actions))
	for i, a := range actions {
		out[i] = option{Value: a.Value, Label: a.Label, Selected: a.Value == selected}
	}
	return out
}

// exportHref carries the applied filters to the CSV export.
func exportHref(q paging.Query) string {
	v := url.Values{}
	for k, val := range q.Filters {
		v.Set(k, val)
	}
	if len(v) == 0 {
		return basePath + "/export.csv"
	}
	return basePath + "/export.csv?" + v.Encode()
}

func rows(events []audit.Event) []eventRow {
	out := make([]eventRow, 0, len(events))
	for _, ev := range events {
		row := eventRow{
			When:     format.DateTime(ev.Timestamp.Format(time.RFC3339)),
			Actor:    format.Fallback(ev.Actor),
			Action:   actionLabel(ev.EventType),
			Resource: ev.Resource,
			RecordID: ev.RecordID,
			Success:  ev.Success,
			Reason:   ev.FailureReason,
			Details:  details(ev.Details),
		}
		if label := navigation.Label(ev.Resource); label != "" {
			row.Resource = label
			if ev.RecordID > 0 {
				row.RecordHref = fmt.Sprintf("/%s/%d", ev.Resource, ev.RecordID)
			}
		}
		out = append(out, row)
	}
	return out
}

// details renders the event's extra fields as "key: value" pairs in key
// order.
func details(m map[string]string) string {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + m[k]
	}
	return strings.Join(parts, ", ")
}
