package activity

import (
	"context"
	"encoding/csv"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeEvents struct {
	events  []audit.Event
	total   int64
	err     error
	filters []audit.QueryFilter
}

func (f *fakeEvents) Query(_ context.Context, filter audit.QueryFilter) ([]audit.Event, error) {
	f.filters = append(f.filters, filter)
	return f.events, f.err
}

func (f *fakeEvents) CountByFilter(_ context.Context, filter audit.QueryFilter) (int64, error) {
	f.filters = append(f.filters, filter)
	return f.total, f.err
}

func sampleEvents() []audit.Event {
	ts := time.Date(2024, 5, 3, 9, 30, 0, 0, time.UTC)
	return []audit.Event{
		{
			Timestamp: ts, Category: audit.CategoryChange, EventType: audit.EventStatusChanged,
			Actor: "Ana", Resource: "folios", RecordID: 3, Success: true,
			Details: map[string]string{"to": "PAID", "from": "UNPAID"},
		},
		{
			Timestamp: ts, Category: audit.CategoryAuth, EventType: audit.EventLoginFailed,
			Actor: "=cmd|calc", Success: false, FailureReason: "bad password",
		},
	}
}

func newTestHandler(t *testing.T, ev *fakeEvents) (*Handler, *render.Recorder) {
	t.Helper()
	rec := &render.Recorder{}
	t.Cleanup(render.Use(rec))
	return NewHandler(ev, nil, 20, 100, zap.NewNop()), rec
}

func TestServeList_FiltersAndRows(t *testing.T) {
	ev := &fakeEvents{events: sampleEvents(), total: 2}
	h, rec := newTestHandler(t, ev)

	req := testutil.NewAuthenticatedRequest("GET",
		"/activity?resource=folios&action=status_changed&from=2024-05-01&to=2024-05-03&actor=Ana", testutil.StaffUser())
	w := httptest.NewRecorder()
	h.ServeList(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, ev.filters, 2)

	f := ev.filters[1]
	assert.Equal(t, "folios", f.Resource)
	assert.Equal(t, audit.EventStatusChanged, f.EventType)
	assert.Equal(t, "Ana", f.Actor)
	require.NotNil(t, f.StartTime)
	require.NotNil(t, f.EndTime)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), *f.StartTime)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), *f.EndTime, "to is inclusive")
	assert.Equal(t, int64(20), f.Limit)
	assert.Equal(t, int64(0), f.Offset)

	last := rec.Last()
	require.Equal(t, "activity_list", last.Name)
	data := last.Data.(listData)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Folios", data.Rows[0].Resource)
	assert.Equal(t, "/folios/3", data.Rows[0].RecordHref)
	assert.Equal(t, "Status changed", data.Rows[0].Action)
	assert.Equal(t, "from: UNPAID, to: PAID", data.Rows[0].Details)
	assert.Equal(t, "", data.Rows[1].RecordHref)
	assert.True(t, data.HasFilters)
	assert.Contains(t, data.ExportHref, "/activity/export.csv?")
	assert.Contains(t, data.ExportHref, "resource=folios")
}

func TestServeList_DropsUnknownFilters(t *testing.T) {
	ev := &fakeEvents{}
	h, rec := newTestHandler(t, ev)

	req := testutil.NewAuthenticatedRequest("GET",
		"/activity?resource=users&action=deleted&from=yesterday", testutil.StaffUser())
	h.ServeList(httptest.NewRecorder(), req)

	f := ev.filters[0]
	assert.Empty(t, f.Resource)
	assert.Empty(t, f.EventType)
	assert.Nil(t, f.StartTime)

	data := rec.Last().Data.(listData)
	assert.False(t, data.HasFilters)
	assert.Equal(t, "/activity/export.csv", data.ExportHref)
}

func TestServeList_PastLastPageRedirects(t *testing.T) {
	ev := &fakeEvents{total: 45}
	h, rec := newTestHandler(t, ev)

	w := httptest.NewRecorder()
	h.ServeList(w, testutil.NewAuthenticatedRequest("GET", "/activity?page=9", testutil.StaffUser()))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "page=3")
	assert.Len(t, ev.filters, 1, "events are not queried")
	assert.Empty(t, rec.Calls())
}

func TestServeList_HTMXRendersTable(t *testing.T) {
	ev := &fakeEvents{events: sampleEvents(), total: 42}
	h, rec := newTestHandler(t, ev)

	req := testutil.NewAuthenticatedRequest("GET", "/activity?page=2", testutil.StaffUser())
	req.Header.Set("HX-Request", "true")
	h.ServeList(httptest.NewRecorder(), req)

	last := rec.Last()
	assert.True(t, last.Snippet)
	assert.Equal(t, "activity_table", last.Name)
	assert.Equal(t, int64(20), ev.filters[1].Offset)
	data := last.Data.(listData)
	assert.Equal(t, 3, data.Pager.TotalPages)
}

func TestServeList_StoreFailure(t *testing.T) {
	ev := &fakeEvents{err: errors.New("mongo down")}
	h, _ := newTestHandler(t, ev)

	w := httptest.NewRecorder()
	h.ServeList(w, testutil.NewAuthenticatedRequest("GET", "/activity", testutil.StaffUser()))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServeCSV(t *testing.T) {
	ev := &fakeEvents{events: sampleEvents()}
	h, _ := newTestHandler(t, ev)

	w := httptest.NewRecorder()
	h.ServeCSV(w, testutil.NewAuthenticatedRequest("GET", "/activity/export.csv?resource=folios", testutil.StaffUser()))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "activity-")
	assert.Equal(t, int64(100), ev.filters[0].Limit)
	assert.Equal(t, "folios", ev.filters[0].Resource)

	records, err := csv.NewReader(strings.NewReader(w.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "timestamp", records[0][0])
	assert.Equal(t, []string{"2024-05-03T09:30:00Z", "Ana", "status_changed", "folios", "3", "true", "", "", "", "from: UNPAID, to: PAID"}, records[1])
	assert.Equal(t, "'=cmd|calc", records[2][1], "formula cells are defused")
}
