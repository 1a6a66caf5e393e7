package crud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/auditlog"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/hotelhub/internal/app/system/paging"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/status"
	"github.com/dalemusser/hotelhub/internal/domain/models"
	"github.com/dalemusser/hotelhub/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type folioInput struct {
	RoomNumber string `form:"roomNumber" validate:"notblank,max=10" label:"Room"`
	Status     string `form:"status" validate:"notblank,enum=folio" label:"Status"`
}

func folioDefinition(c *backend.Client) Definition[models.Folio, folioInput] {
	return Definition[models.Folio, folioInput]{
		Key:      "folios",
		Singular: "Folio",
		Plural:   "Folios",
		Resource: backend.NewResource[models.Folio](c, "folios", backend.StatusPatchQuery),
		Filters: []Filter{
			{Key: "status", Label: "Status", Kind: KindStatus, Enum: status.FolioStatus},
			{Key: "roomNumber", Label: "Room", Kind: KindText},
		},
		Columns: []Column[models.Folio]{
			{Label: "Room", Kind: KindText, Value: func(f models.Folio) string { return f.RoomNumber }, Link: true},
			{Label: "Guest", Kind: KindText, Value: func(f models.Folio) string { return f.GuestName }},
			{Label: "Total", Kind: KindMoney, Value: func(f models.Folio) string { return Dec(f.Total) }},
		},
		Fields: []Field[models.Folio]{
			{Label: "Room", Kind: KindText, Value: func(f models.Folio) string { return f.RoomNumber }},
			{Label: "Total", Kind: KindMoney, Value: func(f models.Folio) string { return Dec(f.Total) }},
		},
		Form: []FormField{
			{Name: "roomNumber", Label: "Room", Kind: KindText, Required: true},
			{Name: "status", Label: "Status", Kind: KindStatus, Enum: status.FolioStatus, Required: true},
		},
		StatusEnum: status.FolioStatus,
		StatusOf:   func(f models.Folio) string { return f.Status },
		ID:         func(f models.Folio) int64 { return f.ID },
		Title:      func(f models.Folio) string { return fmt.Sprintf("Folio #%d, room %s", f.ID, f.RoomNumber) },
		ToInput: func(f models.Folio) folioInput {
			return folioInput{RoomNumber: f.RoomNumber, Status: f.Status}
		},
		Build: func(in folioInput, f models.Folio) (models.Folio, error) {
			f.RoomNumber = strings.TrimSpace(in.RoomNumber)
			f.Status, _ = status.MustLookup(status.FolioStatus).Canonical(in.Status)
			return f, nil
		},
		Update:      UpdatePut,
		AllowCreate: true,
		AllowEdit:   true,
	}
}

type salaryInput struct {
	Amount  string `form:"amount" validate:"notblank,number,minnum=0" label:"Amount"`
	PayDate string `form:"payDate" validate:"omitempty,isodate" label:"Pay date"`
}

func salaryDefinition(c *backend.Client) Definition[models.Salary, salaryInput] {
	return Definition[models.Salary, salaryInput]{
		Key:      "salaries",
		Singular: "Salary",
		Plural:   "Salaries",
		Resource: backend.NewResource[models.Salary](c, "salaries", backend.StatusPutBody),
		Columns: []Column[models.Salary]{
			{Label: "Employee", Kind: KindText, Value: func(s models.Salary) string { return s.EmployeeName }},
		},
		StatusEnum: status.SalaryStatus,
		StatusOf:   func(s models.Salary) string { return s.Status },
		ID:         func(s models.Salary) int64 { return s.ID },
		ToInput: func(s models.Salary) salaryInput {
			return salaryInput{Amount: Dec(s.Amount), PayDate: s.PayDate}
		},
		Build: func(in salaryInput, s models.Salary) (models.Salary, error) {
			amt, err := decimal.NewFromString(in.Amount)
			if err != nil {
				return s, err
			}
			s.Amount = amt
			s.PayDate = in.PayDate
			return s, nil
		},
		Update:    UpdatePatch,
		AllowEdit: true,
	}
}

type memRecorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (m *memRecorder) Log(_ context.Context, e audit.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return nil
}

func (m *memRecorder) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.events))
	for i, e := range m.events {
		out[i] = e.EventType
	}
	return out
}

type fixture struct {
	backend *testutil.Backend
	rec     *render.Recorder
	audit   *memRecorder
	router  http.Handler
}

func newFixture[T any, In any](t *testing.T, build func(*backend.Client) Definition[T, In]) *fixture {
	t.Helper()
	be := testutil.NewBackend(t)
	rec := &render.Recorder{}
	t.Cleanup(render.Use(rec))

	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", false, zap.NewNop())
	require.NoError(t, err)
	mem := &memRecorder{}

	c, err := New(build(be.Client()), Deps{
		Audit:    auditlog.New(mem, zap.NewNop(), auditlog.Config{Auth: auditlog.ToDB, Change: auditlog.ToDB}),
		Notify:   notify.New(sm, zap.NewNop()),
		Sessions: sm,
		Log:      zap.NewNop(),
	})
	require.NoError(t, err)
	return &fixture{backend: be, rec: rec, audit: mem, router: c.Routes(sm)}
}

func (f *fixture) serve(r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, r)
	return w
}

func get(target string) *http.Request {
	return testutil.NewAuthenticatedRequest(http.MethodGet, target, testutil.StaffUser())
}

func htmx(r *http.Request) *http.Request {
	r.Header.Set("HX-Request", "true")
	return r
}

func TestNew_RejectsIncompleteDefinition(t *testing.T) {
	c := testutil.NewBackend(t).Client()

	def := folioDefinition(c)
	def.Key = ""
	_, err := New(def, Deps{})
	assert.Error(t, err)

	def = folioDefinition(c)
	def.StatusEnum = "no-such-enum"
	_, err = New(def, Deps{})
	assert.Error(t, err)

	def = folioDefinition(c)
	def.Build = nil
	_, err = New(def, Deps{})
	assert.Error(t, err)

	assert.Panics(t, func() { MustNew(Definition[models.Folio, folioInput]{}, Deps{}) })
}

func TestGuard_RedirectsBeforeAnyFetch(t *testing.T) {
	f := newFixture(t, folioDefinition)

	req := testutil.NewRequest(http.MethodGet, "/3")
	req.Header.Set("Accept", "text/html")
	w := f.serve(req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.True(t, strings.HasPrefix(w.Header().Get("Location"), "/login"))
	assert.Zero(t, f.backend.HitCount())
	assert.Empty(t, f.rec.Calls())
}

func TestList_FetchesZeroBasedPageWithFilters(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.JSON(http.MethodGet, "/api/folios", http.StatusOK,
		testutil.PageOf([]models.Folio{testutil.SampleFolio(1), testutil.SampleFolio(2)}, 3, 45))

	w := f.serve(get("/?page=2&size=20&status=unpaid"))
	require.Equal(t, http.StatusOK, w.Code)

	hits := f.backend.Hits()
	require.Len(t, hits, 1)
	assert.Equal(t, "1", hits[0].Query.Get("page"))
	assert.Equal(t, "20", hits[0].Query.Get("size"))
	assert.Equal(t, "UNPAID", hits[0].Query.Get("status"))
	assert.Equal(t, "Bearer test-token", hits[0].Auth)

	call := f.rec.Last()
	assert.Equal(t, "crud_list", call.Name)
	data := call.Data.(listData)
	require.Len(t, data.Rows, 2)
	assert.Equal(t, "/folios/1", data.Rows[0].Href)
	assert.Equal(t, "180.50", data.Rows[0].Cells[2].Text)
	assert.Equal(t, "Unpaid", data.Rows[0].Status.Label)
	assert.Equal(t, 2, data.Pager.Page)
	assert.Equal(t, 3, data.Pager.TotalPages)
	assert.Equal(t, 21, data.Pager.Range.Start)
	assert.Equal(t, 45, data.Pager.Range.Total)
	assert.True(t, data.HasFilters)
}

func TestList_FilterChangeResetsPage(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.JSON(http.MethodGet, "/api/folios", http.StatusOK, testutil.PageOf([]models.Folio{}, 0, 0))

	stale := paging.Signature(map[string]string{"status": "UNPAID"})
	f.serve(get("/?page=3&status=PAID&fs=" + stale))

	hits := f.backend.Hits()
	require.Len(t, hits, 1)
	assert.Equal(t, "0", hits[0].Query.Get("page"))
	assert.Equal(t, "PAID", hits[0].Query.Get("status"))
}

func TestList_DropsUnknownStatusFilter(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.JSON(http.MethodGet, "/api/folios", http.StatusOK, testutil.PageOf([]models.Folio{}, 0, 0))

	f.serve(get("/?status=BOGUS&roomNumber=204"))

	hits := f.backend.Hits()
	require.Len(t, hits, 1)
	assert.False(t, hits[0].Query.Has("status"))
	assert.Equal(t, "204", hits[0].Query.Get("roomNumber"))
}

func TestList_PastLastPageRedirects(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.JSON(http.MethodGet, "/api/folios", http.StatusOK, testutil.PageOf([]models.Folio{}, 2, 30))

	w := f.serve(get("/?page=9"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "page=2")
}

func TestList_FailureKeepsPriorState(t *testing.T) {
	failing := func(f *fixture) {
		f.backend.Handle(http.MethodGet, "/api/folios", func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		})
	}

	t.Run("htmx swap is cancelled", func(t *testing.T) {
		f := newFixture(t, folioDefinition)
		failing(f)
		w := f.serve(htmx(get("/?page=2")))
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Equal(t, "#notices", w.Header().Get("HX-Retarget"))
		assert.Equal(t, "innerHTML", w.Header().Get("HX-Reswap"))
		call := f.rec.Last()
		require.Equal(t, "notices", call.Name)
		assert.True(t, call.Snippet)
		notices := call.Data.([]notify.Notice)
		require.Len(t, notices, 1)
		assert.Contains(t, notices[0].Message, "Could not load folios: boom")
	})

	t.Run("full load returns to the previous list", func(t *testing.T) {
		f := newFixture(t, folioDefinition)
		failing(f)
		req := get("/?page=2")
		req.Header.Set("Referer", "http://example.com/folios?page=1&size=20")
		w := f.serve(req)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/folios?page=1&size=20", w.Header().Get("Location"))
		assert.Empty(t, f.rec.Calls())
	})

	t.Run("no previous list renders empty with a notice", func(t *testing.T) {
		f := newFixture(t, folioDefinition)
		failing(f)
		f.serve(get("/"))
		call := f.rec.Last()
		require.Equal(t, "crud_list", call.Name)
		data := call.Data.(listData)
		assert.True(t, data.Failed)
		assert.Empty(t, data.Rows)
		require.Len(t, data.Notices, 1)
		assert.Equal(t, notify.Error, data.Notices[0].Level)
		assert.Contains(t, data.Notices[0].Message, "boom")
	})
}

func TestView_InvalidIDMakesNoCall(t *testing.T) {
	f := newFixture(t, folioDefinition)

	for _, id := range []string{"abc", "0", "-4"} {
		w := f.serve(get("/" + id))
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
	}
	assert.Zero(t, f.backend.HitCount())
	assert.Equal(t, "error_page", f.rec.Last().Name)
}

func TestView_NotFoundStopsAfterOneCall(t *testing.T) {
	f := newFixture(t, folioDefinition)

	w := f.serve(get("/404"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 1, f.backend.HitCount())
	assert.Equal(t, "error_page", f.rec.Last().Name)
}

func TestView_RendersRecordAndChildren(t *testing.T) {
	f := newFixture(t, folioDefinition)
	folio := testutil.SampleFolio(3)
	f.backend.JSON(http.MethodGet, "/api/folios/3", http.StatusOK, folio)

	f.serve(get("/3"))

	call := f.rec.Last()
	require.Equal(t, "crud_view", call.Name)
	data := call.Data.(viewData)
	assert.Equal(t, int64(3), data.ID)
	assert.Equal(t, "Folio #3, room 204", data.RecordTitle)
	assert.Equal(t, "/folios/3/edit", data.EditHref)
	require.NotNil(t, data.Status)
	assert.Equal(t, "/folios/3/status", data.Status.Action)
	assert.Len(t, data.Status.Options, 3)
}

func TestView_UnauthorizedSignsOut(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.Handle(http.MethodGet, "/api/folios/3", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	req := get("/3")
	req.Header.Set("Accept", "text/html")
	w := f.serve(req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?return=%2F3", w.Header().Get("Location"))
	assert.Equal(t, []string{audit.EventSessionExpired}, f.audit.types())
}

func TestEdit_PrefillsForm(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.JSON(http.MethodGet, "/api/folios/3", http.StatusOK, testutil.SampleFolio(3))

	f.serve(get("/3/edit"))

	call := f.rec.Last()
	require.Equal(t, "crud_edit", call.Name)
	data := call.Data.(editData)
	require.Len(t, data.Inputs, 2)
	assert.Equal(t, "204", data.Inputs[0].Value)
	assert.True(t, data.Inputs[1].IsSelect)
	assert.Equal(t, "UNPAID", data.Inputs[1].Value)
}

func TestEdit_ValidationFailureMakesNoCall(t *testing.T) {
	f := newFixture(t, folioDefinition)

	req := testutil.NewFormRequest("/3/edit", map[string]string{"roomNumber": "  ", "status": "UNPAID"}, testutil.StaffUser())
	w := f.serve(req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, f.backend.HitCount())
	call := f.rec.Last()
	require.Equal(t, "crud_edit", call.Name)
	data := call.Data.(editData)
	assert.Equal(t, "Room is required.", data.Error)
	assert.Equal(t, "Room is required.", data.Inputs[0].Error)
	assert.Empty(t, f.audit.types())
}

func TestEdit_BadStatusRejectedLocally(t *testing.T) {
	f := newFixture(t, folioDefinition)

	req := testutil.NewFormRequest("/3/edit", map[string]string{"roomNumber": "204", "status": "COMPLETED"}, testutil.StaffUser())
	f.serve(req)

	assert.Zero(t, f.backend.HitCount())
	assert.Contains(t, f.rec.Last().Data.(editData).Error, "Status must be one of")
}

func TestEdit_PutRendersServerResponse(t *testing.T) {
	f := newFixture(t, folioDefinition)
	original := testutil.SampleFolio(3)
	f.backend.JSON(http.MethodGet, "/api/folios/3", http.StatusOK, original)

	// The backend recomputes totals; the page must show its version.
	saved := original
	saved.RoomNumber = "305"
	saved.Status = "PAID"
	saved.Total = decimal.RequireFromString("199.99")
	f.backend.JSON(http.MethodPut, "/api/folios/3", http.StatusOK, saved)

	req := testutil.NewFormRequest("/3/edit", map[string]string{"roomNumber": "305", "status": "paid"}, testutil.StaffUser())
	w := f.serve(req)
	require.Equal(t, http.StatusOK, w.Code)

	hits := f.backend.Hits()
	require.Len(t, hits, 2)
	assert.Equal(t, http.MethodPut, hits[1].Method)
	var sent models.Folio
	require.NoError(t, json.Unmarshal([]byte(hits[1].Body), &sent))
	assert.Equal(t, "305", sent.RoomNumber)
	assert.Equal(t, "PAID", sent.Status)
	assert.Equal(t, int64(3), sent.ID)

	call := f.rec.Last()
	require.Equal(t, "crud_view", call.Name)
	shown := call.Data.(viewData).Record.(models.Folio)
	assert.Equal(t, "305", shown.RoomNumber)
	assert.True(t, shown.Total.Equal(decimal.RequireFromString("199.99")))
	assert.Equal(t, []string{audit.EventRecordUpdated}, f.audit.types())
}

func TestEdit_HTMXRendersBodySnippet(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.JSON(http.MethodGet, "/api/folios/3", http.StatusOK, testutil.SampleFolio(3))
	f.backend.JSON(http.MethodPut, "/api/folios/3", http.StatusOK, testutil.SampleFolio(3))

	req := htmx(testutil.NewFormRequest("/3/edit", map[string]string{"roomNumber": "204", "status": "UNPAID"}, testutil.StaffUser()))
	w := f.serve(req)

	call := f.rec.Last()
	assert.Equal(t, "crud_view_body", call.Name)
	assert.True(t, call.Snippet)
	assert.True(t, call.Data.(viewData).Partial)
	assert.Equal(t, "/folios/3", w.Header().Get("HX-Push-Url"))
}

func TestEdit_BackendRejectionShownInline(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.JSON(http.MethodGet, "/api/folios/3", http.StatusOK, testutil.SampleFolio(3))
	f.backend.Handle(http.MethodPut, "/api/folios/3", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "<h1>Room 999 does not exist</h1>", http.StatusConflict)
	})

	req := testutil.NewFormRequest("/3/edit", map[string]string{"roomNumber": "999", "status": "UNPAID"}, testutil.StaffUser())
	f.serve(req)

	call := f.rec.Last()
	require.Equal(t, "crud_edit", call.Name)
	data := call.Data.(editData)
	assert.Contains(t, data.Error, "Room 999 does not exist")
	assert.NotContains(t, data.Error, "<h1>")
	assert.Equal(t, "999", data.Inputs[0].Value)
	assert.Equal(t, []string{audit.EventWriteRejected}, f.audit.types())
}

func TestEdit_PatchSendsOnlyChangedFields(t *testing.T) {
	f := newFixture(t, salaryDefinition)
	original := testutil.SampleSalary(5)
	f.backend.JSON(http.MethodGet, "/api/salaries/5", http.StatusOK, original)
	patched := original
	patched.PayDate = "2024-05-06"
	f.backend.JSON(http.MethodPatch, "/api/salaries/5", http.StatusOK, patched)

	req := testutil.NewFormRequest("/5/edit", map[string]string{"amount": "2450.00", "payDate": "2024-05-06"}, testutil.StaffUser())
	f.serve(req)

	hits := f.backend.Hits()
	require.Len(t, hits, 2)
	assert.Equal(t, http.MethodPatch, hits[1].Method)
	assert.JSONEq(t, `{"payDate":"2024-05-06"}`, hits[1].Body)
	assert.Equal(t, "2024-05-06", f.rec.Last().Data.(viewData).Record.(models.Salary).PayDate)
	assert.Equal(t, []string{audit.EventRecordPatched}, f.audit.types())
}

func TestEdit_PatchWithoutChangesSkipsCall(t *testing.T) {
	f := newFixture(t, salaryDefinition)
	original := testutil.SampleSalary(5)
	f.backend.JSON(http.MethodGet, "/api/salaries/5", http.StatusOK, original)

	req := testutil.NewFormRequest("/5/edit", map[string]string{"amount": "2450", "payDate": original.PayDate}, testutil.StaffUser())
	f.serve(req)

	assert.Equal(t, 1, f.backend.HitCount())
	data := f.rec.Last().Data.(viewData)
	require.Len(t, data.Notices, 1)
	assert.Equal(t, "No changes to save.", data.Notices[0].Message)
	assert.Empty(t, f.audit.types())
}

func TestStatus_InvalidValueMakesNoCall(t *testing.T) {
	f := newFixture(t, folioDefinition)

	req := htmx(testutil.NewFormRequest("/3/status", map[string]string{"status": "DONE"}, testutil.StaffUser()))
	w := f.serve(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, f.backend.HitCount())
}

func TestStatus_ChangesAndRendersBadge(t *testing.T) {
	f := newFixture(t, folioDefinition)
	paid := testutil.SampleFolio(3)
	paid.Status = "PAID"
	f.backend.JSON(http.MethodPatch, "/api/folios/3/status", http.StatusOK, paid)

	req := htmx(testutil.NewFormRequest("/3/status", map[string]string{"status": "paid", "from": "UNPAID"}, testutil.StaffUser()))
	f.serve(req)

	hits := f.backend.Hits()
	require.Len(t, hits, 1)
	assert.Equal(t, "PAID", hits[0].Query.Get("status"))

	call := f.rec.Last()
	require.Equal(t, "crud_status_badge", call.Name)
	vm := call.Data.(*statusVM)
	assert.Equal(t, "PAID", vm.Current)
	assert.Equal(t, "Paid", vm.Label)

	f.audit.mu.Lock()
	defer f.audit.mu.Unlock()
	require.Len(t, f.audit.events, 1)
	assert.Equal(t, map[string]string{"from": "UNPAID", "to": "PAID"}, f.audit.events[0].Details)
}

func TestStatus_PutBodyResource(t *testing.T) {
	f := newFixture(t, salaryDefinition)
	paid := testutil.SampleSalary(5)
	paid.Status = "PAID"
	f.backend.JSON(http.MethodPut, "/api/salaries/5/status", http.StatusOK, paid)

	req := testutil.NewFormRequest("/5/status", map[string]string{"status": "PAID", "return": "/salaries?page=2"}, testutil.StaffUser())
	w := f.serve(req)

	hits := f.backend.Hits()
	require.Len(t, hits, 1)
	assert.Equal(t, "PAID", hits[0].Body)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/salaries?page=2", w.Header().Get("Location"))
}

func TestCreate_ThenGetRoundTrip(t *testing.T) {
	f := newFixture(t, folioDefinition)

	var (
		mu     sync.Mutex
		stored []byte
	)
	f.backend.Handle(http.MethodPost, "/api/folios", func(w http.ResponseWriter, r *http.Request) {
		var in models.Folio
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		in.ID = 9
		in.Total = decimal.Zero
		mu.Lock()
		stored, _ = json.Marshal(in)
		mu.Unlock()
		testutil.WriteJSON(w, http.StatusCreated, in)
	})
	f.backend.Handle(http.MethodGet, "/api/folios/9", func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(stored)
	})

	req := testutil.NewFormRequest("/", map[string]string{"roomNumber": "118", "status": "PENDING"}, testutil.StaffUser())
	w := f.serve(req)
	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/folios/9", w.Header().Get("Location"))

	f.serve(get("/9"))
	got := f.rec.Last().Data.(viewData).Record.(models.Folio)

	var want models.Folio
	require.NoError(t, json.Unmarshal(stored, &want))
	assert.Equal(t, want, got)
	assert.Equal(t, "118", got.RoomNumber)
	assert.Equal(t, "PENDING", got.Status)
	assert.Equal(t, []string{audit.EventRecordCreated}, f.audit.types())
}

func TestCreate_NotMountedWhenDisallowed(t *testing.T) {
	f := newFixture(t, salaryDefinition)

	w := f.serve(get("/new"))

	// /new falls through to /{id} and is rejected as an id.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, f.backend.HitCount())
}

func TestExport_WritesAllPages(t *testing.T) {
	f := newFixture(t, folioDefinition)
	f.backend.Handle(http.MethodGet, "/api/folios", func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		id := int64(1)
		if page == "1" {
			id = 2
		}
		testutil.WriteJSON(w, http.StatusOK, testutil.PageOf([]models.Folio{testutil.SampleFolio(id)}, 2, 2))
	})

	w := f.serve(get("/export.xlsx?status=UNPAID"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "folios-")
	assert.Equal(t, 2, f.backend.HitCount())

	book, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer book.Close()
	rows, err := book.GetRows("Folios")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"ID", "Room", "Guest", "Total"}, rows[0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "180.5", rows[1][3])
}
