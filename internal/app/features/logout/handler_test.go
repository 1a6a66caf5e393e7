package logout_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/hotelhub/internal/app/features/logout"
	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/auditlog"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/testutil"
	"go.uber.org/zap"
)

type events struct{ all []audit.Event }

func (e *events) Log(_ context.Context, ev audit.Event) error {
	e.all = append(e.all, ev)
	return nil
}

func newTestHandler(t *testing.T) (*logout.Handler, *events) {
	t.Helper()
	logger := zap.NewNop()

	sessionMgr, err := auth.NewSessionManager("test-session-key-for-testing-only-0123456789", "test-session", "", false, logger)
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	ev := &events{}
	return logout.NewHandler(sessionMgr, auditlog.New(ev, logger, auditlog.Config{Auth: auditlog.ToDB}), logger), ev
}

func TestServeLogout_RedirectsToLogin(t *testing.T) {
	handler, ev := newTestHandler(t)

	req := testutil.NewAuthenticatedRequest("POST", "/logout", testutil.StaffUser())
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if location := rec.Header().Get("Location"); location != "/login" {
		t.Errorf("Location: got %q, want %q", location, "/login")
	}
	if len(ev.all) != 1 || ev.all[0].EventType != audit.EventLogout {
		t.Errorf("expected one logout event, got %+v", ev.all)
	}
	if ev.all[0].Actor != testutil.StaffUser().Name {
		t.Errorf("actor: got %q, want %q", ev.all[0].Actor, testutil.StaffUser().Name)
	}
}

func TestServeLogout_ClearsSessionCookie(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			found = true
			if c.MaxAge >= 0 {
				t.Errorf("expected MaxAge < 0 to delete cookie, got %d", c.MaxAge)
			}
		}
	}
	if !found {
		t.Error("expected session cookie to be set (for deletion)")
	}
}

func TestServeLogout_AnonymousIsNotAudited(t *testing.T) {
	handler, ev := newTestHandler(t)

	handler.ServeLogout(httptest.NewRecorder(), httptest.NewRequest("POST", "/logout", nil))

	if len(ev.all) != 0 {
		t.Errorf("expected no events, got %d", len(ev.all))
	}
}

func TestServeLogout_HTMX(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := httptest.NewRequest("POST", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	handler.ServeLogout(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get("HX-Redirect"); got != "/login" {
		t.Errorf("HX-Redirect: got %q, want %q", got, "/login")
	}
}
