// internal/app/features/login/handler.go
package login

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	uierrors "github.com/dalemusser/hotelhub/internal/app/features/errors"
	"github.com/dalemusser/hotelhub/internal/app/system/auditlog"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/ratelimit"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/timeouts"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

// Authenticator exchanges credentials for a backend bearer token.
// *backend.Client satisfies it.
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, error)
}

type Handler struct {
	Backend    Authenticator
	SessionMgr *auth.SessionManager
	ErrLog     *uierrors.ErrorLogger
	AuditLog   *auditlog.Logger
	Limiter    *ratelimit.LoginLimiter
	Log        *zap.Logger
}

func NewHandler(
	be Authenticator,
	sessionMgr *auth.SessionManager,
	errLog *uierrors.ErrorLogger,
	audit *auditlog.Logger,
	limiter *ratelimit.LoginLimiter,
	logger *zap.Logger,
) *Handler {
	if audit == nil {
		audit = auditlog.NewNopLogger()
	}
	return &Handler{
		Backend:    be,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		AuditLog:   audit,
		Limiter:    limiter,
		Log:        logger,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Template-data                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

type loginFormData struct {
	viewdata.BaseVM
	Username  string
	ReturnURL string
}

// landing is where a login without a usable return target ends up.
const landing = "/"

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")

	// Already signed in: go straight to where the user was headed.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, urlutil.SafeReturn(ret, "", landing), http.StatusSeeOther)
		return
	}

	render.Page(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Sign in", "/"),
		ReturnURL: ret,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form data.", "/login")
		return
	}

	username := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")
	ret := strings.TrimSpace(r.PostFormValue("return"))

	if username == "" || strings.TrimSpace(password) == "" {
		h.renderFormWithError(w, r, http.StatusOK, "Please enter your username and password.", username, ret)
		return
	}

	if h.Limiter != nil {
		if ok, reason := h.Limiter.Check(r, username); !ok {
			h.AuditLog.LoginFailedRateLimit(r.Context(), r, username)
			h.renderFormWithError(w, r, http.StatusTooManyRequests, reason, username, ret)
			return
		}
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Write(), h.Log, "login")
	defer cancel()

	token, err := h.Backend.Login(ctx, username, password)
	if err != nil {
		msg := loginFailureMessage(err)
		if h.Limiter != nil && rejectedCredentials(err) {
			msg = withAttemptsLeft(msg, h.Limiter.AttemptsLeft(r.Context(), username))
		}
		h.Log.Info("login rejected",
			zap.String("username", username),
			zap.Int("status", backend.StatusCode(err)),
			zap.Error(err))
		h.AuditLog.LoginFailed(r.Context(), r, username, err.Error())
		h.renderFormWithError(w, r, http.StatusOK, msg, username, ret)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, token); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("username", username))
		h.renderFormWithError(w, r, http.StatusOK, "Unable to create session. Please try again.", username, ret)
		return
	}

	if h.Limiter != nil {
		h.Limiter.ResetUser(r.Context(), username)
	}

	actor := username
	if c, ok := auth.ParseClaims(token); ok && c.Name != "" {
		actor = c.Name
	}
	h.AuditLog.LoginSuccess(r.Context(), r, actor)

	http.Redirect(w, r, urlutil.SafeReturn(ret, "", landing), http.StatusSeeOther)
}

// loginFailureMessage maps a failed token exchange to form text. Bad
// credentials never echo the backend's body so the form does not reveal
// which half was wrong.
func loginFailureMessage(err error) string {
	switch {
	case rejectedCredentials(err):
		return "Invalid username or password."
	case errors.Is(err, backend.ErrNoToken):
		return "The hotel service did not issue a session. Please try again."
	case errors.Is(err, context.DeadlineExceeded):
		return "The hotel service took too long to answer. Please try again."
	default:
		return backend.UserMessage(err)
	}
}

func rejectedCredentials(err error) bool {
	switch backend.StatusCode(err) {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return true
	}
	return false
}

// withAttemptsLeft warns once the account is close to being throttled.
func withAttemptsLeft(msg string, left int64) string {
	switch {
	case left > 2:
		return msg
	case left <= 0:
		return msg + " Further attempts for this account are paused for a few minutes."
	case left == 1:
		return msg + " 1 attempt left before sign-in is paused."
	default:
		return fmt.Sprintf("%s %d attempts left before sign-in is paused.", msg, left)
	}
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, status int, msg, username, ret string) {
	data := loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, "Sign in", "/"),
		Username:  username,
		ReturnURL: ret,
	}
	data.SetError(msg)
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	render.Page(w, r, "login", data)
}
