// Package notify carries one-shot notices (toasts) from the request that
// produced them to the next page the user sees. Notices ride in the session
// as flashes; form validation messages do not use this and stay inline.
package notify

import (
	"net/http"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/htmlsanitize"
	"go.uber.org/zap"
)

// Level is the notice severity; it doubles as a CSS modifier.
type Level string

const (
	Success Level = "success"
	Info    Level = "info"
	Warning Level = "warning"
	Error   Level = "error"
)

// Notice is one toast.
type Notice struct {
	Level   Level
	Message string
}

// Class is the CSS class for the toast.
func (n Notice) Class() string { return "notice notice-" + string(n.Level) }

// Store is the session half of notify, satisfied by *auth.SessionManager.
type Store interface {
	AddFlash(w http.ResponseWriter, r *http.Request, v string) error
	Flashes(w http.ResponseWriter, r *http.Request) []string
}

// Notifier queues and pops notices.
type Notifier struct {
	store Store
	log   *zap.Logger
}

// New builds a Notifier over the session store.
func New(store Store, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{store: store, log: logger}
}

// Add queues a notice. The message is reduced to plain text first so
// backend-supplied text can never inject markup.
func (n *Notifier) Add(w http.ResponseWriter, r *http.Request, level Level, msg string) {
	if n == nil || n.store == nil {
		return
	}
	msg = htmlsanitize.Text(msg)
	if msg == "" {
		return
	}
	if err := n.store.AddFlash(w, r, encode(Notice{Level: level, Message: msg})); err != nil {
		n.log.Warn("queue notice", zap.Error(err), zap.String("level", string(level)))
	}
}

func (n *Notifier) Success(w http.ResponseWriter, r *http.Request, msg string) {
	n.Add(w, r, Success, msg)
}

// BackendError queues the user-facing text for a backend failure,
// prefixed with what was being attempted ("Could not load folios").
func (n *Notifier) BackendError(w http.ResponseWriter, r *http.Request, doing string, err error) {
	n.Add(w, r, Error, Describe(doing, err))
}

// Pop returns and clears the queued notices.
func (n *Notifier) Pop(w http.ResponseWriter, r *http.Request) []Notice {
	if n == nil || n.store == nil {
		return nil
	}
	raw := n.store.Flashes(w, r)
	out := make([]Notice, 0, len(raw))
	for _, s := range raw {
		if nt, ok := decode(s); ok {
			out = append(out, nt)
		}
	}
	return out
}

// Describe builds notice text for a failed backend call.
func Describe(doing string, err error) string {
	msg := htmlsanitize.Text(backend.UserMessage(err))
	doing = strings.TrimSpace(doing)
	switch {
	case doing == "":
		return msg
	case msg == "":
		return doing + "."
	default:
		return doing + ": " + msg
	}
}

func encode(n Notice) string { return string(n.Level) + "|" + n.Message }

func decode(s string) (Notice, bool) {
	level, msg, ok := strings.Cut(s, "|")
	if !ok || msg == "" {
		return Notice{}, false
	}
	switch Level(level) {
	case Success, Info, Warning, Error:
		return Notice{Level: Level(level), Message: msg}, true
	}
	return Notice{Level: Info, Message: msg}, true
}
