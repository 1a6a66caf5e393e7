package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	tokenKey = "backend_token"
	flashKey = "_notices"
)

// DefaultSessionName is used when no session_name is configured.
const DefaultSessionName = "hotelhub-session"

// SessionManager owns the cookie store holding the backend bearer token and
// the flash notices shown on the next page.
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
	clock func() time.Time
}

// NewSessionManager builds the cookie store.
//
// An empty sessionKey generates a random key, which logs everyone out on
// restart; that is only acceptable in development, so bootstrap refuses an
// empty key in production. Secure cookies use SameSite=Lax so the login
// redirect back from /login keeps the session.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if name == "" {
		name = DefaultSessionName
	}

	var hashKey []byte
	switch {
	case sessionKey == "":
		hashKey = securecookie.GenerateRandomKey(32)
		if hashKey == nil {
			return nil, errors.New("session: could not generate a random key")
		}
		logger.Warn("session key not configured; using a random key (sessions end on restart)")
	case len(sessionKey) < 32:
		logger.Warn("session key is short; 32+ chars recommended", zap.Int("length", len(sessionKey)))
		hashKey = []byte(sessionKey)
	default:
		hashKey = []byte(sessionKey)
	}

	store := sessions.NewCookieStore(hashKey)
	store.Options = &sessions.Options{
		Domain:   domain,
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	logger.Info("session store initialized",
		zap.String("name", name),
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger, clock: time.Now}, nil
}

// Session returns the request's session. A cookie that no longer decodes
// (rotated key) yields a fresh session instead of an error.
func (sm *SessionManager) Session(r *http.Request) *sessions.Session {
	sess, err := sm.store.Get(r, sm.name)
	if err != nil {
		sm.log.Debug("discarding undecodable session cookie", zap.Error(err))
	}
	return sess
}

// Save writes the session cookie.
func (sm *SessionManager) Save(w http.ResponseWriter, r *http.Request, sess *sessions.Session) error {
	return sess.Save(r, w)
}

// SignIn stores the backend token in the session.
func (sm *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, token string) error {
	sess := sm.Session(r)
	sess.Values[tokenKey] = token
	return sess.Save(r, w)
}

// SignOut drops the token but keeps the session so a flash notice can still
// be carried to the login page.
func (sm *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess := sm.Session(r)
	delete(sess.Values, tokenKey)
	return sess.Save(r, w)
}

// Destroy expires the session cookie entirely.
func (sm *SessionManager) Destroy(w http.ResponseWriter, r *http.Request) error {
	sess := sm.Session(r)
	sess.Values = map[interface{}]interface{}{}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// AddFlash queues a value for the next rendered page.
func (sm *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, v string) error {
	sess := sm.Session(r)
	sess.AddFlash(v, flashKey)
	return sess.Save(r, w)
}

// Flashes pops queued values. The cookie is only rewritten when there was
// something to pop.
func (sm *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	sess := sm.Session(r)
	raw := sess.Flashes(flashKey)
	if len(raw) == 0 {
		return nil
	}
	if err := sess.Save(r, w); err != nil {
		sm.log.Warn("save session after reading flashes", zap.Error(err))
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func (sm *SessionManager) token(r *http.Request) string {
	s, _ := sm.Session(r).Values[tokenKey].(string)
	return s
}
