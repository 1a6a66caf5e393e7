// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/hotelhub/internal/app/store/audit"
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/dalemusser/hotelhub/internal/app/system/clientip"
	"github.com/dalemusser/hotelhub/internal/app/system/requestid"
	"go.uber.org/zap"
)

// Destination settings accepted by Config fields.
const (
	ToAll = "all" // MongoDB + zap
	ToDB  = "db"  // MongoDB only
	ToLog = "log" // zap only
	Off   = "off"
)

// Config holds audit logging configuration.
type Config struct {
	// Auth controls login/logout events.
	Auth string
	// Change controls successful and rejected backend writes.
	Change string
	// Clients resolves the IP recorded on each event.
	Clients clientip.Resolver
}

// ParseSetting normalises a config value, defaulting unknown values to "all".
func ParseSetting(s string) string {
	switch v := strings.ToLower(strings.TrimSpace(s)); v {
	case ToAll, ToDB, ToLog, Off:
		return v
	default:
		return ToAll
	}
}

// Recorder persists events; *audit.Store satisfies it.
type Recorder interface {
	Log(ctx context.Context, event audit.Event) error
}

// Logger records activity to MongoDB and zap according to Config.
type Logger struct {
	store  Recorder
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger. A nil store turns DB logging off.
func New(store Recorder, zapLog *zap.Logger, config Config) *Logger {
	if zapLog == nil {
		zapLog = zap.NewNop()
	}
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: Config{Auth: ParseSetting(config.Auth), Change: ParseSetting(config.Change), Clients: config.Clients},
	}
}

// NewNopLogger returns a logger that records nothing. Used by tests.
func NewNopLogger() *Logger {
	return &Logger{zapLog: zap.NewNop(), config: Config{Auth: Off, Change: Off}}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.Actor != "" {
		fields = append(fields, zap.String("actor", event.Actor))
	}
	if event.Resource != "" {
		fields = append(fields, zap.String("resource", event.Resource))
	}
	if event.RecordID != 0 {
		fields = append(fields, zap.Int64("record_id", event.RecordID))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an event. A nil Logger is a no-op.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryChange:
		setting = l.config.Change
	default:
		setting = ToAll
	}
	if setting == Off {
		return
	}

	if setting == ToAll || setting == ToLog {
		l.logToZap(event)
	}
	if (setting == ToAll || setting == ToDB) && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// fromRequest fills the request-derived fields.
func (l *Logger) fromRequest(r *http.Request, e audit.Event) audit.Event {
	e.IP = l.config.Clients.IP(r)
	e.UserAgent = r.UserAgent()
	e.RequestID = requestid.From(r.Context())
	if e.Actor == "" {
		if u, ok := auth.CurrentUser(r); ok {
			e.Actor = u.Name
		}
	}
	return e
}

// --- Authentication Events ---

// LoginSuccess logs a successful token exchange.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, username string) {
	l.Log(ctx, l.fromRequest(r, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLoginSuccess,
		Actor:     username,
		Success:   true,
	}))
}

// LoginFailed logs a rejected login. reason is the backend's answer.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, username, reason string) {
	l.Log(ctx, l.fromRequest(r, audit.Event{
		Category:      audit.CategoryAuth,
		EventType:     audit.EventLoginFailed,
		Actor:         username,
		Success:       false,
		FailureReason: reason,
	}))
}

// LoginFailedRateLimit logs a login refused before reaching the backend.
func (l *Logger) LoginFailedRateLimit(ctx context.Context, r *http.Request, username string) {
	l.Log(ctx, l.fromRequest(r, audit.Event{
		Category:      audit.CategoryAuth,
		EventType:     audit.EventLoginFailedRateLimit,
		Actor:         username,
		Success:       false,
		FailureReason: "rate limit exceeded",
	}))
}

// Logout logs a sign-out.
func (l *Logger) Logout(ctx context.Context, r *http.Request) {
	l.Log(ctx, l.fromRequest(r, audit.Event{
		Category:  audit.CategoryAuth,
		EventType: audit.EventLogout,
		Success:   true,
	}))
}

// SessionExpired logs a backend 401 that ended the session.
func (l *Logger) SessionExpired(ctx context.Context, r *http.Request, resource string) {
	l.Log(ctx, l.fromRequest(r, audit.Event{
		Category:      audit.CategoryAuth,
		EventType:     audit.EventSessionExpired,
		Resource:      resource,
		Success:       false,
		FailureReason: "backend rejected token",
	}))
}

// --- Change Events ---

// RecordUpdated logs a PUT.
func (l *Logger) RecordUpdated(ctx context.Context, r *http.Request, resource string, id int64) {
	l.change(ctx, r, audit.EventRecordUpdated, resource, id, nil)
}

// RecordPatched logs a PATCH; fields lists the top-level keys sent.
func (l *Logger) RecordPatched(ctx context.Context, r *http.Request, resource string, id int64, fields []string) {
	l.change(ctx, r, audit.EventRecordPatched, resource, id, map[string]string{
		"fields": strings.Join(fields, ","),
	})
}

// StatusChanged logs a status endpoint call.
func (l *Logger) StatusChanged(ctx context.Context, r *http.Request, resource string, id int64, from, to string) {
	l.change(ctx, r, audit.EventStatusChanged, resource, id, map[string]string{
		"from": from,
		"to":   to,
	})
}

// RecordCreated logs a POST.
func (l *Logger) RecordCreated(ctx context.Context, r *http.Request, resource string, id int64) {
	l.change(ctx, r, audit.EventRecordCreated, resource, id, nil)
}

// WriteRejected logs a write the backend refused with a 4xx/5xx.
func (l *Logger) WriteRejected(ctx context.Context, r *http.Request, resource string, id int64, status int, reason string) {
	l.Log(ctx, l.fromRequest(r, audit.Event{
		Category:      audit.CategoryChange,
		EventType:     audit.EventWriteRejected,
		Resource:      resource,
		RecordID:      id,
		Success:       false,
		FailureReason: reason,
		Details:       map[string]string{"status": strconv.Itoa(status)},
	}))
}

func (l *Logger) change(ctx context.Context, r *http.Request, eventType, resource string, id int64, details map[string]string) {
	l.Log(ctx, l.fromRequest(r, audit.Event{
		Category:  audit.CategoryChange,
		EventType: eventType,
		Resource:  resource,
		RecordID:  id,
		Success:   true,
		Details:   details,
	}))
}
