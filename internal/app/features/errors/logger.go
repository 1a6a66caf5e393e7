// internal/app/features/errors/logger.go
package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/dalemusser/hotelhub/internal/app/backend"
	"github.com/dalemusser/hotelhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/hotelhub/internal/app/system/requestid"
	"go.uber.org/zap"
)

// ErrorLogger logs a failure with request context and renders the matching
// error page in one call.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

func (e *ErrorLogger) fields(r *http.Request, err error) []zap.Field {
	f := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	}
	if id := requestid.From(r.Context()); id != "" {
		f = append(f, zap.String("request_id", id))
	}
	if err != nil {
		f = append(f, zap.Error(err))
	}
	return f
}

// LogServerError logs at error level and renders a 500 page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, e.fields(r, err)...)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs at warn level and renders a 400 page.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, e.fields(r, err)...)
	RenderBadRequest(w, r, userMsg, backURL)
}

// LogBackendError picks the page for a failed backend call: not found,
// unreachable, rejected (the backend's own message) or a generic failure.
func (e *ErrorLogger) LogBackendError(w http.ResponseWriter, r *http.Request, logMsg string, err error, notFoundMsg, backURL string) {
	var apiErr *backend.APIError
	switch {
	case stderrors.Is(err, backend.ErrNotFound):
		e.log.Info(logMsg, e.fields(r, err)...)
		RenderNotFound(w, r, notFoundMsg, backURL)
	case stderrors.Is(err, backend.ErrTransport):
		e.log.Error(logMsg, e.fields(r, err)...)
		RenderUnavailable(w, r, backend.UserMessage(err), backURL)
	case stderrors.As(err, &apiErr) && apiErr.Status < 500:
		e.log.Warn(logMsg, e.fields(r, err)...)
		RenderBadRequest(w, r, htmlsanitize.Text(apiErr.Message()), backURL)
	default:
		e.log.Error(logMsg, e.fields(r, err)...)
		RenderServerError(w, r, htmlsanitize.TextOr(backend.UserMessage(err), "Something went wrong."), backURL)
	}
}

// HTMXLogServerError logs and answers an htmx request with a 500 message.
func (e *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Error(logMsg, e.fields(r, err)...)
	HTMXError(w, http.StatusInternalServerError, userMsg)
}

// HTMXLogBadRequest logs and answers an htmx request with a 400 message.
func (e *ErrorLogger) HTMXLogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg string) {
	e.log.Warn(logMsg, e.fields(r, err)...)
	HTMXBadRequest(w, userMsg)
}
