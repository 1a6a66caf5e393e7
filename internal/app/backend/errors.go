package backend

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrNotFound is returned for a 404 from the backend.
	ErrNotFound = errors.New("backend: not found")
	// ErrUnauthorized is returned for a 401; the caller's token is missing,
	// expired or revoked.
	ErrUnauthorized = errors.New("backend: unauthorized")
	// ErrTransport wraps network failures: the request never produced an
	// HTTP response.
	ErrTransport = errors.New("backend: transport failure")
)

// maxErrorBody bounds how much of a non-2xx body is read.
const maxErrorBody = 4 << 10

// APIError is a non-2xx response.
type APIError struct {
	Method     string
	Path       string
	Status     int
	StatusText string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend: %s %s: %d %s", e.Method, e.Path, e.Status, e.Message())
}

// Message is what the user sees: the response body when there is one,
// otherwise the HTTP status text.
func (e *APIError) Message() string {
	if b := strings.TrimSpace(e.Body); b != "" {
		return b
	}
	if e.StatusText != "" {
		return e.StatusText
	}
	return http.StatusText(e.Status)
}

// Is lets errors.Is(err, ErrNotFound) and errors.Is(err, ErrUnauthorized)
// match on status.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	}
	return false
}

// transportError keeps the underlying network error while matching
// ErrTransport.
type transportError struct {
	op  string
	err error
}

func (e *transportError) Error() string { return "backend: " + e.op + ": " + e.err.Error() }
func (e *transportError) Unwrap() []error {
	return []error{ErrTransport, e.err}
}

// UserMessage turns any client error into text for a notice. Transport
// failures get a generic message since their details mean nothing to users.
func UserMessage(err error) string {
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message()
	case errors.Is(err, ErrTransport):
		return "The hotel service could not be reached. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}

// StatusCode returns the HTTP status of an APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
