// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/hotelhub/internal/app/system/notify"
	"github.com/dalemusser/hotelhub/internal/app/system/render"
	"github.com/dalemusser/hotelhub/internal/app/system/viewdata"
)

func renderError(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, title, backURL),
		Status:  status,
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}
	w.WriteHeader(status)
	render.Page(w, r, "error_page", data)
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	renderError(w, r, http.StatusUnauthorized, "Sign in required", "Please sign in to continue.", backURL)
}

// RenderForbidden shows an access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusForbidden, "Access denied", msg, backURL)
}

// RenderNotFound shows a "not found" page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusNotFound, "Not found", msg, backURL)
}

// RenderBadRequest shows an "invalid request" page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusBadRequest, "Invalid request", msg, backURL)
}

// RenderServerError shows a generic failure page.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL)
}

// RenderUnavailable is for a backend that could not be reached.
func RenderUnavailable(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	renderError(w, r, http.StatusBadGateway, "Service unavailable", msg, backURL)
}

// HTMXError answers an htmx request with status and msg drawn as an error
// notice. The response is retargeted at the layout's #notices region, so
// the element that issued the request keeps its current content.
func HTMXError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("HX-Retarget", "#notices")
	w.Header().Set("HX-Reswap", "innerHTML")
	w.WriteHeader(status)
	render.Snippet(w, "notices", []notify.Notice{{Level: notify.Error, Message: msg}})
}

// HTMXBadRequest is HTMXError with 400.
func HTMXBadRequest(w http.ResponseWriter, msg string) {
	HTMXError(w, http.StatusBadRequest, msg)
}

// HTMXNotFound is HTMXError with 404.
func HTMXNotFound(w http.ResponseWriter, msg string) {
	HTMXError(w, http.StatusNotFound, msg)
}
