// internal/app/features/login/routes.go
package login

import "github.com/go-chi/chi/v5"

// Routes is public; a signed-in operator asking for the form is sent on to
// the return URL.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeLogin)
	r.Post("/", h.HandleLoginPost)
	return r
}
