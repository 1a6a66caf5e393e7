// internal/app/features/activity/routes.go
package activity

import (
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the router for the activity log. Any signed-in operator
// may read it.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireToken)
		pr.Get("/", h.ServeList)
		pr.Get("/export.csv", h.ServeCSV)
	})

	return r
}
