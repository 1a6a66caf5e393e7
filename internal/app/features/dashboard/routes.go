// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes wires the landing page under whatever mount point the top-level
// router chooses ("/").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireToken)
		pr.Get("/", h.ServeDashboard)
	})

	return r
}
