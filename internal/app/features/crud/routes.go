package crud

import (
	"github.com/dalemusser/hotelhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the controller. Every route requires a backend token; the
// guard runs before any handler fetches anything.
func (c *Controller[T, In]) Routes(sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireToken)

		// LIST
		pr.Get("/", c.ServeList)
		pr.Get("/export.xlsx", c.ServeExport)

		// CREATE
		if c.def.AllowCreate {
			pr.Get("/new", c.ServeNew)
			pr.Post("/", c.HandleCreate)
		}

		// VIEW
		pr.Get("/{id}", c.ServeView)

		// EDIT
		if c.def.AllowEdit {
			pr.Get("/{id}/edit", c.ServeEdit)
			pr.Post("/{id}/edit", c.HandleEdit)
		}

		// STATUS
		if c.def.StatusEnum != "" {
			pr.Post("/{id}/status", c.HandleStatus)
		}
	})

	return r
}
