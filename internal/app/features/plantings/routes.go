package plantings

import (
	"github.com/dalemusser/treehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Post("/", h.ServeCreate)
		pr.Post("/{id}/delete", h.ServeDelete)
		pr.Get("/events", h.ServeEvents)
		pr.Get("/chart.png", h.ServeChart)
	})

	return r
}
