package wire

import (
	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireCatalog exposes the public service catalog.
func wireCatalog(r chi.Router, h *adaptor.CatalogHandler) {
	r.Route("/api/services", func(r chi.Router) {
		r.Get("/", h.ListServices)
		r.Get("/categories", h.ListCategories)
		r.Get("/{id}", h.GetService)
	})
}
