package wire

import (
	"net/http"

	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireContent exposes the knowledge base and tax form routes. Both are
// reachable without a session; tax form drafts bind to an owner when one
// is present.
func wireContent(r chi.Router, knowledge *adaptor.KnowledgeHandler, forms *adaptor.TaxFormHandler, optionalAuth func(http.Handler) http.Handler) {
	r.Route("/api/content/knowledge-base", func(r chi.Router) {
		r.Get("/", knowledge.List)
		r.Get("/{id}", knowledge.Get)
	})

	r.With(optionalAuth).Route("/api/tax-solutions", func(r chi.Router) {
		r.Get("/templates", forms.ListTemplates)
		r.Post("/save-progress", forms.SaveProgress)
		r.Post("/submit", forms.Submit)
		r.Get("/load-progress/{formID}", forms.Get)
	})
}
