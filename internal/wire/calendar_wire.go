package wire

import (
	"net/http"

	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCalendar(r chi.Router, h *adaptor.CalendarHandler, auth func(http.Handler) http.Handler) {
	r.With(auth).Route("/api/calendar", func(r chi.Router) {
		r.Get("/events", h.List)
		r.Post("/events", h.Create)
		r.Put("/events/{id}", h.Update)
		r.Delete("/events/{id}", h.Delete)
		r.Get("/sync", h.Sync)
	})
}
