package wire

import (
	"net/http"

	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireNotification(r chi.Router, h *adaptor.NotificationHandler, auth func(http.Handler) http.Handler) {
	r.With(auth).Route("/api/notifications", func(r chi.Router) {
		r.Get("/", h.List)
		r.Put("/{id}/read", h.MarkRead)
		r.Get("/settings", h.GetPreferences)
		r.Post("/settings", h.UpdatePreferences)
	})
}
