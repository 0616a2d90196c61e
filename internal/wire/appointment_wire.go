package wire

import (
	"net/http"

	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAppointment(r chi.Router, h *adaptor.AppointmentHandler, auth func(http.Handler) http.Handler) {
	// Availability is public so clients can show open slots before login.
	r.Get("/api/appointments/available", h.AvailableSlots)

	r.With(auth).Route("/api/appointments", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Cancel)
	})
}
