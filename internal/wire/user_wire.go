package wire

import (
	"net/http"

	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, h *adaptor.UserHandler, auth func(http.Handler) http.Handler) {
	r.With(auth).Route("/api/user", func(r chi.Router) {
		r.Get("/me", h.Me)
		r.Put("/me", h.UpdateProfile)
	})
}
