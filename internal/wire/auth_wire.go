package wire

import (
	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAuth configures the account lifecycle routes. All of them are
// public; the flows themselves decide what a caller may do.
func wireAuth(r chi.Router, h *adaptor.AuthHandler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Post("/send-otp", h.SendOTP)
		r.Post("/verify-otp", h.VerifyOTP)
		r.Post("/resend-verification", h.ResendVerification)

		r.Get("/verify", h.VerifyToken)
		r.Post("/refresh-token", h.Refresh)

		r.Post("/google", h.GoogleAuth)
		r.Post("/google/complete-registration", h.CompleteGoogleRegistration)

		r.Post("/reset-password-request", h.ResetPasswordRequest)
		r.Post("/reset-password-complete", h.ResetPasswordComplete)
	})
}
