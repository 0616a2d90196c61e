package wire

import (
	"net/http"

	"accverse/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBilling(r chi.Router, payments *adaptor.PaymentHandler, invoices *adaptor.InvoiceHandler, auth func(http.Handler) http.Handler) {
	// The gateway callback authenticates by reference, not by session.
	r.Post("/api/payments/webhook", payments.Webhook)

	r.With(auth).Route("/api/payments", func(r chi.Router) {
		r.Post("/", payments.Create)
		r.Get("/", payments.List)
		r.Get("/{id}", payments.Get)
	})

	r.With(auth).Route("/api/invoices", func(r chi.Router) {
		r.Get("/", invoices.List)
		r.Get("/{id}", invoices.Get)
		r.Post("/{id}/pay", invoices.Pay)
		r.Get("/{id}/pdf", invoices.DownloadPDF)
	})
}
