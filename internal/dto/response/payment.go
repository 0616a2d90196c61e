package response

import (
	"time"

	"accverse/internal/data/entity"
)

type PaymentResponse struct {
	ID            int64     `json:"id"`
	Amount        float64   `json:"amount"`
	Method        string    `json:"method"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	InvoiceID     *int64    `json:"invoice_id,omitempty"`
	AppointmentID *int64    `json:"appointment_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func PaymentToResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		Amount:        p.Amount,
		Method:        p.Method,
		Reference:     p.Reference,
		Status:        string(p.Status),
		InvoiceID:     p.InvoiceID,
		AppointmentID: p.AppointmentID,
		CreatedAt:     p.CreatedAt,
	}
}
