package request

type CreatePaymentRequest struct {
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Method        string  `json:"method" validate:"required,oneof=card bank_transfer paypal"`
	InvoiceID     *int64  `json:"invoice_id,omitempty" validate:"omitempty,min=1"`
	AppointmentID *int64  `json:"appointment_id,omitempty" validate:"omitempty,min=1"`
}

// PaymentWebhookRequest is the gateway's status callback payload.
type PaymentWebhookRequest struct {
	Reference string `json:"reference" validate:"required"`
	Status    string `json:"status" validate:"required,oneof=completed failed"`
}

type PayInvoiceRequest struct {
	Method string `json:"method" validate:"required,oneof=card bank_transfer paypal"`
}
