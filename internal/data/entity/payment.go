package entity

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

// Payment records a gateway transaction. Reference is the id echoed back
// by the gateway webhook.
type Payment struct {
	BaseNoDelete
	UserID        int64         `db:"user_id"`
	InvoiceID     *int64        `db:"invoice_id"`
	AppointmentID *int64        `db:"appointment_id"`
	Amount        float64       `db:"amount"`
	Method        string        `db:"method"`
	Reference     string        `db:"reference"`
	Status        PaymentStatus `db:"status"`
}
