package response

import (
	"time"

	"accverse/internal/data/entity"
)

type InvoiceResponse struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number"`
	Description string     `json:"description"`
	Amount      float64    `json:"amount"`
	DueDate     string     `json:"due_date"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
}

func InvoiceToResponse(inv *entity.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		Number:      inv.Number,
		Description: inv.Description,
		Amount:      inv.Amount,
		DueDate:     inv.DueDate.Format("2006-01-02"),
		Status:      string(inv.Status),
		PaidAt:      inv.PaidAt,
	}
}
