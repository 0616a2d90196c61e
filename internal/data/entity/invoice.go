package entity

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceUnpaid  InvoiceStatus = "unpaid"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

type Invoice struct {
	BaseNoDelete
	UserID      int64         `db:"user_id"`
	Number      string        `db:"number"`
	Description string        `db:"description"`
	Amount      float64       `db:"amount"`
	DueDate     time.Time     `db:"due_date"`
	Status      InvoiceStatus `db:"status"`
	PaidAt      *time.Time    `db:"paid_at"`
}
