package entity

import (
	"time"

	"github.com/google/uuid"
)

type TaxFormStatus string

const (
	TaxFormDraft     TaxFormStatus = "draft"
	TaxFormSubmitted TaxFormStatus = "submitted"
)

// TaxForm holds a client's working copy of a tax form. Progress is the raw
// JSON payload of the form fields, saved as the client types; FormID is the
// client-visible handle for resuming a draft.
type TaxForm struct {
	FormID      uuid.UUID     `db:"form_id"`
	UserID      *int64        `db:"user_id"` // drafts may start before login
	TemplateKey string        `db:"template_key"`
	Progress    []byte        `db:"progress"` // JSONB
	Status      TaxFormStatus `db:"status"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
	SubmittedAt *time.Time    `db:"submitted_at"`
}

// TaxFormTemplate describes an available form type.
type TaxFormTemplate struct {
	Key         string `db:"key"`
	Name        string `db:"name"`
	Description string `db:"description"`
}
