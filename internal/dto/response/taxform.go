package response

import (
	"encoding/json"
	"time"

	"accverse/internal/data/entity"
)

type TaxFormResponse struct {
	FormID      string          `json:"form_id"`
	TemplateKey string          `json:"template_key"`
	Status      string          `json:"status"`
	Progress    json.RawMessage `json:"progress,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
}

type TaxFormTemplateResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func TaxFormToResponse(form *entity.TaxForm) TaxFormResponse {
	return TaxFormResponse{
		FormID:      form.FormID.String(),
		TemplateKey: form.TemplateKey,
		Status:      string(form.Status),
		Progress:    json.RawMessage(form.Progress),
		UpdatedAt:   form.UpdatedAt,
		SubmittedAt: form.SubmittedAt,
	}
}

func TemplateToResponse(t *entity.TaxFormTemplate) TaxFormTemplateResponse {
	return TaxFormTemplateResponse{
		Key:         t.Key,
		Name:        t.Name,
		Description: t.Description,
	}
}
