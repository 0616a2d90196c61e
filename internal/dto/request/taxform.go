package request

import "encoding/json"

type SaveTaxFormProgressRequest struct {
	FormID      string          `json:"form_id,omitempty" validate:"omitempty,uuid"`
	TemplateKey string          `json:"template_key" validate:"required"`
	Progress    json.RawMessage `json:"progress" validate:"required"`
}

type SubmitTaxFormRequest struct {
	FormID      string          `json:"form_id" validate:"required,uuid"`
	TemplateKey string          `json:"template_key" validate:"required"`
	Progress    json.RawMessage `json:"progress" validate:"required"`
}
