package adaptor

import (
	"net/http"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TaxFormHandler struct {
	forms usecase.TaxFormService
	log   *zap.Logger
}

func NewTaxFormHandler(forms usecase.TaxFormService, log *zap.Logger) *TaxFormHandler {
	return &TaxFormHandler{
		forms: forms,
		log:   log.With(zap.String("handler", "taxform")),
	}
}

// optionalUserID returns the authenticated user id when present. Tax form
// drafts may be worked on before login, so these routes run without the
// auth middleware.
func optionalUserID(r *http.Request) *int64 {
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		return &userID
	}
	return nil
}

func (h *TaxFormHandler) SaveProgress(w http.ResponseWriter, r *http.Request) {
	var req request.SaveTaxFormProgressRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.forms.SaveProgress(r.Context(), optionalUserID(r), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Progress saved", resp)
}

func (h *TaxFormHandler) Get(w http.ResponseWriter, r *http.Request) {
	formID := chi.URLParam(r, "formID")

	resp, err := h.forms.Get(r.Context(), optionalUserID(r), formID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Form retrieved", resp)
}

func (h *TaxFormHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitTaxFormRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.forms.Submit(r.Context(), optionalUserID(r), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Form submitted", resp)
}

func (h *TaxFormHandler) ListTemplates(w http.ResponseWriter, r *http.Request) {
	resp, err := h.forms.ListTemplates(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Templates retrieved", resp)
}
