package adaptor

import (
	"fmt"
	"net/http"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type InvoiceHandler struct {
	invoices usecase.InvoiceService
	log      *zap.Logger
}

func NewInvoiceHandler(invoices usecase.InvoiceService, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoices: invoices,
		log:      log.With(zap.String("handler", "invoice")),
	}
}

func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.invoices.List(r.Context(), userID, pagination(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Invoices retrieved", resp)
}

func (h *InvoiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid invoice id", nil)
		return
	}

	resp, err := h.invoices.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Invoice retrieved", resp)
}

func (h *InvoiceHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid invoice id", nil)
		return
	}

	var req request.PayInvoiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.invoices.Pay(r.Context(), userID, id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Invoice paid", resp)
}

// DownloadPDF streams the invoice as an attachment.
func (h *InvoiceHandler) DownloadPDF(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid invoice id", nil)
		return
	}

	data, filename, err := h.invoices.DownloadPDF(r.Context(), userID, id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
