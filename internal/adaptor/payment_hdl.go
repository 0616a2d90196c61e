package adaptor

import (
	"net/http"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	payments usecase.PaymentService
	log      *zap.Logger
}

func NewPaymentHandler(payments usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		log:      log.With(zap.String("handler", "payment")),
	}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePaymentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.payments.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Payment created", resp)
}

func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.payments.List(r.Context(), userID, pagination(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Payments retrieved", resp)
}

func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid payment id", nil)
		return
	}

	resp, err := h.payments.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Payment retrieved", resp)
}

// Webhook receives gateway status callbacks. It is unauthenticated by
// the session scheme; the gateway only knows the opaque reference.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var req request.PaymentWebhookRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.payments.HandleWebhook(r.Context(), &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Webhook processed", nil)
}
