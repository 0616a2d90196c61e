// Package adaptor translates HTTP requests into use case calls and maps
// domain errors back onto status codes.
package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/token"
	"accverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Catalog      *CatalogHandler
	Appointment  *AppointmentHandler
	Payment      *PaymentHandler
	Invoice      *InvoiceHandler
	Notification *NotificationHandler
	Calendar     *CalendarHandler
	Knowledge    *KnowledgeHandler
	TaxForm      *TaxFormHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(service.Auth, log),
		User:         NewUserHandler(service.User, log),
		Catalog:      NewCatalogHandler(service.Catalog, log),
		Appointment:  NewAppointmentHandler(service.Appointment, log),
		Payment:      NewPaymentHandler(service.Payment, log),
		Invoice:      NewInvoiceHandler(service.Invoice, log),
		Notification: NewNotificationHandler(service.Notification, log),
		Calendar:     NewCalendarHandler(service.Calendar, log),
		Knowledge:    NewKnowledgeHandler(service.Knowledge, log),
		TaxForm:      NewTaxFormHandler(service.TaxForm, log),
	}
}

// decodeAndValidate parses the JSON body into dst and runs struct
// validation. It writes the error response itself and reports whether the
// handler should continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if errs := utils.ValidateStruct(dst); errs != nil {
		utils.ResponseBadRequest(w, "Validation failed", errs)
		return false
	}

	return true
}

// respondError maps domain errors to HTTP responses. Unknown errors are
// logged with detail and reported as a generic 500.
func respondError(w http.ResponseWriter, log *zap.Logger, err error) {
	switch {
	// An unverified account is still a 401 like a credential failure,
	// but the message tells the client to route to resend-verification.
	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrAccountUnverified),
		errors.Is(err, usecase.ErrIdentityProvider),
		errors.Is(err, token.ErrTokenExpired),
		errors.Is(err, token.ErrTokenInvalid):
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrAccountNotFound),
		errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrSlotTaken),
		errors.Is(err, usecase.ErrNotEditable),
		errors.Is(err, usecase.ErrAlreadyPaid),
		errors.Is(err, usecase.ErrFormSubmitted):
		utils.ResponseJSON(w, http.StatusConflict, false, err.Error(), nil, nil)

	case errors.Is(err, usecase.ErrDuplicateEmail),
		errors.Is(err, usecase.ErrAlreadyVerified),
		errors.Is(err, usecase.ErrCodeInvalid),
		errors.Is(err, usecase.ErrCodeExpired),
		errors.Is(err, usecase.ErrCodeAlreadyUsed):
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Unhandled error", zap.Error(err))
		utils.ResponseInternalError(w, "Something went wrong")
	}
}

// parseIDParam reads a numeric URL parameter.
func parseIDParam(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

// pagination reads page/per_page query parameters with sane defaults.
func pagination(r *http.Request) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}
