package adaptor

import (
	"net/http"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type AppointmentHandler struct {
	appointments usecase.AppointmentService
	log          *zap.Logger
}

func NewAppointmentHandler(appointments usecase.AppointmentService, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		log:          log.With(zap.String("handler", "appointment")),
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateAppointmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.appointments.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Appointment booked", resp)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.appointments.List(r.Context(), userID, pagination(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Appointments retrieved", resp)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid appointment id", nil)
		return
	}

	resp, err := h.appointments.Get(r.Context(), userID, id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Appointment retrieved", resp)
}

func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid appointment id", nil)
		return
	}

	var req request.UpdateAppointmentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.appointments.Update(r.Context(), userID, id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Appointment updated", resp)
}

func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid appointment id", nil)
		return
	}

	if err := h.appointments.Cancel(r.Context(), userID, id); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Appointment cancelled", nil)
}

// AvailableSlots lists free start times for a service on a date, taken
// from service_id and date query parameters.
func (h *AppointmentHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	serviceID := int64(utils.ParseInt(r.URL.Query().Get("service_id"), 0))
	if serviceID == 0 {
		utils.ResponseBadRequest(w, "Missing service_id parameter", nil)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "Missing date parameter", nil)
		return
	}

	resp, err := h.appointments.AvailableSlots(r.Context(), serviceID, date)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Available slots retrieved", resp)
}
