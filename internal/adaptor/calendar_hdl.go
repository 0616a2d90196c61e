package adaptor

import (
	"net/http"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type CalendarHandler struct {
	calendar usecase.CalendarService
	log      *zap.Logger
}

func NewCalendarHandler(calendar usecase.CalendarService, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendar: calendar,
		log:      log.With(zap.String("handler", "calendar")),
	}
}

func (h *CalendarHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.calendar.List(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Calendar events retrieved", resp)
}

func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCalendarEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.calendar.Create(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Calendar event created", resp)
}

func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event id", nil)
		return
	}

	var req request.UpdateCalendarEventRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.calendar.Update(r.Context(), userID, id, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Calendar event updated", resp)
}

func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid event id", nil)
		return
	}

	if err := h.calendar.Delete(r.Context(), userID, id); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Calendar event deleted", nil)
}

// Sync mirrors scheduled appointments into the calendar and returns the
// refreshed event list.
func (h *CalendarHandler) Sync(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.calendar.Sync(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Calendar synced", resp)
}
