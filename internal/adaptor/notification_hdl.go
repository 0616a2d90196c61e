package adaptor

import (
	"net/http"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type NotificationHandler struct {
	notifications usecase.NotificationService
	log           *zap.Logger
}

func NewNotificationHandler(notifications usecase.NotificationService, log *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		log:           log.With(zap.String("handler", "notification")),
	}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.notifications.List(r.Context(), userID, pagination(r))
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Notifications retrieved", resp)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid notification id", nil)
		return
	}

	if err := h.notifications.MarkRead(r.Context(), userID, id); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Notification marked read", nil)
}

func (h *NotificationHandler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	resp, err := h.notifications.GetPreferences(r.Context(), userID)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Preferences retrieved", resp)
}

func (h *NotificationHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.NotificationPreferencesRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.notifications.UpdatePreferences(r.Context(), userID, &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Preferences updated", resp)
}
