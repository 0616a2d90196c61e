package response

import (
	"time"

	"accverse/internal/data/entity"
)

type NotificationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationPreferencesResponse struct {
	EmailEnabled   bool `json:"email_enabled"`
	SMSEnabled     bool `json:"sms_enabled"`
	RemindersAhead int  `json:"reminders_ahead"`
}

func NotificationToResponse(n *entity.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func PreferencesToResponse(prefs *entity.NotificationPreferences) NotificationPreferencesResponse {
	return NotificationPreferencesResponse{
		EmailEnabled:   prefs.EmailEnabled,
		SMSEnabled:     prefs.SMSEnabled,
		RemindersAhead: prefs.RemindersAhead,
	}
}
