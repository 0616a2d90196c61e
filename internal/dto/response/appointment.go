package response

import (
	"time"

	"accverse/internal/data/entity"
)

type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ServiceID   int64   `json:"service_id"`
	ServiceName string  `json:"service_name,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"start_time"`
	Status      string  `json:"status"`
	Notes       *string `json:"notes,omitempty"`
	MeetingURL  *string `json:"meeting_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type AvailableSlotsResponse struct {
	Date      string   `json:"date"`
	ServiceID int64    `json:"service_id"`
	Slots     []string `json:"slots"`
}

func AppointmentToResponse(appt *entity.Appointment, serviceName string) AppointmentResponse {
	return AppointmentResponse{
		ID:          appt.ID,
		ServiceID:   appt.ServiceID,
		ServiceName: serviceName,
		Date:        appt.Date.Format("2006-01-02"),
		StartTime:   appt.StartTime,
		Status:      string(appt.Status),
		Notes:       appt.Notes,
		MeetingURL:  appt.MeetingURL,
		CreatedAt:   appt.CreatedAt,
	}
}
