package response

import (
	"accverse/internal/data/entity"
)

type CalendarEventResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	MeetingURL    *string `json:"meeting_url,omitempty"`
	AppointmentID *int64  `json:"appointment_id,omitempty"`
}

func CalendarEventToResponse(ev *entity.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{
		ID:            ev.ID,
		Title:         ev.Title,
		Date:          ev.Date.Format("2006-01-02"),
		StartTime:     ev.StartTime,
		EndTime:       ev.EndTime,
		MeetingURL:    ev.MeetingURL,
		AppointmentID: ev.AppointmentID,
	}
}
