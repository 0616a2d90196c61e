package entity

import (
	"time"
)

// CalendarEvent is a user-owned event, either created directly or mirrored
// from an appointment during sync.
type CalendarEvent struct {
	BaseNoDelete
	UserID        int64     `db:"user_id"`
	Title         string    `db:"title"`
	Date          time.Time `db:"event_date"`
	StartTime     string    `db:"start_time"` // HH:MM
	EndTime       string    `db:"end_time"`   // HH:MM
	MeetingURL    *string   `db:"meeting_url"`
	AppointmentID *int64    `db:"appointment_id"`
}
