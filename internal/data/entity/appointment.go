package entity

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// Appointment books a service for a user at a date/time. MeetingURL is a
// structured field for the online-meeting link; it is never embedded in
// the free-text notes.
type Appointment struct {
	Base
	UserID     int64             `db:"user_id"`
	ServiceID  int64             `db:"service_id"`
	Date       time.Time         `db:"appointment_date"`
	StartTime  string            `db:"start_time"` // HH:MM
	Status     AppointmentStatus `db:"status"`
	Notes      *string           `db:"notes"`
	MeetingURL *string           `db:"meeting_url"`
}
