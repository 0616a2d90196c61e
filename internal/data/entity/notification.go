package entity

type Notification struct {
	BaseSimple
	UserID  int64  `db:"user_id"`
	Title   string `db:"title"`
	Message string `db:"message"`
	IsRead  bool   `db:"is_read"`
}

// NotificationPreferences is one row per user.
type NotificationPreferences struct {
	UserID         int64 `db:"user_id"`
	EmailEnabled   bool  `db:"email_enabled"`
	SMSEnabled     bool  `db:"sms_enabled"`
	RemindersAhead int   `db:"reminders_ahead"` // hours before appointment
}
