package request

type NotificationPreferencesRequest struct {
	EmailEnabled   bool `json:"email_enabled"`
	SMSEnabled     bool `json:"sms_enabled"`
	RemindersAhead int  `json:"reminders_ahead" validate:"min=0,max=168"`
}
