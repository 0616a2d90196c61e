package request

type CreateAppointmentRequest struct {
	ServiceID int64   `json:"service_id" validate:"required,min=1"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string  `json:"start_time" validate:"required,datetime=15:04"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type UpdateAppointmentRequest struct {
	Date      *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	Notes     *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

type CreateMeetingRequest struct {
	Subject   string   `json:"subject" validate:"required,min=2,max=200"`
	StartTime string   `json:"start_time" validate:"required"`
	EndTime   string   `json:"end_time" validate:"required"`
	Attendees []string `json:"attendees" validate:"omitempty,dive,email"`
	Content   *string  `json:"content,omitempty" validate:"omitempty,max=2000"`
}
