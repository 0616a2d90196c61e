package request

type CreateCalendarEventRequest struct {
	Title      string  `json:"title" validate:"required,min=2,max=200"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime  string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string  `json:"end_time" validate:"required,datetime=15:04"`
	MeetingURL *string `json:"meeting_url,omitempty" validate:"omitempty,url"`
}

type UpdateCalendarEventRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=2,max=200"`
	Date       *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime  *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime    *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	MeetingURL *string `json:"meeting_url,omitempty" validate:"omitempty,url"`
}
