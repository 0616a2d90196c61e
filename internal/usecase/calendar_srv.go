package usecase

import (
	"context"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"

	"go.uber.org/zap"
)

type CalendarService interface {
	List(ctx context.Context, userID int64) ([]response.CalendarEventResponse, error)
	Create(ctx context.Context, userID int64, req *request.CreateCalendarEventRequest) (*response.CalendarEventResponse, error)
	Update(ctx context.Context, userID, id int64, req *request.UpdateCalendarEventRequest) (*response.CalendarEventResponse, error)
	Delete(ctx context.Context, userID, id int64) error
	// Sync mirrors the user's scheduled appointments into the calendar,
	// creating events for any appointment not yet represented.
	Sync(ctx context.Context, userID int64) ([]response.CalendarEventResponse, error)
}

type calendarService struct {
	calendar     repository.CalendarRepository
	appointments repository.AppointmentRepository
	services     repository.ServiceRepository
	log          *zap.Logger
}

func NewCalendarService(
	calendar repository.CalendarRepository,
	appointments repository.AppointmentRepository,
	services repository.ServiceRepository,
	log *zap.Logger,
) CalendarService {
	return &calendarService{
		calendar:     calendar,
		appointments: appointments,
		services:     services,
		log:          log.With(zap.String("service", "calendar")),
	}
}

func (s *calendarService) List(ctx context.Context, userID int64) ([]response.CalendarEventResponse, error) {
	events, err := s.calendar.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]response.CalendarEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, response.CalendarEventToResponse(ev))
	}
	return out, nil
}

func (s *calendarService) Create(ctx context.Context, userID int64, req *request.CreateCalendarEventRequest) (*response.CalendarEventResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	event := &entity.CalendarEvent{
		UserID:     userID,
		Title:      req.Title,
		Date:       date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		MeetingURL: req.MeetingURL,
	}
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.calendar.Create(ctx, event); err != nil {
		return nil, err
	}

	resp := response.CalendarEventToResponse(event)
	return &resp, nil
}

func (s *calendarService) Update(ctx context.Context, userID, id int64, req *request.UpdateCalendarEventRequest) (*response.CalendarEventResponse, error) {
	events, err := s.calendar.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var event *entity.CalendarEvent
	for _, ev := range events {
		if ev.ID == id {
			event = ev
			break
		}
	}
	if event == nil {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		event.Date = date
	}
	if req.StartTime != nil {
		event.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		event.EndTime = *req.EndTime
	}
	if req.MeetingURL != nil {
		event.MeetingURL = req.MeetingURL
	}
	event.UpdatedAt = time.Now()

	if err := s.calendar.Update(ctx, event); err != nil {
		return nil, err
	}

	resp := response.CalendarEventToResponse(event)
	return &resp, nil
}

func (s *calendarService) Delete(ctx context.Context, userID, id int64) error {
	ok, err := s.calendar.Delete(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *calendarService) Sync(ctx context.Context, userID int64) ([]response.CalendarEventResponse, error) {
	events, err := s.calendar.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	mirrored := make(map[int64]bool)
	for _, ev := range events {
		if ev.AppointmentID != nil {
			mirrored[*ev.AppointmentID] = true
		}
	}

	appointments, err := s.appointments.FindByUser(ctx, userID, 100, 0)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	created := 0
	for _, appt := range appointments {
		if appt.Status != entity.AppointmentScheduled || mirrored[appt.ID] {
			continue
		}

		title := "Appointment"
		duration := 60
		if svc, err := s.services.FindByID(ctx, appt.ServiceID); err == nil && svc != nil {
			title = svc.Name
			duration = svc.Duration
		}

		apptID := appt.ID
		event := &entity.CalendarEvent{
			UserID:        userID,
			Title:         title,
			Date:          appt.Date,
			StartTime:     appt.StartTime,
			EndTime:       addMinutes(appt.StartTime, duration),
			MeetingURL:    appt.MeetingURL,
			AppointmentID: &apptID,
		}
		event.CreatedAt = now
		event.UpdatedAt = now

		if err := s.calendar.Create(ctx, event); err != nil {
			return nil, err
		}
		created++
	}

	if created > 0 {
		s.log.Info("Calendar synced",
			zap.Int64("user_id", userID),
			zap.Int("events_created", created),
		)
	}

	return s.List(ctx, userID)
}

// addMinutes shifts an HH:MM time forward, clamping at midnight.
func addMinutes(start string, minutes int) string {
	t, err := time.Parse("15:04", start)
	if err != nil {
		return start
	}
	end := t.Add(time.Duration(minutes) * time.Minute)
	if end.Day() != t.Day() {
		return "23:59"
	}
	return end.Format("15:04")
}
