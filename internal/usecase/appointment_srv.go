package usecase

import (
	"context"
	"fmt"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"

	"go.uber.org/zap"
)

// Business hours used when computing available slots.
const (
	openingHour = 9
	closingHour = 17
)

type AppointmentService interface {
	Create(ctx context.Context, userID int64, req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error)
	List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.AppointmentResponse, error)
	Get(ctx context.Context, userID, id int64) (*response.AppointmentResponse, error)
	Update(ctx context.Context, userID, id int64, req *request.UpdateAppointmentRequest) (*response.AppointmentResponse, error)
	Cancel(ctx context.Context, userID, id int64) error
	AvailableSlots(ctx context.Context, serviceID int64, date string) (*response.AvailableSlotsResponse, error)
}

type appointmentService struct {
	appointments  repository.AppointmentRepository
	services      repository.ServiceRepository
	notifications repository.NotificationRepository
	log           *zap.Logger
}

func NewAppointmentService(
	appointments repository.AppointmentRepository,
	services repository.ServiceRepository,
	notifications repository.NotificationRepository,
	log *zap.Logger,
) AppointmentService {
	return &appointmentService{
		appointments:  appointments,
		services:      services,
		notifications: notifications,
		log:           log.With(zap.String("service", "appointment")),
	}
}

func parseDate(value string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return date, nil
}

func (s *appointmentService) Create(ctx context.Context, userID int64, req *request.CreateAppointmentRequest) (*response.AppointmentResponse, error) {
	svc, err := s.services.FindByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrNotFound
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	booked, err := s.appointments.FindBookedSlots(ctx, date, svc.ID)
	if err != nil {
		return nil, err
	}
	for _, slot := range booked {
		if slot == req.StartTime {
			return nil, ErrSlotTaken
		}
	}

	now := time.Now()
	appt := &entity.Appointment{
		UserID:    userID,
		ServiceID: svc.ID,
		Date:      date,
		StartTime: req.StartTime,
		Status:    entity.AppointmentScheduled,
		Notes:     req.Notes,
	}
	appt.CreatedAt = now
	appt.UpdatedAt = now

	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, err
	}

	s.notify(ctx, userID, "Appointment booked",
		fmt.Sprintf("%s on %s at %s is confirmed.", svc.Name, req.Date, req.StartTime))

	s.log.Info("Appointment created",
		zap.Int64("appointment_id", appt.ID),
		zap.Int64("user_id", userID),
		zap.Int64("service_id", svc.ID),
	)

	resp := response.AppointmentToResponse(appt, svc.Name)
	return &resp, nil
}

func (s *appointmentService) List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.AppointmentResponse, error) {
	appointments, err := s.appointments.FindByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	out := make([]response.AppointmentResponse, 0, len(appointments))
	for _, appt := range appointments {
		name := ""
		if svc, err := s.services.FindByID(ctx, appt.ServiceID); err == nil && svc != nil {
			name = svc.Name
		}
		out = append(out, response.AppointmentToResponse(appt, name))
	}
	return out, nil
}

// find loads an appointment and enforces ownership. Foreign appointments
// read as not found so ids cannot be probed.
func (s *appointmentService) find(ctx context.Context, userID, id int64) (*entity.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if appt == nil || appt.UserID != userID {
		return nil, ErrNotFound
	}
	return appt, nil
}

func (s *appointmentService) Get(ctx context.Context, userID, id int64) (*response.AppointmentResponse, error) {
	appt, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	name := ""
	if svc, err := s.services.FindByID(ctx, appt.ServiceID); err == nil && svc != nil {
		name = svc.Name
	}

	resp := response.AppointmentToResponse(appt, name)
	return &resp, nil
}

func (s *appointmentService) Update(ctx context.Context, userID, id int64, req *request.UpdateAppointmentRequest) (*response.AppointmentResponse, error) {
	appt, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if appt.Status != entity.AppointmentScheduled {
		return nil, ErrNotEditable
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		appt.Date = date
	}
	if req.StartTime != nil {
		appt.StartTime = *req.StartTime
	}
	if req.Notes != nil {
		appt.Notes = req.Notes
	}
	appt.UpdatedAt = time.Now()

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, err
	}

	s.log.Info("Appointment updated", zap.Int64("appointment_id", id))

	name := ""
	if svc, err := s.services.FindByID(ctx, appt.ServiceID); err == nil && svc != nil {
		name = svc.Name
	}

	resp := response.AppointmentToResponse(appt, name)
	return &resp, nil
}

func (s *appointmentService) Cancel(ctx context.Context, userID, id int64) error {
	appt, err := s.find(ctx, userID, id)
	if err != nil {
		return err
	}
	if appt.Status != entity.AppointmentScheduled {
		return ErrNotEditable
	}

	if err := s.appointments.Cancel(ctx, id); err != nil {
		return err
	}

	s.notify(ctx, userID, "Appointment cancelled",
		fmt.Sprintf("Your appointment on %s at %s was cancelled.",
			appt.Date.Format("2006-01-02"), appt.StartTime))

	s.log.Info("Appointment cancelled", zap.Int64("appointment_id", id))

	return nil
}

// AvailableSlots lists the free start times for a service on a date.
// Slots run on the service's duration within business hours; times
// already booked are filtered out.
func (s *appointmentService) AvailableSlots(ctx context.Context, serviceID int64, dateStr string) (*response.AvailableSlotsResponse, error) {
	svc, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrNotFound
	}

	date, err := parseDate(dateStr)
	if err != nil {
		return nil, err
	}

	booked, err := s.appointments.FindBookedSlots(ctx, date, serviceID)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(booked))
	for _, slot := range booked {
		taken[slot] = true
	}

	step := time.Duration(svc.Duration) * time.Minute
	open := time.Date(date.Year(), date.Month(), date.Day(), openingHour, 0, 0, 0, time.UTC)
	close := time.Date(date.Year(), date.Month(), date.Day(), closingHour, 0, 0, 0, time.UTC)

	slots := []string{}
	for t := open; !t.Add(step).After(close); t = t.Add(step) {
		slot := t.Format("15:04")
		if !taken[slot] {
			slots = append(slots, slot)
		}
	}

	return &response.AvailableSlotsResponse{
		Date:      dateStr,
		ServiceID: serviceID,
		Slots:     slots,
	}, nil
}

// notify writes an in-app notification. Failures are logged only; the
// booking itself already succeeded.
func (s *appointmentService) notify(ctx context.Context, userID int64, title, message string) {
	n := &entity.Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	n.CreatedAt = time.Now()

	if err := s.notifications.Create(ctx, n); err != nil {
		s.log.Error("Failed to create notification", zap.Error(err), zap.Int64("user_id", userID))
	}
}
