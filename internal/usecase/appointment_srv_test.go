package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeServiceRepo struct {
	services map[int64]*entity.Service
}

func (f *fakeServiceRepo) FindAll(context.Context) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, svc := range f.services {
		out = append(out, svc)
	}
	return out, nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id int64) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindCategories(context.Context) ([]*entity.ServiceCategory, error) {
	return nil, nil
}

type fakeAppointmentRepo struct {
	mu           sync.Mutex
	nextID       int64
	appointments map[int64]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{nextID: 1, appointments: make(map[int64]*entity.Appointment)}
}

func (f *fakeAppointmentRepo) Create(_ context.Context, appt *entity.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	appt.ID = f.nextID
	f.nextID++
	copied := *appt
	f.appointments[appt.ID] = &copied
	return nil
}

func (f *fakeAppointmentRepo) FindByID(_ context.Context, id int64) (*entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	appt, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeAppointmentRepo) FindByUser(_ context.Context, userID int64, _, _ int) ([]*entity.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Appointment
	for _, appt := range f.appointments {
		if appt.UserID == userID {
			copied := *appt
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) FindBookedSlots(_ context.Context, date time.Time, serviceID int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var slots []string
	for _, appt := range f.appointments {
		if appt.ServiceID == serviceID && appt.Date.Equal(date) && appt.Status == entity.AppointmentScheduled {
			slots = append(slots, appt.StartTime)
		}
	}
	return slots, nil
}

func (f *fakeAppointmentRepo) Update(_ context.Context, appt *entity.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *appt
	f.appointments[appt.ID] = &copied
	return nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if appt, ok := f.appointments[id]; ok {
		appt.Status = entity.AppointmentCancelled
	}
	return nil
}

type fakeNotificationRepo struct {
	mu      sync.Mutex
	created []*entity.Notification
}

func (f *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, n)
	return nil
}

func (f *fakeNotificationRepo) FindByUser(context.Context, int64, int, int) ([]*entity.Notification, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(context.Context, int64, int64) (bool, error) {
	return false, nil
}

func (f *fakeNotificationRepo) FindPreferences(context.Context, int64) (*entity.NotificationPreferences, error) {
	return nil, nil
}

func (f *fakeNotificationRepo) UpsertPreferences(context.Context, *entity.NotificationPreferences) error {
	return nil
}

func newTestAppointmentService() (AppointmentService, *fakeAppointmentRepo, *fakeNotificationRepo) {
	services := &fakeServiceRepo{services: map[int64]*entity.Service{
		1: {
			BaseNoDelete: entity.BaseNoDelete{ID: 1},
			Name:         "Tax Return Preparation",
			Price:        250,
			Duration:     60,
			IsActive:     true,
		},
	}}
	appointments := newFakeAppointmentRepo()
	notifications := &fakeNotificationRepo{}

	svc := NewAppointmentService(appointments, services, notifications, zap.NewNop())
	return svc, appointments, notifications
}

func TestCreateAppointmentAndNotification(t *testing.T) {
	svc, _, notifications := newTestAppointmentService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, 7, &request.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-09-15",
		StartTime: "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "scheduled", resp.Status)
	assert.Equal(t, "Tax Return Preparation", resp.ServiceName)
	assert.Len(t, notifications.created, 1)
}

func TestCreateAppointmentUnknownService(t *testing.T) {
	svc, _, _ := newTestAppointmentService()

	_, err := svc.Create(context.Background(), 7, &request.CreateAppointmentRequest{
		ServiceID: 99,
		Date:      "2026-09-15",
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateAppointmentSlotTaken(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 7, &request.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-09-15",
		StartTime: "10:00",
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, 8, &request.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-09-15",
		StartTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestGetAppointmentOwnership(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 7, &request.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-09-15",
		StartTime: "10:00",
	})
	require.NoError(t, err)

	// Another user's lookup reads as not found, not forbidden.
	_, err = svc.Get(ctx, 8, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := svc.Get(ctx, 7, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestCancelledAppointmentNotEditable(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 7, &request.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-09-15",
		StartTime: "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, 7, created.ID))

	newTime := "11:00"
	_, err = svc.Update(ctx, 7, created.ID, &request.UpdateAppointmentRequest{StartTime: &newTime})
	assert.ErrorIs(t, err, ErrNotEditable)
}

func TestAvailableSlotsExcludeBooked(t *testing.T) {
	svc, _, _ := newTestAppointmentService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 7, &request.CreateAppointmentRequest{
		ServiceID: 1,
		Date:      "2026-09-15",
		StartTime: "10:00",
	})
	require.NoError(t, err)

	resp, err := svc.AvailableSlots(ctx, 1, "2026-09-15")
	require.NoError(t, err)

	// 60-minute slots between 09:00 and 17:00 minus the booked one.
	assert.NotContains(t, resp.Slots, "10:00")
	assert.Contains(t, resp.Slots, "09:00")
	assert.Contains(t, resp.Slots, "16:00")
	assert.NotContains(t, resp.Slots, "17:00")
	assert.Len(t, resp.Slots, 7)
}
