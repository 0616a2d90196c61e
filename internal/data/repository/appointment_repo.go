package repository

import (
	"context"
	"fmt"
	"time"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *entity.Appointment) error
	FindByID(ctx context.Context, id int64) (*entity.Appointment, error)
	FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Appointment, error)
	FindBookedSlots(ctx context.Context, date time.Time, serviceID int64) ([]string, error)
	Update(ctx context.Context, appt *entity.Appointment) error
	Cancel(ctx context.Context, id int64) error
}

type appointmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAppointmentRepository(db database.PgxIface, log *zap.Logger) AppointmentRepository {
	return &appointmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "appointment")),
	}
}

func (r *appointmentRepository) Create(ctx context.Context, appt *entity.Appointment) error {
	query := `
		INSERT INTO appointments (user_id, service_id, appointment_date, start_time,
		                          status, notes, meeting_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		appt.UserID,
		appt.ServiceID,
		appt.Date,
		appt.StartTime,
		appt.Status,
		appt.Notes,
		appt.MeetingURL,
		appt.CreatedAt,
		appt.UpdatedAt,
	).Scan(&appt.ID)

	if err != nil {
		r.log.Error("Failed to create appointment",
			zap.Error(err),
			zap.Int64("user_id", appt.UserID),
		)
		return fmt.Errorf("create appointment for user %d: %w", appt.UserID, err)
	}

	return nil
}

func (r *appointmentRepository) scanAppointment(row pgx.Row) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartTime,
		&appt.Status,
		&appt.Notes,
		&appt.MeetingURL,
		&appt.CreatedAt,
		&appt.UpdatedAt,
		&appt.DeletedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &appt, nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id int64) (*entity.Appointment, error) {
	query := `
		SELECT id, user_id, service_id, appointment_date, start_time, status,
		       notes, meeting_url, created_at, updated_at, deleted_at
		FROM appointments
		WHERE id = $1 AND deleted_at IS NULL
	`

	appt, err := r.scanAppointment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find appointment", zap.Error(err), zap.Int64("appointment_id", id))
		return nil, fmt.Errorf("find appointment %d: %w", id, err)
	}

	return appt, nil
}

func (r *appointmentRepository) FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Appointment, error) {
	query := `
		SELECT id, user_id, service_id, appointment_date, start_time, status,
		       notes, meeting_url, created_at, updated_at, deleted_at
		FROM appointments
		WHERE user_id = $1 AND deleted_at IS NULL
		ORDER BY appointment_date DESC, start_time DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list appointments", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find appointments for user %d: %w", userID, err)
	}
	defer rows.Close()

	var appointments []*entity.Appointment
	for rows.Next() {
		var appt entity.Appointment
		err := rows.Scan(
			&appt.ID,
			&appt.UserID,
			&appt.ServiceID,
			&appt.Date,
			&appt.StartTime,
			&appt.Status,
			&appt.Notes,
			&appt.MeetingURL,
			&appt.CreatedAt,
			&appt.UpdatedAt,
			&appt.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan appointment row: %w", err)
		}
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate appointment rows: %w", err)
	}

	return appointments, nil
}

// FindBookedSlots returns the start times already taken for a service on
// a date, used to compute availability.
func (r *appointmentRepository) FindBookedSlots(ctx context.Context, date time.Time, serviceID int64) ([]string, error) {
	query := `
		SELECT start_time
		FROM appointments
		WHERE appointment_date = $1
		  AND service_id = $2
		  AND status = 'scheduled'
		  AND deleted_at IS NULL
	`

	rows, err := r.db.Query(ctx, query, date, serviceID)
	if err != nil {
		r.log.Error("Failed to find booked slots", zap.Error(err), zap.Int64("service_id", serviceID))
		return nil, fmt.Errorf("find booked slots for service %d: %w", serviceID, err)
	}
	defer rows.Close()

	var slots []string
	for rows.Next() {
		var slot string
		if err := rows.Scan(&slot); err != nil {
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slot rows: %w", err)
	}

	return slots, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appt *entity.Appointment) error {
	query := `
		UPDATE appointments
		SET appointment_date = $2, start_time = $3, status = $4, notes = $5,
		    meeting_url = $6, updated_at = $7
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		appt.ID,
		appt.Date,
		appt.StartTime,
		appt.Status,
		appt.Notes,
		appt.MeetingURL,
		appt.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update appointment", zap.Error(err), zap.Int64("appointment_id", appt.ID))
		return fmt.Errorf("update appointment %d: %w", appt.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %d not found", appt.ID)
	}

	return nil
}

func (r *appointmentRepository) Cancel(ctx context.Context, id int64) error {
	query := `
		UPDATE appointments
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'scheduled' AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to cancel appointment", zap.Error(err), zap.Int64("appointment_id", id))
		return fmt.Errorf("cancel appointment %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("appointment %d not found or not cancellable", id)
	}

	return nil
}
