package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"go.uber.org/zap"
)

type CalendarRepository interface {
	Create(ctx context.Context, event *entity.CalendarEvent) error
	FindByUser(ctx context.Context, userID int64) ([]*entity.CalendarEvent, error)
	Update(ctx context.Context, event *entity.CalendarEvent) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type calendarRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCalendarRepository(db database.PgxIface, log *zap.Logger) CalendarRepository {
	return &calendarRepository{
		db:  db,
		log: log.With(zap.String("repository", "calendar")),
	}
}

func (r *calendarRepository) Create(ctx context.Context, event *entity.CalendarEvent) error {
	query := `
		INSERT INTO calendar_events (user_id, title, event_date, start_time, end_time,
		                             meeting_url, appointment_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		event.UserID,
		event.Title,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.MeetingURL,
		event.AppointmentID,
		event.CreatedAt,
		event.UpdatedAt,
	).Scan(&event.ID)

	if err != nil {
		r.log.Error("Failed to create calendar event",
			zap.Error(err),
			zap.Int64("user_id", event.UserID),
		)
		return fmt.Errorf("create calendar event for user %d: %w", event.UserID, err)
	}

	return nil
}

func (r *calendarRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.CalendarEvent, error) {
	query := `
		SELECT id, user_id, title, event_date, start_time, end_time,
		       meeting_url, appointment_id, created_at, updated_at
		FROM calendar_events
		WHERE user_id = $1
		ORDER BY event_date, start_time
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to list calendar events", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find calendar events for user %d: %w", userID, err)
	}
	defer rows.Close()

	var events []*entity.CalendarEvent
	for rows.Next() {
		var ev entity.CalendarEvent
		err := rows.Scan(
			&ev.ID,
			&ev.UserID,
			&ev.Title,
			&ev.Date,
			&ev.StartTime,
			&ev.EndTime,
			&ev.MeetingURL,
			&ev.AppointmentID,
			&ev.CreatedAt,
			&ev.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan calendar event row: %w", err)
		}
		events = append(events, &ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate calendar event rows: %w", err)
	}

	return events, nil
}

func (r *calendarRepository) Update(ctx context.Context, event *entity.CalendarEvent) error {
	query := `
		UPDATE calendar_events
		SET title = $3, event_date = $4, start_time = $5, end_time = $6,
		    meeting_url = $7, updated_at = $8
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query,
		event.ID,
		event.UserID,
		event.Title,
		event.Date,
		event.StartTime,
		event.EndTime,
		event.MeetingURL,
		event.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update calendar event", zap.Error(err), zap.Int64("event_id", event.ID))
		return fmt.Errorf("update calendar event %d: %w", event.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("calendar event %d not found", event.ID)
	}

	return nil
}

func (r *calendarRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	query := `DELETE FROM calendar_events WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete calendar event", zap.Error(err), zap.Int64("event_id", id))
		return false, fmt.Errorf("delete calendar event %d: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
