package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *entity.Notification) error
	FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) (bool, error)
	FindPreferences(ctx context.Context, userID int64) (*entity.NotificationPreferences, error)
	UpsertPreferences(ctx context.Context, prefs *entity.NotificationPreferences) error
}

type notificationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNotificationRepository(db database.PgxIface, log *zap.Logger) NotificationRepository {
	return &notificationRepository{
		db:  db,
		log: log.With(zap.String("repository", "notification")),
	}
}

func (r *notificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, is_read, created_at)
		VALUES ($1, $2, $3, false, $4)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.CreatedAt,
	).Scan(&notification.ID)

	if err != nil {
		r.log.Error("Failed to create notification",
			zap.Error(err),
			zap.Int64("user_id", notification.UserID),
		)
		return fmt.Errorf("create notification for user %d: %w", notification.UserID, err)
	}

	return nil
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Notification, error) {
	query := `
		SELECT id, user_id, title, message, is_read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list notifications", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find notifications for user %d: %w", userID, err)
	}
	defer rows.Close()

	var notifications []*entity.Notification
	for rows.Next() {
		var n entity.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan notification row: %w", err)
		}
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification rows: %w", err)
	}

	return notifications, nil
}

// MarkRead is scoped by user so one user cannot touch another's
// notifications. Returns false when nothing matched.
func (r *notificationRepository) MarkRead(ctx context.Context, id, userID int64) (bool, error) {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to mark notification read", zap.Error(err), zap.Int64("notification_id", id))
		return false, fmt.Errorf("mark notification %d read: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *notificationRepository) FindPreferences(ctx context.Context, userID int64) (*entity.NotificationPreferences, error) {
	query := `
		SELECT user_id, email_enabled, sms_enabled, reminders_ahead
		FROM notification_preferences
		WHERE user_id = $1
	`

	var prefs entity.NotificationPreferences
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&prefs.UserID,
		&prefs.EmailEnabled,
		&prefs.SMSEnabled,
		&prefs.RemindersAhead,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find preferences", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find preferences for user %d: %w", userID, err)
	}

	return &prefs, nil
}

func (r *notificationRepository) UpsertPreferences(ctx context.Context, prefs *entity.NotificationPreferences) error {
	query := `
		INSERT INTO notification_preferences (user_id, email_enabled, sms_enabled, reminders_ahead)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id)
		DO UPDATE SET email_enabled = EXCLUDED.email_enabled,
		              sms_enabled = EXCLUDED.sms_enabled,
		              reminders_ahead = EXCLUDED.reminders_ahead
	`

	_, err := r.db.Exec(ctx, query,
		prefs.UserID,
		prefs.EmailEnabled,
		prefs.SMSEnabled,
		prefs.RemindersAhead,
	)

	if err != nil {
		r.log.Error("Failed to upsert preferences", zap.Error(err), zap.Int64("user_id", prefs.UserID))
		return fmt.Errorf("upsert preferences for user %d: %w", prefs.UserID, err)
	}

	return nil
}
