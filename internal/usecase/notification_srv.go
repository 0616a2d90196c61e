package usecase

import (
	"context"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"

	"go.uber.org/zap"
)

type NotificationService interface {
	List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.NotificationResponse, error)
	MarkRead(ctx context.Context, userID, id int64) error
	GetPreferences(ctx context.Context, userID int64) (*response.NotificationPreferencesResponse, error)
	UpdatePreferences(ctx context.Context, userID int64, req *request.NotificationPreferencesRequest) (*response.NotificationPreferencesResponse, error)
}

type notificationService struct {
	notifications repository.NotificationRepository
	log           *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository, log *zap.Logger) NotificationService {
	return &notificationService{
		notifications: notifications,
		log:           log.With(zap.String("service", "notification")),
	}
}

func (s *notificationService) List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.NotificationResponse, error) {
	notifications, err := s.notifications.FindByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	out := make([]response.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, response.NotificationToResponse(n))
	}
	return out, nil
}

func (s *notificationService) MarkRead(ctx context.Context, userID, id int64) error {
	ok, err := s.notifications.MarkRead(ctx, id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// GetPreferences returns stored preferences, falling back to defaults
// for users who never saved any.
func (s *notificationService) GetPreferences(ctx context.Context, userID int64) (*response.NotificationPreferencesResponse, error) {
	prefs, err := s.notifications.FindPreferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs == nil {
		prefs = &entity.NotificationPreferences{
			UserID:         userID,
			EmailEnabled:   true,
			RemindersAhead: 24,
		}
	}

	resp := response.PreferencesToResponse(prefs)
	return &resp, nil
}

func (s *notificationService) UpdatePreferences(ctx context.Context, userID int64, req *request.NotificationPreferencesRequest) (*response.NotificationPreferencesResponse, error) {
	prefs := &entity.NotificationPreferences{
		UserID:         userID,
		EmailEnabled:   req.EmailEnabled,
		SMSEnabled:     req.SMSEnabled,
		RemindersAhead: req.RemindersAhead,
	}

	if err := s.notifications.UpsertPreferences(ctx, prefs); err != nil {
		return nil, err
	}

	s.log.Info("Notification preferences updated", zap.Int64("user_id", userID))

	resp := response.PreferencesToResponse(prefs)
	return &resp, nil
}
