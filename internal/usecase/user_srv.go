package usecase

import (
	"context"
	"time"

	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"

	"go.uber.org/zap"
)

type UserService interface {
	Me(ctx context.Context, userID int64) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) Me(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID int64, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("Profile updated", zap.Int64("user_id", userID))

	resp := response.UserToResponse(user)
	return &resp, nil
}
