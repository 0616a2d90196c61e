package usecase

import (
	"context"
	"fmt"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

// OTPService issues and verifies single-use codes. One code per
// (email, purpose) pair is authoritative at a time: issuing a new code
// replaces the previous one in a single upsert.
type OTPService interface {
	Issue(ctx context.Context, email string, purpose entity.OTPPurpose) (string, error)
	Verify(ctx context.Context, email string, purpose entity.OTPPurpose, code string) error
}

type otpService struct {
	repo   repository.OTPRepository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewOTPService(repo repository.OTPRepository, config *utils.Config, log *zap.Logger) OTPService {
	return &otpService{
		repo:   repo,
		config: config,
		log:    log,
		now:    time.Now,
	}
}

func (s *otpService) Issue(ctx context.Context, email string, purpose entity.OTPPurpose) (string, error) {
	code, err := utils.GenerateOTP(s.config.OTP.Length)
	if err != nil {
		s.log.Error("Failed to generate OTP", zap.Error(err))
		return "", fmt.Errorf("generate OTP: %w", err)
	}

	now := s.now()
	otp := &entity.OTP{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: now.Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute),
	}
	otp.CreatedAt = now

	if err := s.repo.Upsert(ctx, otp); err != nil {
		s.log.Error("Failed to store OTP", zap.Error(err), zap.String("email", email))
		return "", fmt.Errorf("store OTP: %w", err)
	}

	s.log.Info("OTP issued",
		zap.String("email", email),
		zap.String("purpose", string(purpose)),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	return code, nil
}

// Verify consumes the current code for (email, purpose). The consume is a
// single compare-and-set, so a code can be accepted at most once even
// under concurrent requests; the follow-up read only decides which error
// to report.
func (s *otpService) Verify(ctx context.Context, email string, purpose entity.OTPPurpose, code string) error {
	ok, err := s.repo.Consume(ctx, email, purpose, code)
	if err != nil {
		return fmt.Errorf("consume OTP: %w", err)
	}
	if ok {
		return nil
	}

	record, err := s.repo.Find(ctx, email, purpose)
	if err != nil {
		return fmt.Errorf("inspect OTP: %w", err)
	}

	switch {
	case record == nil || record.Code != code:
		return ErrCodeInvalid
	case record.Consumed:
		return ErrCodeAlreadyUsed
	case !record.ExpiresAt.After(s.now()):
		return ErrCodeExpired
	default:
		return ErrCodeInvalid
	}
}
