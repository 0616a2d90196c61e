package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"
	"accverse/internal/identity"
	"accverse/internal/mailer"
	"accverse/pkg/token"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

// AuthService implements the account lifecycle: registration with email
// verification, credential and federated login, password reset, and
// stateless token issue/verify/refresh. No session token is ever issued
// for an unverified credential account.
type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	SendOTP(ctx context.Context, req *request.SendOTPRequest) error
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error)
	ResendVerification(ctx context.Context, email string) error
	VerifyToken(tokenStr string) (*token.Claims, error)
	Refresh(ctx context.Context, tokenStr string) (*response.AuthResponse, error)
	GoogleAuth(ctx context.Context, req *request.GoogleAuthRequest) (*response.GoogleAuthResponse, error)
	CompleteGoogleRegistration(ctx context.Context, req *request.CompleteGoogleRegistrationRequest) (*response.AuthResponse, error)
	ResetPasswordRequest(ctx context.Context, email string) error
	ResetPasswordComplete(ctx context.Context, req *request.ResetPasswordCompleteRequest) error
}

type authService struct {
	users    repository.UserRepository
	otp      OTPService
	codec    *token.Codec
	verifier identity.Verifier
	mail     mailer.Mailer
	log      *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	otp OTPService,
	codec *token.Codec,
	verifier identity.Verifier,
	mail mailer.Mailer,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:    users,
		otp:      otp,
		codec:    codec,
		verifier: verifier,
		mail:     mail,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) issueAuth(user *entity.User) (*response.AuthResponse, error) {
	signed, err := s.codec.Issue(user.ID, user.Email, string(user.Role), 0)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return response.AuthToResponse(user, signed, time.Now().Add(s.codec.TTL())), nil
}

// deliver sends an email off the request path. Delivery failures are
// logged, never surfaced to the caller; the stored code stays valid and
// the user can ask for a resend.
func (s *authService) deliver(email string, send func() error) {
	go func() {
		if err := send(); err != nil {
			s.log.Error("Email delivery failed", zap.Error(err), zap.String("email", email))
		}
	}()
}

// Register creates an unverified credential account and emails a
// verification code. The response carries no session token.
func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.RegisterResponse, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	code, err := s.otp.Issue(ctx, user.Email, entity.OTPPurposeEmailVerification)
	if err != nil {
		// The account exists but the code could not be stored; the user
		// can recover through resend-verification.
		s.log.Error("Failed to issue verification code after registration",
			zap.Error(err), zap.Int64("user_id", user.ID))
	} else {
		s.deliver(user.Email, func() error {
			return s.mail.SendVerificationCode(user.Email, code)
		})
	}

	s.log.Info("User registered", zap.Int64("user_id", user.ID), zap.String("email", user.Email))

	return &response.RegisterResponse{ID: user.ID, Email: user.Email}, nil
}

// Login checks credentials and returns a session token. The same
// ErrInvalidCredentials covers unknown email, wrong password and
// password-less federated accounts; a dummy hash comparison keeps the
// unknown-email branch from returning measurably faster.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if user == nil || user.PasswordHash == "" {
		utils.BurnPasswordCheck(req.Password)
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.EmailVerified {
		return nil, ErrAccountUnverified
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return s.issueAuth(user)
}

// SendOTP issues a fresh code for an existing account, invalidating any
// prior code for the same purpose.
func (s *authService) SendOTP(ctx context.Context, req *request.SendOTPRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrAccountNotFound
	}

	purpose := entity.OTPPurpose(req.Purpose)
	if purpose == entity.OTPPurposeEmailVerification && user.EmailVerified {
		return ErrAlreadyVerified
	}

	code, err := s.otp.Issue(ctx, user.Email, purpose)
	if err != nil {
		return err
	}

	s.deliver(user.Email, func() error {
		if purpose == entity.OTPPurposePasswordReset {
			return s.mail.SendPasswordResetCode(user.Email, code)
		}
		return s.mail.SendVerificationCode(user.Email, code)
	})

	return nil
}

// VerifyOTP consumes an email-verification code, marks the account
// verified and returns the account's first session token.
func (s *authService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrAccountNotFound
	}

	if err := s.otp.Verify(ctx, req.Email, entity.OTPPurposeEmailVerification, req.Code); err != nil {
		return nil, err
	}

	if !user.EmailVerified {
		if err := s.users.MarkVerified(ctx, user.ID); err != nil {
			return nil, err
		}
		user.EmailVerified = true
	}

	s.log.Info("Email verified", zap.Int64("user_id", user.ID))

	return s.issueAuth(user)
}

// ResendVerification reissues the verification code for an unverified
// account. The previous code stops working the moment the new one is
// stored.
func (s *authService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrAccountNotFound
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	code, err := s.otp.Issue(ctx, user.Email, entity.OTPPurposeEmailVerification)
	if err != nil {
		return err
	}

	s.deliver(user.Email, func() error {
		return s.mail.SendVerificationCode(user.Email, code)
	})

	return nil
}

// VerifyToken validates a session token without touching the database.
func (s *authService) VerifyToken(tokenStr string) (*token.Claims, error) {
	return s.codec.Verify(tokenStr)
}

// Refresh exchanges a still-valid token for a fresh one with a full
// lifetime. Claims are re-read from the account so role or email changes
// made since the original issue take effect. Expired tokens are refused;
// the user has to log in again.
func (s *authService) Refresh(ctx context.Context, tokenStr string) (*response.AuthResponse, error) {
	claims, err := s.codec.Verify(tokenStr)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrAccountNotFound
	}

	return s.issueAuth(user)
}

// GoogleAuth verifies a federated assertion and logs the holder in. On
// first contact no account is created; the response signals that
// registration must be completed first.
func (s *authService) GoogleAuth(ctx context.Context, req *request.GoogleAuthRequest) (*response.GoogleAuthResponse, error) {
	assertion, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		s.log.Warn("Federated assertion rejected", zap.Error(err))
		return nil, ErrIdentityProvider
	}

	user, err := s.users.FindByGoogleUID(ctx, assertion.SubjectID)
	if err != nil {
		return nil, err
	}

	if user == nil && assertion.EmailVerified {
		// An existing credential account with the same email gets linked
		// instead of prompting a second registration. Only a provider-
		// verified email may claim an account this way.
		user, err = s.users.FindByEmail(ctx, assertion.Email)
		if err != nil {
			return nil, err
		}
		if user != nil {
			user.GoogleUID = &assertion.SubjectID
			user.UpdatedAt = time.Now()
			if err := s.users.Update(ctx, user); err != nil {
				return nil, err
			}
			s.log.Info("Linked federated identity to existing account",
				zap.Int64("user_id", user.ID))
		}
	}

	if user == nil {
		return &response.GoogleAuthResponse{
			RegistrationRequired: true,
			SubjectID:            assertion.SubjectID,
			Email:                assertion.Email,
			Name:                 assertion.Name,
		}, nil
	}

	auth, err := s.issueAuth(user)
	if err != nil {
		return nil, err
	}

	return &response.GoogleAuthResponse{
		Token:     auth.Token,
		ExpiresAt: &auth.ExpiresAt,
		User:      &auth.User,
	}, nil
}

// CompleteGoogleRegistration creates the account a first federated
// sign-in deferred. The assertion is verified again so the profile fields
// bind to a proven identity, and the account is created already verified
// since the provider vouches for the email.
func (s *authService) CompleteGoogleRegistration(ctx context.Context, req *request.CompleteGoogleRegistrationRequest) (*response.AuthResponse, error) {
	assertion, err := s.verifier.Verify(ctx, req.IDToken)
	if err != nil {
		s.log.Warn("Federated assertion rejected", zap.Error(err))
		return nil, ErrIdentityProvider
	}

	// A retry after a lost response finds the account already created.
	existing, err := s.users.FindByGoogleUID(ctx, assertion.SubjectID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.issueAuth(existing)
	}

	name := req.Name
	if name == "" {
		name = assertion.Name
	}

	now := time.Now()
	user := &entity.User{
		Name:          name,
		Email:         assertion.Email,
		Phone:         req.Phone,
		GoogleUID:     &assertion.SubjectID,
		Role:          entity.RoleCustomer,
		EmailVerified: true,
		IsActive:      true,
	}
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	s.log.Info("Federated registration completed",
		zap.Int64("user_id", user.ID), zap.String("email", user.Email))

	return s.issueAuth(user)
}

// ResetPasswordRequest issues a reset code when the account exists and
// reports success either way, so the endpoint cannot be used to probe
// which emails are registered.
func (s *authService) ResetPasswordRequest(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		s.log.Info("Password reset requested for unknown email")
		return nil
	}

	code, err := s.otp.Issue(ctx, user.Email, entity.OTPPurposePasswordReset)
	if err != nil {
		return err
	}

	s.deliver(user.Email, func() error {
		return s.mail.SendPasswordResetCode(user.Email, code)
	})

	return nil
}

// ResetPasswordComplete consumes a reset code and replaces the password.
// The code is single-use; a second attempt with the same code fails.
func (s *authService) ResetPasswordComplete(ctx context.Context, req *request.ResetPasswordCompleteRequest) error {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrAccountNotFound
	}

	if err := s.otp.Verify(ctx, req.Email, entity.OTPPurposePasswordReset, req.Code); err != nil {
		return err
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.users.SetPassword(ctx, user.ID, hash); err != nil {
		return err
	}

	s.log.Info("Password reset completed", zap.Int64("user_id", user.ID))

	return nil
}
