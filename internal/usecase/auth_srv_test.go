package usecase

import (
	"context"
	"testing"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/dto/request"
	"accverse/internal/identity"
	"accverse/pkg/token"
	"accverse/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type authFixture struct {
	svc      AuthService
	users    *fakeUserRepo
	otps     *fakeOTPRepo
	verifier *fakeVerifier
	codec    *token.Codec
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := newFakeUserRepo()
	otps := newFakeOTPRepo()
	verifier := &fakeVerifier{}

	codec, err := token.NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	config := &utils.Config{OTP: utils.OTPConfig{ExpiryMinutes: 10, Length: 6}}
	otpSvc := NewOTPService(otps, config, zap.NewNop())

	return &authFixture{
		svc:      NewAuthService(users, otpSvc, codec, verifier, &fakeMailer{}, zap.NewNop()),
		users:    users,
		otps:     otps,
		verifier: verifier,
		codec:    codec,
	}
}

func (f *authFixture) register(t *testing.T, email, password string) int64 {
	t.Helper()

	resp, err := f.svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Test User",
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return resp.ID
}

func (f *authFixture) storedCode(t *testing.T, email string, purpose entity.OTPPurpose) string {
	t.Helper()

	otp, err := f.otps.Find(context.Background(), email, purpose)
	require.NoError(t, err)
	require.NotNil(t, otp)
	return otp.Code
}

func TestRegisterWithholdsTokenUntilVerified(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.register(t, "jane@example.com", "password1")

	_, err := f.svc.Login(ctx, &request.LoginRequest{
		Email:    "jane@example.com",
		Password: "password1",
	})
	assert.ErrorIs(t, err, ErrAccountUnverified)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	f := newAuthFixture(t)

	f.register(t, "jane@example.com", "password1")

	_, err := f.svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Other",
		Email:    "JANE@Example.COM",
		Password: "password2",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.register(t, "jane@example.com", "password1")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)
	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "jane@example.com", Code: code})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, &request.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginFederatedOnlyAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	uid := "google-123"
	user := &entity.User{
		Name:          "Fed User",
		Email:         "fed@example.com",
		GoogleUID:     &uid,
		Role:          entity.RoleCustomer,
		EmailVerified: true,
		IsActive:      true,
	}
	require.NoError(t, f.users.Create(ctx, user))

	// Same generic error as a wrong password; the response must not
	// reveal that this account has no password at all.
	_, err := f.svc.Login(ctx, &request.LoginRequest{
		Email:    "fed@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginFailureBranchesShareHashCost(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.register(t, "jane@example.com", "password1")

	// Baseline cost of one bcrypt comparison.
	start := time.Now()
	utils.BurnPasswordCheck("whatever")
	baseline := time.Since(start)

	start = time.Now()
	_, err := f.svc.Login(ctx, &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	unknownEmail := time.Since(start)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	start = time.Now()
	_, err = f.svc.Login(ctx, &request.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-password",
	})
	wrongPassword := time.Since(start)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Without the dummy comparison the unknown-email branch would return
	// in microseconds. Both branches must pay for a full hash check.
	assert.GreaterOrEqual(t, unknownEmail, baseline/4)
	assert.GreaterOrEqual(t, wrongPassword, baseline/4)
}

func TestVerifyOTPGrantsFirstToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	id := f.register(t, "jane@example.com", "password1")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)

	resp, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "jane@example.com",
		Code:  code,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	claims, err := f.codec.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)

	// Credential login now succeeds.
	_, err = f.svc.Login(ctx, &request.LoginRequest{
		Email:    "jane@example.com",
		Password: "password1",
	})
	assert.NoError(t, err)
}

func TestVerifyOTPWrongCodeLeavesUnverified(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	id := f.register(t, "jane@example.com", "password1")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{
		Email: "jane@example.com",
		Code:  wrong,
	})
	assert.ErrorIs(t, err, ErrCodeInvalid)

	user, err := f.users.FindByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, user.EmailVerified)
}

func TestResendVerificationAlreadyVerified(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.register(t, "jane@example.com", "password1")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)
	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "jane@example.com", Code: code})
	require.NoError(t, err)

	err = f.svc.ResendVerification(ctx, "jane@example.com")
	assert.ErrorIs(t, err, ErrAlreadyVerified)
}

func TestSendOTPUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	err := f.svc.SendOTP(context.Background(), &request.SendOTPRequest{
		Email:   "nobody@example.com",
		Purpose: string(entity.OTPPurposeEmailVerification),
	})
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestRefreshReflectsRoleChange(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	id := f.register(t, "jane@example.com", "password1")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)
	first, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "jane@example.com", Code: code})
	require.NoError(t, err)

	user, err := f.users.FindByID(ctx, id)
	require.NoError(t, err)
	user.Role = entity.RoleAdmin
	require.NoError(t, f.users.Update(ctx, user))

	refreshed, err := f.svc.Refresh(ctx, first.Token)
	require.NoError(t, err)

	claims, err := f.codec.Verify(refreshed.Token)
	require.NoError(t, err)
	assert.Equal(t, string(entity.RoleAdmin), claims.Role)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	id := f.register(t, "jane@example.com", "password1")

	shortCodec, err := token.NewCodec("test-secret", time.Nanosecond)
	require.NoError(t, err)
	expired, err := shortCodec.Issue(id, "jane@example.com", "customer", time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = f.svc.Refresh(ctx, expired)
	assert.ErrorIs(t, err, token.ErrTokenExpired)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.svc.Refresh(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, token.ErrTokenInvalid)
}

func TestGoogleAuthFirstContactRequiresRegistration(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.verifier.assertion = &identity.Assertion{
		SubjectID:     "google-sub-1",
		Email:         "new@example.com",
		EmailVerified: true,
		Name:          "New Person",
	}

	resp, err := f.svc.GoogleAuth(ctx, &request.GoogleAuthRequest{IDToken: "raw"})
	require.NoError(t, err)

	assert.True(t, resp.RegistrationRequired)
	assert.Empty(t, resp.Token)

	// No account row until registration completes.
	user, err := f.users.FindByEmail(ctx, "new@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGoogleAuthLinksExistingAccount(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	id := f.register(t, "jane@example.com", "password1")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)
	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "jane@example.com", Code: code})
	require.NoError(t, err)

	f.verifier.assertion = &identity.Assertion{
		SubjectID:     "google-sub-2",
		Email:         "jane@example.com",
		EmailVerified: true,
		Name:          "Jane",
	}

	resp, err := f.svc.GoogleAuth(ctx, &request.GoogleAuthRequest{IDToken: "raw"})
	require.NoError(t, err)

	assert.False(t, resp.RegistrationRequired)
	assert.NotEmpty(t, resp.Token)

	user, err := f.users.FindByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user.GoogleUID)
	assert.Equal(t, "google-sub-2", *user.GoogleUID)
}

func TestGoogleAuthUnverifiedProviderEmailDoesNotLink(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	id := f.register(t, "jane@example.com", "password1")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)
	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "jane@example.com", Code: code})
	require.NoError(t, err)

	// The provider has not verified this address, so it must not be able
	// to claim the existing credential account.
	f.verifier.assertion = &identity.Assertion{
		SubjectID:     "google-sub-9",
		Email:         "jane@example.com",
		EmailVerified: false,
		Name:          "Jane",
	}

	resp, err := f.svc.GoogleAuth(ctx, &request.GoogleAuthRequest{IDToken: "raw"})
	require.NoError(t, err)

	assert.True(t, resp.RegistrationRequired)
	assert.Empty(t, resp.Token)

	user, err := f.users.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, user.GoogleUID)
}

func TestCompleteGoogleRegistration(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.verifier.assertion = &identity.Assertion{
		SubjectID:     "google-sub-3",
		Email:         "fed@example.com",
		EmailVerified: true,
		Name:          "Fed Person",
	}

	resp, err := f.svc.CompleteGoogleRegistration(ctx, &request.CompleteGoogleRegistrationRequest{
		IDToken: "raw",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	user, err := f.users.FindByEmail(ctx, "fed@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.EmailVerified)

	// A retry after a lost response is idempotent.
	again, err := f.svc.CompleteGoogleRegistration(ctx, &request.CompleteGoogleRegistrationRequest{
		IDToken: "raw",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, again.User.ID)
}

func TestGoogleAuthRejectedAssertion(t *testing.T) {
	f := newAuthFixture(t)
	f.verifier.err = identity.ErrAssertionInvalid

	_, err := f.svc.GoogleAuth(context.Background(), &request.GoogleAuthRequest{IDToken: "bogus"})
	assert.ErrorIs(t, err, ErrIdentityProvider)
}

func TestResetPasswordRequestUnknownEmailSucceedsSilently(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	err := f.svc.ResetPasswordRequest(ctx, "nobody@example.com")
	assert.NoError(t, err)

	otp, err := f.otps.Find(ctx, "nobody@example.com", entity.OTPPurposePasswordReset)
	require.NoError(t, err)
	assert.Nil(t, otp)
}

func TestResetPasswordComplete(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	f.register(t, "jane@example.com", "old-password")
	code := f.storedCode(t, "jane@example.com", entity.OTPPurposeEmailVerification)
	_, err := f.svc.VerifyOTP(ctx, &request.VerifyOTPRequest{Email: "jane@example.com", Code: code})
	require.NoError(t, err)

	require.NoError(t, f.svc.ResetPasswordRequest(ctx, "jane@example.com"))
	resetCode := f.storedCode(t, "jane@example.com", entity.OTPPurposePasswordReset)

	err = f.svc.ResetPasswordComplete(ctx, &request.ResetPasswordCompleteRequest{
		Email:       "jane@example.com",
		Code:        resetCode,
		NewPassword: "new-password",
	})
	require.NoError(t, err)

	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "jane@example.com", Password: "old-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.svc.Login(ctx, &request.LoginRequest{Email: "jane@example.com", Password: "new-password"})
	assert.NoError(t, err)

	// The reset code is single use.
	err = f.svc.ResetPasswordComplete(ctx, &request.ResetPasswordCompleteRequest{
		Email:       "jane@example.com",
		Code:        resetCode,
		NewPassword: "another-password",
	})
	assert.ErrorIs(t, err, ErrCodeAlreadyUsed)
}
