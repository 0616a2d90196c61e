package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"accverse/internal/data/entity"
	"accverse/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestOTPService(repo *fakeOTPRepo) *otpService {
	config := &utils.Config{OTP: utils.OTPConfig{ExpiryMinutes: 10, Length: 6}}
	return NewOTPService(repo, config, zap.NewNop()).(*otpService)
}

func TestOTPIssueAndVerify(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	err = svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, code)
	assert.NoError(t, err)
}

func TestOTPReissueInvalidatesPrevious(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)
	ctx := context.Background()

	first, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
	require.NoError(t, err)

	second, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
	require.NoError(t, err)

	if first != second {
		err = svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, first)
		assert.ErrorIs(t, err, ErrCodeInvalid)
	}

	err = svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, second)
	assert.NoError(t, err)
}

func TestOTPDoubleConsume(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, code))

	err = svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, code)
	assert.ErrorIs(t, err, ErrCodeAlreadyUsed)
}

func TestOTPWrongCode(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	err = svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, wrong)
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestOTPNoCodeIssued(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)

	err := svc.Verify(context.Background(), "nobody@example.com", entity.OTPPurposeEmailVerification, "123456")
	assert.ErrorIs(t, err, ErrCodeInvalid)
}

func TestOTPExpired(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)
	ctx := context.Background()

	code, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
	require.NoError(t, err)

	// Backdate the stored expiry past the cutoff.
	repo.mu.Lock()
	otp := repo.otps[otpKey{email: "a@example.com", purpose: entity.OTPPurposeEmailVerification}]
	otp.ExpiresAt = time.Now().Add(-time.Minute)
	repo.mu.Unlock()

	err = svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, code)
	assert.ErrorIs(t, err, ErrCodeExpired)
}

func TestOTPConcurrentIssueLeavesOneValidCode(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	repo.mu.Lock()
	record := repo.otps[otpKey{email: "a@example.com", purpose: entity.OTPPurposeEmailVerification}]
	count := len(repo.otps)
	repo.mu.Unlock()

	require.NotNil(t, record)
	assert.Equal(t, 1, count)
	assert.NoError(t, svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, record.Code))
}

func TestOTPPurposesAreIndependent(t *testing.T) {
	repo := newFakeOTPRepo()
	svc := newTestOTPService(repo)
	ctx := context.Background()

	verifyCode, err := svc.Issue(ctx, "a@example.com", entity.OTPPurposeEmailVerification)
	require.NoError(t, err)

	_, err = svc.Issue(ctx, "a@example.com", entity.OTPPurposePasswordReset)
	require.NoError(t, err)

	// Issuing a reset code must not invalidate the verification code.
	err = svc.Verify(ctx, "a@example.com", entity.OTPPurposeEmailVerification, verifyCode)
	assert.NoError(t, err)
}
