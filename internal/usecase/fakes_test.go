package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/identity"
)

// In-memory fakes for the repositories and outbound dependencies the
// auth flows touch.

type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: make(map[int64]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return repository.ErrDuplicateEmail
		}
	}

	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if strings.EqualFold(user.Email, email) {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByGoogleUID(_ context.Context, googleUID string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.users {
		if user.GoogleUID != nil && *user.GoogleUID == googleUID {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserRepo) SetPassword(_ context.Context, id int64, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user, ok := f.users[id]; ok {
		user.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) MarkVerified(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if user, ok := f.users[id]; ok {
		user.EmailVerified = true
	}
	return nil
}

type otpKey struct {
	email   string
	purpose entity.OTPPurpose
}

type fakeOTPRepo struct {
	mu     sync.Mutex
	nextID int64
	otps   map[otpKey]*entity.OTP
}

func newFakeOTPRepo() *fakeOTPRepo {
	return &fakeOTPRepo{nextID: 1, otps: make(map[otpKey]*entity.OTP)}
}

func (f *fakeOTPRepo) Upsert(_ context.Context, otp *entity.OTP) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := otpKey{email: otp.Email, purpose: otp.Purpose}
	if existing, ok := f.otps[key]; ok {
		otp.ID = existing.ID
	} else {
		otp.ID = f.nextID
		f.nextID++
	}
	otp.Consumed = false
	copied := *otp
	f.otps[key] = &copied
	return nil
}

func (f *fakeOTPRepo) Consume(_ context.Context, email string, purpose entity.OTPPurpose, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	otp, ok := f.otps[otpKey{email: email, purpose: purpose}]
	if !ok || otp.Code != code || otp.Consumed || !otp.ExpiresAt.After(time.Now()) {
		return false, nil
	}
	otp.Consumed = true
	return true, nil
}

func (f *fakeOTPRepo) Find(_ context.Context, email string, purpose entity.OTPPurpose) (*entity.OTP, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	otp, ok := f.otps[otpKey{email: email, purpose: purpose}]
	if !ok {
		return nil, nil
	}
	copied := *otp
	return &copied, nil
}

type sentMail struct {
	email string
	code  string
	kind  string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeMailer) SendVerificationCode(email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{email: email, code: code, kind: "verification"})
	return nil
}

func (f *fakeMailer) SendPasswordResetCode(email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{email: email, code: code, kind: "reset"})
	return nil
}

type fakeVerifier struct {
	assertion *identity.Assertion
	err       error
}

func (f *fakeVerifier) Verify(_ context.Context, _ string) (*identity.Assertion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assertion, nil
}
