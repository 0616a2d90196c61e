package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"accverse/internal/dto/request"
	"accverse/internal/dto/response"
	"accverse/internal/usecase"
	"accverse/pkg/token"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// stubAuthService returns canned results so handler status mapping can be
// checked in isolation.
type stubAuthService struct {
	registerResp *response.RegisterResponse
	authResp     *response.AuthResponse
	googleResp   *response.GoogleAuthResponse
	claims       *token.Claims
	err          error
}

func (s *stubAuthService) Register(context.Context, *request.RegisterRequest) (*response.RegisterResponse, error) {
	return s.registerResp, s.err
}

func (s *stubAuthService) Login(context.Context, *request.LoginRequest) (*response.AuthResponse, error) {
	return s.authResp, s.err
}

func (s *stubAuthService) SendOTP(context.Context, *request.SendOTPRequest) error {
	return s.err
}

func (s *stubAuthService) VerifyOTP(context.Context, *request.VerifyOTPRequest) (*response.AuthResponse, error) {
	return s.authResp, s.err
}

func (s *stubAuthService) ResendVerification(context.Context, string) error {
	return s.err
}

func (s *stubAuthService) VerifyToken(string) (*token.Claims, error) {
	return s.claims, s.err
}

func (s *stubAuthService) Refresh(context.Context, string) (*response.AuthResponse, error) {
	return s.authResp, s.err
}

func (s *stubAuthService) GoogleAuth(context.Context, *request.GoogleAuthRequest) (*response.GoogleAuthResponse, error) {
	return s.googleResp, s.err
}

func (s *stubAuthService) CompleteGoogleRegistration(context.Context, *request.CompleteGoogleRegistrationRequest) (*response.AuthResponse, error) {
	return s.authResp, s.err
}

func (s *stubAuthService) ResetPasswordRequest(context.Context, string) error {
	return s.err
}

func (s *stubAuthService) ResetPasswordComplete(context.Context, *request.ResetPasswordCompleteRequest) error {
	return s.err
}

func postJSON(t *testing.T, handler http.HandlerFunc, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func newTestAuthHandler(stub *stubAuthService) *AuthHandler {
	return NewAuthHandler(stub, zap.NewNop())
}

func TestRegisterReturns201(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{
		registerResp: &response.RegisterResponse{ID: 1, Email: "jane@example.com"},
	})

	rec := postJSON(t, h.Register, request.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password1",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestRegisterDuplicateReturns400(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{err: usecase.ErrDuplicateEmail})

	rec := postJSON(t, h.Register, request.RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "password1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidationReturns400(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{})

	rec := postJSON(t, h.Register, map[string]string{"email": "not-an-email"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginInvalidCredentialsReturns401(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{err: usecase.ErrInvalidCredentials})

	rec := postJSON(t, h.Login, request.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnverifiedReturns401(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{err: usecase.ErrAccountUnverified})

	rec := postJSON(t, h.Login, request.LoginRequest{
		Email:    "jane@example.com",
		Password: "password1",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "not verified")
}

func TestVerifyOTPExpiredReturns400(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{err: usecase.ErrCodeExpired})

	rec := postJSON(t, h.VerifyOTP, request.VerifyOTPRequest{
		Email: "jane@example.com",
		Code:  "123456",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGoogleAuthRegistrationRequiredReturns202(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{
		googleResp: &response.GoogleAuthResponse{
			RegistrationRequired: true,
			SubjectID:            "sub-1",
			Email:                "new@example.com",
		},
	})

	rec := postJSON(t, h.GoogleAuth, request.GoogleAuthRequest{IDToken: "raw"})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"registration_required":true`)
}

func TestGoogleAuthSignedInReturns200(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	h := newTestAuthHandler(&stubAuthService{
		googleResp: &response.GoogleAuthResponse{
			Token:     "signed-token",
			ExpiresAt: &expires,
		},
	})

	rec := postJSON(t, h.GoogleAuth, request.GoogleAuthRequest{IDToken: "raw"})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefreshMissingBearerReturns401(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshExpiredReturns401(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{err: token.ErrTokenExpired})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	h.Refresh(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestResetPasswordRequestAlways200(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{})

	rec := postJSON(t, h.ResetPasswordRequest, request.ResetPasswordRequest{
		Email: "whoever@example.com",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestVerifyTokenMissingParamReturns400(t *testing.T) {
	h := newTestAuthHandler(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	h.VerifyToken(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
