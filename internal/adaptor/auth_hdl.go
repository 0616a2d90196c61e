package adaptor

import (
	"net/http"
	"strings"

	"accverse/internal/dto/request"
	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	auth usecase.AuthService
	log  *zap.Logger
}

func NewAuthHandler(auth usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log.With(zap.String("handler", "auth")),
	}
}

// Register creates an unverified account. The response never carries a
// session token; the client must verify the emailed code first.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.Register(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Registration successful, please verify your email", resp)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.auth.SendOTP(r.Context(), &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Verification code sent", nil)
}

func (h *AuthHandler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.VerifyOTP(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Email verified", resp)
}

func (h *AuthHandler) ResendVerification(w http.ResponseWriter, r *http.Request) {
	var req request.ResendVerificationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.auth.ResendVerification(r.Context(), req.Email); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Verification code resent", nil)
}

// VerifyToken validates the token passed as a query parameter and echoes
// its claims. Meant for other services and debugging clients.
func (h *AuthHandler) VerifyToken(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		utils.ResponseBadRequest(w, "Missing token parameter", nil)
		return
	}

	claims, err := h.auth.VerifyToken(tokenStr)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Token valid", map[string]any{
		"user_id":    claims.UserID,
		"email":      claims.Email,
		"role":       claims.Role,
		"expires_at": claims.ExpiresAt.Time,
	})
}

// Refresh exchanges the bearer token for a fresh one. An expired token is
// refused with 401; the client has to log in again.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
		return
	}

	resp, err := h.auth.Refresh(r.Context(), parts[1])
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Token refreshed", resp)
}

// GoogleAuth signs in with a federated assertion. When no account exists
// yet the response is 202 with registration_required set and no token.
func (h *AuthHandler) GoogleAuth(w http.ResponseWriter, r *http.Request) {
	var req request.GoogleAuthRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.GoogleAuth(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	if resp.RegistrationRequired {
		utils.ResponseAccepted(w, "Registration required", resp)
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

func (h *AuthHandler) CompleteGoogleRegistration(w http.ResponseWriter, r *http.Request) {
	var req request.CompleteGoogleRegistrationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	resp, err := h.auth.CompleteGoogleRegistration(r.Context(), &req)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseCreated(w, "Registration completed", resp)
}

// ResetPasswordRequest reports success whether or not the email has an
// account.
func (h *AuthHandler) ResetPasswordRequest(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.auth.ResetPasswordRequest(r.Context(), req.Email); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "If the email is registered, a reset code has been sent", nil)
}

func (h *AuthHandler) ResetPasswordComplete(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordCompleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	if err := h.auth.ResetPasswordComplete(r.Context(), &req); err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Password has been reset", nil)
}
