package middleware

import (
	"errors"
	"net/http"
	"strings"

	"accverse/pkg/token"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

// Auth validates the bearer session token and puts the subject's
// identity into the request context. Expired and malformed tokens are
// both rejected with 401; the distinction only matters for logs.
func Auth(codec *token.Codec, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				if errors.Is(err, token.ErrTokenExpired) {
					logger.Warn("Expired session token", zap.String("path", r.URL.Path))
					utils.ResponseUnauthorized(w, "Token expired")
					return
				}
				logger.Warn("Invalid session token", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid token")
				return
			}

			ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth populates the user context when a valid bearer token is
// present but lets anonymous requests through. Used on routes that work
// both ways, like tax form drafts.
func OptionalAuth(codec *token.Codec, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				if claims, err := codec.Verify(parts[1]); err == nil {
					ctx := utils.SetUserContext(r.Context(), claims.UserID, claims.Email, claims.Role)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Admin checks the role claim set by Auth.
func Admin(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if role != "admin" {
				userID, _ := utils.GetUserIDFromContext(r.Context())
				logger.Warn("Admin check: non-admin access attempt",
					zap.Int64("user_id", userID),
					zap.String("path", r.URL.Path))
				utils.ResponseForbidden(w, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
