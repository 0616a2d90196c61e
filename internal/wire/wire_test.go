package wire

import (
	"net/http"
	"testing"
	"time"

	"accverse/internal/adaptor"
	"accverse/internal/data/repository"
	"accverse/internal/usecase"
	"accverse/pkg/token"
	"accverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	codec, err := token.NewCodec("test-secret", time.Hour)
	require.NoError(t, err)

	logger := zap.NewNop()
	service := usecase.NewService(&repository.Repository{}, &utils.Config{}, codec, nil, nil, logger)
	handler := adaptor.NewHandler(service, logger)

	return setupRouter(handler, codec, logger)
}

func routed(r *chi.Mux, method, path string) bool {
	return r.Match(chi.NewRouteContext(), method, path)
}

func TestRouterExposesAPIRoutes(t *testing.T) {
	r := newTestRouter(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/auth/register"},
		{http.MethodPost, "/api/auth/login"},
		{http.MethodGet, "/api/auth/verify"},
		{http.MethodPost, "/api/auth/refresh-token"},
		{http.MethodPost, "/api/auth/google"},
		{http.MethodPost, "/api/auth/google/complete-registration"},
		{http.MethodGet, "/api/appointments/available"},
		{http.MethodGet, "/api/calendar/sync"},
		{http.MethodGet, "/api/notifications/settings"},
		{http.MethodPost, "/api/notifications/settings"},
		{http.MethodGet, "/api/tax-solutions/templates"},
		{http.MethodPost, "/api/tax-solutions/save-progress"},
		{http.MethodPost, "/api/tax-solutions/submit"},
		{http.MethodGet, "/api/tax-solutions/load-progress/4f1c2d"},
		{http.MethodPost, "/api/payments/webhook"},
		{http.MethodGet, "/health"},
	} {
		assert.True(t, routed(r, tc.method, tc.path), "%s %s not routed", tc.method, tc.path)
	}
}
