package wire

import (
	"net/http"
	"time"

	"accverse/internal/adaptor"
	"accverse/internal/data/repository"
	"accverse/internal/identity"
	"accverse/internal/mailer"
	"accverse/internal/usecase"
	"accverse/pkg/middleware"
	"accverse/pkg/token"
	"accverse/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the full dependency graph and the router.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) (*App, error) {
	codec, err := token.NewCodec(config.JWT.Secret, time.Duration(config.JWT.ExpiryHours)*time.Hour)
	if err != nil {
		return nil, err
	}

	verifier := identity.NewGoogleVerifier(config.Google.ClientID)
	mail := mailer.NewMailer(config.Email, logger)

	service := usecase.NewService(repo, config, codec, verifier, mail, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, codec, logger)

	return &App{Router: router}, nil
}

func setupRouter(handler *adaptor.Handler, codec *token.Codec, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	auth := middleware.Auth(codec, logger)
	optionalAuth := middleware.OptionalAuth(codec, logger)

	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, auth)
	wireCatalog(r, handler.Catalog)
	wireAppointment(r, handler.Appointment, auth)
	wireBilling(r, handler.Payment, handler.Invoice, auth)
	wireNotification(r, handler.Notification, auth)
	wireCalendar(r, handler.Calendar, auth)
	wireContent(r, handler.Knowledge, handler.TaxForm, optionalAuth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
