package usecase

import (
	"accverse/internal/data/repository"
	"accverse/internal/identity"
	"accverse/internal/mailer"
	"accverse/pkg/token"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

// Service bundles every use case behind one constructor for wiring.
type Service struct {
	Auth         AuthService
	OTP          OTPService
	User         UserService
	Catalog      CatalogService
	Appointment  AppointmentService
	Payment      PaymentService
	Invoice      InvoiceService
	Notification NotificationService
	Calendar     CalendarService
	Knowledge    KnowledgeService
	TaxForm      TaxFormService
}

func NewService(
	repo *repository.Repository,
	config *utils.Config,
	codec *token.Codec,
	verifier identity.Verifier,
	mail mailer.Mailer,
	log *zap.Logger,
) *Service {
	otp := NewOTPService(repo.OTP, config, log)

	return &Service{
		Auth:         NewAuthService(repo.User, otp, codec, verifier, mail, log),
		OTP:          otp,
		User:         NewUserService(repo.User, log),
		Catalog:      NewCatalogService(repo.Service, log),
		Appointment:  NewAppointmentService(repo.Appointment, repo.Service, repo.Notification, log),
		Payment:      NewPaymentService(repo.Payment, repo.Invoice, repo.Notification, log),
		Invoice:      NewInvoiceService(repo.Invoice, repo.Payment, repo.User, log),
		Notification: NewNotificationService(repo.Notification, log),
		Calendar:     NewCalendarService(repo.Calendar, repo.Appointment, repo.Service, log),
		Knowledge:    NewKnowledgeService(repo.Knowledge, log),
		TaxForm:      NewTaxFormService(repo.TaxForm, log),
	}
}
