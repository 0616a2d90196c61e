package repository

import (
	"accverse/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User         UserRepository
	OTP          OTPRepository
	Service      ServiceRepository
	Appointment  AppointmentRepository
	Payment      PaymentRepository
	Invoice      InvoiceRepository
	Notification NotificationRepository
	Calendar     CalendarRepository
	Knowledge    KnowledgeRepository
	TaxForm      TaxFormRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:         NewUserRepository(db, log),
		OTP:          NewOTPRepository(db, log),
		Service:      NewServiceRepository(db, log),
		Appointment:  NewAppointmentRepository(db, log),
		Payment:      NewPaymentRepository(db, log),
		Invoice:      NewInvoiceRepository(db, log),
		Notification: NewNotificationRepository(db, log),
		Calendar:     NewCalendarRepository(db, log),
		Knowledge:    NewKnowledgeRepository(db, log),
		TaxForm:      NewTaxFormRepository(db, log),
	}
}
