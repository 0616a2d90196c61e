package usecase

import (
	"context"
	"fmt"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type PaymentService interface {
	Create(ctx context.Context, userID int64, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
	List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.PaymentResponse, error)
	Get(ctx context.Context, userID, id int64) (*response.PaymentResponse, error)
	// HandleWebhook applies a gateway status callback. Replayed callbacks
	// for an already-settled payment are acknowledged without effect.
	HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error
}

type paymentService struct {
	payments      repository.PaymentRepository
	invoices      repository.InvoiceRepository
	notifications repository.NotificationRepository
	log           *zap.Logger
}

func NewPaymentService(
	payments repository.PaymentRepository,
	invoices repository.InvoiceRepository,
	notifications repository.NotificationRepository,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		payments:      payments,
		invoices:      invoices,
		notifications: notifications,
		log:           log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) Create(ctx context.Context, userID int64, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	if req.InvoiceID != nil {
		inv, err := s.invoices.FindByID(ctx, *req.InvoiceID)
		if err != nil {
			return nil, err
		}
		if inv == nil || inv.UserID != userID {
			return nil, ErrNotFound
		}
		if inv.Status == entity.InvoicePaid {
			return nil, ErrAlreadyPaid
		}
	}

	now := time.Now()
	payment := &entity.Payment{
		UserID:        userID,
		InvoiceID:     req.InvoiceID,
		AppointmentID: req.AppointmentID,
		Amount:        req.Amount,
		Method:        req.Method,
		Reference:     utils.GeneratePaymentReference(),
		Status:        entity.PaymentPending,
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.log.Info("Payment created",
		zap.Int64("payment_id", payment.ID),
		zap.String("reference", payment.Reference),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.PaymentResponse, error) {
	payments, err := s.payments.FindByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	out := make([]response.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, response.PaymentToResponse(p))
	}
	return out, nil
}

func (s *paymentService) Get(ctx context.Context, userID, id int64) (*response.PaymentResponse, error) {
	payment, err := s.payments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payment == nil || payment.UserID != userID {
		return nil, ErrNotFound
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) HandleWebhook(ctx context.Context, req *request.PaymentWebhookRequest) error {
	payment, err := s.payments.FindByReference(ctx, req.Reference)
	if err != nil {
		return err
	}
	if payment == nil {
		return ErrNotFound
	}

	if payment.Status != entity.PaymentPending {
		s.log.Info("Webhook replay ignored",
			zap.String("reference", req.Reference),
			zap.String("status", string(payment.Status)),
		)
		return nil
	}

	status := entity.PaymentStatus(req.Status)
	if err := s.payments.UpdateStatus(ctx, payment.ID, status); err != nil {
		return err
	}

	if status == entity.PaymentCompleted && payment.InvoiceID != nil {
		if _, err := s.invoices.MarkPaid(ctx, *payment.InvoiceID); err != nil {
			s.log.Error("Failed to settle invoice after payment",
				zap.Error(err), zap.Int64("invoice_id", *payment.InvoiceID))
		}
	}

	title := "Payment received"
	message := fmt.Sprintf("Your payment %s for $%.2f was processed.", payment.Reference, payment.Amount)
	if status == entity.PaymentFailed {
		title = "Payment failed"
		message = fmt.Sprintf("Your payment %s for $%.2f could not be processed.", payment.Reference, payment.Amount)
	}

	n := &entity.Notification{UserID: payment.UserID, Title: title, Message: message}
	n.CreatedAt = time.Now()
	if err := s.notifications.Create(ctx, n); err != nil {
		s.log.Error("Failed to create payment notification", zap.Error(err))
	}

	s.log.Info("Payment settled",
		zap.String("reference", req.Reference),
		zap.String("status", req.Status),
	)

	return nil
}
