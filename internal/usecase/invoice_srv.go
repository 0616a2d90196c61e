package usecase

import (
	"context"
	"fmt"
	"time"

	"accverse/internal/data/entity"
	"accverse/internal/data/repository"
	"accverse/internal/dto/request"
	"accverse/internal/dto/response"
	"accverse/internal/pdf"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type InvoiceService interface {
	List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.InvoiceResponse, error)
	Get(ctx context.Context, userID, id int64) (*response.InvoiceResponse, error)
	// Pay settles an invoice directly and records the matching payment.
	Pay(ctx context.Context, userID, id int64, req *request.PayInvoiceRequest) (*response.InvoiceResponse, error)
	// DownloadPDF renders the invoice as a PDF document.
	DownloadPDF(ctx context.Context, userID, id int64) ([]byte, string, error)
}

type invoiceService struct {
	invoices repository.InvoiceRepository
	payments repository.PaymentRepository
	users    repository.UserRepository
	log      *zap.Logger
}

func NewInvoiceService(
	invoices repository.InvoiceRepository,
	payments repository.PaymentRepository,
	users repository.UserRepository,
	log *zap.Logger,
) InvoiceService {
	return &invoiceService{
		invoices: invoices,
		payments: payments,
		users:    users,
		log:      log.With(zap.String("service", "invoice")),
	}
}

func (s *invoiceService) find(ctx context.Context, userID, id int64) (*entity.Invoice, error) {
	inv, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil || inv.UserID != userID {
		return nil, ErrNotFound
	}
	return inv, nil
}

func (s *invoiceService) List(ctx context.Context, userID int64, page request.PaginatedRequest) ([]response.InvoiceResponse, error) {
	invoices, err := s.invoices.FindByUser(ctx, userID, page.Limit(), page.Offset())
	if err != nil {
		return nil, err
	}

	out := make([]response.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, response.InvoiceToResponse(inv))
	}
	return out, nil
}

func (s *invoiceService) Get(ctx context.Context, userID, id int64) (*response.InvoiceResponse, error) {
	inv, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	resp := response.InvoiceToResponse(inv)
	return &resp, nil
}

func (s *invoiceService) Pay(ctx context.Context, userID, id int64, req *request.PayInvoiceRequest) (*response.InvoiceResponse, error) {
	inv, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// Compare-and-set; exactly one of two concurrent pay requests wins.
	paid, err := s.invoices.MarkPaid(ctx, id)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, ErrAlreadyPaid
	}

	now := time.Now()
	payment := &entity.Payment{
		UserID:    userID,
		InvoiceID: &inv.ID,
		Amount:    inv.Amount,
		Method:    req.Method,
		Reference: utils.GeneratePaymentReference(),
		Status:    entity.PaymentCompleted,
	}
	payment.CreatedAt = now
	payment.UpdatedAt = now

	if err := s.payments.Create(ctx, payment); err != nil {
		s.log.Error("Failed to record payment for paid invoice",
			zap.Error(err), zap.Int64("invoice_id", id))
	}

	s.log.Info("Invoice paid", zap.Int64("invoice_id", id), zap.Int64("user_id", userID))

	inv, err = s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := response.InvoiceToResponse(inv)
	return &resp, nil
}

func (s *invoiceService) DownloadPDF(ctx context.Context, userID, id int64) ([]byte, string, error) {
	inv, err := s.find(ctx, userID, id)
	if err != nil {
		return nil, "", err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrAccountNotFound
	}

	data, err := pdf.RenderInvoice(inv, user)
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("invoice-%s.pdf", inv.Number)
	return data, filename, nil
}
