package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id int64) (*entity.Payment, error)
	FindByReference(ctx context.Context, reference string) (*entity.Payment, error)
	FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Payment, error)
	UpdateStatus(ctx context.Context, id int64, status entity.PaymentStatus) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (user_id, invoice_id, appointment_id, amount, method,
		                      reference, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		payment.UserID,
		payment.InvoiceID,
		payment.AppointmentID,
		payment.Amount,
		payment.Method,
		payment.Reference,
		payment.Status,
		payment.CreatedAt,
		payment.UpdatedAt,
	).Scan(&payment.ID)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.Int64("user_id", payment.UserID),
		)
		return fmt.Errorf("create payment for user %d: %w", payment.UserID, err)
	}

	return nil
}

func (r *paymentRepository) scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.InvoiceID,
		&p.AppointmentID,
		&p.Amount,
		&p.Method,
		&p.Reference,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const paymentColumns = `id, user_id, invoice_id, appointment_id, amount, method,
	       reference, status, created_at, updated_at`

func (r *paymentRepository) FindByID(ctx context.Context, id int64) (*entity.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE id = $1`, paymentColumns)

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		r.log.Error("Failed to find payment", zap.Error(err), zap.Int64("payment_id", id))
		return nil, fmt.Errorf("find payment %d: %w", id, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByReference(ctx context.Context, reference string) (*entity.Payment, error) {
	query := fmt.Sprintf(`SELECT %s FROM payments WHERE reference = $1`, paymentColumns)

	payment, err := r.scanPayment(r.db.QueryRow(ctx, query, reference))
	if err != nil {
		r.log.Error("Failed to find payment by reference", zap.Error(err), zap.String("reference", reference))
		return nil, fmt.Errorf("find payment by reference %s: %w", reference, err)
	}

	return payment, nil
}

func (r *paymentRepository) FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Payment, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, paymentColumns)

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find payments for user %d: %w", userID, err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		var p entity.Payment
		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.InvoiceID,
			&p.AppointmentID,
			&p.Amount,
			&p.Method,
			&p.Reference,
			&p.Status,
			&p.CreatedAt,
			&p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id int64, status entity.PaymentStatus) error {
	query := `
		UPDATE payments
		SET status = $2, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update payment status", zap.Error(err), zap.Int64("payment_id", id))
		return fmt.Errorf("update payment %d status: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %d not found", id)
	}

	return nil
}
