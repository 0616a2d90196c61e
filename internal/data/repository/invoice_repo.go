package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type InvoiceRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Invoice, error)
	FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Invoice, error)
	MarkPaid(ctx context.Context, id int64) (bool, error)
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

const invoiceColumns = `id, user_id, number, description, amount, due_date,
	       status, paid_at, created_at, updated_at`

func (r *invoiceRepository) FindByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	query := fmt.Sprintf(`SELECT %s FROM invoices WHERE id = $1`, invoiceColumns)

	var inv entity.Invoice
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID,
		&inv.UserID,
		&inv.Number,
		&inv.Description,
		&inv.Amount,
		&inv.DueDate,
		&inv.Status,
		&inv.PaidAt,
		&inv.CreatedAt,
		&inv.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice", zap.Error(err), zap.Int64("invoice_id", id))
		return nil, fmt.Errorf("find invoice %d: %w", id, err)
	}

	return &inv, nil
}

func (r *invoiceRepository) FindByUser(ctx context.Context, userID int64, limit, offset int) ([]*entity.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM invoices
		WHERE user_id = $1
		ORDER BY due_date DESC
		LIMIT $2 OFFSET $3
	`, invoiceColumns)

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to list invoices", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("find invoices for user %d: %w", userID, err)
	}
	defer rows.Close()

	var invoices []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		err := rows.Scan(
			&inv.ID,
			&inv.UserID,
			&inv.Number,
			&inv.Description,
			&inv.Amount,
			&inv.DueDate,
			&inv.Status,
			&inv.PaidAt,
			&inv.CreatedAt,
			&inv.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, &inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}

	return invoices, nil
}

// MarkPaid flips an unpaid/overdue invoice to paid. Returns false when the
// invoice was already paid (compare-and-set, safe under concurrent pay
// requests).
func (r *invoiceRepository) MarkPaid(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE invoices
		SET status = 'paid', paid_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status <> 'paid'
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to mark invoice paid", zap.Error(err), zap.Int64("invoice_id", id))
		return false, fmt.Errorf("mark invoice %d paid: %w", id, err)
	}

	return result.RowsAffected() > 0, nil
}
