package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	// Upsert stores a fresh code for (email, purpose). The table has a
	// unique constraint on the pair, so this single statement atomically
	// replaces any prior code; two concurrent issues cannot leave two
	// valid codes behind.
	Upsert(ctx context.Context, otp *entity.OTP) error
	// Consume marks the code used if and only if it matches, is
	// unconsumed and unexpired, as one compare-and-set statement.
	// Returns false when no row qualified.
	Consume(ctx context.Context, email string, purpose entity.OTPPurpose, code string) (bool, error)
	// Find returns the current record for (email, purpose), nil if none.
	Find(ctx context.Context, email string, purpose entity.OTPPurpose) (*entity.OTP, error)
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

func (r *otpRepository) Upsert(ctx context.Context, otp *entity.OTP) error {
	query := `
		INSERT INTO otps (email, purpose, code, expires_at, consumed, created_at)
		VALUES ($1, $2, $3, $4, false, $5)
		ON CONFLICT (email, purpose)
		DO UPDATE SET code = EXCLUDED.code,
		              expires_at = EXCLUDED.expires_at,
		              consumed = false,
		              created_at = EXCLUDED.created_at
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		otp.Email,
		otp.Purpose,
		otp.Code,
		otp.ExpiresAt,
		otp.CreatedAt,
	).Scan(&otp.ID)

	if err != nil {
		r.log.Error("Failed to upsert OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
			zap.String("purpose", string(otp.Purpose)),
		)
		return fmt.Errorf("upsert OTP for %s: %w", otp.Email, err)
	}

	return nil
}

func (r *otpRepository) Consume(ctx context.Context, email string, purpose entity.OTPPurpose, code string) (bool, error) {
	query := `
		UPDATE otps
		SET consumed = true
		WHERE email = $1
		  AND purpose = $2
		  AND code = $3
		  AND consumed = false
		  AND expires_at > NOW()
	`

	result, err := r.db.Exec(ctx, query, email, purpose, code)
	if err != nil {
		r.log.Error("Failed to consume OTP",
			zap.Error(err),
			zap.String("email", email),
			zap.String("purpose", string(purpose)),
		)
		return false, fmt.Errorf("consume OTP for %s: %w", email, err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *otpRepository) Find(ctx context.Context, email string, purpose entity.OTPPurpose) (*entity.OTP, error) {
	query := `
		SELECT id, email, purpose, code, expires_at, consumed, created_at
		FROM otps
		WHERE email = $1 AND purpose = $2
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email, purpose).Scan(
		&otp.ID,
		&otp.Email,
		&otp.Purpose,
		&otp.Code,
		&otp.ExpiresAt,
		&otp.Consumed,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("email", email),
			zap.String("purpose", string(purpose)),
		)
		return nil, fmt.Errorf("find OTP for %s purpose %s: %w", email, purpose, err)
	}

	return &otp, nil
}
