package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TaxFormRepository interface {
	// SaveProgress upserts the draft payload for a form id.
	SaveProgress(ctx context.Context, form *entity.TaxForm) error
	FindByFormID(ctx context.Context, formID uuid.UUID) (*entity.TaxForm, error)
	// MarkSubmitted flips a draft to submitted; false when already submitted.
	MarkSubmitted(ctx context.Context, formID uuid.UUID) (bool, error)
	FindTemplates(ctx context.Context) ([]*entity.TaxFormTemplate, error)
}

type taxFormRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTaxFormRepository(db database.PgxIface, log *zap.Logger) TaxFormRepository {
	return &taxFormRepository{
		db:  db,
		log: log.With(zap.String("repository", "taxform")),
	}
}

func (r *taxFormRepository) SaveProgress(ctx context.Context, form *entity.TaxForm) error {
	query := `
		INSERT INTO tax_forms (form_id, user_id, template_key, progress, status,
		                       created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'draft', $5, $5)
		ON CONFLICT (form_id)
		DO UPDATE SET progress = EXCLUDED.progress,
		              user_id = COALESCE(tax_forms.user_id, EXCLUDED.user_id),
		              updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		form.FormID,
		form.UserID,
		form.TemplateKey,
		form.Progress,
		form.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to save tax form progress",
			zap.Error(err),
			zap.String("form_id", form.FormID.String()),
		)
		return fmt.Errorf("save tax form %s: %w", form.FormID.String(), err)
	}

	return nil
}

func (r *taxFormRepository) FindByFormID(ctx context.Context, formID uuid.UUID) (*entity.TaxForm, error) {
	query := `
		SELECT form_id, user_id, template_key, progress, status,
		       created_at, updated_at, submitted_at
		FROM tax_forms
		WHERE form_id = $1
	`

	var form entity.TaxForm
	err := r.db.QueryRow(ctx, query, formID).Scan(
		&form.FormID,
		&form.UserID,
		&form.TemplateKey,
		&form.Progress,
		&form.Status,
		&form.CreatedAt,
		&form.UpdatedAt,
		&form.SubmittedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find tax form", zap.Error(err), zap.String("form_id", formID.String()))
		return nil, fmt.Errorf("find tax form %s: %w", formID.String(), err)
	}

	return &form, nil
}

func (r *taxFormRepository) MarkSubmitted(ctx context.Context, formID uuid.UUID) (bool, error) {
	query := `
		UPDATE tax_forms
		SET status = 'submitted', submitted_at = NOW(), updated_at = NOW()
		WHERE form_id = $1 AND status = 'draft'
	`

	result, err := r.db.Exec(ctx, query, formID)
	if err != nil {
		r.log.Error("Failed to mark tax form submitted", zap.Error(err), zap.String("form_id", formID.String()))
		return false, fmt.Errorf("mark tax form %s submitted: %w", formID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (r *taxFormRepository) FindTemplates(ctx context.Context) ([]*entity.TaxFormTemplate, error) {
	query := `
		SELECT key, name, description
		FROM tax_form_templates
		ORDER BY key
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list tax form templates", zap.Error(err))
		return nil, fmt.Errorf("find tax form templates: %w", err)
	}
	defer rows.Close()

	var templates []*entity.TaxFormTemplate
	for rows.Next() {
		var t entity.TaxFormTemplate
		if err := rows.Scan(&t.Key, &t.Name, &t.Description); err != nil {
			return nil, fmt.Errorf("scan template row: %w", err)
		}
		templates = append(templates, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate template rows: %w", err)
	}

	return templates, nil
}
