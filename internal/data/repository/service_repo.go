package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ServiceRepository interface {
	FindAll(ctx context.Context) ([]*entity.Service, error)
	FindByID(ctx context.Context, id int64) (*entity.Service, error)
	FindCategories(ctx context.Context) ([]*entity.ServiceCategory, error)
}

type serviceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceRepository(db database.PgxIface, log *zap.Logger) ServiceRepository {
	return &serviceRepository{
		db:  db,
		log: log.With(zap.String("repository", "service")),
	}
}

func (r *serviceRepository) FindAll(ctx context.Context) ([]*entity.Service, error) {
	query := `
		SELECT id, category_id, name, description, price, duration, is_active,
		       created_at, updated_at
		FROM services
		WHERE is_active = true
		ORDER BY category_id, name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list services", zap.Error(err))
		return nil, fmt.Errorf("find all services: %w", err)
	}
	defer rows.Close()

	var services []*entity.Service
	for rows.Next() {
		var svc entity.Service
		err := rows.Scan(
			&svc.ID,
			&svc.CategoryID,
			&svc.Name,
			&svc.Description,
			&svc.Price,
			&svc.Duration,
			&svc.IsActive,
			&svc.CreatedAt,
			&svc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan service row: %w", err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate services rows: %w", err)
	}

	return services, nil
}

func (r *serviceRepository) FindByID(ctx context.Context, id int64) (*entity.Service, error) {
	query := `
		SELECT id, category_id, name, description, price, duration, is_active,
		       created_at, updated_at
		FROM services
		WHERE id = $1
	`

	var svc entity.Service
	err := r.db.QueryRow(ctx, query, id).Scan(
		&svc.ID,
		&svc.CategoryID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.Duration,
		&svc.IsActive,
		&svc.CreatedAt,
		&svc.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find service", zap.Error(err), zap.Int64("service_id", id))
		return nil, fmt.Errorf("find service %d: %w", id, err)
	}

	return &svc, nil
}

func (r *serviceRepository) FindCategories(ctx context.Context) ([]*entity.ServiceCategory, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM service_categories
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list service categories", zap.Error(err))
		return nil, fmt.Errorf("find service categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.ServiceCategory
	for rows.Next() {
		var cat entity.ServiceCategory
		err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &cat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate category rows: %w", err)
	}

	return categories, nil
}
