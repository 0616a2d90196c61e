package usecase

import (
	"context"

	"accverse/internal/data/repository"
	"accverse/internal/dto/response"

	"go.uber.org/zap"
)

// CatalogService exposes the bookable service offerings and their
// categories. The catalog is read-only through the API; rows are managed
// directly in the database.
type CatalogService interface {
	ListServices(ctx context.Context) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, id int64) (*response.ServiceResponse, error)
	ListCategories(ctx context.Context) ([]response.ServiceCategoryResponse, error)
}

type catalogService struct {
	services repository.ServiceRepository
	log      *zap.Logger
}

func NewCatalogService(services repository.ServiceRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		services: services,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(ctx context.Context) ([]response.ServiceResponse, error) {
	services, err := s.services.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, response.ServiceToResponse(svc))
	}
	return out, nil
}

func (s *catalogService) GetService(ctx context.Context, id int64) (*response.ServiceResponse, error) {
	svc, err := s.services.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil || !svc.IsActive {
		return nil, ErrNotFound
	}

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]response.ServiceCategoryResponse, error) {
	categories, err := s.services.FindCategories(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.ServiceCategoryResponse, 0, len(categories))
	for _, cat := range categories {
		out = append(out, response.CategoryToResponse(cat))
	}
	return out, nil
}
