package response

import (
	"accverse/internal/data/entity"
)

type ServiceResponse struct {
	ID          int64   `json:"id"`
	CategoryID  int64   `json:"category_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

type ServiceCategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func ServiceToResponse(svc *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:          svc.ID,
		CategoryID:  svc.CategoryID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		Duration:    svc.Duration,
	}
}

func CategoryToResponse(cat *entity.ServiceCategory) ServiceCategoryResponse {
	return ServiceCategoryResponse{
		ID:          cat.ID,
		Name:        cat.Name,
		Description: cat.Description,
	}
}
