package adaptor

import (
	"net/http"

	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(catalog usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.ListServices(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Services retrieved", services)
}

func (h *CatalogHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid service id", nil)
		return
	}

	svc, err := h.catalog.GetService(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Service retrieved", svc)
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.ListCategories(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Categories retrieved", categories)
}
