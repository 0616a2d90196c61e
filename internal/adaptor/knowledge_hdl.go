package adaptor

import (
	"net/http"

	"accverse/internal/usecase"
	"accverse/pkg/utils"

	"go.uber.org/zap"
)

type KnowledgeHandler struct {
	knowledge usecase.KnowledgeService
	log       *zap.Logger
}

func NewKnowledgeHandler(knowledge usecase.KnowledgeService, log *zap.Logger) *KnowledgeHandler {
	return &KnowledgeHandler{
		knowledge: knowledge,
		log:       log.With(zap.String("handler", "knowledge")),
	}
}

func (h *KnowledgeHandler) List(w http.ResponseWriter, r *http.Request) {
	resp, err := h.knowledge.List(r.Context())
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Articles retrieved", resp)
}

func (h *KnowledgeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid article id", nil)
		return
	}

	resp, err := h.knowledge.Get(r.Context(), id)
	if err != nil {
		respondError(w, h.log, err)
		return
	}

	utils.ResponseSuccess(w, "Article retrieved", resp)
}
