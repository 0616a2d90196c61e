package usecase

import (
	"context"

	"accverse/internal/data/repository"
	"accverse/internal/dto/response"

	"go.uber.org/zap"
)

// KnowledgeService serves the public knowledge base. Listings carry
// titles only; the article body is loaded on demand.
type KnowledgeService interface {
	List(ctx context.Context) ([]response.KnowledgeArticleResponse, error)
	Get(ctx context.Context, id int64) (*response.KnowledgeArticleResponse, error)
}

type knowledgeService struct {
	articles repository.KnowledgeRepository
	log      *zap.Logger
}

func NewKnowledgeService(articles repository.KnowledgeRepository, log *zap.Logger) KnowledgeService {
	return &knowledgeService{
		articles: articles,
		log:      log.With(zap.String("service", "knowledge")),
	}
}

func (s *knowledgeService) List(ctx context.Context) ([]response.KnowledgeArticleResponse, error) {
	articles, err := s.articles.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.KnowledgeArticleResponse, 0, len(articles))
	for _, a := range articles {
		out = append(out, response.ArticleToResponse(a, false))
	}
	return out, nil
}

func (s *knowledgeService) Get(ctx context.Context, id int64) (*response.KnowledgeArticleResponse, error) {
	article, err := s.articles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}

	resp := response.ArticleToResponse(article, true)
	return &resp, nil
}
