package response

import (
	"accverse/internal/data/entity"
)

type KnowledgeArticleResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Content  string `json:"content,omitempty"`
}

func ArticleToResponse(a *entity.KnowledgeArticle, includeContent bool) KnowledgeArticleResponse {
	resp := KnowledgeArticleResponse{
		ID:       a.ID,
		Title:    a.Title,
		Category: a.Category,
	}
	if includeContent {
		resp.Content = a.Content
	}
	return resp
}
