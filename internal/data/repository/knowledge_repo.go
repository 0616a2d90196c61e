package repository

import (
	"context"
	"fmt"

	"accverse/internal/data/entity"
	"accverse/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type KnowledgeRepository interface {
	FindAll(ctx context.Context) ([]*entity.KnowledgeArticle, error)
	FindByID(ctx context.Context, id int64) (*entity.KnowledgeArticle, error)
}

type knowledgeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewKnowledgeRepository(db database.PgxIface, log *zap.Logger) KnowledgeRepository {
	return &knowledgeRepository{
		db:  db,
		log: log.With(zap.String("repository", "knowledge")),
	}
}

func (r *knowledgeRepository) FindAll(ctx context.Context) ([]*entity.KnowledgeArticle, error) {
	query := `
		SELECT id, title, category, content, created_at, updated_at
		FROM knowledge_articles
		ORDER BY category, title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list knowledge articles", zap.Error(err))
		return nil, fmt.Errorf("find all knowledge articles: %w", err)
	}
	defer rows.Close()

	var articles []*entity.KnowledgeArticle
	for rows.Next() {
		var a entity.KnowledgeArticle
		err := rows.Scan(&a.ID, &a.Title, &a.Category, &a.Content, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan article row: %w", err)
		}
		articles = append(articles, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate article rows: %w", err)
	}

	return articles, nil
}

func (r *knowledgeRepository) FindByID(ctx context.Context, id int64) (*entity.KnowledgeArticle, error) {
	query := `
		SELECT id, title, category, content, created_at, updated_at
		FROM knowledge_articles
		WHERE id = $1
	`

	var a entity.KnowledgeArticle
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Category,
		&a.Content,
		&a.CreatedAt,
		&a.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find knowledge article", zap.Error(err), zap.Int64("article_id", id))
		return nil, fmt.Errorf("find knowledge article %d: %w", id, err)
	}

	return &a, nil
}
