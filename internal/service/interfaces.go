package service

import (
	"context"

	"github.com/fdahk/Tjlogs/internal/domain"
	"github.com/fdahk/Tjlogs/internal/query"
)

// ArticleServiceInterface defines the interface for article operations.
// Used for dependency injection and mocking in tests.
type ArticleServiceInterface interface {
	// List returns one filtered, sorted page of article summaries.
	List(ctx context.Context, params domain.ListParams) (*domain.ArticlePage, error)
	// Recommend returns published articles ranked by score.
	Recommend(ctx context.Context, params domain.FeedParams) ([]domain.ArticleSummary, error)
	// Latest returns the most recently created published articles.
	Latest(ctx context.Context, params domain.FeedParams) ([]domain.ArticleSummary, error)
	// Detail returns a visible article and counts the read as a view.
	Detail(ctx context.Context, id int64) (*domain.Article, error)
	// Create validates and stores a new article, returning its id.
	Create(ctx context.Context, input domain.CreateArticleInput) (int64, error)
	// Update applies a partial update to an existing article.
	Update(ctx context.Context, id int64, patch query.Patch) error
	// Delete soft-deletes an article.
	Delete(ctx context.Context, id int64) error
}
