package repository

import (
	"context"

	"github.com/fdahk/Tjlogs/internal/domain"
	"github.com/fdahk/Tjlogs/internal/query"
)

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// List returns one page of article summaries and the total number of
	// rows matching the filter.
	List(ctx context.Context, filter query.Filter, order query.Ordering, page query.Page) ([]domain.ArticleSummary, int64, error)
	// Top returns at most limit article summaries in the given order.
	Top(ctx context.Context, filter query.Filter, order query.Ordering, limit int) ([]domain.ArticleSummary, error)
	// Create inserts an article and returns its store-assigned id.
	Create(ctx context.Context, article *domain.Article) (int64, error)
	// Exists reports whether an article with the id exists, in any status.
	Exists(ctx context.Context, id int64) (bool, error)
	// IncrementViewCount atomically bumps the view count of a visible
	// article and returns the article as stored after the increment.
	IncrementViewCount(ctx context.Context, id int64) (*domain.Article, error)
	// Update applies the assignments to the article in a single statement.
	Update(ctx context.Context, id int64, set query.Assignments) error
	// SoftDelete marks the article deleted.
	SoftDelete(ctx context.Context, id int64) error
}
