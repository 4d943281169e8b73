package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fdahk/Tjlogs/internal/domain"
	"github.com/fdahk/Tjlogs/internal/query"
)

const (
	articlesTable = "articles"

	summaryColumns = `article_id, title, summary, author, cover, category, tag, status,
		view_count, like_count, comment_count, create_time, update_time`

	articleColumns = `article_id, title, content, summary, author, cover, category, tag, status,
		view_count, like_count, comment_count, create_time, update_time`
)

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// List runs the bounded row query and the matching count query.
func (r *PostgresArticleRepository) List(ctx context.Context, filter query.Filter, order query.Ordering, page query.Page) ([]domain.ArticleSummary, int64, error) {
	plan := query.BuildPagedPlan(articlesTable, summaryColumns, filter, order, page)

	articles, err := r.querySummaries(ctx, plan.Rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.pool.QueryRow(ctx, plan.Count.SQL, plan.Count.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count articles: %w", err)
	}

	return articles, total, nil
}

// Top returns the first limit summaries in the given order.
func (r *PostgresArticleRepository) Top(ctx context.Context, filter query.Filter, order query.Ordering, limit int) ([]domain.ArticleSummary, error) {
	return r.querySummaries(ctx, query.BuildTopPlan(articlesTable, summaryColumns, filter, order, limit))
}

func (r *PostgresArticleRepository) querySummaries(ctx context.Context, stmt query.Statement) ([]domain.ArticleSummary, error) {
	rows, err := r.pool.Query(ctx, stmt.SQL, stmt.Args...)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.ArticleSummary, 0)
	for rows.Next() {
		var a domain.ArticleSummary
		var status string
		if err := rows.Scan(&a.ArticleID, &a.Title, &a.Summary, &a.Author, &a.Cover, &a.Category, &a.Tag, &status,
			&a.ViewCount, &a.LikeCount, &a.CommentCount, &a.CreateTime, &a.UpdateTime); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		a.Status = domain.Status(status)
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate articles: %w", err)
	}
	return articles, nil
}

// Create inserts the article with both timestamps set to the current time.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO articles (title, content, summary, author, cover, category, tag, status, create_time, update_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING article_id
	`, a.Title, a.Content, a.Summary, a.Author, a.Cover, a.Category, a.Tag, string(a.Status)).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}
	return id, nil
}

// Exists checks for the id regardless of status.
func (r *PostgresArticleRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check article exists: %w", err)
	}
	return exists, nil
}

// IncrementViewCount bumps and returns the article in one statement so the
// returned view count is the value the store computed.
func (r *PostgresArticleRepository) IncrementViewCount(ctx context.Context, id int64) (*domain.Article, error) {
	var a domain.Article
	var status string
	err := r.pool.QueryRow(ctx, `
		UPDATE articles
		SET view_count = view_count + 1
		WHERE article_id = $1 AND status IN ($2, $3)
		RETURNING `+articleColumns,
		id, string(domain.StatusPublished), string(domain.StatusDraft),
	).Scan(&a.ArticleID, &a.Title, &a.Content, &a.Summary, &a.Author, &a.Cover, &a.Category, &a.Tag, &status,
		&a.ViewCount, &a.LikeCount, &a.CommentCount, &a.CreateTime, &a.UpdateTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("increment view count: %w", err)
	}
	a.Status = domain.Status(status)
	return &a, nil
}

// Update applies the composed assignments.
func (r *PostgresArticleRepository) Update(ctx context.Context, id int64, set query.Assignments) error {
	sql, args := set.Statement(id)
	tag, err := r.pool.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete flips the status to deleted. Deleting an already deleted
// article succeeds.
func (r *PostgresArticleRepository) SoftDelete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET status = $1, update_time = NOW()
		WHERE article_id = $2
	`, string(domain.StatusDeleted), id)
	if err != nil {
		return fmt.Errorf("soft delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
