package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fdahk/Tjlogs/internal/domain"
	"github.com/fdahk/Tjlogs/internal/logger"
	"github.com/fdahk/Tjlogs/internal/metrics"
	"github.com/fdahk/Tjlogs/internal/query"
	"github.com/fdahk/Tjlogs/internal/repository"
	"github.com/fdahk/Tjlogs/internal/validator"
)

// Operation names used in logs and metrics.
const (
	OpList      = "list"
	OpRecommend = "recommend"
	OpLatest    = "latest"
	OpDetail    = "detail"
	OpCreate    = "create"
	OpUpdate    = "update"
	OpDelete    = "delete"
)

// ArticleService implements the article lifecycle on top of an ArticleRepository.
type ArticleService struct {
	repo      repository.ArticleRepository
	validator *validator.Validator
	pager     query.Pager
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repository.ArticleRepository, v *validator.Validator, pager query.Pager) *ArticleService {
	return &ArticleService{
		repo:      repo,
		validator: v,
		pager:     pager,
	}
}

// List returns one page of articles. The status parameter selects drafts or
// published articles and defaults to published.
func (s *ArticleService) List(ctx context.Context, params domain.ListParams) (page *domain.ArticlePage, err error) {
	defer s.observe(OpList, metrics.NewTimer(), &err)

	status, err := listStatus(params.Status)
	if err != nil {
		return nil, err
	}

	order, err := query.ResolveSort(params.SortBy, params.SortOrder)
	if err != nil {
		return nil, err
	}

	p := s.pager.Parse(params.Page, params.Limit)
	filter := query.Filter{Status: status, Category: params.Category}

	list, total, err := s.repo.List(ctx, filter, order, p)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}

	return &domain.ArticlePage{
		List:       list,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: p.TotalPages(total),
	}, nil
}

// Recommend returns published articles ordered by ranking score, newest first on ties.
func (s *ArticleService) Recommend(ctx context.Context, params domain.FeedParams) (list []domain.ArticleSummary, err error) {
	defer s.observe(OpRecommend, metrics.NewTimer(), &err)
	return s.feed(ctx, params, query.RecommendOrdering)
}

// Latest returns published articles ordered by creation time, newest first.
func (s *ArticleService) Latest(ctx context.Context, params domain.FeedParams) (list []domain.ArticleSummary, err error) {
	defer s.observe(OpLatest, metrics.NewTimer(), &err)
	return s.feed(ctx, params, query.LatestOrdering)
}

func (s *ArticleService) feed(ctx context.Context, params domain.FeedParams, order query.Ordering) ([]domain.ArticleSummary, error) {
	filter := query.Filter{Status: domain.StatusPublished, Category: params.Category}

	list, err := s.repo.Top(ctx, filter, order, s.pager.Limit(params.Limit))
	if err != nil {
		return nil, fmt.Errorf("load article feed: %w", err)
	}
	return list, nil
}

// Detail returns a draft or published article. Each successful call counts
// as one view and the returned view count already includes it.
func (s *ArticleService) Detail(ctx context.Context, id int64) (article *domain.Article, err error) {
	defer s.observe(OpDetail, metrics.NewTimer(), &err)

	if id <= 0 {
		return nil, domain.ErrNotFound
	}

	article, err = s.repo.IncrementViewCount(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("read article %d: %w", id, err)
	}

	metrics.ArticleViewsTotal.Inc()
	logger.WithArticleID(ctx, id).Debug("Article viewed", slog.Int64("view_count", article.ViewCount))
	return article, nil
}

// Create validates the input and stores a new article.
func (s *ArticleService) Create(ctx context.Context, input domain.CreateArticleInput) (id int64, err error) {
	defer s.observe(OpCreate, metrics.NewTimer(), &err)

	if err := validator.ConvertValidationErrors(s.validator.ValidateCreateArticle(&input)); err != nil {
		return 0, err
	}

	status := domain.StatusDraft
	if input.Status != "" {
		status = domain.Status(input.Status)
	}

	article := &domain.Article{
		Title:    input.Title,
		Content:  input.Content,
		Summary:  input.Summary,
		Author:   input.Author,
		Cover:    input.Cover,
		Category: input.Category,
		Tag:      input.Tag,
		Status:   status,
	}

	id, err = s.repo.Create(ctx, article)
	if err != nil {
		return 0, fmt.Errorf("create article: %w", err)
	}

	logger.WithArticleID(ctx, id).Info("Article created",
		slog.String("status", string(status)),
		slog.String("category", article.Category),
	)
	return id, nil
}

// Update applies the present fields of patch. An empty patch is rejected
// before the article is looked up.
func (s *ArticleService) Update(ctx context.Context, id int64, patch query.Patch) (err error) {
	defer s.observe(OpUpdate, metrics.NewTimer(), &err)

	if err := validator.ConvertValidationErrors(s.validator.ValidatePatch(&patch)); err != nil {
		return err
	}

	set, err := query.ComposeUpdate(patch)
	if err != nil {
		return err
	}

	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, set); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("update article %d: %w", id, err)
	}

	logger.WithArticleID(ctx, id).Info("Article updated",
		slog.Any("fields", set.Columns()),
	)
	return nil
}

// Delete marks the article deleted. Deleting an already deleted article succeeds.
func (s *ArticleService) Delete(ctx context.Context, id int64) (err error) {
	defer s.observe(OpDelete, metrics.NewTimer(), &err)

	if err := s.ensureExists(ctx, id); err != nil {
		return err
	}

	if err := s.repo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("delete article %d: %w", id, err)
	}

	logger.WithArticleID(ctx, id).Info("Article deleted")
	return nil
}

func (s *ArticleService) ensureExists(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrNotFound
	}
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check article %d: %w", id, err)
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func (s *ArticleService) observe(operation string, timer *metrics.Timer, errp *error) {
	metrics.ObserveOperation(operation, resultOf(*errp), timer.Seconds())
}

func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, domain.ErrNotFound):
		return metrics.ResultNotFound
	case domain.IsValidation(err):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}

// listStatus accepts the statuses a listing may select. Deleted articles are
// never listed.
func listStatus(raw string) (domain.Status, error) {
	if raw == "" {
		return domain.StatusPublished, nil
	}
	status, err := domain.ParseStatus(raw)
	if err != nil {
		return "", err
	}
	if !status.Visible() {
		return "", domain.NewValidationError("status", "deleted articles cannot be listed", domain.ErrInvalidParameter)
	}
	return status, nil
}
