package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fdahk/Tjlogs/internal/domain"
	"github.com/fdahk/Tjlogs/internal/logger"
	"github.com/fdahk/Tjlogs/internal/query"
	"github.com/fdahk/Tjlogs/internal/response"
	"github.com/fdahk/Tjlogs/internal/service"
)

// ArticleHandler handles article-related HTTP requests.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
	}
}

// RegisterRoutes mounts the article endpoints on rg.
func (h *ArticleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/list", h.List)
	rg.GET("/recommend", h.Recommend)
	rg.GET("/latest", h.Latest)
	rg.GET("/detail/:id", h.Detail)
	rg.POST("/create", h.Create)
	rg.PUT("/update/:id", h.Update)
	rg.DELETE("/delete/:id", h.Delete)
}

// TimeFormat renders article timestamps in responses.
const TimeFormat = time.RFC3339

// ArticleResponse represents a full article in the API response.
type ArticleResponse struct {
	ArticleID    int64  `json:"articleId"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	Summary      string `json:"summary"`
	Author       string `json:"author"`
	Cover        string `json:"cover"`
	Category     string `json:"category"`
	Tag          string `json:"tag"`
	Status       string `json:"status"`
	ViewCount    int64  `json:"viewCount"`
	LikeCount    int64  `json:"likeCount"`
	CommentCount int64  `json:"commentCount"`
	CreateTime   string `json:"createTime"`
	UpdateTime   string `json:"updateTime"`
}

// ArticleSummaryResponse represents a listed article in the API response.
type ArticleSummaryResponse struct {
	ArticleID    int64  `json:"articleId"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	Author       string `json:"author"`
	Cover        string `json:"cover"`
	Category     string `json:"category"`
	Tag          string `json:"tag"`
	Status       string `json:"status"`
	ViewCount    int64  `json:"viewCount"`
	LikeCount    int64  `json:"likeCount"`
	CommentCount int64  `json:"commentCount"`
	CreateTime   string `json:"createTime"`
	UpdateTime   string `json:"updateTime"`
}

// ArticlePageResponse represents one page of the list endpoint.
type ArticlePageResponse struct {
	List       []ArticleSummaryResponse `json:"list"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	Limit      int                      `json:"limit"`
	TotalPages int                      `json:"totalPages"`
}

// CreatedResponse carries the id assigned by the create endpoint.
type CreatedResponse struct {
	ArticleID int64 `json:"articleId"`
}

func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ArticleID:    a.ArticleID,
		Title:        a.Title,
		Content:      a.Content,
		Summary:      a.Summary,
		Author:       a.Author,
		Cover:        a.Cover,
		Category:     a.Category,
		Tag:          a.Tag,
		Status:       string(a.Status),
		ViewCount:    a.ViewCount,
		LikeCount:    a.LikeCount,
		CommentCount: a.CommentCount,
		CreateTime:   a.CreateTime.Format(TimeFormat),
		UpdateTime:   a.UpdateTime.Format(TimeFormat),
	}
}

func toSummaryResponses(list []domain.ArticleSummary) []ArticleSummaryResponse {
	out := make([]ArticleSummaryResponse, len(list))
	for i, a := range list {
		out[i] = ArticleSummaryResponse{
			ArticleID:    a.ArticleID,
			Title:        a.Title,
			Summary:      a.Summary,
			Author:       a.Author,
			Cover:        a.Cover,
			Category:     a.Category,
			Tag:          a.Tag,
			Status:       string(a.Status),
			ViewCount:    a.ViewCount,
			LikeCount:    a.LikeCount,
			CommentCount: a.CommentCount,
			CreateTime:   a.CreateTime.Format(TimeFormat),
			UpdateTime:   a.UpdateTime.Format(TimeFormat),
		}
	}
	return out
}

// List handles GET /list
func (h *ArticleHandler) List(c *gin.Context) {
	params := domain.ListParams{
		Category:  c.Query("category"),
		Page:      c.Query("page"),
		Limit:     c.Query("limit"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Status:    c.Query("status"),
	}

	page, err := h.articleService.List(c.Request.Context(), params)
	if err != nil {
		h.fail(c, service.OpList, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(ArticlePageResponse{
		List:       toSummaryResponses(page.List),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	}, response.MsgFetched))
}

// Recommend handles GET /recommend
func (h *ArticleHandler) Recommend(c *gin.Context) {
	list, err := h.articleService.Recommend(c.Request.Context(), feedParams(c))
	if err != nil {
		h.fail(c, service.OpRecommend, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(toSummaryResponses(list), response.MsgFetched))
}

// Latest handles GET /latest
func (h *ArticleHandler) Latest(c *gin.Context) {
	list, err := h.articleService.Latest(c.Request.Context(), feedParams(c))
	if err != nil {
		h.fail(c, service.OpLatest, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(toSummaryResponses(list), response.MsgFetched))
}

// Detail handles GET /detail/:id
func (h *ArticleHandler) Detail(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		h.fail(c, service.OpDetail, domain.ErrNotFound)
		return
	}

	article, err := h.articleService.Detail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, service.OpDetail, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(toArticleResponse(article), response.MsgFetched))
}

// Create handles POST /create
func (h *ArticleHandler) Create(c *gin.Context) {
	var input domain.CreateArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusOK, response.Failure(response.CodeBadRequest, response.MsgInvalidBody))
		return
	}

	id, err := h.articleService.Create(c.Request.Context(), input)
	if err != nil {
		h.fail(c, service.OpCreate, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(CreatedResponse{ArticleID: id}, response.MsgCreated))
}

// Update handles PUT /update/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		h.fail(c, service.OpUpdate, domain.ErrNotFound)
		return
	}

	var patch query.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusOK, response.Failure(response.CodeBadRequest, response.MsgInvalidBody))
		return
	}

	if err := h.articleService.Update(c.Request.Context(), id, patch); err != nil {
		h.fail(c, service.OpUpdate, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil, response.MsgUpdated))
}

// Delete handles DELETE /delete/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := articleID(c)
	if !ok {
		h.fail(c, service.OpDelete, domain.ErrNotFound)
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, service.OpDelete, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(nil, response.MsgDeleted))
}

// fail maps an operation error onto the envelope. Expected outcomes keep
// transport status 200; anything else is logged and answered with 500.
func (h *ArticleHandler) fail(c *gin.Context, operation string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusOK, response.Failure(response.CodeNotFound, response.MsgNotFound))
	case domain.IsValidation(err):
		c.JSON(http.StatusOK, response.Failure(response.CodeBadRequest, validationMessage(err)))
	default:
		logger.ErrorContext(c.Request.Context(), "Article operation failed",
			slog.String("operation", operation),
			slog.String("path", c.Request.URL.Path),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, response.Failure(response.CodeInternal, response.MsgInternal))
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrEmptyUpdate):
		return response.MsgEmptyUpdate
	case errors.Is(err, domain.ErrMissingRequiredField):
		return response.MsgMissingField
	default:
		return err.Error()
	}
}

func feedParams(c *gin.Context) domain.FeedParams {
	return domain.FeedParams{
		Category: c.Query("category"),
		Limit:    c.Query("limit"),
	}
}

// articleID parses the :id path parameter. Ids are positive integers; any
// other value cannot name an article.
func articleID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
