package domain

import (
	"fmt"
	"time"
)

// Status represents the lifecycle state of an article.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusDeleted   Status = "deleted"
)

// ValidStatuses contains all valid article statuses.
var ValidStatuses = []Status{StatusDraft, StatusPublished, StatusDeleted}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return IsValidStatus(string(s))
}

// ParseStatus converts raw input into a Status.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", raw), ErrInvalidParameter)
	}
	return s, nil
}

// Visible reports whether an article in this status can be served by the
// detail read. Drafts are visible for preview; deleted articles are not.
func (s Status) Visible() bool {
	return s == StatusDraft || s == StatusPublished
}

// Article represents an article entity in the system.
type Article struct {
	ArticleID    int64     `json:"articleId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Summary      string    `json:"summary"`
	Author       string    `json:"author"`
	Cover        string    `json:"cover"`
	Category     string    `json:"category"`
	Tag          string    `json:"tag"`
	Status       Status    `json:"status"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	CreateTime   time.Time `json:"createTime"`
	UpdateTime   time.Time `json:"updateTime"`
}

// ArticleSummary is the listing projection of an article. It carries every
// attribute except the body.
type ArticleSummary struct {
	ArticleID    int64     `json:"articleId"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	Author       string    `json:"author"`
	Cover        string    `json:"cover"`
	Category     string    `json:"category"`
	Tag          string    `json:"tag"`
	Status       Status    `json:"status"`
	ViewCount    int64     `json:"viewCount"`
	LikeCount    int64     `json:"likeCount"`
	CommentCount int64     `json:"commentCount"`
	CreateTime   time.Time `json:"createTime"`
	UpdateTime   time.Time `json:"updateTime"`
}

// ArticlePage is one page of a paginated article listing.
type ArticlePage struct {
	List       []ArticleSummary `json:"list"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// CreateArticleInput is the payload accepted by article creation.
type CreateArticleInput struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Summary  string `json:"summary"`
	Author   string `json:"author"`
	Cover    string `json:"cover"`
	Category string `json:"category"`
	Tag      string `json:"tag"`
	Status   string `json:"status"`
}

// ListParams holds the raw, loosely-typed parameters of the list operation.
type ListParams struct {
	Category  string
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
	Status    string
}

// FeedParams holds the raw parameters of the recommend and latest operations.
type FeedParams struct {
	Category string
	Limit    string
}
