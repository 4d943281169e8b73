package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fdahk/Tjlogs/internal/domain"
)

func TestBuildPagedPlan(t *testing.T) {
	f := Filter{Status: domain.StatusPublished, Category: "frontend"}
	order := Ordering{{Expr: "view_count", Direction: Asc}}

	plan := BuildPagedPlan("articles", "article_id, title", f, order, Page{Page: 3, Limit: 5})

	assert.Equal(t,
		"SELECT article_id, title FROM articles WHERE status = $1 AND category = $2 ORDER BY view_count ASC LIMIT $3 OFFSET $4",
		plan.Rows.SQL)
	assert.Equal(t, []any{"published", "frontend", 5, 10}, plan.Rows.Args)

	assert.Equal(t, "SELECT COUNT(*) FROM articles WHERE status = $1 AND category = $2", plan.Count.SQL)
	assert.Equal(t, []any{"published", "frontend"}, plan.Count.Args, "count must not carry pagination args")
}

func TestBuildPagedPlan_WithoutCategory(t *testing.T) {
	plan := BuildPagedPlan("articles", "*", Filter{Status: domain.StatusDraft}, LatestOrdering, Page{Page: 1, Limit: 10})

	assert.Equal(t, "SELECT * FROM articles WHERE status = $1 ORDER BY create_time DESC LIMIT $2 OFFSET $3", plan.Rows.SQL)
	assert.Equal(t, []any{"draft", 10, 0}, plan.Rows.Args)
	assert.Equal(t, []any{"draft"}, plan.Count.Args)
}

func TestBuildTopPlan(t *testing.T) {
	stmt := BuildTopPlan("articles", "article_id", Filter{Status: domain.StatusPublished, Category: "ai"}, RecommendOrdering, 8)

	assert.Equal(t,
		"SELECT article_id FROM articles WHERE status = $1 AND category = $2 ORDER BY (view_count * 0.7 + like_count * 0.3) DESC, create_time DESC LIMIT $3",
		stmt.SQL)
	assert.Equal(t, []any{"published", "ai", 8}, stmt.Args)
}
