package query

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fdahk/Tjlogs/internal/domain"
)

// Direction is an ORDER BY direction.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

const (
	DefaultSortBy    = "createTime"
	DefaultSortOrder = Desc
)

// sortColumns maps request sort keys to column identifiers.
var sortColumns = map[string]string{
	"articleId":    "article_id",
	"title":        "title",
	"author":       "author",
	"category":     "category",
	"viewCount":    "view_count",
	"likeCount":    "like_count",
	"commentCount": "comment_count",
	"createTime":   "create_time",
	"updateTime":   "update_time",
}

// OrderTerm is one ORDER BY term. Expr is always a known column or a
// package-defined expression.
type OrderTerm struct {
	Expr      string
	Direction Direction
}

// Ordering is a complete ORDER BY clause.
type Ordering []OrderTerm

var (
	// RecommendOrdering ranks by score, newest first among equal scores.
	RecommendOrdering = Ordering{
		{Expr: ScoreExpression, Direction: Desc},
		{Expr: "create_time", Direction: Desc},
	}

	// LatestOrdering lists newest articles first.
	LatestOrdering = Ordering{
		{Expr: "create_time", Direction: Desc},
	}
)

// SQL renders the ordering without the ORDER BY keyword.
func (o Ordering) SQL() string {
	terms := make([]string, len(o))
	for i, t := range o {
		terms[i] = t.Expr + " " + string(t.Direction)
	}
	return strings.Join(terms, ", ")
}

// ResolveSort maps a requested sort key and direction onto an Ordering.
// Empty values take the defaults; unknown keys or directions are rejected.
func ResolveSort(sortBy, sortOrder string) (Ordering, error) {
	if sortBy == "" {
		sortBy = DefaultSortBy
	}
	column, ok := sortColumns[sortBy]
	if !ok {
		return nil, domain.NewValidationError("sortBy",
			fmt.Sprintf("unsupported sort key %q, expected one of: %s", sortBy, strings.Join(SortKeys(), ", ")),
			domain.ErrInvalidParameter)
	}

	direction := DefaultSortOrder
	if sortOrder != "" {
		switch Direction(strings.ToUpper(sortOrder)) {
		case Asc:
			direction = Asc
		case Desc:
			direction = Desc
		default:
			return nil, domain.NewValidationError("sortOrder",
				fmt.Sprintf("unsupported sort order %q, expected ASC or DESC", sortOrder),
				domain.ErrInvalidParameter)
		}
	}

	return Ordering{{Expr: column, Direction: direction}}, nil
}

// SortKeys returns the accepted sort keys in lexical order.
func SortKeys() []string {
	keys := make([]string, 0, len(sortColumns))
	for k := range sortColumns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
