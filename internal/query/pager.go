package query

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page is a validated page/limit pair.
type Page struct {
	Page  int
	Limit int
}

// Offset returns the number of rows skipped before this page. It saturates
// at math.MaxInt instead of wrapping.
func (p Page) Offset() int {
	if p.Page <= 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.Limit {
		return math.MaxInt
	}
	return (p.Page - 1) * p.Limit
}

// MaxPage is the largest page accepted for the given limit. Its offset plus
// the limit still fits in an int.
func MaxPage(limit int) int {
	if limit < 1 {
		return math.MaxInt
	}
	return math.MaxInt / limit
}

// TotalPages returns ceil(total / limit), or 0 when there are no rows.
func (p Page) TotalPages(total int64) int {
	if total <= 0 || p.Limit <= 0 {
		return 0
	}
	limit := int64(p.Limit)
	return int((total + limit - 1) / limit)
}

// Pager coerces raw page and limit parameters.
//
// Missing or non-numeric values fall back to the defaults, a page below 1
// becomes 1, a limit below 1 becomes DefaultLimit and a limit above MaxLimit
// is clamped to MaxLimit. A page above MaxPage(limit) is clamped to it, so
// the offset handed to the store is never negative.
type Pager struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPager uses the package default bounds.
var DefaultPager = Pager{DefaultLimit: DefaultLimit, MaxLimit: MaxLimit}

// NewPager returns a Pager with the given bounds, substituting the package
// defaults for non-positive values.
func NewPager(defaultLimit, maxLimit int) Pager {
	if defaultLimit < 1 {
		defaultLimit = DefaultLimit
	}
	if maxLimit < 1 {
		maxLimit = MaxLimit
	}
	if defaultLimit > maxLimit {
		defaultLimit = maxLimit
	}
	return Pager{DefaultLimit: defaultLimit, MaxLimit: maxLimit}
}

// Parse coerces raw page and limit parameters into a Page.
func (p Pager) Parse(page, limit string) Page {
	lim := p.Limit(limit)
	n := parseInt(page, DefaultPage)
	if n < 1 {
		n = DefaultPage
	}
	if maxPage := MaxPage(lim); n > maxPage {
		n = maxPage
	}
	return Page{Page: n, Limit: lim}
}

// Limit coerces a raw limit parameter.
func (p Pager) Limit(limit string) int {
	n := parseInt(limit, p.DefaultLimit)
	if n < 1 {
		return p.DefaultLimit
	}
	if n > p.MaxLimit {
		return p.MaxLimit
	}
	return n
}

func parseInt(raw string, def int) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Out-of-range integers saturate so they reach the clamps.
		if errors.Is(err, strconv.ErrRange) {
			return n
		}
		return def
	}
	return n
}
