// Package query turns loosely-typed article request parameters into
// parameterized SQL fragments: filter predicates, pagination, ordering and
// partial-update assignments. Column identifiers are constants of this
// package; request values only ever travel as bound arguments.
package query

import (
	"fmt"
	"strings"

	"github.com/fdahk/Tjlogs/internal/domain"
)

// AllCategories is the category sentinel meaning "do not filter by category".
const AllCategories = "comprehensive"

// Filter selects the articles a listing operates on.
type Filter struct {
	Status   domain.Status
	Category string
}

// Predicate is a WHERE clause body together with its bound arguments.
// Placeholders are numbered from the start index given to BuildPredicate.
type Predicate struct {
	SQL  string
	Args []any
}

// NextIndex returns the placeholder index following the predicate's arguments.
func (p Predicate) NextIndex(start int) int {
	return start + len(p.Args)
}

type filterRule struct {
	applies func(Filter) bool
	column  string
	value   func(Filter) any
}

// filterRules are evaluated in order; each applying rule contributes one
// equality term.
var filterRules = []filterRule{
	{
		applies: func(Filter) bool { return true },
		column:  "status",
		value:   func(f Filter) any { return string(f.Status) },
	},
	{
		applies: func(f Filter) bool { return f.Category != "" && f.Category != AllCategories },
		column:  "category",
		value:   func(f Filter) any { return f.Category },
	},
}

// BuildPredicate builds the WHERE clause for a filter. The returned SQL does
// not include the WHERE keyword.
func BuildPredicate(f Filter, start int) Predicate {
	terms := make([]string, 0, len(filterRules))
	args := make([]any, 0, len(filterRules))

	for _, rule := range filterRules {
		if !rule.applies(f) {
			continue
		}
		args = append(args, rule.value(f))
		terms = append(terms, fmt.Sprintf("%s = $%d", rule.column, start+len(args)-1))
	}

	return Predicate{
		SQL:  strings.Join(terms, " AND "),
		Args: args,
	}
}
