package query

import (
	"fmt"
	"strings"

	"github.com/fdahk/Tjlogs/internal/domain"
)

// Patch is a partial article update. A nil field is absent and left
// untouched; a non-nil field is applied even when it points to "".
type Patch struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Summary  *string `json:"summary"`
	Cover    *string `json:"cover"`
	Category *string `json:"category"`
	Tag      *string `json:"tag"`
	Status   *string `json:"status"`
}

// Assignments is the SET list of a single UPDATE statement.
type Assignments struct {
	terms []string
	args  []any
}

// Len returns the number of payload fields assigned, excluding update_time.
func (a Assignments) Len() int {
	return len(a.args)
}

// Columns returns the assigned column names in statement order.
func (a Assignments) Columns() []string {
	cols := make([]string, len(a.terms))
	for i, t := range a.terms {
		cols[i] = strings.SplitN(t, " ", 2)[0]
	}
	return cols
}

// Statement renders the UPDATE for the given article id. The id is bound as
// the last argument.
func (a Assignments) Statement(id int64) (string, []any) {
	set := append(append([]string{}, a.terms...), "update_time = NOW()")
	args := append(append(make([]any, 0, len(a.args)+1), a.args...), id)

	sql := fmt.Sprintf("UPDATE articles SET %s WHERE article_id = $%d",
		strings.Join(set, ", "), len(args))
	return sql, args
}

type patchRule struct {
	column string
	value  func(Patch) *string
}

// patchRules fixes the order in which present fields are assigned.
var patchRules = []patchRule{
	{"title", func(p Patch) *string { return p.Title }},
	{"content", func(p Patch) *string { return p.Content }},
	{"summary", func(p Patch) *string { return p.Summary }},
	{"cover", func(p Patch) *string { return p.Cover }},
	{"category", func(p Patch) *string { return p.Category }},
	{"tag", func(p Patch) *string { return p.Tag }},
	{"status", func(p Patch) *string { return p.Status }},
}

// ComposeUpdate produces the assignments for every field present in the
// patch. It fails with domain.ErrEmptyUpdate when no field is present and
// with a validation error when the status is not a known status.
func ComposeUpdate(p Patch) (Assignments, error) {
	var a Assignments

	if p.Status != nil && !domain.IsValidStatus(*p.Status) {
		return a, domain.NewValidationError("status",
			fmt.Sprintf("unsupported status %q", *p.Status), domain.ErrInvalidParameter)
	}

	for _, rule := range patchRules {
		v := rule.value(p)
		if v == nil {
			continue
		}
		a.args = append(a.args, *v)
		a.terms = append(a.terms, fmt.Sprintf("%s = $%d", rule.column, len(a.args)))
	}

	if len(a.args) == 0 {
		return a, domain.ErrEmptyUpdate
	}
	return a, nil
}
