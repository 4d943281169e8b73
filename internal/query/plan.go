package query

import (
	"fmt"
	"slices"
)

// Statement is a SQL text and its bound arguments.
type Statement struct {
	SQL  string
	Args []any
}

// PagedPlan pairs a bounded row query with a count over the same predicate.
type PagedPlan struct {
	Rows  Statement
	Count Statement
}

// BuildPagedPlan builds the row and count statements of a paginated listing.
// The count statement binds the predicate arguments only; LIMIT and OFFSET
// are appended to a copy for the row statement.
func BuildPagedPlan(table, columns string, f Filter, order Ordering, page Page) PagedPlan {
	pred := BuildPredicate(f, 1)
	next := pred.NextIndex(1)

	rows := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d OFFSET $%d",
		columns, table, pred.SQL, order.SQL(), next, next+1)
	rowArgs := append(slices.Clone(pred.Args), page.Limit, page.Offset())

	count := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s", table, pred.SQL)

	return PagedPlan{
		Rows:  Statement{SQL: rows, Args: rowArgs},
		Count: Statement{SQL: count, Args: slices.Clone(pred.Args)},
	}
}

// BuildTopPlan builds a bounded, non-paginated listing.
func BuildTopPlan(table, columns string, f Filter, order Ordering, limit int) Statement {
	pred := BuildPredicate(f, 1)
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s ORDER BY %s LIMIT $%d",
		columns, table, pred.SQL, order.SQL(), pred.NextIndex(1))
	return Statement{SQL: sql, Args: append(slices.Clone(pred.Args), limit)}
}
