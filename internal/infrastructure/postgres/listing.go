package postgres

import (
	"fmt"
	"strings"
)

// filterBuilder accumulates WHERE conditions with positional placeholders for
// the listing queries. Conditions are joined with AND; the same args slice
// serves both the page query and its COUNT.
type filterBuilder struct {
	conds []string
	args  []any
}

// equals adds an exact-match condition.
func (b *filterBuilder) equals(column string, value any) {
	b.args = append(b.args, value)
	b.conds = append(b.conds, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// literal adds a condition that takes no argument.
func (b *filterBuilder) literal(cond string) {
	b.conds = append(b.conds, cond)
}

// search adds a case-insensitive substring match over the given columns,
// OR-combined. Empty terms add nothing.
func (b *filterBuilder) search(term string, columns ...string) {
	if term == "" {
		return
	}
	b.args = append(b.args, likePattern(term))
	n := len(b.args)
	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = fmt.Sprintf("%s ILIKE $%d", col, n)
	}
	b.conds = append(b.conds, "("+strings.Join(parts, " OR ")+")")
}

// whereClause renders the accumulated conditions, or empty when there are none.
func (b *filterBuilder) whereClause() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// pageClause renders LIMIT/OFFSET for the given page, appending both args.
func (b *filterBuilder) pageClause(page, perPage int) string {
	b.args = append(b.args, perPage, (page-1)*perPage)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(b.args)-1, len(b.args))
}

// likePattern wraps a search term for substring ILIKE matching, escaping the
// LIKE metacharacters so user input matches literally.
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
