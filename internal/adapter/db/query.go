package db

import (
	"strings"

	"taskapi/internal/core/domain"
)

type whereClause struct {
	conditions []string
	args       []any
}

func (w *whereClause) add(condition string, args ...any) {
	w.conditions = append(w.conditions, condition)
	w.args = append(w.args, args...)
}

// search requires every whitespace separated term to appear, case
// insensitively, in at least one of columns.
func (w *whereClause) search(term string, columns ...string) {
	for _, word := range strings.Fields(term) {
		w.contains(word, columns...)
	}
}

// contains matches value as a case insensitive substring of any column.
func (w *whereClause) contains(value string, columns ...string) {
	pattern := "%" + escapeLike(strings.ToLower(value)) + "%"
	parts := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		parts = append(parts, "LOWER(COALESCE("+column+", '')) LIKE ? ESCAPE '!'")
		args = append(args, pattern)
	}
	w.add("("+strings.Join(parts, " OR ")+")", args...)
}

func (w *whereClause) sql() string {
	if len(w.conditions) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conditions, " AND ")
}

// inBatchSize caps how many ids are bound into one IN (?) list. It stays far
// below the placeholder limits of MySQL, PostgreSQL and SQLite.
const inBatchSize = 500

// batches splits values into consecutive runs of at most size elements.
func batches[T any](values []T, size int) [][]T {
	out := make([][]T, 0, (len(values)+size-1)/size)
	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		out = append(out, values[start:end])
	}
	return out
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(value string) string {
	return likeEscaper.Replace(value)
}

// orderBy renders fields through columns, which maps each allowed field to
// its qualified column. Fields missing from columns are dropped. tiebreak
// is appended so equal keys come back in a stable order.
func orderBy(fields []domain.SortField, columns map[string]string, tiebreak string) string {
	terms := make([]string, 0, len(fields)+1)
	for _, field := range fields {
		column, ok := columns[field.Field]
		if !ok {
			continue
		}
		direction := " ASC"
		if field.Desc {
			direction = " DESC"
		}
		terms = append(terms, column+direction)
	}
	terms = append(terms, tiebreak+" ASC")
	return " ORDER BY " + strings.Join(terms, ", ")
}
