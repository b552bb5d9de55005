// Package filter selects subsequences of the site collections
// matching a search term and optional exact constraints.
package filter

import (
	"strings"

	"golang.org/x/text/cases"
)

// match returns the records for which keep returns true and at least
// one of the fields contains the term, ignoring case. An empty term
// matches every kept record. The returned slice is newly allocated
// and preserves the input order.
func match[T any](records []T, term string,
	keep func(record T) bool, fields func(record T) []string) (matched []T) {
	folder := cases.Fold()
	term = folder.String(term)

	matched = make([]T, 0, len(records))
	for _, record := range records {
		if keep != nil && !keep(record) {
			continue
		}
		if term == "" || anyContains(folder, fields(record), term) {
			matched = append(matched, record)
		}
	}
	return matched
}

func anyContains(folder cases.Caser, fields []string, foldedTerm string) bool {
	for _, field := range fields {
		if strings.Contains(folder.String(field), foldedTerm) {
			return true
		}
	}
	return false
}

func equalFold(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}
