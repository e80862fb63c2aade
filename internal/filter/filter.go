package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// All disables the category predicate.
const All = "all"

type Filterable interface {
	FilterTag() string
	SearchFields() []string
}

// Apply keeps the items whose tag matches category (unless category is All or
// empty) and where any search field contains search, case-insensitively.
// The result preserves input order and is never nil.
func Apply[T Filterable](items []T, category, search string) []T {
	lower := cases.Lower(language.Und)
	needle := lower.String(search)

	out := make([]T, 0, len(items))
	for _, item := range items {
		if !MatchesCategory(item, category) {
			continue
		}
		if !matchesSearch(lower, item, needle) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func MatchesCategory(item Filterable, category string) bool {
	if category == "" || category == All {
		return true
	}
	return item.FilterTag() == category
}

func MatchesSearch(item Filterable, search string) bool {
	lower := cases.Lower(language.Und)
	return matchesSearch(lower, item, lower.String(search))
}

func matchesSearch(lower cases.Caser, item Filterable, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range item.SearchFields() {
		if strings.Contains(lower.String(field), needle) {
			return true
		}
	}
	return false
}
