package services

import "strings"

// CategoryAll is the sentinel filter value meaning "no filtering".
const CategoryAll = "All"

// filterRows returns the rows for which keep is true.
func filterRows[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// matchFold reports whether value contains substr, case-insensitively.
// A nil value never matches, so rows with a null column are excluded rather
// than raising.
func matchFold(value *string, substr string) bool {
	if value == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*value), strings.ToLower(substr))
}

// matchCategory reports whether value equals the selected category.
// The CategoryAll sentinel (or an empty selection) matches everything.
func matchCategory(value, selected string) bool {
	if selected == "" || selected == CategoryAll {
		return true
	}
	return value == selected
}

// deriveRate computes accepted/total*100, with 0 when total is 0. It is the
// fallback for result sets whose view does not supply the derived column.
func deriveRate(accepted, total int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(accepted) / float64(total) * 100
}
