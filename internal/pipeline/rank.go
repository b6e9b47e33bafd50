package pipeline

import "sort"

// SortOrder selects the ranking direction.
type SortOrder int

const (
	Descending SortOrder = iota
	Ascending
)

// TopN returns the first n rows after a stable sort by key. Ties keep their
// original relative order, so identical inputs always rank identically.
// Rows whose key is undefined (keyOK returns false) are excluded before
// ranking; pass nil to rank every row.
func TopN[T any](rows []T, n int, key func(T) float64, keyOK func(T) bool, order SortOrder) []T {
	ranked := make([]T, 0, len(rows))
	for _, r := range rows {
		if keyOK != nil && !keyOK(r) {
			continue
		}
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if order == Ascending {
			return key(ranked[i]) < key(ranked[j])
		}
		return key(ranked[i]) > key(ranked[j])
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
