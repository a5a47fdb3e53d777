package stats

import (
	"cmp"
	"slices"

	"github.com/nao1215/bikeshare/internal/model"
)

// Mode returns the most frequent value in values.
// When several values share the highest count the smallest one is returned.
// The second result is false for an empty input.
func Mode[T cmp.Ordered](values []T) (T, bool) {
	var best T
	if len(values) == 0 {
		return best, false
	}

	counts := make(map[T]int)
	bestCount := 0
	for _, v := range values {
		counts[v]++
	}
	for v, n := range counts {
		if n > bestCount || (n == bestCount && v < best) {
			best, bestCount = v, n
		}
	}
	return best, true
}

// ValueCounts counts each distinct non-empty value.
// The result is ordered by descending count, then ascending value.
func ValueCounts(values []string) []model.CategoryCount {
	counts := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		counts[v]++
	}

	out := make([]model.CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, model.CategoryCount{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b model.CategoryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// nonEmpty drops blank values.
func nonEmpty(values []string) []string {
	return slices.DeleteFunc(values, func(v string) bool { return v == "" })
}

// collect maps each trip through fn.
func collect[T any](trips []model.Trip, fn func(model.Trip) T) []T {
	out := make([]T, len(trips))
	for i, t := range trips {
		out[i] = fn(t)
	}
	return out
}
