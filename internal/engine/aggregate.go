package engine

import (
	"fmt"
	"sort"

	"go-purchase-analytics/internal/model"
)

// unknownBucket collects rows whose grouping key is nil or missing, so
// they stay visible in breakdowns instead of silently disappearing.
const unknownBucket = "Unknown"

// Ratio divides safely: 0 when the denominator is zero. Used for every
// rate in the envelope (delivery rate, fill rate, on-time rate,
// coverage percentages).
func Ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// rowGroup is one grouping bucket with its member rows, in original
// row order.
type rowGroup struct {
	key  string
	rows []model.Record
}

// groupRows buckets table rows by the stringified value of keyCol,
// preserving first-seen group order. Nil or missing keys land in the
// "Unknown" bucket.
func groupRows(t *model.Table, keyCol string) []rowGroup {
	index := make(map[string]int)
	groups := make([]rowGroup, 0)
	for _, row := range t.Rows {
		key := unknownBucket
		if v, ok := row[keyCol]; ok && v != nil {
			key = fmt.Sprintf("%v", v)
		}
		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, rowGroup{key: key})
		}
		groups[i].rows = append(groups[i].rows, row)
	}
	return groups
}

// sumColumn is the coerced sum over a column; nil and unparsable cells
// contribute 0.
func sumColumn(rows []model.Record, col string) float64 {
	var total float64
	for _, row := range rows {
		total += ToNumber(row[col])
	}
	return total
}

// distinctCount counts distinct non-nil values of a column.
func distinctCount(rows []model.Record, col string) int {
	seen := make(map[string]bool)
	for _, row := range rows {
		v, ok := row[col]
		if !ok || v == nil {
			continue
		}
		seen[fmt.Sprintf("%v", v)] = true
	}
	return len(seen)
}

// meanNonNil averages the coerced values of a column over rows where
// the cell is actually present, so a sparsely filled column is not
// dragged toward zero by its gaps.
func meanNonNil(rows []model.Record, col string) float64 {
	var sum float64
	var n int
	for _, row := range rows {
		v, ok := row[col]
		if !ok || v == nil {
			continue
		}
		sum += ToNumber(v)
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// topKGroups sorts groups by the given score descending (or ascending)
// and truncates to k. Ties keep first-seen group order. k <= 0 means
// no truncation.
func topKGroups(groups []rowGroup, score func(rowGroup) float64, ascending bool, k int) []rowGroup {
	sorted := make([]rowGroup, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return score(sorted[i]) < score(sorted[j])
		}
		return score(sorted[i]) > score(sorted[j])
	})
	if k > 0 && len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

// ValueCounts is the frequency count of distinct values in a column.
// Nil cells are coalesced into nullLabel. The result keeps the topK
// most frequent values (ties by first appearance); topK <= 0 keeps all.
func ValueCounts(t *model.Table, col string, topK int, nullLabel string) map[string]int {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, row := range t.Rows {
		key := nullLabel
		if v, ok := row[col]; ok && v != nil {
			key = fmt.Sprintf("%v", v)
		}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}
	if topK <= 0 || len(counts) <= topK {
		return counts
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	kept := make(map[string]int, topK)
	for _, key := range order[:topK] {
		kept[key] = counts[key]
	}
	return kept
}
