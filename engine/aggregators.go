package engine

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"
)

// ============================================================================
// AGGREGATORS — Grouping, Summation, and Sorting
// ============================================================================
// Grouping preserves first-appearance order of keys; descending value
// sorts are stable, so ties keep that order. Records with a missing
// measure contribute zero to sums but still count toward buckets.
// ============================================================================

// SumByGroup groups records by a dimension and sums a measure per
// unique key, returning groups sorted descending by value. Ties are
// broken by first-appearance order of the key. Records without the
// dimension set are excluded.
func SumByGroup(records []Record, dim, measure string) []Group {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var order []string

	for _, rec := range records {
		key, ok := rec.Dimensions[dim]
		if !ok {
			continue
		}
		if _, seen := sums[key]; !seen {
			order = append(order, key)
		}
		sums[key] += rec.Measures[measure] // missing measure → zero
		counts[key]++
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{Key: key, Value: sums[key], Count: counts[key]})
	}

	SortGroups(groups, "value_desc")
	return groups
}

// SortGroups sorts aggregate groups in place by the specified mode.
// Unknown modes preserve the existing order. Sorts are stable.
func SortGroups(groups []Group, mode string) {
	switch mode {
	case "value_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	case "value_asc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	case "label_asc":
		sort.SliceStable(groups, func(i, j int) bool {
			return strings.ToLower(groups[i].Key) < strings.ToLower(groups[j].Key)
		})
	default:
		// preserve grouping order
	}
}

// MonthlySeries buckets records by calendar month and sums a measure
// within each month, in chronological order. Records without a month
// dimension (absent or unparseable date) are excluded, so the series
// never contains a month with zero contributing records. An empty
// result means no time series is available.
func MonthlySeries(records []Record, measure string) []MonthSum {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, rec := range records {
		key := rec.Dimensions[DimMonth]
		if key == "" {
			continue
		}
		sums[key] += rec.Measures[measure]
		counts[key]++
	}

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Strings(keys) // MonthKeyLayout sorts chronologically

	series := make([]MonthSum, 0, len(keys))
	for _, key := range keys {
		month, err := time.Parse(MonthKeyLayout, key)
		if err != nil {
			continue
		}
		series = append(series, MonthSum{Month: month, Value: sums[key], Count: counts[key]})
	}
	return series
}

// ============================================================================
// MEASURE HELPERS
// ============================================================================

// SumMeasure sums a named measure across records.
func SumMeasure(records []Record, measure string) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Measures[measure]
	}
	return total
}

// CountMeasure counts records where a named measure is present.
func CountMeasure(records []Record, measure string) int {
	n := 0
	for _, rec := range records {
		if _, ok := rec.Measures[measure]; ok {
			n++
		}
	}
	return n
}

// MaxMeasure returns the largest present value of a named measure.
func MaxMeasure(records []Record, measure string) float64 {
	m := math.Inf(-1)
	found := false
	for _, rec := range records {
		if v, ok := rec.Measures[measure]; ok && (!found || v > m) {
			m = v
			found = true
		}
	}
	if !found {
		return 0
	}
	return m
}

// MinMeasure returns the smallest present value of a named measure.
func MinMeasure(records []Record, measure string) float64 {
	m := math.Inf(1)
	found := false
	for _, rec := range records {
		if v, ok := rec.Measures[measure]; ok && (!found || v < m) {
			m = v
			found = true
		}
	}
	if !found {
		return 0
	}
	return m
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatAmount formats a value with comma separators and two decimals.
func FormatAmount(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	intPart := int64(v)
	decPart := int64((v-float64(intPart))*100 + 0.5)
	if decPart >= 100 {
		intPart++
		decPart -= 100
	}

	result := fmt.Sprintf("%s.%02d", FormatInt(intPart), decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int64) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}
