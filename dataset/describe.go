package dataset

import (
	"math"
	"sort"
)

// ============================================================================
// DESCRIPTIVE STATISTICS — per-column numeric summary
// ============================================================================
// Mirrors the usual describe() table: count, mean, std (sample), min,
// quartiles (linear interpolation), max. Only columns where at least
// 80% of non-empty values coerce to numbers are summarized.
// ============================================================================

const numericThreshold = 0.8

// ColumnStats is the numeric summary of a single column.
type ColumnStats struct {
	Column string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	P25    float64
	Median float64
	P75    float64
	Max    float64
}

// Describe computes summary statistics for every numeric column, in the
// dataset's original column order. Unparseable values are excluded from
// the statistics rather than treated as errors.
func Describe(d *Dataset) []ColumnStats {
	var stats []ColumnStats

	for col, name := range d.Header {
		values, nonEmpty := numericValues(d, col)
		if nonEmpty == 0 || float64(len(values))/float64(nonEmpty) < numericThreshold {
			continue
		}
		if len(values) == 0 {
			continue
		}
		stats = append(stats, summarize(name, values))
	}

	return stats
}

// numericValues collects the coercible values of a column and counts the
// non-empty cells seen.
func numericValues(d *Dataset, col int) (values []float64, nonEmpty int) {
	for row := range d.Rows {
		cell := d.Cell(row, col)
		if cell == "" {
			continue
		}
		nonEmpty++
		if f, ok := Number(cell); ok {
			values = append(values, f)
		}
	}
	return values, nonEmpty
}

func summarize(name string, values []float64) ColumnStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	var variance float64
	if len(values) > 1 {
		for _, v := range values {
			variance += (v - mean) * (v - mean)
		}
		variance /= float64(len(values) - 1) // sample std
	}

	return ColumnStats{
		Column: name,
		Count:  len(values),
		Mean:   mean,
		Std:    math.Sqrt(variance),
		Min:    sorted[0],
		P25:    quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		P75:    quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// quantile interpolates linearly between closest ranks (sorted input).
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
