package report

import (
	"fmt"
	"strings"

	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/dataset"
	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/engine"
)

// ============================================================================
// REPORT — Console rendering of the analysis summary
// ============================================================================

// Shape renders the "rows × columns" header line.
func Shape(rows, cols int) string {
	return fmt.Sprintf("Dataset: %d rows, %d columns", rows, cols)
}

// DescribeTable renders a transposed descriptive-statistics table: one
// row per numeric column, capped at limit rows (0 = all).
func DescribeTable(stats []dataset.ColumnStats, limit int) string {
	if len(stats) == 0 {
		return "No numeric columns to describe."
	}
	if limit > 0 && len(stats) > limit {
		stats = stats[:limit]
	}

	nameWidth := len("Column")
	for _, s := range stats {
		if len(s.Column) > nameWidth {
			nameWidth = len(s.Column)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s %8s %12s %12s %12s %12s %12s %12s %12s\n",
		nameWidth, "Column", "count", "mean", "std", "min", "25%", "50%", "75%", "max")
	for _, s := range stats {
		fmt.Fprintf(&b, "%-*s %8d %12.2f %12.2f %12.2f %12.2f %12.2f %12.2f %12.2f\n",
			nameWidth, s.Column, s.Count, s.Mean, s.Std, s.Min, s.P25, s.Median, s.P75, s.Max)
	}
	return strings.TrimRight(b.String(), "\n")
}

// GroupTable renders grouped sums, capped at limit rows (0 = all).
func GroupTable(groups []engine.Group, limit int, groupLabel, valueLabel string) string {
	if len(groups) == 0 {
		return "No grouping available."
	}

	title := fmt.Sprintf("Top %s by %s", groupLabel, valueLabel)
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}

	keyWidth := len(groupLabel)
	for _, g := range groups {
		if len(g.Key) > keyWidth {
			keyWidth = len(g.Key)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", title)
	for _, g := range groups {
		fmt.Fprintf(&b, "  %-*s %16s\n", keyWidth, g.Key, engine.FormatAmount(g.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}

// MonthlyTable renders the trailing entries of a monthly series,
// capped at last rows (0 = all).
func MonthlyTable(series []engine.MonthSum, last int, valueLabel string) string {
	if len(series) == 0 {
		return "No time series available."
	}

	if last > 0 && len(series) > last {
		series = series[len(series)-last:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Monthly %s\n", valueLabel)
	for _, m := range series {
		fmt.Fprintf(&b, "  %s %16s\n", m.Month.Format("Jan 2006"), engine.FormatAmount(m.Value))
	}
	return strings.TrimRight(b.String(), "\n")
}
