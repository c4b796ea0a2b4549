package engine

import "time"

// ============================================================================
// ENGINE TYPES — Generic dimension/measure records
// ============================================================================
// A Record is a single data row with string dimensions and numeric
// measures. A missing measure is an absent map key; additive
// aggregation treats missing as zero contribution, so one unparseable
// cell never poisons a group sum.
// ============================================================================

// Dimension keys produced by BuildRecords.
const (
	DimGroup = "group" // category-or-product bucket key
	DimMonth = "month" // calendar month, formatted MonthKeyLayout
)

// MeasureSales is the measure key holding the (direct or derived) sales value.
const MeasureSales = "sales"

// MonthKeyLayout is the time layout of the DimMonth dimension value.
const MonthKeyLayout = "2006-01"

// Record is a single data row with string dimensions and numeric measures.
type Record struct {
	Dimensions map[string]string
	Measures   map[string]float64
}

// Group represents one bucket of a grouped aggregation.
type Group struct {
	Key   string  // bucket key (group dimension value)
	Value float64 // aggregated measure
	Count int     // records in the bucket
}

// MonthSum is one entry of a monthly time series.
type MonthSum struct {
	Month time.Time // first day of the calendar month
	Value float64   // summed sales within the month
	Count int       // contributing records
}
