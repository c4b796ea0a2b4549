package engine

import (
	"math"
	"testing"

	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/schema"
)

// ============================================================================
// AGGREGATOR TESTS
// ============================================================================

func rec(group string, sales ...float64) Record {
	r := Record{
		Dimensions: map[string]string{DimGroup: group},
		Measures:   map[string]float64{},
	}
	if len(sales) > 0 {
		r.Measures[MeasureSales] = sales[0]
	}
	return r
}

func monthRec(month string, sales float64) Record {
	return Record{
		Dimensions: map[string]string{DimMonth: month},
		Measures:   map[string]float64{MeasureSales: sales},
	}
}

func TestSumByGroupSortsDescending(t *testing.T) {
	records := []Record{
		rec("Tools", 10),
		rec("Electronics", 50),
		rec("Tools", 5),
		rec("Office", 20),
	}

	groups := SumByGroup(records, DimGroup, MeasureSales)
	want := []Group{
		{Key: "Electronics", Value: 50, Count: 1},
		{Key: "Office", Value: 20, Count: 1},
		{Key: "Tools", Value: 15, Count: 2},
	}

	if len(groups) != len(want) {
		t.Fatalf("got %d groups, want %d", len(groups), len(want))
	}
	for i := range want {
		if groups[i] != want[i] {
			t.Errorf("groups[%d] = %+v, want %+v", i, groups[i], want[i])
		}
	}
}

func TestSumByGroupTiesKeepFirstAppearanceOrder(t *testing.T) {
	records := []Record{
		rec("Beta", 5),
		rec("Alpha", 5),
		rec("Gamma", 3),
	}

	groups := SumByGroup(records, DimGroup, MeasureSales)
	if groups[0].Key != "Beta" || groups[1].Key != "Alpha" || groups[2].Key != "Gamma" {
		t.Errorf("tie order = %q,%q,%q; want Beta,Alpha,Gamma",
			groups[0].Key, groups[1].Key, groups[2].Key)
	}
}

func TestSumByGroupMissingSalesContributesZero(t *testing.T) {
	records := []Record{
		rec("Tools", 10),
		rec("Tools"), // no sales measure
		rec("Tools", 2.5),
	}

	groups := SumByGroup(records, DimGroup, MeasureSales)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Value != 12.5 {
		t.Errorf("sum = %v, want 12.5 (missing values must not alter the sum)", groups[0].Value)
	}
	if groups[0].Count != 3 {
		t.Errorf("count = %d, want 3", groups[0].Count)
	}
}

func TestSumByGroupSingleRepeatedKey(t *testing.T) {
	// A category column entirely of one repeated value yields exactly
	// one entry equal to the total of all sales.
	records := []Record{
		rec("Tools", 1), rec("Tools", 2), rec("Tools", 3), rec("Tools", 4),
	}

	groups := SumByGroup(records, DimGroup, MeasureSales)
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Value != 10 {
		t.Errorf("sum = %v, want 10", groups[0].Value)
	}
}

func TestSumByGroupSkipsRecordsWithoutDimension(t *testing.T) {
	records := []Record{
		rec("Tools", 10),
		{Dimensions: map[string]string{}, Measures: map[string]float64{MeasureSales: 99}},
	}

	groups := SumByGroup(records, DimGroup, MeasureSales)
	if len(groups) != 1 || groups[0].Value != 10 {
		t.Errorf("groups = %+v, want a single Tools=10 group", groups)
	}
}

func TestMonthlySeriesChronological(t *testing.T) {
	records := []Record{
		monthRec("2025-03", 30),
		monthRec("2025-01", 10),
		monthRec("2025-02", 20),
		monthRec("2025-01", 5),
	}

	series := MonthlySeries(records, MeasureSales)
	if len(series) != 3 {
		t.Fatalf("got %d months, want 3", len(series))
	}

	wantMonths := []string{"2025-01", "2025-02", "2025-03"}
	wantValues := []float64{15, 20, 30}
	for i := range series {
		if got := series[i].Month.Format(MonthKeyLayout); got != wantMonths[i] {
			t.Errorf("series[%d].Month = %s, want %s", i, got, wantMonths[i])
		}
		if series[i].Value != wantValues[i] {
			t.Errorf("series[%d].Value = %v, want %v", i, series[i].Value, wantValues[i])
		}
	}
}

func TestMonthlySeriesNeverHasEmptyMonths(t *testing.T) {
	// Months with no contributing records are dropped, including the
	// gap between January and April.
	records := []Record{
		monthRec("2025-01", 10),
		monthRec("2025-04", 40),
		{Dimensions: map[string]string{}, Measures: map[string]float64{MeasureSales: 99}},
	}

	series := MonthlySeries(records, MeasureSales)
	if len(series) != 2 {
		t.Fatalf("got %d months, want 2", len(series))
	}
	for _, m := range series {
		if m.Count == 0 {
			t.Errorf("month %s has zero contributing records", m.Month.Format(MonthKeyLayout))
		}
	}
}

func TestMonthlySeriesEmptyWithoutDates(t *testing.T) {
	records := []Record{rec("Tools", 10), rec("Office", 20)}
	if series := MonthlySeries(records, MeasureSales); len(series) != 0 {
		t.Errorf("got %d months, want 0", len(series))
	}
}

func TestMeasureHelpers(t *testing.T) {
	records := []Record{
		rec("A", 10), rec("B", -2.5), rec("C"), rec("D", 4),
	}

	if got := SumMeasure(records, MeasureSales); math.Abs(got-11.5) > 1e-9 {
		t.Errorf("SumMeasure = %v, want 11.5", got)
	}
	if got := CountMeasure(records, MeasureSales); got != 3 {
		t.Errorf("CountMeasure = %d, want 3", got)
	}
	if got := MaxMeasure(records, MeasureSales); got != 10 {
		t.Errorf("MaxMeasure = %v, want 10", got)
	}
	if got := MinMeasure(records, MeasureSales); got != -2.5 {
		t.Errorf("MinMeasure = %v, want -2.5", got)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{0, "0.00"},
		{29.97, "29.97"},
		{1234.5, "1,234.50"},
		{1234567.891, "1,234,567.89"},
		{-999.995, "-1,000.00"},
	}

	for _, tt := range tests {
		if got := FormatAmount(tt.input); got != tt.expected {
			t.Errorf("FormatAmount(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

// End-to-end scenario: derived sales feeding both aggregations.
func TestDerivedSalesFlowThroughAggregation(t *testing.T) {
	ds := mustParse(t, []byte(`Product,Category,Quantity,UnitPrice,Date
Widget,Tools,3,9.99,2025-01-10
Bolt,Hardware,10,0.50,2025-01-20
Widget,Tools,1,9.99,2025-02-05
`))
	records, err := BuildRecords(ds, schema.Resolve(ds.Header))
	if err != nil {
		t.Fatalf("BuildRecords failed: %v", err)
	}

	groups := SumByGroup(records, DimGroup, MeasureSales)
	if groups[0].Key != "Tools" || math.Abs(groups[0].Value-39.96) > 1e-9 {
		t.Errorf("top group = %+v, want Tools=39.96", groups[0])
	}

	series := MonthlySeries(records, MeasureSales)
	if len(series) != 2 {
		t.Fatalf("got %d months, want 2", len(series))
	}
	if math.Abs(series[0].Value-34.97) > 1e-9 {
		t.Errorf("Jan sum = %v, want 34.97", series[0].Value)
	}
}
