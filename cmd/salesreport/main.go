package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/chart"
	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/dataset"
	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/engine"
	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/internal/config"
	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/report"
	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/schema"
)

// ============================================================================
// SALESREPORT CLI — CSV in, summaries and charts out
// ============================================================================
// Pipeline: resolve column roles → derive sales → aggregate → emit.
//
// Exit codes:
//   0  success
//   1  empty CSV (header only, or no header)
//   2  input file not found
//   3  sales column undeterminable
// ============================================================================

const (
	exitEmpty    = 1
	exitNotFound = 2
	exitNoSales  = 3
)

func main() {
	cfg := config.Load()

	groupChart := flag.String("group-chart", cfg.GroupChartPath, "Output path for the grouped-sales bar chart")
	timeChart := flag.String("time-chart", cfg.TimeChartPath, "Output path for the monthly-sales line chart")
	top := flag.Int("top", cfg.TopGroups, "Grouped sums printed to console (charts always show the full set)")
	months := flag.Int("months", cfg.RecentMonths, "Trailing monthly sums printed to console")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `salesreport — analyze a sales CSV and emit chart artifacts

Usage:
  salesreport [flags] [file.csv]

The positional argument defaults to %q. Column roles (sales amount,
product, category, date, quantity, price) are inferred from header
names, so no fixed schema is required.

Flags:
`, cfg.CSVPath)
		flag.PrintDefaults()
	}
	flag.Parse()

	path := cfg.CSVPath
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	// ── Load ──────────────────────────────────────────────────────────────
	ds, err := dataset.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		exitf(exitNotFound, "File not found: %s", path)
	}
	if errors.Is(err, dataset.ErrEmpty) {
		exitf(exitEmpty, "Empty CSV: %s has no data rows", path)
	}
	if err != nil {
		exitf(exitNotFound, "Failed to read %s: %v", path, err)
	}

	fmt.Println(report.Shape(len(ds.Rows), len(ds.Header)))

	// ── Resolve roles + derive sales ──────────────────────────────────────
	roles := schema.Resolve(ds.Header)
	records, err := engine.BuildRecords(ds, roles)
	if errors.Is(err, engine.ErrSalesUndeterminable) {
		exitf(exitNoSales, "%v", err)
	}
	if err != nil {
		exitf(exitNoSales, "Failed to build records: %v", err)
	}

	salesLabel := roles.SalesLabel()
	log.Printf("Resolved roles: sales=%s group=%s date=%s",
		orAbsent(roles.Sales), orAbsent(roles.GroupColumn()), orAbsent(roles.Date))

	// ── Console summary ───────────────────────────────────────────────────
	fmt.Println()
	fmt.Println(report.DescribeTable(dataset.Describe(ds), 10))

	groups := engine.SumByGroup(records, engine.DimGroup, engine.MeasureSales)
	series := engine.MonthlySeries(records, engine.MeasureSales)

	groupLabel := ""
	if col := roles.GroupColumn(); col != "" {
		groupLabel = schema.DisplayName(col)
		fmt.Println()
		fmt.Println(report.GroupTable(groups, *top, groupLabel, salesLabel))
	}
	if roles.Date != "" {
		fmt.Println()
		fmt.Println(report.MonthlyTable(series, *months, salesLabel))
	}

	// ── Charts (best-effort: log and continue) ────────────────────────────
	if groupLabel != "" && len(groups) > 0 {
		title := fmt.Sprintf("%s by %s", salesLabel, groupLabel)
		if err := chart.Bar(*groupChart, title, groupLabel, salesLabel, groups); err != nil {
			log.Printf("Skipping bar chart: %v", err)
		} else {
			log.Printf("Wrote %s", *groupChart)
		}
	}
	if len(series) > 0 {
		title := fmt.Sprintf("%s over Time", salesLabel)
		if err := chart.Line(*timeChart, title, salesLabel, series); err != nil {
			log.Printf("Skipping line chart: %v", err)
		} else {
			log.Printf("Wrote %s", *timeChart)
		}
	}
}

func orAbsent(s string) string {
	if s == "" {
		return "(absent)"
	}
	return s
}

func exitf(code int, format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(code)
}
