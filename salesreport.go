// Package salesreport analyzes tabular sales data from CSV files.
//
// Usage:
//
//	import "github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/engine"
//
//	ds, err := dataset.Parse(csvBytes)
//	roles := schema.Resolve(ds.Header)
//	records, err := engine.BuildRecords(ds, roles)
//	groups := engine.SumByGroup(records, "group", "sales")
//
// The pipeline is strictly sequential: resolve column roles, derive the
// sales measure, aggregate (group-by sum and monthly resampling), and
// emit chart artifacts. Column roles are inferred from header names by
// keyword matching — no fixed schema is required of the input file.
package salesreport
