package engine

import (
	"errors"
	"time"

	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/dataset"
	"github.com/Prathameshwarak/Data-Analysis-on-CSV-Files/schema"
)

// ============================================================================
// RECORD BUILDING — Sales Derivation
// ============================================================================
// Converts raw dataset rows into engine Records. The sales measure
// comes from the resolved sales column when one exists, otherwise it is
// derived as quantity × price per row. Unparseable operands propagate
// to a missing product.
// ============================================================================

// ErrSalesUndeterminable is returned when no sales-like column exists
// and no quantity/price pair is available to derive one.
var ErrSalesUndeterminable = errors.New("cannot determine sales: no sales column and no quantity/price pair")

// BuildRecords converts dataset rows into Records using the resolved
// column roles.
//
// Per row:
//   - Measures[MeasureSales] is set only when the value coerces
//     (direct column) or both derivation operands coerce.
//   - Dimensions[DimGroup] is the raw category-else-product cell value,
//     unset when no grouping column was resolved.
//   - Dimensions[DimMonth] is the parsed date truncated to its calendar
//     month, unset when the date is absent or unparseable.
func BuildRecords(ds *dataset.Dataset, roles schema.Roles) ([]Record, error) {
	salesIdx := -1
	qtyIdx, priceIdx := -1, -1

	if roles.HasDirectSales() {
		salesIdx = ds.ColumnIndex(roles.Sales)
	} else if roles.CanDeriveSales() {
		qtyIdx = ds.ColumnIndex(roles.Quantity)
		priceIdx = ds.ColumnIndex(roles.Price)
	} else {
		return nil, ErrSalesUndeterminable
	}

	groupIdx := -1
	if col := roles.GroupColumn(); col != "" {
		groupIdx = ds.ColumnIndex(col)
	}
	dateIdx := -1
	if roles.Date != "" {
		dateIdx = ds.ColumnIndex(roles.Date)
	}

	records := make([]Record, 0, len(ds.Rows))
	for row := range ds.Rows {
		rec := Record{
			Dimensions: make(map[string]string),
			Measures:   make(map[string]float64),
		}

		if salesIdx >= 0 {
			if f, ok := dataset.Number(ds.Cell(row, salesIdx)); ok {
				rec.Measures[MeasureSales] = f
			}
		} else {
			qty, qok := dataset.Number(ds.Cell(row, qtyIdx))
			price, pok := dataset.Number(ds.Cell(row, priceIdx))
			if qok && pok {
				rec.Measures[MeasureSales] = qty * price
			}
		}

		if groupIdx >= 0 {
			rec.Dimensions[DimGroup] = ds.Cell(row, groupIdx)
		}

		if dateIdx >= 0 {
			if t, ok := dataset.ParseDate(ds.Cell(row, dateIdx)); ok {
				rec.Dimensions[DimMonth] = monthStart(t).Format(MonthKeyLayout)
			}
		}

		records = append(records, rec)
	}

	return records, nil
}

// monthStart truncates a date to the first day of its calendar month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
