package exporter

import (
	"strings"

	"uplcompare/internal/format"
	"uplcompare/pkg/contracts/domain"
)

// ColumnClass is the derived type tag of one dataset column.
// It is computed fresh for every export and never stored on the dataset.
type ColumnClass struct {
	Name    string
	Numeric bool
	Percent bool
}

// NumberFormat returns the workbook number format of the column.
// The percent format overrides the plain numeric one.
func (c ColumnClass) NumberFormat() string {
	switch {
	case c.Percent:
		return format.PercentFormat
	case c.Numeric:
		return format.ThousandsFormat
	default:
		return ""
	}
}

// ClassifyColumns tags every column of ds.
// A column is numeric when at least one of its non-empty cells coerces to a
// finite number; cells that fail coercion do not demote the column.
func ClassifyColumns(ds domain.Dataset) []ColumnClass {
	classes := make([]ColumnClass, ds.Width())
	for c, name := range ds.Columns {
		classes[c] = ColumnClass{
			Name:    name,
			Percent: strings.Contains(name, "%"),
		}
	}

	for r := range ds.Rows {
		for c := range classes {
			if classes[c].Numeric {
				continue
			}
			if _, ok := format.Coerce(ds.Cell(r, c)); ok {
				classes[c].Numeric = true
			}
		}
	}
	return classes
}

// cellValue converts a dataset cell into what the workbook stores.
// nil means a blank cell.
func cellValue(class ColumnClass, v domain.Value) any {
	if v.IsEmpty() {
		return nil
	}
	if v.IsText() && !class.Numeric {
		return v.Text
	}
	if f, ok := format.Coerce(v); ok {
		return f
	}
	if v.IsText() {
		return v.Text
	}
	// NaN and infinities
	return nil
}
