package domain

import (
	"errors"
	"fmt"
)

// DatasetKind names one of the tabular outputs of the comparison pipeline
type DatasetKind string

const (
	KindMergeData        DatasetKind = "Merge Data"
	KindPivotTable       DatasetKind = "Pivot Table"
	KindBidPriceAnalysis DatasetKind = "Bid & Price Analysis"
	KindPriceMovement    DatasetKind = "Price Movement Analysis"
)

// Vendor win marker columns of the Bid & Price Analysis dataset
const (
	FirstVendorColumn  = "1st Vendor"
	SecondVendorColumn = "2nd Vendor"
)

// TotalMarker is the cell text that marks a group summary row
const TotalMarker = "TOTAL"

// AllKinds returns every dataset kind in the order the guide presents them
func AllKinds() []DatasetKind {
	return []DatasetKind{
		KindMergeData,
		KindPivotTable,
		KindBidPriceAnalysis,
		KindPriceMovement,
	}
}

// KindNames returns AllKinds as plain strings
func KindNames() []string {
	kinds := AllKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return names
}

// ErrMalformedDataset is returned by Dataset.Validate
var ErrMalformedDataset = errors.New("malformed dataset")

// Dataset is an ordered table of named columns and rows.
// Column order drives left-to-right layout and row order drives
// top-to-bottom layout; both are significant.
type Dataset struct {
	Columns []string  `json:"columns"`
	Rows    [][]Value `json:"rows"`
}

// NewDataset builds a dataset from plain Go values.
// Supported cell types are nil, string, float64, float32, int, int64 and Value.
func NewDataset(columns []string, rows ...[]any) Dataset {
	ds := Dataset{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]Value, 0, len(rows)),
	}
	for _, row := range rows {
		values := make([]Value, len(row))
		for i, cell := range row {
			values[i] = ValueOf(cell)
		}
		ds.Rows = append(ds.Rows, values)
	}
	return ds
}

// ValueOf converts a plain Go value into a cell value
func ValueOf(cell any) Value {
	switch c := cell.(type) {
	case nil:
		return Empty()
	case Value:
		return c
	case string:
		return Text(c)
	case float64:
		return Number(c)
	case float32:
		return Number(float64(c))
	case int:
		return Number(float64(c))
	case int64:
		return Number(float64(c))
	default:
		return Text(fmt.Sprint(c))
	}
}

// Width returns the number of columns
func (d Dataset) Width() int {
	return len(d.Columns)
}

// Cell returns the value at row, col. Cells beyond a short row are empty.
func (d Dataset) Cell(row, col int) Value {
	if row < 0 || row >= len(d.Rows) || col < 0 {
		return Empty()
	}
	r := d.Rows[row]
	if col >= len(r) {
		return Empty()
	}
	return r[col]
}

// Row returns row i padded to the dataset width. The slice is a copy.
func (d Dataset) Row(i int) []Value {
	out := make([]Value, d.Width())
	for c := range out {
		out[c] = d.Cell(i, c)
	}
	return out
}

// ColumnIndex returns the position of the first column with the given name
func (d Dataset) ColumnIndex(name string) (int, bool) {
	for i, c := range d.Columns {
		if c == name {
			return i, true
		}
	}
	return -1, false
}

// Validate checks the structural invariants of the dataset
func (d Dataset) Validate() error {
	if len(d.Columns) == 0 {
		return fmt.Errorf("%w: no columns", ErrMalformedDataset)
	}
	for i, row := range d.Rows {
		if len(row) > len(d.Columns) {
			return fmt.Errorf("%w: row %d has %d cells for %d columns",
				ErrMalformedDataset, i, len(row), len(d.Columns))
		}
	}
	return nil
}

// Clone returns a deep copy of the dataset
func (d Dataset) Clone() Dataset {
	out := Dataset{
		Columns: append([]string(nil), d.Columns...),
		Rows:    make([][]Value, len(d.Rows)),
	}
	for i, row := range d.Rows {
		out.Rows[i] = append([]Value(nil), row...)
	}
	return out
}
