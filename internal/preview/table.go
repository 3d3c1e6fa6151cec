// Package preview renders the guide page: the example tables as they appear
// on screen and the HTML page around them.
package preview

import (
	"uplcompare/internal/exporter"
	"uplcompare/internal/format"
	"uplcompare/internal/highlight"
	"uplcompare/pkg/contracts/domain"
)

// Cell is one display cell with its inline style
type Cell struct {
	Text     string `json:"text"`
	Style    string `json:"style,omitempty"`
	Emphasis string `json:"emphasis,omitempty"`
}

// Table is a dataset prepared for display
type Table struct {
	Kind    string   `json:"kind"`
	Columns []string `json:"columns"`
	Rows    [][]Cell `json:"rows"`
}

// Build prepares ds for display. Numeric columns without % in the name are
// shown with format.Amount; other values are shown as supplied. On screen the
// vendor lookup of Bid & Price Analysis considers every column.
func Build(kind domain.DatasetKind, ds domain.Dataset) Table {
	return BuildWith(kind, ds, highlight.ForKind(kind, ds.Columns, nil))
}

// BuildWith prepares ds for display using rule for the highlights
func BuildWith(kind domain.DatasetKind, ds domain.Dataset, rule highlight.Rule) Table {
	classes := exporter.ClassifyColumns(ds)

	t := Table{
		Kind:    string(kind),
		Columns: append([]string(nil), ds.Columns...),
		Rows:    make([][]Cell, len(ds.Rows)),
	}

	for r := range ds.Rows {
		values := ds.Row(r)
		emphasis := rule.Classify(values)

		cells := make([]Cell, len(values))
		for c, v := range values {
			cell := Cell{Text: displayText(classes[c], v)}
			if c < len(emphasis) && emphasis[c] != format.EmphasisNone {
				cell.Style = format.CSS(emphasis[c])
				cell.Emphasis = emphasis[c].String()
			}
			cells[c] = cell
		}
		t.Rows[r] = cells
	}
	return t
}

func displayText(class exporter.ColumnClass, v domain.Value) string {
	if class.Numeric && !class.Percent {
		return format.Amount(v)
	}
	if v.IsNumber() {
		// percent and text columns still hide NaN and infinities
		if _, ok := format.Coerce(v); !ok {
			return ""
		}
	}
	return v.String()
}
