// Package highlight decides which cells of a row get emphasis.
//
// Two rules exist and a sheet uses exactly one of them: the total-row rule
// emphasises whole summary rows, and the vendor-win rule marks the price
// cells of the lowest and second lowest bidder in Bid & Price Analysis.
package highlight

import (
	"strings"

	"uplcompare/internal/format"
	"uplcompare/pkg/contracts/domain"
)

// Rule classifies one row into a per-column emphasis
type Rule interface {
	Classify(row []domain.Value) []format.Emphasis
}

// IsTotalRow reports whether any text cell of row reads TOTAL,
// ignoring case and surrounding whitespace.
func IsTotalRow(row []domain.Value) bool {
	for _, v := range row {
		if v.IsText() && strings.EqualFold(strings.TrimSpace(v.Text), domain.TotalMarker) {
			return true
		}
	}
	return false
}

// TotalRowRule emphasises every column of a total row and nothing else
type TotalRowRule struct {
	Width    int
	Emphasis format.Emphasis
}

// NewTotalRowRule returns a total-row rule for rows of the given width
func NewTotalRowRule(width int) TotalRowRule {
	return TotalRowRule{Width: width, Emphasis: format.EmphasisTotal}
}

// Classify implements Rule
func (r TotalRowRule) Classify(row []domain.Value) []format.Emphasis {
	out := make([]format.Emphasis, r.Width)
	if !IsTotalRow(row) {
		return out
	}
	e := r.Emphasis
	if e == format.EmphasisNone {
		e = format.EmphasisTotal
	}
	for i := range out {
		out[i] = e
	}
	return out
}

// VendorWinRule marks the cell under the column named by the row's
// 1st Vendor value as winner and the one named by 2nd Vendor as runner-up.
// When both name the same column the winner takes precedence.
type VendorWinRule struct {
	Columns []string

	firstIdx  int
	secondIdx int
	targets   map[string]int
}

// NewVendorWinRule builds the rule for the given header.
// eligible restricts which columns may be highlighted; nil allows all.
func NewVendorWinRule(columns []string, eligible func(col int) bool) VendorWinRule {
	r := VendorWinRule{
		Columns:   columns,
		firstIdx:  -1,
		secondIdx: -1,
		targets:   make(map[string]int, len(columns)),
	}
	for i, name := range columns {
		switch name {
		case domain.FirstVendorColumn:
			if r.firstIdx < 0 {
				r.firstIdx = i
			}
		case domain.SecondVendorColumn:
			if r.secondIdx < 0 {
				r.secondIdx = i
			}
		}
		if eligible != nil && !eligible(i) {
			continue
		}
		if _, seen := r.targets[name]; !seen {
			r.targets[name] = i
		}
	}
	return r
}

// Classify implements Rule
func (r VendorWinRule) Classify(row []domain.Value) []format.Emphasis {
	out := make([]format.Emphasis, len(r.Columns))

	if idx, ok := r.lookup(row, r.secondIdx); ok {
		out[idx] = format.EmphasisRunnerUp
	}
	if idx, ok := r.lookup(row, r.firstIdx); ok {
		out[idx] = format.EmphasisWinner
	}
	return out
}

// lookup resolves the vendor named in row[marker] to a target column
func (r VendorWinRule) lookup(row []domain.Value, marker int) (int, bool) {
	if marker < 0 || marker >= len(row) {
		return 0, false
	}
	v := row[marker]
	if !v.IsText() {
		return 0, false
	}
	idx, ok := r.targets[v.Text]
	return idx, ok
}

// ForKind selects the rule of a sheet. Bid & Price Analysis uses the
// vendor-win rule restricted to eligible columns; every other kind uses
// the total-row rule.
func ForKind(kind domain.DatasetKind, columns []string, eligible func(col int) bool) Rule {
	if kind == domain.KindBidPriceAnalysis {
		return NewVendorWinRule(columns, eligible)
	}
	return NewTotalRowRule(len(columns))
}
