package format

import (
	"strings"
)

// Emphasis is the highlight decision for a single cell
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	// EmphasisTotal marks every cell of a group summary row
	EmphasisTotal
	// EmphasisWinner marks the lowest bidder's price cell
	EmphasisWinner
	// EmphasisRunnerUp marks the second lowest bidder's price cell
	EmphasisRunnerUp
	// EmphasisRejected marks a manually added total row in the guide's
	// counter-example table
	EmphasisRejected
)

// String returns the emphasis name
func (e Emphasis) String() string {
	switch e {
	case EmphasisTotal:
		return "total"
	case EmphasisWinner:
		return "winner"
	case EmphasisRunnerUp:
		return "runner_up"
	case EmphasisRejected:
		return "rejected"
	default:
		return "none"
	}
}

// Swatch holds the colors of one emphasis. Colors are RGB hex without '#'.
type Swatch struct {
	Fill string
	Font string
	Bold bool
}

// Palette is shared by the on-screen tables and the exported workbook
var Palette = map[Emphasis]Swatch{
	EmphasisTotal:    {Fill: "D9EAD3", Font: "1A5E20", Bold: true},
	EmphasisWinner:   {Fill: "C6EFCE", Font: "006100"},
	EmphasisRunnerUp: {Fill: "FFEB9C", Font: "9C6500"},
	EmphasisRejected: {Fill: "FFE5E5", Font: "D00000", Bold: true},
}

// Number format codes used by the workbook export
const (
	ThousandsFormat = "#,##0"
	PercentFormat   = `#,##0.0"%"`
)

// ColumnWidth is the default width of exported columns
const ColumnWidth = 15.0

// SwatchFor returns the swatch of e and whether it has one
func SwatchFor(e Emphasis) (Swatch, bool) {
	s, ok := Palette[e]
	return s, ok
}

// CSS renders the inline style of e for HTML tables
func CSS(e Emphasis) string {
	s, ok := Palette[e]
	if !ok {
		return ""
	}

	var parts []string
	if s.Bold {
		parts = append(parts, "font-weight: bold;")
	}
	if s.Fill != "" {
		parts = append(parts, "background-color: #"+s.Fill+";")
	}
	if s.Font != "" {
		parts = append(parts, "color: #"+s.Font+";")
	}
	return strings.Join(parts, " ")
}
