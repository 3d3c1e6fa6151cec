package preview

import (
	"uplcompare/internal/format"
	"uplcompare/internal/highlight"
	"uplcompare/internal/samples"
	"uplcompare/pkg/contracts/domain"
)

const pageTitle = "UPL Comparison Round by Round"

const introText = `This menu compares the **unit price list (UPL)** that every vendor
submits across the negotiation rounds of a tender. Upload one workbook per
round; each sheet of a workbook holds the price list of one vendor.

**Ensure that each sheet has the same table structure and column names!**`

// Rule is one input formatting constraint of the guide
type Rule struct {
	Title   string
	Badge   string
	Body    string
	Example *Table
	Note    string
}

// Result is one generated table of the "What is displayed" part
type Result struct {
	Title  string
	Badge  string
	Body   string
	Legend []Legend
	Table  Table
}

// Legend explains one highlight color
type Legend struct {
	Label string
	Style string
}

// plain highlights nothing
type plain struct{}

func (plain) Classify([]domain.Value) []format.Emphasis { return nil }

// Rules returns the input constraints with their counter-examples
func Rules() []Rule {
	numbered := BuildWith("No column", samples.NumberedColumns(), plain{})
	manual := samples.ManualTotal()
	manualTable := BuildWith("Manual total", manual, highlight.TotalRowRule{
		Width:    manual.Width(),
		Emphasis: format.EmphasisRejected,
	})

	return []Rule{
		{
			Title: "1. MULTIPLE FILE NAME",
			Badge: "red",
			Body: `This menu works on **multiple files**. Each file name becomes the
value of the ROUND column, so make sure every file name identifies its round
and **avoid** ambiguous names.

Round names are sorted with a regular expression, so
` + "`L2R2.xlsx`, `L2R4.xlsx`, `L2R3.xlsx`, `L2R1.xlsx`" + ` are ordered as
**L2R1 → L2R2 → L2R3 → L2R4**. The round order drives the price movement
analysis; names like ` + "`Round 1`, `Round 2`" + ` are recommended.`,
		},
		{
			Title: "2. COLUMN ORDER",
			Badge: "orange",
			Body: `Columns **must** follow this order, which is strict:

**Non-Numeric Columns → Numeric Column (only one)**`,
		},
		{
			Title:   "3. NUMBER COLUMN",
			Badge:   "green",
			Body:    "Please refer to the table below:",
			Example: &numbered,
			Note: `The table above is an **incorrect example**: the "No" column is not
allowed because it is read as a second numeric column, which breaks rule 2.`,
		},
		{
			Title: "4. FLOATING TABLE",
			Badge: "blue",
			Body: `Tables **do not need to start at cell A1**. Make sure the cells above
and to the left of the table are empty. Notes about a sheet can be added as an
image or a text box.`,
		},
		{
			Title:   "5. TOTAL ROW",
			Badge:   "violet",
			Body:    "Do not add a **TOTAL** row at the bottom of the table:",
			Example: &manualTable,
			Note: `The table above is **not permitted**. The total row is generated during
**MERGE DATA**; a manual one is treated as a regular row and included in the
calculations.`,
		},
	}
}

// Results returns the generated tables for the example dataset
func Results() []Result {
	all := samples.All()
	build := func(kind domain.DatasetKind) Table {
		return Build(kind, all[string(kind)])
	}

	return []Result{
		{
			Title: "1. MERGE DATA",
			Badge: "red",
			Body:  "The tables of every sheet are merged into one table with a **TOTAL ROW** for each vendor.",
			Legend: []Legend{
				{Label: "TOTAL", Style: format.CSS(format.EmphasisTotal)},
			},
			Table: build(domain.KindMergeData),
		},
		{
			Title: "2. PIVOT TABLE",
			Badge: "orange",
			Body:  "The merged data is pivoted horizontally per **SCOPE**.",
			Table: build(domain.KindPivotTable),
		},
		{
			Title: "3. BID & PRICE ANALYSIS",
			Badge: "yellow",
			Body:  "An overview of the pricing submitted by each vendor for every scope and round.",
			Legend: []Legend{
				{Label: "1st Lowest", Style: format.CSS(format.EmphasisWinner)},
				{Label: "2nd Lowest", Style: format.CSS(format.EmphasisRunnerUp)},
			},
			Table: build(domain.KindBidPriceAnalysis),
		},
		{
			Title: "4. PRICE MOVEMENT ANALYSIS",
			Badge: "green",
			Body:  "Price decreases or increases of each vendor across the rounds.",
			Table: build(domain.KindPriceMovement),
		},
	}
}
