// Package samples holds the example tables shown on the guide page.
//
// Every function builds its dataset from scratch, so callers may modify the
// result freely.
package samples

import "uplcompare/pkg/contracts/domain"

// All returns the four example datasets keyed by their sheet name
func All() map[string]domain.Dataset {
	return map[string]domain.Dataset{
		string(domain.KindMergeData):        MergeData(),
		string(domain.KindPivotTable):       PivotTable(),
		string(domain.KindBidPriceAnalysis): BidPriceAnalysis(),
		string(domain.KindPriceMovement):    PriceMovement(),
	}
}

// Get returns the example dataset of kind
func Get(kind domain.DatasetKind) (domain.Dataset, bool) {
	ds, ok := All()[string(kind)]
	return ds, ok
}

// MergeData is the merged table of four rounds with a TOTAL row per vendor
func MergeData() domain.Dataset {
	return domain.NewDataset([]string{"ROUND", "VENDOR", "Scope", "PRICE"},
		[]any{"Round 1", "Vendor A", "Site Survey", 15000},
		[]any{"Round 1", "Vendor A", "DG Dismantle", 55000},
		[]any{"Round 1", "Vendor A", "AirCon Dismantle", 3230},
		[]any{"Round 1", "Vendor A", "TOTAL", 73230},
		[]any{"Round 1", "Vendor B", "Site Survey", 14800},
		[]any{"Round 1", "Vendor B", "DG Dismantle", 55100},
		[]any{"Round 1", "Vendor B", "AirCon Dismantle", 3240},
		[]any{"Round 1", "Vendor B", "TOTAL", 73140},
		[]any{"Round 1", "Vendor C", "Site Survey", 15050},
		[]any{"Round 1", "Vendor C", "DG Dismantle", 54900},
		[]any{"Round 1", "Vendor C", "AirCon Dismantle", 3200},
		[]any{"Round 1", "Vendor C", "TOTAL", 73150},
		[]any{"Round 2", "Vendor A", "Site Survey", 14950},
		[]any{"Round 2", "Vendor A", "DG Dismantle", 54980},
		[]any{"Round 2", "Vendor A", "AirCon Dismantle", 3200},
		[]any{"Round 2", "Vendor A", "TOTAL", 73130},
		[]any{"Round 2", "Vendor B", "Site Survey", 14800},
		[]any{"Round 2", "Vendor B", "DG Dismantle", 55000},
		[]any{"Round 2", "Vendor B", "AirCon Dismantle", 3240},
		[]any{"Round 2", "Vendor B", "TOTAL", 73040},
		[]any{"Round 2", "Vendor C", "Site Survey", 15000},
		[]any{"Round 2", "Vendor C", "DG Dismantle", 54900},
		[]any{"Round 2", "Vendor C", "AirCon Dismantle", 3200},
		[]any{"Round 2", "Vendor C", "TOTAL", 73100},
		[]any{"Round 3", "Vendor A", "Site Survey", 14900},
		[]any{"Round 3", "Vendor A", "DG Dismantle", 54950},
		[]any{"Round 3", "Vendor A", "AirCon Dismantle", 3150},
		[]any{"Round 3", "Vendor A", "TOTAL", 73000},
		[]any{"Round 3", "Vendor B", "Site Survey", 14750},
		[]any{"Round 3", "Vendor B", "DG Dismantle", 54900},
		[]any{"Round 3", "Vendor B", "AirCon Dismantle", 3220},
		[]any{"Round 3", "Vendor B", "TOTAL", 73870},
		[]any{"Round 3", "Vendor C", "Site Survey", 14900},
		[]any{"Round 3", "Vendor C", "DG Dismantle", 54800},
		[]any{"Round 3", "Vendor C", "AirCon Dismantle", 3175},
		[]any{"Round 3", "Vendor C", "TOTAL", 72875},
		[]any{"Round 4", "Vendor A", "Site Survey", 14900},
		[]any{"Round 4", "Vendor A", "DG Dismantle", 54900},
		[]any{"Round 4", "Vendor A", "AirCon Dismantle", 3150},
		[]any{"Round 4", "Vendor A", "TOTAL", 73950},
		[]any{"Round 4", "Vendor B", "Site Survey", 14750},
		[]any{"Round 4", "Vendor B", "DG Dismantle", 54900},
		[]any{"Round 4", "Vendor B", "AirCon Dismantle", 3200},
		[]any{"Round 4", "Vendor B", "TOTAL", 73850},
		[]any{"Round 4", "Vendor C", "Site Survey", 14850},
		[]any{"Round 4", "Vendor C", "DG Dismantle", 54800},
		[]any{"Round 4", "Vendor C", "AirCon Dismantle", 3175},
		[]any{"Round 4", "Vendor C", "TOTAL", 72825},
	)
}

// PivotTable spreads every vendor and round horizontally per scope
func PivotTable() domain.Dataset {
	return domain.NewDataset([]string{
		"Scope",
		"VENDOR A Round 1", "VENDOR A Round 2", "VENDOR A Round 3", "VENDOR A Round 4",
		"VENDOR B Round 1", "VENDOR B Round 2", "VENDOR B Round 3", "VENDOR B Round 4",
		"VENDOR C Round 1", "VENDOR C Round 2", "VENDOR C Round 3", "VENDOR C Round 4",
	},
		[]any{"AirCon Dismantle", 3230, 3200, 3150, 3150, 3240, 3240, 3220, 3200, 3200, 3200, 3175, 3175},
		[]any{"DG Dismantle", 55000, 54980, 54950, 54900, 55100, 55000, 54900, 54900, 54900, 54900, 54800, 54800},
		[]any{"Site Survey", 15000, 14950, 14900, 14900, 14800, 14800, 14750, 14750, 15050, 15000, 14900, 14850},
		[]any{"TOTAL", 73230, 73130, 73000, 72950, 73140, 73040, 72870, 72850, 73150, 73100, 72875, 72825},
	)
}

// BidPriceAnalysis ranks the bids of every scope and round
func BidPriceAnalysis() domain.Dataset {
	return domain.NewDataset([]string{
		"ROUND", "Scope", "VENDOR A", "VENDOR B", "VENDOR C",
		"1st Lowest", "1st Vendor", "2nd Lowest", "2nd Vendor",
		"Gap 1 to 2 (%)", "Median Price",
		"Vendor A to Median (%)", "Vendor B to Median (%)", "Vendor C to Median (%)",
	},
		[]any{"ROUND 1", "Site Survey", 15000, 14800, 15050, 14800, "VENDOR B", 15000, "VENDOR A", "1.4%", 15000, "+0.0%", "-1.3%", "+0.3%"},
		[]any{"ROUND 1", "DG Dismantle", 55000, 55100, 54900, 54900, "VENDOR C", 55000, "VENDOR A", "0.2%", 55000, "+0.0%", "+0.2%", "-0.2%"},
		[]any{"ROUND 1", "AirCon Dismantle", 3230, 3240, 3200, 3200, "VENDOR C", 3230, "VENDOR A", "0.9%", 3230, "+0.0%", "+0.3%", "-0.9%"},
		[]any{"ROUND 2", "Site Survey", 14950, 14800, 15000, 14800, "VENDOR B", 14950, "VENDOR A", "1.0%", 14950, "+0.0%", "-1.0%", "+0.3%"},
		[]any{"ROUND 2", "DG Dismantle", 54980, 55000, 54900, 54900, "VENDOR C", 54980, "VENDOR A", "0.1%", 54980, "+0.0%", "+0.0%", "-0.1%"},
		[]any{"ROUND 2", "AirCon Dismantle", 3200, 3240, 3200, 3200, "VENDOR A", 3240, "VENDOR B", "1.2%", 3200, "+0.0%", "+1.2%", "+0.0%"},
		[]any{"ROUND 3", "Site Survey", 14900, 14750, 14900, 14750, "VENDOR B", 14900, "VENDOR A", "1.0%", 14900, "+0.0%", "-1.0%", "+0.0%"},
		[]any{"ROUND 3", "DG Dismantle", 54950, 54900, 54800, 54800, "VENDOR C", 54900, "VENDOR B", "0.2%", 54900, "+0.1%", "+0.0%", "-0.2%"},
		[]any{"ROUND 3", "AirCon Dismantle", 3150, 3220, 3175, 3150, "VENDOR A", 3175, "VENDOR C", "0.8%", 3175, "-0.8%", "+1.4%", "+0.0%"},
		[]any{"ROUND 4", "Site Survey", 14900, 14750, 14850, 14750, "VENDOR B", 14850, "VENDOR C", "0.7%", 14850, "+0.3%", "-0.7%", "+0.0%"},
		[]any{"ROUND 4", "DG Dismantle", 54900, 54900, 54800, 54800, "VENDOR C", 54900, "VENDOR A", "0.2%", 54900, "+0.0%", "+0.0%", "-0.2%"},
		[]any{"ROUND 4", "AirCon Dismantle", 3150, 3200, 3175, 3150, "VENDOR A", 3175, "VENDOR C", "0.8%", 3175, "-0.8%", "+0.8%", "+0.0%"},
	)
}

// PriceMovement tracks each vendor's price per scope across rounds.
// TOTAL rows carry no movement statistics.
func PriceMovement() domain.Dataset {
	return domain.NewDataset([]string{
		"VENDOR", "Scope", "Round 1", "Round 2", "Round 3", "Round 4",
		"PRICE REDUCTION (VALUE)", "PRICE REDUCTION (%)", "PRICE TREND",
		"STANDARD DEVIATION", "PRICE STABILITY INDEX (%)",
	},
		[]any{"VENDOR A", "AirCon Dismantle", 3230, 3200, 3150, 3150, -80, "-2.5%", "Fluctuating", 34.187, "2.5%"},
		[]any{"VENDOR A", "DG Dismantle", 55000, 54980, 54950, 54900, -100, "-0.2%", "Consistently Down", 37.6663, "0.2%"},
		[]any{"VENDOR A", "Site Survey", 15000, 14950, 14900, 14900, -100, "-0.7%", "Fluctuating", 41.4578, "0.7%"},
		[]any{"VENDOR A", "TOTAL", 73230, 73130, 73000, 72950, nil, nil, nil, nil, nil},
		[]any{"VENDOR B", "AirCon Dismantle", 3240, 3240, 3220, 3200, -40, "-1.2%", "Fluctuating", 16.5831, "1.2%"},
		[]any{"VENDOR B", "DG Dismantle", 55100, 55000, 54900, 54900, -200, "-0.4%", "Fluctuating", 82.9156, "0.4%"},
		[]any{"VENDOR B", "Site Survey", 14800, 14800, 14750, 14750, -50, "-0.3%", "Fluctuating", 25, "0.3%"},
		[]any{"VENDOR B", "TOTAL", 73140, 73040, 72870, 72850, nil, nil, nil, nil, nil},
		[]any{"VENDOR C", "AirCon Dismantle", 3200, 3200, 3175, 3175, -25, "-0.8%", "Fluctuating", 12.5, "0.8%"},
		[]any{"VENDOR C", "DG Dismantle", 54900, 54900, 54800, 54800, -100, "-0.2%", "Fluctuating", 50, "0.2%"},
		[]any{"VENDOR C", "Site Survey", 15050, 15000, 14900, 14850, -200, "-1.3%", "Consistently Down", 79.0569, "1.3%"},
		[]any{"VENDOR C", "TOTAL", 73150, 73100, 72875, 72825, nil, nil, nil, nil, nil},
	)
}

// ManualTotal is the counter-example of an input sheet with a hand-written
// TOTAL row, which the merge step would count as a regular item.
func ManualTotal() domain.Dataset {
	return domain.NewDataset([]string{"Desc", "Category", "UoM", "PRICE"},
		[]any{"Optical Cable", "Non-Services Area & Material", "M", "3.600"},
		[]any{"Cross Connect", "Non-Services Area & Material", "Link", "29.800"},
		[]any{"TOTAL", "", "", "33.400"},
	)
}

// NumberedColumns is the counter-example of an input sheet with a "No"
// column, which would be read as a second numeric column.
func NumberedColumns() domain.Dataset {
	return domain.NewDataset([]string{"No", "Scope", "Desc", "Category", "UoM", "PRICE"},
		[]any{1},
		[]any{2},
		[]any{3},
	)
}
