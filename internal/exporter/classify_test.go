package exporter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplcompare/internal/format"
	"uplcompare/internal/samples"
	"uplcompare/pkg/contracts/domain"
)

func TestClassifyColumns(t *testing.T) {
	tests := []struct {
		name     string
		dataset  domain.Dataset
		expected []ColumnClass
	}{
		{
			name:    "merge data",
			dataset: samples.MergeData(),
			expected: []ColumnClass{
				{Name: "ROUND"},
				{Name: "VENDOR"},
				{Name: "Scope"},
				{Name: "PRICE", Numeric: true},
			},
		},
		{
			name: "percent strings are numeric through coercion only when parseable",
			dataset: domain.NewDataset([]string{"Gap 1 to 2 (%)", "Ratio (%)"},
				[]any{"1.4%", "1.5"},
				[]any{"0.2%", nil},
			),
			expected: []ColumnClass{
				{Name: "Gap 1 to 2 (%)", Percent: true},
				{Name: "Ratio (%)", Numeric: true, Percent: true},
			},
		},
		{
			name: "one coercible cell is enough",
			dataset: domain.NewDataset([]string{"Mixed"},
				[]any{"abc"},
				[]any{"  42 "},
				[]any{nil},
			),
			expected: []ColumnClass{{Name: "Mixed", Numeric: true}},
		},
		{
			name: "non-finite numbers do not count",
			dataset: domain.NewDataset([]string{"Bad"},
				[]any{math.NaN()},
				[]any{math.Inf(1)},
			),
			expected: []ColumnClass{{Name: "Bad"}},
		},
		{
			name:     "no rows",
			dataset:  domain.NewDataset([]string{"A", "B %"}),
			expected: []ColumnClass{{Name: "A"}, {Name: "B %", Percent: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyColumns(tt.dataset))
		})
	}
}

func TestClassifyColumnsDoesNotMutate(t *testing.T) {
	ds := samples.BidPriceAnalysis()
	before := ds.Clone()

	ClassifyColumns(ds)
	ClassifyColumns(ds)

	assert.Equal(t, before, ds)
}

func TestClassifyBidPriceAnalysis(t *testing.T) {
	classes := ClassifyColumns(samples.BidPriceAnalysis())
	require.Len(t, classes, 14)

	numeric := map[string]bool{
		"VENDOR A": true, "VENDOR B": true, "VENDOR C": true,
		"1st Lowest": true, "2nd Lowest": true, "Median Price": true,
	}
	for _, c := range classes {
		assert.Equal(t, numeric[c.Name], c.Numeric, c.Name)
	}
	assert.True(t, classes[9].Percent, "Gap 1 to 2 (%)")
	assert.False(t, classes[9].Numeric, "percent strings stay text")
}

func TestColumnClassNumberFormat(t *testing.T) {
	assert.Equal(t, "", ColumnClass{}.NumberFormat())
	assert.Equal(t, format.ThousandsFormat, ColumnClass{Numeric: true}.NumberFormat())
	assert.Equal(t, format.PercentFormat, ColumnClass{Percent: true}.NumberFormat())
	assert.Equal(t, format.PercentFormat, ColumnClass{Numeric: true, Percent: true}.NumberFormat())
}

func TestCellValue(t *testing.T) {
	numeric := ColumnClass{Name: "PRICE", Numeric: true}
	text := ColumnClass{Name: "Scope"}

	tests := []struct {
		name     string
		class    ColumnClass
		value    domain.Value
		expected any
	}{
		{name: "empty", class: numeric, value: domain.Empty(), expected: nil},
		{name: "number", class: numeric, value: domain.Number(15000), expected: 15000.0},
		{name: "numeric text", class: numeric, value: domain.Text("3.600"), expected: 3.6},
		{name: "non-coercible text kept", class: numeric, value: domain.Text("abc"), expected: "abc"},
		{name: "NaN is blank", class: numeric, value: domain.Number(math.NaN()), expected: nil},
		{name: "infinity is blank", class: numeric, value: domain.Number(math.Inf(-1)), expected: nil},
		{name: "text column keeps digits as text", class: text, value: domain.Text("3.600"), expected: "3.600"},
		{name: "number in text column", class: text, value: domain.Number(7), expected: 7.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cellValue(tt.class, tt.value))
		})
	}
}
