package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplcompare/internal/format"
	"uplcompare/internal/samples"
	"uplcompare/pkg/contracts/domain"
)

func TestBuildMergeData(t *testing.T) {
	table := Build(domain.KindMergeData, samples.MergeData())

	assert.Equal(t, "Merge Data", table.Kind)
	assert.Equal(t, []string{"ROUND", "VENDOR", "Scope", "PRICE"}, table.Columns)
	require.Len(t, table.Rows, 48)

	first := table.Rows[0]
	assert.Equal(t, "15.000", first[3].Text)
	assert.Empty(t, first[3].Style)

	total := table.Rows[3]
	assert.Equal(t, "73.230", total[3].Text)
	for _, cell := range total {
		assert.Equal(t, format.CSS(format.EmphasisTotal), cell.Style)
		assert.Equal(t, "total", cell.Emphasis)
	}
}

func TestBuildBidPriceAnalysis(t *testing.T) {
	table := Build(domain.KindBidPriceAnalysis, samples.BidPriceAnalysis())
	row := table.Rows[0]

	assert.Equal(t, "14.800", row[3].Text)
	assert.Equal(t, "background-color: #C6EFCE; color: #006100;", row[3].Style)
	assert.Equal(t, "background-color: #FFEB9C; color: #9C6500;", row[2].Style)
	assert.Empty(t, row[4].Style)

	// percent strings and vendor names are shown verbatim
	assert.Equal(t, "1.4%", row[9].Text)
	assert.Equal(t, "VENDOR B", row[6].Text)
	assert.Equal(t, "+0.0%", row[11].Text)
}

func TestBuildPriceMovement(t *testing.T) {
	table := Build(domain.KindPriceMovement, samples.PriceMovement())

	assert.Equal(t, "34,19", table.Rows[0][9].Text)
	assert.Equal(t, "-80", table.Rows[0][6].Text)
	assert.Equal(t, "25", table.Rows[6][9].Text)

	total := table.Rows[3]
	assert.Equal(t, "72.950", total[5].Text)
	assert.Equal(t, "", total[6].Text)
	assert.Equal(t, format.CSS(format.EmphasisTotal), total[10].Style)
}

func TestBuildDoesNotMutate(t *testing.T) {
	ds := samples.PivotTable()
	before := ds.Clone()
	Build(domain.KindPivotTable, ds)
	assert.Equal(t, before, ds)
}

func TestRulesCounterExamples(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, 5)

	manual := rules[4].Example
	require.NotNil(t, manual)
	assert.Equal(t, format.CSS(format.EmphasisRejected), manual.Rows[2][0].Style)
	assert.Empty(t, manual.Rows[0][0].Style)
	// "3.600" is a price in the display locale, not three and a half
	assert.Equal(t, "3,60", manual.Rows[0][3].Text)

	numbered := rules[2].Example
	require.NotNil(t, numbered)
	assert.Equal(t, "No", numbered.Columns[0])
	assert.Equal(t, "1", numbered.Rows[0][0].Text)
}

func TestMarkdown(t *testing.T) {
	out := string(Markdown("Columns **must** follow `ROUND`"))
	assert.Contains(t, out, "<strong>must</strong>")
	assert.Contains(t, out, "<code>ROUND</code>")
}

func TestNewPageSelection(t *testing.T) {
	t.Run("defaults to every kind", func(t *testing.T) {
		page := NewPage(PageOptions{})
		require.Len(t, page.Kinds, 4)
		for _, k := range page.Kinds {
			assert.True(t, k.Selected, k.Name)
		}
	})

	t.Run("keeps the given selection", func(t *testing.T) {
		page := NewPage(PageOptions{Selected: []string{"Pivot Table"}})
		for _, k := range page.Kinds {
			assert.Equal(t, k.Name == "Pivot Table", k.Selected, k.Name)
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		page := NewPage(PageOptions{Selected: []string{}})
		for _, k := range page.Kinds {
			assert.False(t, k.Selected, k.Name)
		}
	})
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	page := NewPage(PageOptions{ExportURL: "/api/export/sample", DummyURL: "/api/guide/dummy-dataset"})
	require.NoError(t, Render(&buf, page))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<title>UPL Comparison Round by Round</title>")
	assert.Contains(t, html, `action="/api/export/sample"`)
	assert.Contains(t, html, `href="/api/guide/dummy-dataset"`)
	assert.Contains(t, html, `<option value="Bid &amp; Price Analysis" selected>`)
	assert.Contains(t, html, "background-color: #C6EFCE")
	assert.Contains(t, html, "73.230")
	assert.Contains(t, html, "<strong>TOTAL ROW</strong>")
	assert.NotContains(t, html, "ZgotmplZ")

	for _, kind := range domain.KindNames() {
		assert.Contains(t, html, `data-kind="`+strings.ReplaceAll(kind, "&", "&amp;")+`"`)
	}
}
