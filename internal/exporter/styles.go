package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"uplcompare/internal/format"
)

// styleKey identifies one combination of number format and emphasis
type styleKey struct {
	numFmt   string
	emphasis format.Emphasis
	header   bool
}

// styleCache creates workbook styles lazily, one per distinct key
type styleCache struct {
	f   *excelize.File
	ids map[styleKey]int
}

func newStyleCache(f *excelize.File) *styleCache {
	return &styleCache{f: f, ids: make(map[styleKey]int)}
}

// get returns the style id of key; 0 is the workbook default style
func (c *styleCache) get(key styleKey) (int, error) {
	if key == (styleKey{}) {
		return 0, nil
	}
	if id, ok := c.ids[key]; ok {
		return id, nil
	}

	id, err := c.f.NewStyle(newStyle(key))
	if err != nil {
		return 0, fmt.Errorf("failed to create style %s/%q: %w", key.emphasis, key.numFmt, err)
	}
	c.ids[key] = id
	return id, nil
}

// newStyle translates a key into an excelize style using the shared palette
func newStyle(key styleKey) *excelize.Style {
	st := &excelize.Style{}

	if key.numFmt != "" {
		numFmt := key.numFmt
		st.CustomNumFmt = &numFmt
	}

	if key.header {
		st.Font = &excelize.Font{Bold: true}
		st.Alignment = &excelize.Alignment{Vertical: "center", WrapText: true}
	}

	if sw, ok := format.SwatchFor(key.emphasis); ok {
		st.Fill = excelize.Fill{Type: "pattern", Color: []string{sw.Fill}, Pattern: 1}
		st.Font = &excelize.Font{Bold: sw.Bold, Color: sw.Font}
	}

	return st
}
