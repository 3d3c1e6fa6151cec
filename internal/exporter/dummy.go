package exporter

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/xuri/excelize/v2"

	"uplcompare/internal/highlight"
	"uplcompare/pkg/contracts/domain"
)

const (
	// DummyArchiveName is the download name of the dummy input dataset
	DummyArchiveName = "Dummy Dataset - UPL Comparison Round by Round.zip"

	// ZipContentType is the media type of the dummy archive
	ZipContentType = "application/zip"

	roundColumn  = "ROUND"
	vendorColumn = "VENDOR"
)

// roundFile is the input workbook of one round: one sheet per vendor
type roundFile struct {
	name    string
	vendors []string
	sheets  map[string][][]domain.Value
}

// DummyArchive rebuilds the per-round input workbooks a user would upload
// from a merged dataset. Each round becomes "<round>.xlsx" holding one sheet
// per vendor with every column except ROUND and VENDOR. TOTAL rows are left
// out because the merge step generates them.
func (w *Workbook) DummyArchive(ctx context.Context, merge domain.Dataset) (*Artifact, error) {
	rounds, columns, err := splitRounds(merge)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, round := range rounds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := writeRoundFile(round, columns)
		if err != nil {
			return nil, fmt.Errorf("failed to build %s: %w", round.name, err)
		}

		entry, err := zw.Create(round.name)
		if err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", round.name, err)
		}
		if _, err := entry.Write(data); err != nil {
			return nil, fmt.Errorf("failed to add %s to archive: %w", round.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close archive: %w", err)
	}

	names := make([]string, len(rounds))
	for i, r := range rounds {
		names[i] = r.name
	}

	w.logger.InfoContext(ctx, "dummy archive built",
		slog.Any("files", names),
		slog.Int("bytes", buf.Len()))

	return &Artifact{
		FileName:    DummyArchiveName,
		ContentType: ZipContentType,
		Sheets:      names,
		Data:        buf.Bytes(),
	}, nil
}

// splitRounds groups the rows of a merged dataset by round and vendor,
// keeping first-appearance order for both.
func splitRounds(merge domain.Dataset) ([]*roundFile, []string, error) {
	if err := merge.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	roundIdx, hasRound := merge.ColumnIndex(roundColumn)
	vendorIdx, hasVendor := merge.ColumnIndex(vendorColumn)
	if !hasRound || !hasVendor {
		return nil, nil, fmt.Errorf("%w: merged dataset needs %s and %s columns",
			ErrInvalidDataset, roundColumn, vendorColumn)
	}

	var keep []int
	var columns []string
	for i, name := range merge.Columns {
		if i == roundIdx || i == vendorIdx {
			continue
		}
		keep = append(keep, i)
		columns = append(columns, name)
	}
	if len(columns) == 0 {
		return nil, nil, fmt.Errorf("%w: merged dataset has no data columns", ErrInvalidDataset)
	}

	var rounds []*roundFile
	byName := make(map[string]*roundFile)

	for r := range merge.Rows {
		row := merge.Row(r)
		if highlight.IsTotalRow(row) {
			continue
		}

		roundName := strings.TrimSpace(row[roundIdx].String())
		vendor := strings.TrimSpace(row[vendorIdx].String())
		if roundName == "" || vendor == "" {
			return nil, nil, fmt.Errorf("%w: row %d has no round or vendor", ErrInvalidDataset, r+1)
		}
		if strings.ContainsAny(roundName, `/\`) {
			return nil, nil, fmt.Errorf("%w: round name %q is not a valid file name", ErrInvalidDataset, roundName)
		}

		rf, ok := byName[roundName]
		if !ok {
			rf = &roundFile{name: roundName + ".xlsx", sheets: make(map[string][][]domain.Value)}
			byName[roundName] = rf
			rounds = append(rounds, rf)
		}
		if _, ok := rf.sheets[vendor]; !ok {
			rf.vendors = append(rf.vendors, vendor)
		}

		values := make([]domain.Value, len(keep))
		for i, c := range keep {
			values[i] = row[c]
		}
		rf.sheets[vendor] = append(rf.sheets[vendor], values)
	}
	return rounds, columns, nil
}

// writeRoundFile renders one round workbook with plain, unstyled cells
func writeRoundFile(round *roundFile, columns []string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	header := make([]any, len(columns))
	for i, name := range columns {
		header[i] = name
	}

	for i, vendor := range round.vendors {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, vendor); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(vendor); err != nil {
			return nil, err
		}

		if err := f.SetSheetRow(vendor, "A1", &header); err != nil {
			return nil, err
		}
		for r, values := range round.sheets[vendor] {
			cells := make([]any, len(values))
			for c, v := range values {
				if n, ok := numberOf(v); ok {
					cells[c] = n
				} else if v.IsText() {
					cells[c] = v.Text
				}
			}
			ref, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(vendor, ref, &cells); err != nil {
				return nil, err
			}
		}
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// numberOf returns v as a number only when it already is a finite one
func numberOf(v domain.Value) (float64, bool) {
	if !v.IsNumber() || math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
		return 0, false
	}
	return v.Number, true
}
