package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"uplcompare/internal/format"
	"uplcompare/internal/highlight"
	"uplcompare/internal/infrastructure"
	"uplcompare/pkg/contracts/domain"
)

const (
	// XLSXContentType is the media type of the exported workbook
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// DefaultFileName is the download name of the Super Button workbook
	DefaultFileName = "Super Button - UPL Comparison Round by Round.xlsx"

	// maxSheetRows is the row limit of an xlsx worksheet
	maxSheetRows = excelize.TotalRows
)

// Options configures the workbook export
type Options struct {
	FileName     string
	ColumnWidth  float64
	FreezeHeader bool
	// MaxRows caps data rows per sheet; 0 means the worksheet limit
	MaxRows int
}

// DefaultOptions returns the export options used by the guide page
func DefaultOptions() Options {
	return Options{
		FileName:     DefaultFileName,
		ColumnWidth:  format.ColumnWidth,
		FreezeHeader: true,
	}
}

// Artifact is a generated file held in memory
type Artifact struct {
	FileName    string
	ContentType string
	Sheets      []string
	Data        []byte
}

// Size returns the artifact length in bytes
func (a *Artifact) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}

// Summary describes the artifact without its content
func (a *Artifact) Summary() domain.ExportSummary {
	return domain.ExportSummary{
		FileName: a.FileName,
		Sheets:   append([]string(nil), a.Sheets...),
		Bytes:    a.Size(),
	}
}

// Workbook builds the multi-sheet Super Button export
type Workbook struct {
	opts   Options
	logger *slog.Logger
}

// NewWorkbook creates a workbook exporter
func NewWorkbook(opts Options, logger *slog.Logger) *Workbook {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.FileName == "" {
		opts.FileName = DefaultFileName
	}
	if opts.ColumnWidth <= 0 {
		opts.ColumnWidth = format.ColumnWidth
	}
	return &Workbook{
		opts:   opts,
		logger: infrastructure.WithComponent(logger, "workbook_exporter"),
	}
}

// Export writes one sheet per selected name, in selection order.
//
// An empty selection produces no artifact and no error. A selected name
// without a dataset is a caller error and fails before anything is built.
// Input datasets are only read.
func (w *Workbook) Export(ctx context.Context, datasets map[string]domain.Dataset, sheets []string) (*Artifact, error) {
	if len(sheets) == 0 {
		w.logger.DebugContext(ctx, "nothing to export")
		return nil, nil
	}

	plans, err := w.plan(datasets, sheets)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	styles := newStyleCache(f)
	defaultSheet := f.GetSheetName(0)

	for i, p := range plans {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if i == 0 {
			if err := f.SetSheetName(defaultSheet, p.name); err != nil {
				return nil, fmt.Errorf("failed to name sheet %q: %w", p.name, err)
			}
		} else if _, err := f.NewSheet(p.name); err != nil {
			return nil, fmt.Errorf("failed to create sheet %q: %w", p.name, err)
		}

		if err := w.writeSheet(f, styles, p); err != nil {
			return nil, fmt.Errorf("failed to write sheet %q: %w", p.name, err)
		}

		w.logger.DebugContext(ctx, "sheet written",
			slog.String("sheet", p.name),
			slog.Int("columns", len(p.columns)),
			slog.Int("rows", len(p.rows)))
	}
	f.SetActiveSheet(0)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	return &Artifact{
		FileName:    w.opts.FileName,
		ContentType: XLSXContentType,
		Sheets:      append([]string(nil), sheets...),
		Data:        buf.Bytes(),
	}, nil
}

// plan resolves and lays out every selected sheet before the workbook is created
func (w *Workbook) plan(datasets map[string]domain.Dataset, sheets []string) ([]sheetPlan, error) {
	seen := make(map[string]bool, len(sheets))
	plans := make([]sheetPlan, 0, len(sheets))

	limit := maxSheetRows - 1
	if w.opts.MaxRows > 0 && w.opts.MaxRows < limit {
		limit = w.opts.MaxRows
	}

	for _, name := range sheets {
		// Worksheet names are matched case-insensitively inside a workbook
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSheet, name)
		}
		seen[key] = true

		ds, ok := datasets[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrDatasetNotFound, name)
		}
		if err := ds.Validate(); err != nil {
			return nil, fmt.Errorf("%w: sheet %q: %v", ErrInvalidDataset, name, err)
		}
		if len(ds.Rows) > limit {
			return nil, fmt.Errorf("%w: sheet %q has %d rows, limit is %d",
				ErrInvalidDataset, name, len(ds.Rows), limit)
		}

		plans = append(plans, planSheet(name, ds))
	}
	return plans, nil
}

// sheetPlan is the fully decided content of one sheet
type sheetPlan struct {
	name    string
	columns []ColumnClass
	rows    [][]plannedCell
}

// plannedCell is a value with its number format and emphasis
type plannedCell struct {
	value    any
	numFmt   string
	emphasis format.Emphasis
}

// planSheet classifies columns, converts values and picks the highlight rule
// once for the whole sheet.
func planSheet(name string, ds domain.Dataset) sheetPlan {
	columns := ClassifyColumns(ds)
	rule := highlight.ForKind(domain.DatasetKind(name), ds.Columns, func(col int) bool {
		return columns[col].Numeric
	})

	rows := make([][]plannedCell, len(ds.Rows))
	for r := range ds.Rows {
		values := ds.Row(r)
		emphasis := rule.Classify(values)

		cells := make([]plannedCell, len(columns))
		for c, class := range columns {
			cells[c] = plannedCell{
				value:    cellValue(class, values[c]),
				numFmt:   class.NumberFormat(),
				emphasis: emphasis[c],
			}
		}
		rows[r] = cells
	}

	return sheetPlan{name: name, columns: columns, rows: rows}
}

// writeSheet writes the header, data rows, column widths and styles of p
func (w *Workbook) writeSheet(f *excelize.File, styles *styleCache, p sheetPlan) error {
	header := make([]any, len(p.columns))
	for c, class := range p.columns {
		header[c] = class.Name
	}
	if err := f.SetSheetRow(p.name, "A1", &header); err != nil {
		return err
	}

	lastCol, err := excelize.ColumnNumberToName(len(p.columns))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(p.name, "A", lastCol, w.opts.ColumnWidth); err != nil {
		return err
	}

	headerStyle, err := styles.get(styleKey{header: true})
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(p.name, "A1", lastCol+"1", headerStyle); err != nil {
		return err
	}

	for r, cells := range p.rows {
		for c, cell := range cells {
			ref, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if cell.value != nil {
				if err := f.SetCellValue(p.name, ref, cell.value); err != nil {
					return err
				}
			}

			styleID, err := styles.get(styleKey{numFmt: cell.numFmt, emphasis: cell.emphasis})
			if err != nil {
				return err
			}
			if styleID == 0 {
				continue
			}
			if err := f.SetCellStyle(p.name, ref, ref, styleID); err != nil {
				return err
			}
		}
	}

	if w.opts.FreezeHeader {
		if err := f.SetPanes(p.name, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return err
		}
	}
	return nil
}
