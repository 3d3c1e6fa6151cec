package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"

	"uplcompare/internal/format"
	"uplcompare/internal/infrastructure"
	"uplcompare/pkg/contracts/domain"
)

// utf8BOM lets spreadsheet applications detect UTF-8
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVWriter exports a single dataset as CSV
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: infrastructure.WithComponent(logger, "csv_writer")}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
	// Display renders numbers as the guide page shows them (73.230)
	// instead of their plain value (73230)
	Display bool
}

// WriteDataset writes the header and every row of ds to out
func (w *CSVWriter) WriteDataset(out io.Writer, ds domain.Dataset, options WriteOptions) error {
	if err := ds.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDataset, err)
	}

	w.logger.Debug("Writing CSV",
		slog.Int("column_count", ds.Width()),
		slog.Int("record_count", len(ds.Rows)),
		slog.Bool("display", options.Display))

	stream, err := NewStreamWriter(out, ds.Columns, options.BOMPrefix)
	if err != nil {
		return err
	}

	record := make([]string, ds.Width())
	for r := range ds.Rows {
		for c, v := range ds.Row(r) {
			record[c] = csvField(v, options.Display)
		}
		if err := stream.WriteRecord(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", r, err)
		}
	}
	return stream.Close()
}

// csvField renders one cell; empty and non-finite values become empty fields
func csvField(v domain.Value, display bool) string {
	if display {
		return format.Amount(v)
	}
	if v.IsNumber() {
		if _, ok := format.Coerce(v); !ok {
			return ""
		}
	}
	return v.String()
}

// StreamWriter provides streaming CSV writing for large datasets
type StreamWriter struct {
	writer *csv.Writer
}

// NewStreamWriter writes the optional BOM and headers and returns a
// writer for the records that follow.
func NewStreamWriter(out io.Writer, headers []string, bom bool) (*StreamWriter, error) {
	if bom {
		if _, err := out.Write(utf8BOM); err != nil {
			return nil, fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(out)
	if len(headers) > 0 {
		if err := writer.Write(headers); err != nil {
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}
	return &StreamWriter{writer: writer}, nil
}

// WriteRecord writes a single record to the stream
func (s *StreamWriter) WriteRecord(record []string) error {
	return s.writer.Write(record)
}

// Close flushes the stream writer
func (s *StreamWriter) Close() error {
	s.writer.Flush()
	return s.writer.Error()
}
