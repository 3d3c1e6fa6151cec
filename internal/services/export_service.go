package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	apierrors "uplcompare/internal/errors"
	"uplcompare/internal/exporter"
	"uplcompare/internal/infrastructure"
	"uplcompare/internal/samples"
	"uplcompare/pkg/contracts/domain"
)

// Export sources recorded on metrics and spans
const (
	SourceRequest = "request"
	SourceSample  = "sample"
)

// ExportService runs the Super Button export with logging, metrics and tracing
type ExportService struct {
	workbook *exporter.Workbook
	metrics  *infrastructure.BusinessMetrics
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewExportService creates an export service. metrics may be nil; a nil
// tracer falls back to a no-op tracer.
func NewExportService(workbook *exporter.Workbook, metrics *infrastructure.BusinessMetrics, tracer trace.Tracer, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer(infrastructure.MeterName)
	}
	return &ExportService{
		workbook: workbook,
		metrics:  metrics,
		tracer:   tracer,
		logger:   infrastructure.WithComponent(logger, "export_service"),
	}
}

// Export builds the workbook for a caller supplied request. A nil artifact
// with a nil error means nothing was selected.
func (s *ExportService) Export(ctx context.Context, req domain.ExportRequest) (*exporter.Artifact, error) {
	return s.run(ctx, SourceRequest, req.Datasets, req.Sheets)
}

// ExportSamples builds the workbook over the built-in example datasets.
// Every name must be a known dataset kind.
func (s *ExportService) ExportSamples(ctx context.Context, sheets []string) (*exporter.Artifact, error) {
	known := domain.KindNames()
	for _, name := range sheets {
		if !slices.Contains(known, name) {
			return nil, unknownKind(name)
		}
	}
	return s.run(ctx, SourceSample, samples.All(), sheets)
}

// ReadRequest decodes a JSON export request, as stored by the CLI
func (s *ExportService) ReadRequest(r io.Reader) (domain.ExportRequest, error) {
	var req domain.ExportRequest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return domain.ExportRequest{}, apierrors.NewInputError("failed to decode export request",
			fmt.Errorf("%w: %v", ErrInvalidInput, err))
	}
	return req, nil
}

func (s *ExportService) run(ctx context.Context, source string, datasets map[string]domain.Dataset, sheets []string) (*exporter.Artifact, error) {
	ctx, span := s.tracer.Start(ctx, "export.workbook", trace.WithAttributes(
		attribute.String("export.source", source),
		attribute.StringSlice("export.sheets", sheets),
	))
	defer span.End()

	s.logger.InfoContext(ctx, "export started",
		slog.String("source", source),
		slog.Any("sheets", sheets))

	start := time.Now()
	artifact, err := s.workbook.Export(ctx, datasets, sheets)
	duration := time.Since(start)

	outcome := infrastructure.ExportOutcome{
		Source:   source,
		Duration: duration,
		Err:      err,
	}
	if artifact != nil {
		outcome.Sheets = len(artifact.Sheets)
		outcome.Bytes = artifact.Size()
	}
	infrastructure.RecordExportMetrics(ctx, s.metrics, outcome)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		infrastructure.WithError(s.logger, err).WarnContext(ctx, "export failed",
			slog.String("source", source),
			slog.Duration("duration", duration))
		return nil, apierrors.NewExportError("failed to build workbook", err)
	}

	if artifact == nil {
		s.logger.InfoContext(ctx, "export skipped, no sheets selected",
			slog.String("source", source))
		return nil, nil
	}

	span.SetAttributes(attribute.Int("export.bytes", artifact.Size()))
	s.logger.InfoContext(ctx, "export completed",
		slog.String("source", source),
		slog.Any("sheets", artifact.Sheets),
		slog.Int("bytes", artifact.Size()),
		slog.Duration("duration", duration))

	return artifact, nil
}
