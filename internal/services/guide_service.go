package services

import (
	"context"
	"io"
	"log/slog"

	apierrors "uplcompare/internal/errors"
	"uplcompare/internal/exporter"
	"uplcompare/internal/infrastructure"
	"uplcompare/internal/preview"
	"uplcompare/internal/samples"
	"uplcompare/pkg/contracts/domain"
)

// GuideService serves the example tables of the guide page
type GuideService struct {
	workbook *exporter.Workbook
	csv      *exporter.CSVWriter
	logger   *slog.Logger
}

// NewGuideService creates a guide service
func NewGuideService(workbook *exporter.Workbook, logger *slog.Logger) *GuideService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuideService{
		workbook: workbook,
		csv:      exporter.NewCSVWriter(logger),
		logger:   infrastructure.WithComponent(logger, "guide_service"),
	}
}

// Kinds lists the dataset kinds in guide order
func (s *GuideService) Kinds() []string {
	return domain.KindNames()
}

// Tables returns the display preview of every example dataset
func (s *GuideService) Tables() []preview.Table {
	kinds := domain.AllKinds()
	tables := make([]preview.Table, 0, len(kinds))
	for _, kind := range kinds {
		ds, _ := samples.Get(kind)
		tables = append(tables, preview.Build(kind, ds))
	}
	return tables
}

// Table returns the display preview of one example dataset
func (s *GuideService) Table(kind string) (preview.Table, error) {
	ds, err := s.dataset(kind)
	if err != nil {
		return preview.Table{}, err
	}
	return preview.Build(domain.DatasetKind(kind), ds), nil
}

// WriteCSV writes one example dataset as CSV. display selects the on-screen
// number formatting instead of raw values.
func (s *GuideService) WriteCSV(ctx context.Context, out io.Writer, kind string, display bool) error {
	ds, err := s.dataset(kind)
	if err != nil {
		return err
	}

	s.logger.DebugContext(ctx, "writing example as csv",
		slog.String("kind", kind),
		slog.Bool("display", display))

	return s.csv.WriteDataset(out, ds, exporter.WriteOptions{BOMPrefix: true, Display: display})
}

// DummyArchive builds the zip of per-round input workbooks behind the
// Merge Data example
func (s *GuideService) DummyArchive(ctx context.Context) (*exporter.Artifact, error) {
	artifact, err := s.workbook.DummyArchive(ctx, samples.MergeData())
	if err != nil {
		infrastructure.WithError(s.logger, err).ErrorContext(ctx, "dummy archive failed")
		return nil, apierrors.NewExportError("failed to build dummy archive", err)
	}
	return artifact, nil
}

// Page assembles the guide page
func (s *GuideService) Page(opts preview.PageOptions) preview.Page {
	return preview.NewPage(opts)
}

func (s *GuideService) dataset(kind string) (domain.Dataset, error) {
	ds, ok := samples.Get(domain.DatasetKind(kind))
	if !ok {
		return domain.Dataset{}, unknownKind(kind)
	}
	return ds, nil
}
