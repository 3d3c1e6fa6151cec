package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplcompare/internal/exporter"
	"uplcompare/internal/preview"
	"uplcompare/internal/shared/testutil"
	"uplcompare/pkg/contracts/domain"
)

func newGuideService(t *testing.T) *GuideService {
	t.Helper()
	logger := testutil.Logger(t)
	return NewGuideService(exporter.NewWorkbook(exporter.DefaultOptions(), logger), logger)
}

func TestGuideServiceTables(t *testing.T) {
	svc := newGuideService(t)

	assert.Equal(t, domain.KindNames(), svc.Kinds())

	tables := svc.Tables()
	require.Len(t, tables, 4)
	for i, kind := range domain.KindNames() {
		assert.Equal(t, kind, tables[i].Kind)
		assert.NotEmpty(t, tables[i].Rows)
	}

	table, err := svc.Table(string(domain.KindPivotTable))
	require.NoError(t, err)
	assert.Equal(t, tables[1], table)

	_, err = svc.Table("Summary")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestGuideServiceWriteCSV(t *testing.T) {
	svc := newGuideService(t)

	tests := []struct {
		name    string
		display bool
		want    string
	}{
		{name: "raw", display: false, want: "15000"},
		{name: "display", display: true, want: "15.000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, svc.WriteCSV(context.Background(), &buf, string(domain.KindMergeData), tt.display))

			body := bytes.TrimPrefix(buf.Bytes(), []byte{0xEF, 0xBB, 0xBF})
			records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
			require.NoError(t, err)
			assert.Equal(t, []string{"ROUND", "VENDOR", "Scope", "PRICE"}, records[0])
			assert.Equal(t, tt.want, records[1][3])
		})
	}

	err := svc.WriteCSV(context.Background(), &bytes.Buffer{}, "nope", false)
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestGuideServiceDummyArchive(t *testing.T) {
	svc := newGuideService(t)

	artifact, err := svc.DummyArchive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, exporter.DummyArchiveName, artifact.FileName)
	assert.Equal(t, exporter.ZipContentType, artifact.ContentType)

	zr, err := zip.NewReader(bytes.NewReader(artifact.Data), int64(len(artifact.Data)))
	require.NoError(t, err)
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, artifact.Sheets, names)
	assert.NotEmpty(t, names)
}

func TestGuideServicePage(t *testing.T) {
	svc := newGuideService(t)

	page := svc.Page(preview.PageOptions{ExportURL: "/api/export/sample", Selected: []string{string(domain.KindMergeData)}})
	require.Len(t, page.Kinds, 4)
	assert.True(t, page.Kinds[0].Selected)
	assert.False(t, page.Kinds[1].Selected)
	assert.Equal(t, exporter.DefaultFileName, page.FileName)
}
