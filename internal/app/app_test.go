package app

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"uplcompare/internal/config"
	"uplcompare/internal/exporter"
	"uplcompare/internal/middleware"
	"uplcompare/internal/shared/testutil"
	"uplcompare/pkg/contracts/domain"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 0
	cfg.Security.RateLimit.Enabled = false
	cfg.Telemetry.EnableTracing = false
	return cfg
}

func newTestApp(t *testing.T, cfg *config.Config) *Application {
	t.Helper()
	a, err := New(cfg, testutil.Logger(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.OTelProviders.Shutdown(context.Background()) })
	return a
}

func serve(a *Application, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Handler.ServeHTTP(rec, req)
	return rec
}

func TestApplicationRoutes(t *testing.T) {
	a := newTestApp(t, testConfig())

	tests := []struct {
		name        string
		method      string
		path        string
		wantStatus  int
		contentType string
	}{
		{"guide page", http.MethodGet, "/", http.StatusOK, "text/html"},
		{"health", http.MethodGet, "/api/health", http.StatusOK, "application/json"},
		{"ready", http.MethodGet, "/api/health/ready", http.StatusOK, "application/json"},
		{"live", http.MethodGet, "/api/health/live", http.StatusOK, "application/json"},
		{"version", http.MethodGet, "/api/version", http.StatusOK, "application/json"},
		{"kinds", http.MethodGet, "/api/guide/kinds", http.StatusOK, "application/json"},
		{"tables", http.MethodGet, "/api/guide/tables", http.StatusOK, "application/json"},
		{"table", http.MethodGet, "/api/guide/tables/Bid%20%26%20Price%20Analysis", http.StatusOK, "application/json"},
		{"table csv", http.MethodGet, "/api/guide/tables/Merge%20Data?format=csv", http.StatusOK, "text/csv"},
		{"dummy", http.MethodGet, "/api/guide/dummy-dataset", http.StatusOK, exporter.ZipContentType},
		{"sample", http.MethodGet, "/api/export/sample", http.StatusOK, exporter.XLSXContentType},
		{"sample none", http.MethodGet, "/api/export/sample?sheet=", http.StatusNoContent, ""},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, "text/plain"},
		{"unknown route", http.MethodGet, "/api/nope", http.StatusNotFound, "application/json"},
		{"wrong method", http.MethodGet, "/api/export", http.StatusMethodNotAllowed, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(a, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.contentType != "" {
				assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			}
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestApplicationExport(t *testing.T) {
	a := newTestApp(t, testConfig())

	body, err := json.Marshal(domain.ExportRequest{
		Datasets: map[string]domain.Dataset{
			"Pivot Table": domain.NewDataset([]string{"Scope", "Vendor A"}, []any{"Site Survey", 15000}),
		},
		Sheets: []string{"Pivot Table"},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/export", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(a, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, exporter.XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Pivot Table"}, f.GetSheetList())

	metrics := serve(a, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, metrics.Body.String(), "export_requests_total")
}

func TestApplicationBodyLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.MaxBodyBytes = 16
	a := newTestApp(t, cfg)

	req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader(`{"sheets": ["Merge Data"], "datasets": {}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := serve(a, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestApplicationRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Security.RateLimit = config.RateLimitConfig{Enabled: true, RPS: 0.01, Burst: 1}
	a := newTestApp(t, cfg)

	first := serve(a, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	second := serve(a, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	// scrapes bypass the limiter
	assert.Equal(t, http.StatusOK, serve(a, httptest.NewRequest(http.MethodGet, "/metrics", nil)).Code)
}

func TestApplicationMetricsDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Telemetry.EnableMetrics = false
	a := newTestApp(t, cfg)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestApplicationRunStopsOnCancel(t *testing.T) {
	a := newTestApp(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
