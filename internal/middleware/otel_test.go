package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"uplcompare/internal/infrastructure"
)

func TestOTelMiddlewareRecordsRoute(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	metrics, err := infrastructure.CreateBusinessMetrics(mp.Meter("test"))
	require.NoError(t, err)

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	defer tp.Shutdown(context.Background())

	r := chi.NewRouter()
	r.Use(NewOTelMiddleware(metrics).Handler)
	r.Get("/api/guide/tables/{kind}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/guide/tables/bid", nil)
	ctx, span := tp.Tracer("test").Start(req.Context(), "server")
	r.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))
	span.End()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "http_requests_total" {
				continue
			}
			sum := m.Data.(metricdata.Sum[int64])
			require.Len(t, sum.DataPoints, 1)
			route, ok := sum.DataPoints[0].Attributes.Value(attribute.Key("route"))
			require.True(t, ok)
			assert.Equal(t, "/api/guide/tables/{kind}", route.AsString())
			status, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("status_code"))
			assert.Equal(t, int64(http.StatusTeapot), status.AsInt64())
			found = true
		}
	}
	assert.True(t, found, "http_requests_total not recorded")

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "GET /api/guide/tables/{kind}", ended[0].Name())
}

func TestRequestIDPrefersSpanTraceID(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	var seen string
	handler := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "client-id")
	ctx, span := tp.Tracer("test").Start(req.Context(), "server")
	defer span.End()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req.WithContext(ctx))

	assert.Equal(t, span.SpanContext().TraceID().String(), seen)
	assert.Equal(t, "client-id", rec.Header().Get(RequestIDHeader))
}
