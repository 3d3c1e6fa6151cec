package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplcompare/internal/exporter"
	"uplcompare/internal/infrastructure"
	"uplcompare/internal/shared/testutil"
)

func decodeProblem(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body
}

func validationErr(t *testing.T) error {
	t.Helper()
	type request struct {
		Sheets []string `validate:"required,min=1"`
	}
	err := validator.New().Struct(request{})
	require.Error(t, err)
	return err
}

func TestErrorHandler_HandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantType   string
	}{
		{"dataset not found", fmt.Errorf("%w: %q", exporter.ErrDatasetNotFound, "Summary"), http.StatusUnprocessableEntity, TypeDatasetNotFound},
		{"invalid dataset", fmt.Errorf("%w: ragged row", exporter.ErrInvalidDataset), http.StatusUnprocessableEntity, TypeInvalidDataset},
		{"duplicate sheet", fmt.Errorf("%w: %q", exporter.ErrDuplicateSheet, "Bid"), http.StatusBadRequest, TypeDuplicateSheet},
		{"api error", UnknownSheetError("Summary", nil), http.StatusUnprocessableEntity, TypeDatasetNotFound},
		{"validator", validationErr(t), http.StatusBadRequest, TypeValidation},
		{"payload too large", &http.MaxBytesError{Limit: 10}, http.StatusRequestEntityTooLarge, TypePayloadTooLarge},
		{"deadline", fmt.Errorf("export: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, TypeTimeout},
		{"app not found", NewNotFoundError("dataset kind", nil), http.StatusNotFound, TypeNotFound},
		{"app input", NewInputError("unreadable", nil), http.StatusBadRequest, TypeValidation},
		{"app export", NewExportError("boom", errors.New("zip: write failed")), http.StatusInternalServerError, TypeExport},
		{"app export wrapping sentinel", NewExportError("failed to build workbook", fmt.Errorf("%w: %q", exporter.ErrDatasetNotFound, "Summary")), http.StatusUnprocessableEntity, TypeDatasetNotFound},
		{"app storage", NewStorageError("failed to write output", nil), http.StatusInternalServerError, TypeInternal},
		{"plain", fmt.Errorf("something broke"), http.StatusInternalServerError, TypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewErrorHandler(testutil.Logger(t), false)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/export", nil)

			h.HandleError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeProblem(t, rec)
			assert.Equal(t, tt.wantType, body["type"])
			assert.Equal(t, float64(tt.wantStatus), body["status"])
			assert.Equal(t, "/api/export", body["instance"])
			assert.NotContains(t, body, "stack")
		})
	}
}

func TestErrorHandler_HandleErrorNil(t *testing.T) {
	h := NewErrorHandler(nil, false)
	rec := httptest.NewRecorder()
	h.HandleError(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	assert.Zero(t, rec.Body.Len())
}

func TestErrorHandler_InternalDetailIsGeneric(t *testing.T) {
	h := NewErrorHandler(testutil.Logger(t), true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(infrastructure.WithTraceID(req.Context(), "trace-1"))

	h.HandleError(rec, req, fmt.Errorf("password=hunter2"))

	body := decodeProblem(t, rec)
	assert.NotContains(t, body["detail"], "hunter2")
	assert.Equal(t, "trace-1", body["trace_id"])
	assert.Contains(t, body, "stack")
}

func TestErrorHandler_ValidationFields(t *testing.T) {
	h := NewErrorHandler(testutil.Logger(t), false)
	problem := h.ErrorToProblem(validationErr(t), httptest.NewRequest(http.MethodPost, "/", nil))

	fields, ok := problem.Extensions["errors"].([]ValidationError)
	require.True(t, ok)
	require.Len(t, fields, 1)
	assert.Equal(t, "Sheets", fields[0].Field)
	assert.Contains(t, fields[0].Message, "required")
}

func TestErrorHandler_APIErrorDetails(t *testing.T) {
	h := NewErrorHandler(testutil.Logger(t), false)
	rec := httptest.NewRecorder()

	h.HandleError(rec, httptest.NewRequest(http.MethodPost, "/api/export", nil),
		UnknownSheetError("Summary", []string{"Merge Data"}))

	body := decodeProblem(t, rec)
	assert.Equal(t, CodeUnknownSheet, body["error_code"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Summary", details["sheet"])
}

func TestErrorHandler_AppErrorContext(t *testing.T) {
	h := NewErrorHandler(testutil.Logger(t), false)
	rec := httptest.NewRecorder()

	err := NewNotFoundError(`dataset kind "Summary"`, nil).
		WithContext("kind", "Summary").
		WithContext("available", []string{"Merge Data"})
	h.HandleError(rec, httptest.NewRequest(http.MethodGet, "/api/guide/tables/Summary", nil), fmt.Errorf("guide: %w", err))

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, `dataset kind "Summary" not found`, body["detail"])
	assert.Equal(t, "Summary", body["kind"])
	assert.Equal(t, []any{"Merge Data"}, body["available"])
}

func TestErrorHandler_ExportDetailIsGeneric(t *testing.T) {
	h := NewErrorHandler(testutil.Logger(t), false)
	problem := h.ErrorToProblem(NewExportError("failed to build workbook", errors.New("/tmp/x: disk full")),
		httptest.NewRequest(http.MethodPost, "/api/export", nil))

	assert.Equal(t, http.StatusInternalServerError, problem.Status)
	assert.NotContains(t, problem.Detail, "disk full")
}

func TestErrorHandler_HandlePanic(t *testing.T) {
	logger, handler := testutil.NewTestLogger(t)
	h := NewErrorHandler(logger, true)
	rec := httptest.NewRecorder()

	h.HandlePanic(rec, httptest.NewRequest(http.MethodGet, "/boom", nil), "kaboom")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeProblem(t, rec)
	assert.Equal(t, TypeInternal, body["type"])
	assert.Equal(t, "kaboom", body["panic"])
	testutil.AssertLogContains(t, handler, slog.LevelError, "panic recovered")
}

func TestErrorHandler_NotFoundAndMethodNotAllowed(t *testing.T) {
	h := NewErrorHandler(testutil.Logger(t), false)

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, TypeNotFound, decodeProblem(t, rec)["type"])

	rec = httptest.NewRecorder()
	h.MethodNotAllowed(rec, httptest.NewRequest(http.MethodDelete, "/api/export", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, decodeProblem(t, rec)["detail"], "DELETE")
}
