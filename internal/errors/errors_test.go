package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	err := New(http.StatusBadRequest, CodeInvalidRequest, "bad body")
	assert.Equal(t, "bad body", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Nil(t, err.Details)
}

func TestAPIError_Render(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, render.Render(rec, req, ErrRateLimitExceeded))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, CodeRateLimited, body["error_code"])
	assert.NotContains(t, body, "details")
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		status int
		code   string
	}{
		{"invalid request", InvalidRequestWithError(assert.AnError), http.StatusBadRequest, CodeInvalidRequest},
		{"field validation", ErrValidation("sheets", "sheets is required"), http.StatusBadRequest, CodeValidationFailed},
		{"not found", NotFoundError("dataset kind"), http.StatusNotFound, CodeNotFound},
		{"unknown sheet", UnknownSheetError("Summary", []string{"Merge Data"}), http.StatusUnprocessableEntity, CodeUnknownSheet},
		{"many fields", NewValidationErrors([]ValidationError{{Field: "a"}, {Field: "b"}}), http.StatusBadRequest, CodeValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.StatusCode)
			assert.Equal(t, tt.code, tt.err.ErrorCode)
			assert.NotNil(t, tt.err.Details)
		})
	}

	assert.Equal(t, "dataset kind not found", NotFoundError("dataset kind").Message)
	assert.Equal(t, `No dataset for sheet "Summary"`, UnknownSheetError("Summary", nil).Message)

	details, ok := ErrValidation("sheets", "required").Details.(ValidationErrors)
	require.True(t, ok)
	assert.Equal(t, []ValidationError{{Field: "sheets", Message: "required"}}, details.Errors)
}

func TestProblemDetails_MarshalJSON(t *testing.T) {
	problem := NewProblemDetails(http.StatusUnprocessableEntity, TypeDatasetNotFound, "Dataset Not Found", "no data", "/api/export").
		WithExtension("trace_id", "abc").
		WithExtension("status", 999)

	data, err := json.Marshal(problem)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.Equal(t, TypeDatasetNotFound, body["type"])
	assert.Equal(t, "Dataset Not Found", body["title"])
	assert.Equal(t, float64(http.StatusUnprocessableEntity), body["status"], "extensions never replace standard members")
	assert.Equal(t, "no data", body["detail"])
	assert.Equal(t, "/api/export", body["instance"])
	assert.Equal(t, "abc", body["trace_id"])
}

func TestProblemDetails_OmitsEmptyMembers(t *testing.T) {
	var problem ProblemDetails
	problem.WithExtension("k", "v")

	data, err := json.Marshal(&problem)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(data, &body))
	assert.NotContains(t, body, "detail")
	assert.NotContains(t, body, "instance")
	assert.Equal(t, "v", body["k"])
}
