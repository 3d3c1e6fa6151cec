package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{"without cause", NewExportError("build failed", nil), "[EXPORT] build failed"},
		{"with cause", NewStorageError("failed to write workbook", cause), "[STORAGE] failed to write workbook: disk full"},
		{"not found", NewNotFoundError(`dataset kind "Summary"`, nil), `[NOT_FOUND] dataset kind "Summary" not found`},
		{"input", NewInputError("failed to decode export request", cause), "[INPUT] failed to decode export request: disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root")
	err := NewExportError("wrapped", cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	assert.True(t, errors.As(error(err), &appErr))
	assert.Equal(t, ErrTypeExport, appErr.Type)
}

func TestAppError_WithContext(t *testing.T) {
	err := NewInputError("bad file", nil).
		WithContext("path", "in.csv").
		WithContext("line", 3)

	assert.Equal(t, "in.csv", err.Context["path"])
	assert.Equal(t, 3, err.Context["line"])

	bare := &AppError{Type: ErrTypeInput}
	bare.WithContext("k", "v")
	assert.Equal(t, "v", bare.Context["k"])
}
