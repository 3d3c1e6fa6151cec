package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uplcompare/internal/shared/testutil"
)

func TestFileValidator_ValidateInputFile(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		exts      []string
		wantErr   error
	}{
		{
			name: "valid json file",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "request.json")
				require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
				return file
			},
			exts: []string{".json"},
		},
		{
			name: "extension compared case-insensitively",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "REQUEST.JSON")
				require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
				return file
			},
			exts: []string{".json"},
		},
		{
			name: "any extension when none given",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "request.txt")
				require.NoError(t, os.WriteFile(file, []byte("{}"), 0o644))
				return file
			},
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.json")
			},
			wantErr: ErrFileNotFound,
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) string {
				return t.TempDir()
			},
			wantErr: ErrNotAFile,
		},
		{
			name: "wrong extension",
			setupFunc: func(t *testing.T) string {
				file := filepath.Join(t.TempDir(), "request.xlsx")
				require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
				return file
			},
			exts:    []string{".json"},
			wantErr: ErrExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewFileValidator(testutil.Logger(t))
			err := v.ValidateInputFile(tt.setupFunc(t), tt.exts...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFileValidator_ValidateOutputFile(t *testing.T) {
	logger, logs := testutil.NewTestLogger(t)
	v := NewFileValidator(logger)
	dir := t.TempDir()

	t.Run("creates parent directory", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "book.xlsx")
		require.NoError(t, v.ValidateOutputFile(path, ".xlsx"))
		assert.DirExists(t, filepath.Join(dir, "nested"))
		assert.NoFileExists(t, path)
	})

	t.Run("leaves no probe file behind", func(t *testing.T) {
		require.NoError(t, v.ValidateOutputDirectory(dir))
		matches, err := filepath.Glob(filepath.Join(dir, ".write_test_*"))
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("wrong extension", func(t *testing.T) {
		err := v.ValidateOutputFile(filepath.Join(dir, "book.csv"), ".xlsx")
		assert.ErrorIs(t, err, ErrExtension)
		assert.ErrorContains(t, err, "must end in .xlsx")
		assert.True(t, logs.ContainsMessage("Unexpected file extension"))
	})

	t.Run("directory at path", func(t *testing.T) {
		path := filepath.Join(dir, "taken.zip")
		require.NoError(t, os.Mkdir(path, 0o755))
		assert.ErrorIs(t, v.ValidateOutputFile(path, ".zip"), ErrNotAFile)
	})

	t.Run("parent is a file", func(t *testing.T) {
		parent := filepath.Join(dir, "plain")
		require.NoError(t, os.WriteFile(parent, []byte("x"), 0o644))
		assert.Error(t, v.ValidateOutputFile(filepath.Join(parent, "book.xlsx"), ".xlsx"))
	})
}
