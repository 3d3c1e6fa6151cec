package validation

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// Errors returned by FileValidator
var (
	ErrFileNotFound = errors.New("file not found")
	ErrNotAFile     = errors.New("not a regular file")
	ErrExtension    = errors.New("unexpected file extension")
)

// FileValidator checks the files the superbutton CLI reads and writes
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateInputFile checks that path is a readable regular file. When exts
// is not empty the extension must be one of them, compared case-insensitively.
func (v *FileValidator) ValidateInputFile(path string, exts ...string) error {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		v.logger.Error("Input file does not exist",
			slog.String("file", path))
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		v.logger.Error("Failed to stat input file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat file %s: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		v.logger.Error("Input path is not a file",
			slog.String("path", path))
		return fmt.Errorf("%w: %s", ErrNotAFile, path)
	}
	if err := v.checkExtension(path, exts); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		v.logger.Error("Input file is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return fmt.Errorf("file %s is not readable: %w", path, err)
	}
	file.Close()

	v.logger.Debug("Input file validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ValidateOutputFile checks that path can receive a file with extension ext.
// The parent directory is created when missing; an existing directory at
// path is rejected.
func (v *FileValidator) ValidateOutputFile(path, ext string) error {
	if err := v.checkExtension(path, []string{ext}); err != nil {
		return err
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		v.logger.Error("Output path is a directory",
			slog.String("path", path))
		return fmt.Errorf("%w: %s is a directory", ErrNotAFile, path)
	}

	return v.ValidateOutputDirectory(filepath.Dir(path))
}

// ValidateOutputDirectory ensures output directory exists or can be created
func (v *FileValidator) ValidateOutputDirectory(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	probe, err := os.CreateTemp(dir, ".write_test_*")
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	probe.Close()
	os.Remove(probe.Name())

	v.logger.Debug("Output directory validated",
		slog.String("directory", dir))
	return nil
}

func (v *FileValidator) checkExtension(path string, exts []string) error {
	if len(exts) == 0 {
		return nil
	}
	ext := strings.ToLower(filepath.Ext(path))
	if slices.ContainsFunc(exts, func(want string) bool { return strings.EqualFold(want, ext) }) {
		return nil
	}

	v.logger.Error("Unexpected file extension",
		slog.String("file", path),
		slog.String("extension", ext),
		slog.Any("allowed", exts))
	return fmt.Errorf("%w: %s must end in %s", ErrExtension, path, strings.Join(exts, " or "))
}
