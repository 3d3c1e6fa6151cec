package exporter

import "errors"

var (
	// ErrDatasetNotFound means a selected sheet has no dataset.
	// It is a caller contract violation, never silently skipped.
	ErrDatasetNotFound = errors.New("dataset not found for selected sheet")

	// ErrInvalidDataset means a dataset cannot be laid out as a sheet
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrDuplicateSheet means the same sheet was selected twice, ignoring case
	ErrDuplicateSheet = errors.New("sheet selected more than once")
)
