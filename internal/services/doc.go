// Package services sits between the HTTP handlers or the CLI and the export
// packages. It owns the cross-cutting parts of an export: structured logging,
// OpenTelemetry spans and the export metrics.
//
// # Services
//
//	ExportService  Super Button workbook from caller data or the examples
//	GuideService   example tables, CSV downloads, dummy input archive
//	HealthService  health, readiness, liveness and version
//
// Constructors take a *slog.Logger and narrow it with a component
// attribute. Errors from the exporter are returned unchanged so the HTTP
// layer can map them to problem responses; names outside the four dataset
// kinds fail with ErrUnknownKind.
package services
