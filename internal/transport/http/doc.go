// Package http implements the HTTP handlers of the UPL comparison service.
//
// Handlers stay thin: they parse the request, call a service from
// internal/services and turn the result into a response. Errors go through
// errors.ErrorHandler so every failure is an RFC 7807 problem document.
//
// Routes served by this package:
//
//	GET  /                         guide page with the Super Button form
//	POST /api/export               workbook from caller supplied datasets
//	GET  /api/export/sample        workbook from the built-in examples
//	GET  /api/guide/kinds          dataset kinds in workbook order
//	GET  /api/guide/tables         every example table with highlights
//	GET  /api/guide/tables/{kind}  one example table, JSON or CSV
//	GET  /api/guide/dummy-dataset  zip of per-round input files
//	GET  /api/health[/ready|/live] probes
//	GET  /api/version              build information
//	GET  /metrics                  Prometheus scrape endpoint
//
// A workbook request that selects no sheets answers 204 No Content and
// nothing is downloaded.
package http
