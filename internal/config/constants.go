package config

import (
	"time"

	"uplcompare/pkg/contracts"
)

// Application constants
const (
	AppName    = "uplcompare"
	AppVersion = contracts.Version

	// Server
	DefaultRequestTimeout = 60 * time.Second
	DefaultMaxBodyBytes   = 16 << 20 // 16MB of JSON datasets

	// Rate Limiting
	DefaultRateLimit = 20 // requests per second
	DefaultBurstSize = 40

	// Log Settings
	DefaultLogLevel = "info"
	DefaultLogFile  = "logs/app.log"

	// Export
	DefaultExportFileName = "Super Button - UPL Comparison Round by Round.xlsx"
	DefaultColumnWidth    = 15.0
)

// API routes
const (
	APIBasePath         = "/api"
	HealthEndpoint      = "/api/health"
	ExportEndpoint      = "/api/export"
	SampleEndpoint      = "/api/export/sample"
	DummyEndpoint       = "/api/guide/dummy-dataset"
	GuideTablesEndpoint = "/api/guide/tables"
	MetricsEndpoint     = "/metrics"
)
