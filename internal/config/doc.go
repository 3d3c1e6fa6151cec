// Package config provides configuration management for the UPL comparison
// service. It loads configuration from multiple sources, validates it, and
// provides a type-safe API for the rest of the application.
//
// # Configuration Sources
//
// Sources are applied in this order, each overriding the previous one:
//
//  1. Default values (Default)
//  2. A YAML config file: $UPL_CONFIG_FILE, config.yaml or configs/config.yaml
//  3. Environment variables (highest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern UPL_<SECTION>_<FIELD>:
//
//	UPL_SERVER_PORT=8080
//	UPL_LOGGING_LEVEL=debug
//	UPL_EXPORT_FILE_NAME="Round Review.xlsx"
//	UPL_EXPORT_MAX_ROWS_PER_SHEET=50000
//	UPL_TELEMETRY_TRACE_EXPORTER=none
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Tests and the CLI start from Default, which needs no environment.
package config
