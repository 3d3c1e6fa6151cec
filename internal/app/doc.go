// Package app wires configuration, logging, telemetry, services and the chi
// router into one runnable HTTP application.
//
// # Initialization Flow
//
//  1. Load configuration from defaults, an optional YAML file and UPL_* env vars
//  2. Initialize logging and OpenTelemetry
//  3. Create the workbook exporter and the services over it
//  4. Set up HTTP handlers and middleware
//  5. Configure the HTTP server
//
// # Usage
//
//	a, err := app.NewApplication()
//	if err != nil {
//	    return err
//	}
//	return a.Run(ctx)
//
// # Graceful Shutdown
//
// Run returns after SIGINT, SIGTERM or cancellation of its context. In-flight
// requests get Server.ShutdownTimeout to finish and the telemetry providers
// are flushed. The package never calls os.Exit.
package app
