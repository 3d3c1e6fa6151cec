package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"uplcompare/internal/exporter"
	"uplcompare/internal/infrastructure"
	"uplcompare/internal/samples"
	"uplcompare/pkg/contracts"
	"uplcompare/pkg/contracts/domain"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	buildTime string
	workbook  *exporter.Workbook
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                   `json:"status"`
	Timestamp time.Time                `json:"timestamp"`
	Version   string                   `json:"version"`
	Runtime   *RuntimeStats            `json:"runtime,omitempty"`
	Services  map[string]ServiceHealth `json:"services,omitempty"`
}

// ServiceHealth represents individual service health
type ServiceHealth struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// RuntimeStats describes the running process
type RuntimeStats struct {
	UptimeSeconds float64 `json:"uptime_seconds"`
	Goroutines    int     `json:"goroutines"`
	HeapAllocMB   float64 `json:"heap_alloc_mb"`
	NumGC         uint32  `json:"num_gc"`
	GoVersion     string  `json:"go_version"`
	OS            string  `json:"os"`
	Arch          string  `json:"arch"`
}

// VersionInfo is returned by the version endpoint
type VersionInfo struct {
	Version    string    `json:"version"`
	BuildTime  string    `json:"build_time,omitempty"`
	GitCommit  string    `json:"git_commit,omitempty"`
	DataFormat string    `json:"data_format"`
	GoVersion  string    `json:"go_version"`
	OS         string    `json:"os"`
	Arch       string    `json:"arch"`
	StartTime  time.Time `json:"start_time"`
	Uptime     float64   `json:"uptime_seconds"`
}

// NewHealthService creates a new health service. workbook is checked by the
// readiness probe.
func NewHealthService(version, buildTime string, workbook *exporter.Workbook, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("HealthService initialized",
		slog.String("version", version),
		slog.String("build_time", buildTime))

	return &HealthService{
		version:   version,
		buildTime: buildTime,
		workbook:  workbook,
		startTime: time.Now(),
		logger:    infrastructure.WithComponent(logger, "health_service"),
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
	}

	hs.logger.DebugContext(ctx, "health check completed",
		slog.String("status", status.Status),
		slog.Duration("uptime", time.Since(hs.startTime)))

	return status
}

// ReadinessCheck reports whether exports can be served
func (hs *HealthService) ReadinessCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ready",
		Timestamp: time.Now(),
		Version:   hs.version,
		Services: map[string]ServiceHealth{
			"exporter": hs.checkExporter(),
			"samples":  hs.checkSamples(),
		},
	}

	for name, service := range status.Services {
		if service.Status != "ready" {
			status.Status = "not_ready"
			hs.logger.WarnContext(ctx, "service not ready",
				slog.String("service", name),
				slog.String("message", service.Message))
		}
	}

	return status
}

// LivenessCheck returns liveness status
func (hs *HealthService) LivenessCheck(ctx context.Context) HealthStatus {
	stats := hs.RuntimeStats()
	return HealthStatus{
		Status:    "alive",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime:   &stats,
	}
}

// RuntimeStats samples the Go runtime
func (hs *HealthService) RuntimeStats() RuntimeStats {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return RuntimeStats{
		UptimeSeconds: time.Since(hs.startTime).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
		HeapAllocMB:   float64(mem.HeapAlloc) / 1024 / 1024,
		NumGC:         mem.NumGC,
		GoVersion:     runtime.Version(),
		OS:            runtime.GOOS,
		Arch:          runtime.GOARCH,
	}
}

// Version returns version information
func (hs *HealthService) Version() VersionInfo {
	return VersionInfo{
		Version:    hs.version,
		BuildTime:  hs.buildTime,
		GitCommit:  contracts.GitCommit,
		DataFormat: contracts.DataFormatVersion,
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
		StartTime:  hs.startTime,
		Uptime:     time.Since(hs.startTime).Seconds(),
	}
}

func (hs *HealthService) checkExporter() ServiceHealth {
	if hs.workbook == nil {
		return ServiceHealth{
			Status:  "not_ready",
			Message: "workbook exporter not initialized",
		}
	}
	return ServiceHealth{Status: "ready"}
}

// checkSamples makes sure every example the guide page shows is well formed
func (hs *HealthService) checkSamples() ServiceHealth {
	for _, kind := range domain.AllKinds() {
		ds, ok := samples.Get(kind)
		if !ok {
			return ServiceHealth{
				Status:  "not_ready",
				Message: fmt.Sprintf("missing example for %s", kind),
			}
		}
		if err := ds.Validate(); err != nil {
			return ServiceHealth{
				Status:  "not_ready",
				Message: fmt.Sprintf("example %s: %v", kind, err),
			}
		}
	}
	return ServiceHealth{Status: "ready"}
}
