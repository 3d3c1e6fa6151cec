package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"uplcompare/internal/config"
	apierrors "uplcompare/internal/errors"
	"uplcompare/internal/exporter"
	"uplcompare/internal/infrastructure"
	customMiddleware "uplcompare/internal/middleware"
	"uplcompare/internal/preview"
	"uplcompare/internal/services"
	handlers "uplcompare/internal/transport/http"
	"uplcompare/pkg/contracts"
)

// Application represents the main application container
type Application struct {
	Config        *config.Config
	Router        *chi.Mux
	Handler       http.Handler
	Server        *http.Server
	Logger        *slog.Logger
	OTelProviders *infrastructure.OTelProviders
	Metrics       *infrastructure.BusinessMetrics

	ExportService *services.ExportService
	GuideService  *services.GuideService
	HealthService *services.HealthService

	errorHandler *apierrors.ErrorHandler
	validator    *customMiddleware.Validator
	guideHandler *handlers.GuideHandler
}

// NewApplication loads the configuration, initializes logging and builds
// the application
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return New(cfg, logger)
}

// New builds the application from an already loaded configuration
func New(cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", config.AppVersion),
		slog.String("addr", cfg.Server.Addr()))

	providers, err := infrastructure.InitializeOTel(infrastructure.OTelConfigFrom(cfg.Telemetry), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics, err := infrastructure.CreateBusinessMetrics(providers.Meter)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics: %w", err)
	}

	a := &Application{
		Config:        cfg,
		Logger:        logger,
		OTelProviders: providers,
		Metrics:       metrics,
		errorHandler:  apierrors.NewErrorHandler(logger, cfg.Logging.Development),
		validator:     customMiddleware.NewValidator(),
	}

	a.initializeServices()
	a.setupRouter()
	a.createServer()

	return a, nil
}

// initializeServices initializes all application services
func (a *Application) initializeServices() {
	workbook := exporter.NewWorkbook(exporter.Options{
		FileName:     a.Config.Export.FileName,
		ColumnWidth:  a.Config.Export.ColumnWidth,
		FreezeHeader: a.Config.Export.FreezeHeader,
		MaxRows:      a.Config.Export.MaxRowsPerSheet,
	}, a.Logger)

	a.ExportService = services.NewExportService(workbook, a.Metrics, a.OTelProviders.Tracer, a.Logger)
	a.GuideService = services.NewGuideService(workbook, a.Logger)
	a.HealthService = services.NewHealthService(config.AppVersion, contracts.BuildTime, workbook, a.Logger)

	a.guideHandler = handlers.NewGuideHandler(a.GuideService, a.pageOptions(), a.errorHandler, a.Logger)
}

// setupRouter builds the chi router. Order: RequestID, RealIP, OTel,
// logger, recoverer, security headers, CORS, rate limit.
func (a *Application) setupRouter() {
	r := chi.NewRouter()
	r.NotFound(a.errorHandler.NotFound)
	r.MethodNotAllowed(a.errorHandler.MethodNotAllowed)

	r.Use(customMiddleware.RequestID)
	r.Use(middleware.RealIP)

	r.Group(func(r chi.Router) {
		r.Use(customMiddleware.NewOTelMiddleware(a.Metrics).Handler)
		r.Use(customMiddleware.StructuredLogger(a.Logger))
		r.Use(customMiddleware.Recoverer(a.errorHandler))
		r.Use(customMiddleware.SecurityHeaders)

		if a.Config.Security.EnableCORS {
			r.Use(customMiddleware.CORS(a.getCORSConfig()))
		}

		if rl := a.Config.Security.RateLimit; rl.Enabled {
			r.Use(customMiddleware.NewRateLimiter(rl.RPS, rl.Burst, a.errorHandler, a.Logger).Handler)
		}

		a.setupAPIRoutes(r)
		a.setupHTMLRoutes(r)
	})

	// Outside the group so scrapes are neither rate limited nor logged
	r.Handle(config.MetricsEndpoint, handlers.NewMetricsHandler(a.OTelProviders.PrometheusHTTP, a.errorHandler))

	a.Router = r

	opts := []otelhttp.Option{}
	if a.OTelProviders.TracerProvider != nil {
		opts = append(opts, otelhttp.WithTracerProvider(a.OTelProviders.TracerProvider))
	}
	if a.OTelProviders.MeterProvider != nil {
		opts = append(opts, otelhttp.WithMeterProvider(a.OTelProviders.MeterProvider))
	}
	a.Handler = otelhttp.NewHandler(r, config.AppName, opts...)
}

// setupAPIRoutes configures API endpoints
func (a *Application) setupAPIRoutes(r chi.Router) {
	healthHandler := handlers.NewHealthHandler(a.HealthService, a.Logger)
	exportHandler := handlers.NewExportHandler(a.ExportService, a.validator, a.errorHandler, a.Logger)

	r.Route(config.APIBasePath, func(r chi.Router) {
		r.Use(render.SetContentType(render.ContentTypeJSON))
		r.Use(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger))

		r.Get("/health", healthHandler.HealthCheck)
		r.Get("/health/ready", healthHandler.ReadinessCheck)
		r.Get("/health/live", healthHandler.LivenessCheck)
		r.Get("/version", healthHandler.Version)

		r.With(customMiddleware.LimitBody(a.Config.Server.MaxBodyBytes)).Mount("/export", exportHandler.Routes())
		r.Mount("/guide", a.guideHandler.Routes())
	})
}

// setupHTMLRoutes serves the guide page
func (a *Application) setupHTMLRoutes(r chi.Router) {
	r.With(customMiddleware.Timeout(a.Config.Server.RequestTimeout, a.Logger)).Get("/", a.guideHandler.Page)
}

func (a *Application) pageOptions() preview.PageOptions {
	return preview.PageOptions{
		ExportURL: config.SampleEndpoint,
		DummyURL:  config.DummyEndpoint,
		FileName:  a.Config.Export.FileName,
	}
}

// getCORSConfig returns CORS configuration from the security section
func (a *Application) getCORSConfig() customMiddleware.CORSConfig {
	return customMiddleware.CORSConfig{
		AllowedOrigins: a.Config.Security.AllowedOrigins,
		Logger:         a.Logger,
	}
}

// createServer creates the HTTP server
func (a *Application) createServer() {
	a.Server = &http.Server{
		Addr:           a.Config.Server.Addr(),
		Handler:        a.Handler,
		ReadTimeout:    a.Config.Server.ReadTimeout,
		WriteTimeout:   a.Config.Server.WriteTimeout,
		IdleTimeout:    a.Config.Server.IdleTimeout,
		MaxHeaderBytes: a.Config.Server.MaxHeaderBytes,
		ErrorLog:       slog.NewLogLogger(a.Logger.Handler(), slog.LevelError),
	}
}

// Run serves HTTP until ctx is cancelled or SIGINT/SIGTERM arrives, then
// shuts down gracefully
func (a *Application) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Logger.InfoContext(gctx, "HTTP server listening",
			slog.String("addr", a.Server.Addr),
			slog.String("level", a.Config.Logging.Level))

		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.InfoContext(gctx, "Shutdown requested")
		return a.Stop(context.WithoutCancel(gctx))
	})

	return g.Wait()
}

// Stop gracefully stops the application
func (a *Application) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.shutdownTimeout())
	defer cancel()

	var errs []error
	if err := a.Server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("server shutdown error: %w", err))
	}

	if a.OTelProviders != nil {
		if err := a.OTelProviders.Shutdown(shutdownCtx); err != nil {
			a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
		}
	}

	a.Logger.InfoContext(ctx, "Application shutdown complete")
	return errors.Join(errs...)
}

func (a *Application) shutdownTimeout() time.Duration {
	if a.Config.Server.ShutdownTimeout > 0 {
		return a.Config.Server.ShutdownTimeout
	}
	return 30 * time.Second
}
