package http

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"

	apierrors "uplcompare/internal/errors"
	"uplcompare/internal/exporter"
	"uplcompare/internal/infrastructure"
	"uplcompare/internal/middleware"
	"uplcompare/internal/services"
	"uplcompare/pkg/contracts/domain"
)

// SheetParam is the query parameter of the sample export, repeated once per
// selected sheet
const SheetParam = "sheet"

// ExportHandler serves the Super Button downloads
type ExportHandler struct {
	service      *services.ExportService
	validator    *middleware.Validator
	errorHandler *apierrors.ErrorHandler
	logger       *slog.Logger
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *services.ExportService, validator *middleware.Validator, errorHandler *apierrors.ErrorHandler, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{
		service:      service,
		validator:    validator,
		errorHandler: errorHandler,
		logger:       infrastructure.WithComponent(logger, "export_handler"),
	}
}

// Routes returns the export routes
func (h *ExportHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Export)
	r.Get("/sample", h.ExportSample)
	return r
}

// Export handles POST /api/export
func (h *ExportHandler) Export(w http.ResponseWriter, r *http.Request) {
	var req domain.ExportRequest
	if err := h.validator.DecodeJSON(r, &req); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	artifact, err := h.service.Export(r.Context(), req)
	h.respond(w, r, artifact, err)
}

// ExportSample handles GET /api/export/sample?sheet=...&sheet=...
//
// Without any sheet parameter every kind is exported. Empty values are
// ignored, so a form submitted with nothing ticked gets 204.
func (h *ExportHandler) ExportSample(w http.ResponseWriter, r *http.Request) {
	sheets := selectedSheets(r)

	if err := h.validator.Struct(domain.SheetSelection{Sheets: sheets}); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	known := services.KnownKinds()
	for _, name := range sheets {
		if !slices.Contains(known, name) {
			h.errorHandler.HandleError(w, r, apierrors.UnknownSheetError(name, known))
			return
		}
	}

	artifact, err := h.service.ExportSamples(r.Context(), sheets)
	h.respond(w, r, artifact, err)
}

func (h *ExportHandler) respond(w http.ResponseWriter, r *http.Request, artifact *exporter.Artifact, err error) {
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	if artifact == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.logger.DebugContext(r.Context(), "sending workbook",
		slog.String("file", artifact.FileName),
		slog.Int("bytes", artifact.Size()))
	writeAttachment(w, artifact)
}

// selectedSheets reads the sheet selection from the query. A missing
// parameter selects all kinds.
func selectedSheets(r *http.Request) []string {
	values, ok := r.URL.Query()[SheetParam]
	if !ok {
		return services.KnownKinds()
	}

	sheets := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			sheets = append(sheets, v)
		}
	}
	return sheets
}
