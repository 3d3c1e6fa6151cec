package http

import (
	"bytes"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "uplcompare/internal/errors"
	"uplcompare/internal/infrastructure"
	"uplcompare/internal/preview"
	"uplcompare/internal/services"
)

// CSV download of a single example table
const (
	formatParam    = "format"
	displayParam   = "display"
	csvContentType = "text/csv; charset=utf-8"
)

// GuideHandler serves the guide page and its example tables
type GuideHandler struct {
	service      *services.GuideService
	page         preview.PageOptions
	errorHandler *apierrors.ErrorHandler
	logger       *slog.Logger
}

// NewGuideHandler creates a guide handler. page holds the links the
// rendered page points at.
func NewGuideHandler(service *services.GuideService, page preview.PageOptions, errorHandler *apierrors.ErrorHandler, logger *slog.Logger) *GuideHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuideHandler{
		service:      service,
		page:         page,
		errorHandler: errorHandler,
		logger:       infrastructure.WithComponent(logger, "guide_handler"),
	}
}

// Routes returns the guide API routes
func (h *GuideHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/kinds", h.Kinds)
	r.Get("/tables", h.Tables)
	r.Get("/tables/{kind}", h.Table)
	r.Get("/dummy-dataset", h.DummyDataset)
	return r
}

// Kinds handles GET /api/guide/kinds
func (h *GuideHandler) Kinds(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{"kinds": h.service.Kinds()})
}

// Tables handles GET /api/guide/tables
func (h *GuideHandler) Tables(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]any{"tables": h.service.Tables()})
}

// Table handles GET /api/guide/tables/{kind}. With ?format=csv the raw
// dataset is downloaded instead; ?display=true keeps the on-screen number
// format in the CSV.
func (h *GuideHandler) Table(w http.ResponseWriter, r *http.Request) {
	kind := kindParam(r)

	if r.URL.Query().Get(formatParam) == "csv" {
		h.tableCSV(w, r, kind)
		return
	}

	table, err := h.service.Table(kind)
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	render.JSON(w, r, table)
}

func (h *GuideHandler) tableCSV(w http.ResponseWriter, r *http.Request, kind string) {
	display := false
	if raw := r.URL.Query().Get(displayParam); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation(displayParam, "display must be true or false"))
			return
		}
		display = v
	}

	var buf bytes.Buffer
	if err := h.service.WriteCSV(r.Context(), &buf, kind, display); err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", csvContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": kind + ".csv"}))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// DummyDataset handles GET /api/guide/dummy-dataset
func (h *GuideHandler) DummyDataset(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.service.DummyArchive(r.Context())
	if err != nil {
		h.errorHandler.HandleError(w, r, err)
		return
	}
	writeAttachment(w, artifact)
}

// Page handles GET /. Repeating ?sheet preselects sheets in the Super Button
// form; without it every kind is ticked.
func (h *GuideHandler) Page(w http.ResponseWriter, r *http.Request) {
	opts := h.page
	if values, ok := r.URL.Query()[SheetParam]; ok {
		opts.Selected = values
	}

	var buf bytes.Buffer
	if err := preview.Render(&buf, h.service.Page(opts)); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render guide page", slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// kindParam returns the decoded {kind} segment. chi matches on the escaped
// path when the client encoded characters such as &.
func kindParam(r *http.Request) string {
	raw := chi.URLParam(r, "kind")
	if kind, err := url.PathUnescape(raw); err == nil {
		return kind
	}
	return raw
}
