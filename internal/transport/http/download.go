package http

import (
	"mime"
	"net/http"
	"strconv"

	"uplcompare/internal/exporter"
)

// writeAttachment sends a generated file as a download
func writeAttachment(w http.ResponseWriter, a *exporter.Artifact) {
	w.Header().Set("Content-Type", a.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": a.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(a.Size()))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(a.Data)
}
