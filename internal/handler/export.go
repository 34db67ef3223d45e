package handler

import (
	"log/slog"
	"net/http"

	"github.com/minsung-kang/dalcal/internal/ics"
	"github.com/minsung-kang/dalcal/internal/store"
)

type ExportHandler struct {
	events *store.EventStore
	logger *slog.Logger
}

func NewExportHandler(es *store.EventStore, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{events: es, logger: logger}
}

// ICS handles GET /api/export.ics
func (h *ExportHandler) ICS(w http.ResponseWriter, r *http.Request) {
	data, err := ics.Export(h.events.All())
	if err != nil {
		h.logger.Error("ics export", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to export calendar"})
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="dalcal.ics"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
