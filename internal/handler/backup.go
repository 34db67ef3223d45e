package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/minsung-kang/dalcal/internal/backup"
)

type BackupHandler struct {
	manager *backup.Manager
	logger  *slog.Logger
}

func NewBackupHandler(m *backup.Manager, logger *slog.Logger) *BackupHandler {
	return &BackupHandler{manager: m, logger: logger}
}

// Status handles GET /api/backup/status
func (h *BackupHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.manager.Status())
}

// Run handles POST /api/backup/run
func (h *BackupHandler) Run(w http.ResponseWriter, r *http.Request) {
	if !h.manager.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "backup not configured"})
		return
	}

	key, err := h.manager.Run(r.Context())
	if err != nil {
		h.logger.Error("backup run", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "backup failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"key": key})
}

type restoreRequest struct {
	Key string `json:"key"`
}

// Restore handles POST /api/backup/restore. On success the caller must
// restart the process so the replaced database file is picked up.
func (h *BackupHandler) Restore(w http.ResponseWriter, r *http.Request) {
	if !h.manager.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "backup not configured"})
		return
	}

	var req restoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "key is required"})
		return
	}

	if err := h.manager.Restore(r.Context(), req.Key); err != nil {
		h.logger.Error("backup restore", "key", req.Key, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "restore failed"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "restored", "note": "restart required"})
}

// List handles GET /api/backup/list
func (h *BackupHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.manager.Enabled() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "backup not configured"})
		return
	}

	keys, err := h.manager.List(r.Context())
	if err != nil {
		h.logger.Error("backup list", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to list backups"})
		return
	}

	writeJSON(w, http.StatusOK, map[string][]string{"backups": keys})
}
