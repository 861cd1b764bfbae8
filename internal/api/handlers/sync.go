package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/statikk/ddmirror/internal/domain"
	"github.com/statikk/ddmirror/internal/service"
)

type SyncHandler struct {
	syncService *service.SyncService
}

func NewSyncHandler(syncService *service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncRequest is the optional body of the sync triggers. An empty body means
// a foreground, non-forced sync.
type SyncRequest struct {
	Force      bool `json:"force"`
	Background bool `json:"background"`
}

func (h *SyncHandler) Status(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.syncService.Status(r.Context())
	if err != nil {
		http.Error(w, "Failed to get sync status", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, statuses)
}

// SyncAll triggers a full sync. The aggregate response always returns 200;
// per-type outcomes live inside the report.
func (h *SyncHandler) SyncAll(w http.ResponseWriter, r *http.Request) {
	req, err := decodeSyncRequest(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report := h.syncService.SyncAll(r.Context(), req.Force, req.Background)
	status := http.StatusOK
	if report.Status == domain.SyncScheduled {
		status = http.StatusAccepted
	}
	writeJSON(w, status, report)
}

func (h *SyncHandler) SyncOne(w http.ResponseWriter, r *http.Request) {
	entityType, err := domain.ParseEntityType(chi.URLParam(r, "entityType"))
	if err != nil {
		http.Error(w, "Unknown entity type", http.StatusNotFound)
		return
	}

	req, err := decodeSyncRequest(r)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	report := h.syncService.SyncOne(r.Context(), entityType, req.Force, req.Background)
	writeJSON(w, syncReportStatus(report), report)
}

func decodeSyncRequest(r *http.Request) (SyncRequest, error) {
	var req SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return SyncRequest{}, err
	}
	return req, nil
}

// syncReportStatus maps a single-type outcome to its HTTP status. Unlike the
// aggregate endpoint, a failed single-type sync is a failed request.
func syncReportStatus(report *domain.SyncReport) int {
	switch report.Status {
	case domain.SyncScheduled:
		return http.StatusAccepted
	case domain.SyncBusy:
		return http.StatusConflict
	case domain.SyncFailed:
		if errors.Is(report.Err, domain.ErrUpstreamUnavailable) ||
			errors.Is(report.Err, domain.ErrVersionNotFound) ||
			errors.Is(report.Err, domain.ErrMalformedUpstreamData) {
			return http.StatusBadGateway
		}
		return http.StatusInternalServerError
	default:
		return http.StatusOK
	}
}
