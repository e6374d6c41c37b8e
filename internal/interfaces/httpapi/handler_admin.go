package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetMatchLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchLock")
	defer span.End()

	matchName := strings.TrimSpace(r.PathValue("matchName"))
	locked, err := h.lockService.IsLocked(ctx, matchName)
	if err != nil {
		h.logger.WarnContext(ctx, "check match lock failed", "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchLockDTO{
		Match:  matchName,
		Locked: locked,
	})
}

func (h *Handler) LockMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.LockMatch")
	defer span.End()

	matchName := strings.TrimSpace(r.PathValue("matchName"))
	if err := h.lockService.LockMatch(ctx, matchName); err != nil {
		h.logger.WarnContext(ctx, "lock match failed", "match", matchName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchLockDTO{
		Match:  matchName,
		Locked: true,
	})
}

func (h *Handler) ResetState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ResetState")
	defer span.End()

	if err := h.maintenanceService.ResetAll(ctx); err != nil {
		h.logger.ErrorContext(ctx, "reset state failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "reset"})
}

// ExportBackup streams the raw persisted document, not the envelope, so the
// response can be dropped back into the state file as-is.
func (h *Handler) ExportBackup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportBackup")
	defer span.End()

	payload, err := h.maintenanceService.ExportSnapshot(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "export backup failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="match_data.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}
