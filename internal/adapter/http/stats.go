package httpadapter

import (
	"log/slog"
	"net/http"
)

// handleStatsOverview returns the aggregated dashboard statistics for the
// full campaign set. Every call advances the snapshot baseline, so the
// change fields always compare against the previous request. Internal
// errors produce HTTP 500.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.Overview(r.Context())
	if err != nil {
		h.logger.Error("stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}
