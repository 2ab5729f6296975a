package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adboard/internal/core/domain"
	"adboard/internal/core/port"
)

// handleReport generates the tabular report named by the {kind} path
// parameter. Unknown kinds result in HTTP 400 rather than an empty table.
func (h *Handler) handleReport(w http.ResponseWriter, r *http.Request) {
	kind := domain.ReportKind(chi.URLParam(r, "kind"))
	table, err := h.reports.Report(r.Context(), kind)
	if err != nil {
		if errors.Is(err, port.ErrUnsupportedReportKind) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("report error", slog.String("kind", string(kind)), slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, table)
}
