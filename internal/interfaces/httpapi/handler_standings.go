package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStandings")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	table, err := h.standingsService.Table(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get standings failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsTableToDTO(table))
}

func (h *Handler) ExportStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportStandings")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	export, err := h.exportService.StandingsCSV(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "export standings failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(export.Content))
}
