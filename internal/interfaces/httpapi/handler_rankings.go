package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/pitchconnect/standings-engine/internal/usecase"
)

func (h *Handler) GetRankings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRankings")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		limit = v
	}

	result, err := h.rankingService.Get(ctx, competitionID, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "get rankings failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rankingsToDTO(result))
}
