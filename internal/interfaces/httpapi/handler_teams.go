package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListTeamsByCompetition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamsByCompetition")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	teams, err := h.teamStatsService.ListTeams(ctx, competitionID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "competition_id", competitionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStats")
	defer span.End()

	competitionID := strings.TrimSpace(r.PathValue("competitionID"))
	teamID := strings.TrimSpace(r.PathValue("teamID"))

	stats, err := h.teamStatsService.Get(ctx, competitionID, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team stats failed", "competition_id", competitionID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamStatsToDTO(stats))
}
