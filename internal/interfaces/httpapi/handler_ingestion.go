package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
	"github.com/pitchconnect/standings-engine/internal/usecase"
)

type ingestMatchesRequest struct {
	Matches []ingestMatchItem `json:"matches" validate:"required,min=1,dive"`
}

type ingestMatchItem struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competitionId" validate:"required"`
	HomeTeamID    string `json:"homeTeamId" validate:"required"`
	AwayTeamID    string `json:"awayTeamId" validate:"required"`
	HomeScore     *int   `json:"homeScore"`
	AwayScore     *int   `json:"awayScore"`
	ScheduledAt   string `json:"scheduledAt" validate:"required"`
	Status        string `json:"status"`
}

type ingestTeamsRequest struct {
	Teams []ingestTeamItem `json:"teams" validate:"required,min=1,dive"`
}

type ingestTeamItem struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competitionId" validate:"required"`
	Name          string `json:"name" validate:"required,max=120"`
	Short         string `json:"short" validate:"max=10"`
}

type ingestPlayerStatsRequest struct {
	PlayerStats []ingestPlayerStatItem `json:"playerStats" validate:"required,min=1,dive"`
}

type ingestPlayerStatItem struct {
	PlayerID      string         `json:"playerId"`
	PlayerName    string         `json:"playerName" validate:"required,max=120"`
	TeamID        string         `json:"teamId" validate:"required"`
	CompetitionID string         `json:"competitionId" validate:"required"`
	Goals         int            `json:"goals"`
	Assists       int            `json:"assists"`
	Appearances   int            `json:"appearances"`
	MinutesPlayed int            `json:"minutesPlayed"`
	YellowCards   int            `json:"yellowCards"`
	RedCards      int            `json:"redCards"`
	Extra         map[string]int `json:"extra"`
}

type ingestionResultDTO struct {
	Ingested int `json:"ingested"`
}

func (h *Handler) IngestMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatches")
	defer span.End()

	var req ingestMatchesRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]match.Match, 0, len(req.Matches))
	for _, item := range req.Matches {
		scheduledAt, err := time.Parse(time.RFC3339, item.ScheduledAt)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: scheduledAt must be RFC 3339: %v", usecase.ErrInvalidInput, err))
			return
		}
		items = append(items, match.Match{
			ID:            item.ID,
			CompetitionID: item.CompetitionID,
			HomeTeamID:    item.HomeTeamID,
			AwayTeamID:    item.AwayTeamID,
			HomeScore:     item.HomeScore,
			AwayScore:     item.AwayScore,
			ScheduledAt:   scheduledAt,
			Status:        item.Status,
		})
	}

	count, err := h.ingestionService.UpsertMatches(ctx, items)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest matches failed", "count", len(items), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestionResultDTO{Ingested: count})
}

func (h *Handler) IngestTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestTeams")
	defer span.End()

	var req ingestTeamsRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]team.Team, 0, len(req.Teams))
	for _, item := range req.Teams {
		items = append(items, team.Team{
			ID:            item.ID,
			CompetitionID: item.CompetitionID,
			Name:          item.Name,
			Short:         item.Short,
		})
	}

	count, err := h.ingestionService.UpsertTeams(ctx, items)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest teams failed", "count", len(items), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestionResultDTO{Ingested: count})
}

func (h *Handler) IngestPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestPlayerSeasonStats")
	defer span.End()

	var req ingestPlayerStatsRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]playerstats.PlayerSeasonStat, 0, len(req.PlayerStats))
	for _, item := range req.PlayerStats {
		items = append(items, playerstats.PlayerSeasonStat{
			PlayerID:      item.PlayerID,
			PlayerName:    item.PlayerName,
			TeamID:        item.TeamID,
			CompetitionID: item.CompetitionID,
			Goals:         item.Goals,
			Assists:       item.Assists,
			Appearances:   item.Appearances,
			MinutesPlayed: item.MinutesPlayed,
			YellowCards:   item.YellowCards,
			RedCards:      item.RedCards,
			Extra:         item.Extra,
		})
	}

	count, err := h.ingestionService.UpsertPlayerSeasonStats(ctx, items)
	if err != nil {
		h.logger.WarnContext(ctx, "ingest player stats failed", "count", len(items), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, ingestionResultDTO{Ingested: count})
}

func decodeJSONBody(r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}
