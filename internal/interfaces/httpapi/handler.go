package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/ranking"
	"github.com/pitchconnect/standings-engine/internal/domain/standings"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
	"github.com/pitchconnect/standings-engine/internal/platform/logging"
	"github.com/pitchconnect/standings-engine/internal/usecase"
)

type Handler struct {
	competitionService *usecase.CompetitionService
	standingsService   *usecase.StandingsService
	teamStatsService   *usecase.TeamStatsService
	rankingService     *usecase.RankingService
	exportService      *usecase.ExportService
	ingestionService   *usecase.IngestionService
	recomputeService   *usecase.RecomputeService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	competitionService *usecase.CompetitionService,
	standingsService *usecase.StandingsService,
	teamStatsService *usecase.TeamStatsService,
	rankingService *usecase.RankingService,
	exportService *usecase.ExportService,
	ingestionService *usecase.IngestionService,
	recomputeService *usecase.RecomputeService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		competitionService: competitionService,
		standingsService:   standingsService,
		teamStatsService:   teamStatsService,
		rankingService:     rankingService,
		exportService:      exportService,
		ingestionService:   ingestionService,
		recomputeService:   recomputeService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type competitionDTO struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Sport  string `json:"sport"`
	Season string `json:"season"`
}

type teamDTO struct {
	ID            string `json:"id"`
	CompetitionID string `json:"competitionId"`
	Name          string `json:"name"`
	Short         string `json:"short"`
}

type teamStatsDTO struct {
	TeamID         string  `json:"teamId"`
	Played         int     `json:"played"`
	Won            int     `json:"won"`
	Drawn          int     `json:"drawn"`
	Lost           int     `json:"lost"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	Points         int     `json:"points"`
	WinRatePercent int     `json:"winRatePercent"`
	CleanSheets    int     `json:"cleanSheets"`
	Form           string  `json:"form"`
	NetRunRate     float64 `json:"netRunRate,omitempty"`
}

type standingsRowDTO struct {
	Position int    `json:"position"`
	TeamID   string `json:"teamId"`
	TeamName string `json:"teamName"`
	teamStatsDTO
}

type standingsTableDTO struct {
	Competition competitionDTO    `json:"competition"`
	Columns     []string          `json:"columns"`
	Rows        []standingsRowDTO `json:"rows"`
	ComputedAt  string            `json:"computedAt,omitempty"`
}

type rankingEntryDTO struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	TeamID     string `json:"teamId"`
	Value      int    `json:"value"`
}

type rankingListDTO struct {
	Key     string            `json:"key"`
	Label   string            `json:"label"`
	Metric  string            `json:"metric"`
	Entries []rankingEntryDTO `json:"entries"`
}

type rankingsDTO struct {
	Competition competitionDTO   `json:"competition"`
	Categories  []rankingListDTO `json:"categories"`
}

func competitionToDTO(v competition.Competition) competitionDTO {
	return competitionDTO{
		ID:     v.ID,
		Code:   v.Code,
		Name:   v.Name,
		Sport:  string(v.Sport),
		Season: v.Season,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:            v.ID,
		CompetitionID: v.CompetitionID,
		Name:          v.Name,
		Short:         v.Short,
	}
}

func teamStatsToDTO(v standings.TeamStats) teamStatsDTO {
	return teamStatsDTO{
		TeamID:         v.TeamID,
		Played:         v.Played,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
		WinRatePercent: v.WinRatePercent,
		CleanSheets:    v.CleanSheets,
		Form:           v.FormString(),
		NetRunRate:     v.NetRunRate,
	}
}

func standingsTableToDTO(table usecase.StandingsTable) standingsTableDTO {
	columns := make([]string, 0, len(table.Rules.StandingsColumns))
	for _, column := range table.Rules.StandingsColumns {
		columns = append(columns, string(column))
	}

	rows := make([]standingsRowDTO, 0, len(table.Rows))
	var computedAt time.Time
	for _, row := range table.Rows {
		rows = append(rows, standingsRowDTO{
			Position:     row.Position,
			TeamID:       row.TeamID,
			TeamName:     row.TeamName,
			teamStatsDTO: teamStatsToDTO(row.Stats),
		})
		if row.ComputedAt.After(computedAt) {
			computedAt = row.ComputedAt
		}
	}

	dto := standingsTableDTO{
		Competition: competitionToDTO(table.Competition),
		Columns:     columns,
		Rows:        rows,
	}
	if !computedAt.IsZero() {
		dto.ComputedAt = computedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

// rankingsToDTO emits categories in the order the sport declares them, not
// map iteration order.
func rankingsToDTO(result usecase.Rankings) rankingsDTO {
	categories := make([]rankingListDTO, 0, len(result.Lists))
	ordered := make([]string, 0, len(result.Rules.RankingCategories))
	for _, category := range result.Rules.RankingCategories {
		ordered = append(ordered, category.Key)
	}
	seen := make(map[string]struct{}, len(ordered))
	for _, key := range ordered {
		if list, ok := result.Lists[key]; ok {
			categories = append(categories, rankingListToDTO(list))
			seen[key] = struct{}{}
		}
	}

	// Lists outside the declared category order still ship, sorted by key.
	extra := make([]string, 0)
	for key := range result.Lists {
		if _, ok := seen[key]; !ok {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	for _, key := range extra {
		categories = append(categories, rankingListToDTO(result.Lists[key]))
	}

	return rankingsDTO{
		Competition: competitionToDTO(result.Competition),
		Categories:  categories,
	}
}

func rankingListToDTO(list ranking.List) rankingListDTO {
	entries := make([]rankingEntryDTO, 0, len(list.Entries))
	for _, entry := range list.Entries {
		entries = append(entries, rankingEntryDTO{
			PlayerID:   entry.PlayerID,
			PlayerName: entry.PlayerName,
			TeamID:     entry.TeamID,
			Value:      entry.Value,
		})
	}
	return rankingListDTO{
		Key:     list.Key,
		Label:   list.Label,
		Metric:  list.Metric,
		Entries: entries,
	}
}
