package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
	"github.com/pitchconnect/standings-engine/internal/platform/id"
)

// IngestionService accepts match results, teams, and player stat lines from
// upstream feeds, normalizes them, and writes them through the repositories.
// Standings are recomputed lazily on the next read, so ingestion stays cheap.
type IngestionService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	teamRepo        team.Repository
	playerStatsRepo playerstats.Repository
	idGen           id.Generator
	// invalidate is called per affected competition after a successful write.
	invalidate func(ctx context.Context, competitionID string)
}

func NewIngestionService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
	playerStatsRepo playerstats.Repository,
	idGen id.Generator,
	invalidate func(ctx context.Context, competitionID string),
) *IngestionService {
	return &IngestionService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		playerStatsRepo: playerStatsRepo,
		idGen:           idGen,
		invalidate:      invalidate,
	}
}

func (s *IngestionService) UpsertMatches(ctx context.Context, items []match.Match) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.UpsertMatches")
	defer span.End()

	if len(items) == 0 {
		return 0, fmt.Errorf("%w: matches are required", ErrInvalidInput)
	}

	affected := make(map[string]struct{})
	for idx := range items {
		items[idx].ID = strings.TrimSpace(items[idx].ID)
		items[idx].CompetitionID = strings.TrimSpace(items[idx].CompetitionID)
		items[idx].HomeTeamID = strings.TrimSpace(items[idx].HomeTeamID)
		items[idx].AwayTeamID = strings.TrimSpace(items[idx].AwayTeamID)
		items[idx].Status = match.NormalizeStatus(items[idx].Status)

		if items[idx].ID == "" {
			generated, err := s.newID()
			if err != nil {
				return 0, err
			}
			items[idx].ID = generated
		}
		if items[idx].CompetitionID == "" {
			return 0, fmt.Errorf("%w: match competition id is required", ErrInvalidInput)
		}
		if items[idx].HomeTeamID == "" || items[idx].AwayTeamID == "" {
			return 0, fmt.Errorf("%w: match team ids are required", ErrInvalidInput)
		}
		if items[idx].HomeTeamID == items[idx].AwayTeamID {
			return 0, fmt.Errorf("%w: match id=%s has identical teams", ErrInvalidInput, items[idx].ID)
		}
		if items[idx].ScheduledAt.IsZero() {
			return 0, fmt.Errorf("%w: match id=%s scheduled_at is required", ErrInvalidInput, items[idx].ID)
		}
		if match.IsFinishedStatus(items[idx].Status) {
			if items[idx].HomeScore == nil || items[idx].AwayScore == nil {
				return 0, fmt.Errorf("%w: finished match id=%s is missing scores", ErrInvalidInput, items[idx].ID)
			}
			if *items[idx].HomeScore < 0 || *items[idx].AwayScore < 0 {
				return 0, fmt.Errorf("%w: finished match id=%s has negative scores", ErrInvalidInput, items[idx].ID)
			}
		}

		if _, exists, err := s.competitionRepo.GetByID(ctx, items[idx].CompetitionID); err != nil {
			return 0, fmt.Errorf("get competition: %w", err)
		} else if !exists {
			return 0, fmt.Errorf("%w: competition=%s", ErrNotFound, items[idx].CompetitionID)
		}

		affected[items[idx].CompetitionID] = struct{}{}
	}

	if err := s.matchRepo.UpsertMatches(ctx, items); err != nil {
		return 0, fmt.Errorf("upsert matches: %w", err)
	}

	s.invalidateAll(ctx, affected)
	return len(items), nil
}

func (s *IngestionService) UpsertTeams(ctx context.Context, items []team.Team) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.UpsertTeams")
	defer span.End()

	if len(items) == 0 {
		return 0, fmt.Errorf("%w: teams are required", ErrInvalidInput)
	}

	affected := make(map[string]struct{})
	for idx := range items {
		items[idx].ID = strings.TrimSpace(items[idx].ID)
		items[idx].CompetitionID = strings.TrimSpace(items[idx].CompetitionID)
		items[idx].Name = strings.TrimSpace(items[idx].Name)
		items[idx].Short = strings.TrimSpace(items[idx].Short)

		if items[idx].ID == "" {
			generated, err := s.newID()
			if err != nil {
				return 0, err
			}
			items[idx].ID = generated
		}
		if items[idx].CompetitionID == "" || items[idx].Name == "" {
			return 0, fmt.Errorf("%w: team competition id and name are required", ErrInvalidInput)
		}
		affected[items[idx].CompetitionID] = struct{}{}
	}

	if err := s.teamRepo.UpsertTeams(ctx, items); err != nil {
		return 0, fmt.Errorf("upsert teams: %w", err)
	}

	s.invalidateAll(ctx, affected)
	return len(items), nil
}

func (s *IngestionService) UpsertPlayerSeasonStats(ctx context.Context, items []playerstats.PlayerSeasonStat) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.UpsertPlayerSeasonStats")
	defer span.End()

	if len(items) == 0 {
		return 0, fmt.Errorf("%w: player stats are required", ErrInvalidInput)
	}

	for idx := range items {
		items[idx].PlayerID = strings.TrimSpace(items[idx].PlayerID)
		items[idx].PlayerName = strings.TrimSpace(items[idx].PlayerName)
		items[idx].TeamID = strings.TrimSpace(items[idx].TeamID)
		items[idx].CompetitionID = strings.TrimSpace(items[idx].CompetitionID)

		if items[idx].PlayerID == "" {
			generated, err := s.newID()
			if err != nil {
				return 0, err
			}
			items[idx].PlayerID = generated
		}
		if items[idx].CompetitionID == "" || items[idx].TeamID == "" {
			return 0, fmt.Errorf("%w: player stat competition id and team id are required", ErrInvalidInput)
		}
		if items[idx].Goals < 0 || items[idx].Assists < 0 || items[idx].Appearances < 0 ||
			items[idx].MinutesPlayed < 0 || items[idx].YellowCards < 0 || items[idx].RedCards < 0 {
			return 0, fmt.Errorf("%w: player=%s stat counters cannot be negative", ErrInvalidInput, items[idx].PlayerID)
		}
		for key, value := range items[idx].Extra {
			if value < 0 {
				return 0, fmt.Errorf("%w: player=%s metric=%s cannot be negative", ErrInvalidInput, items[idx].PlayerID, key)
			}
			if _, known := knownExtraMetrics[key]; !known {
				return 0, fmt.Errorf("%w: player=%s unknown metric=%s", ErrInvalidInput, items[idx].PlayerID, key)
			}
		}
	}

	if err := s.playerStatsRepo.UpsertSeasonStats(ctx, items); err != nil {
		return 0, fmt.Errorf("upsert player season stats: %w", err)
	}
	return len(items), nil
}

func (s *IngestionService) newID() (string, error) {
	if s.idGen == nil {
		return "", fmt.Errorf("%w: id generator is not configured", ErrDependencyUnavailable)
	}
	generated, err := s.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return generated, nil
}

func (s *IngestionService) invalidateAll(ctx context.Context, competitionIDs map[string]struct{}) {
	if s.invalidate == nil {
		return
	}
	for competitionID := range competitionIDs {
		s.invalidate(ctx, competitionID)
	}
}

var knownExtraMetrics = map[string]struct{}{
	sport.MetricTries:        {},
	sport.MetricWickets:      {},
	sport.MetricRuns:         {},
	sport.MetricRebounds:     {},
	sport.MetricTouchdowns:   {},
	sport.MetricPointsScored: {},
}
