package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
	"github.com/pitchconnect/standings-engine/internal/domain/standings"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
)

type TeamStatsService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	teamRepo        team.Repository
}

func NewTeamStatsService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
) *TeamStatsService {
	return &TeamStatsService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
	}
}

// ListTeams returns the competition's registered teams.
func (s *TeamStatsService) ListTeams(ctx context.Context, competitionID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.ListTeams")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return nil, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	_, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}

	teams, err := s.teamRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// Get computes one team's season aggregates from the competition's finished
// matches under the competition sport's point rule.
func (s *TeamStatsService) Get(ctx context.Context, competitionID, teamID string) (standings.TeamStats, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamStatsService.Get")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	teamID = strings.TrimSpace(teamID)
	if competitionID == "" || teamID == "" {
		return standings.TeamStats{}, fmt.Errorf("%w: competition id and team id are required", ErrInvalidInput)
	}

	comp, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return standings.TeamStats{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return standings.TeamStats{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}

	_, exists, err = s.teamRepo.GetByID(ctx, competitionID, teamID)
	if err != nil {
		return standings.TeamStats{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return standings.TeamStats{}, fmt.Errorf("%w: team=%s competition=%s", ErrNotFound, teamID, competitionID)
	}

	matches, err := s.matchRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return standings.TeamStats{}, fmt.Errorf("list matches: %w", err)
	}

	return standings.ComputeTeamStats(matches, teamID, sport.RulesFor(comp.Sport)), nil
}
