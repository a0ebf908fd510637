package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/ranking"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

const maxRankingLimit = 100

// Rankings bundles the per-category leaderboards with the rule set that
// declared the categories.
type Rankings struct {
	Competition competition.Competition
	Rules       sport.Rules
	Lists       map[string]ranking.List
}

type RankingService struct {
	competitionRepo competition.Repository
	playerStatsRepo playerstats.Repository
}

func NewRankingService(
	competitionRepo competition.Repository,
	playerStatsRepo playerstats.Repository,
) *RankingService {
	return &RankingService{
		competitionRepo: competitionRepo,
		playerStatsRepo: playerStatsRepo,
	}
}

// Get builds every leaderboard the competition's sport declares. limit <= 0
// applies the default of 10; the limit is capped to keep responses bounded.
func (s *RankingService) Get(ctx context.Context, competitionID string, limit int) (Rankings, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RankingService.Get")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return Rankings{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if limit > maxRankingLimit {
		return Rankings{}, fmt.Errorf("%w: limit must not exceed %d", ErrInvalidInput, maxRankingLimit)
	}

	comp, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return Rankings{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return Rankings{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	rules := sport.RulesFor(comp.Sport)

	players, err := s.playerStatsRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return Rankings{}, fmt.Errorf("list player season stats: %w", err)
	}

	return Rankings{
		Competition: comp,
		Rules:       rules,
		Lists:       ranking.Build(players, rules, limit),
	}, nil
}
