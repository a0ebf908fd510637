package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

type CompetitionService struct {
	competitionRepo competition.Repository
}

func NewCompetitionService(competitionRepo competition.Repository) *CompetitionService {
	return &CompetitionService{
		competitionRepo: competitionRepo,
	}
}

func (s *CompetitionService) List(ctx context.Context) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	items, err := s.competitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

func (s *CompetitionService) GetByID(ctx context.Context, competitionID string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetByID")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	item, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	return item, nil
}

// Rules resolves the sport rule set governing a competition. Unknown sport
// codes degrade to the football rule set inside sport.RulesFor.
func (s *CompetitionService) Rules(ctx context.Context, competitionID string) (sport.Rules, error) {
	item, err := s.GetByID(ctx, competitionID)
	if err != nil {
		return sport.Rules{}, err
	}
	return sport.RulesFor(item.Sport), nil
}
