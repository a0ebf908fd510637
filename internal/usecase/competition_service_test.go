package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

func TestCompetitionService_Rules(t *testing.T) {
	t.Parallel()

	competitionRepo := &stubCompetitionRepository{
		byID: map[string]competition.Competition{
			"hoops": {ID: "hoops", Sport: sport.Basketball},
			"odd":   {ID: "odd", Sport: sport.Sport("KORFBALL")},
		},
	}
	service := NewCompetitionService(competitionRepo)

	rules, err := service.Rules(context.Background(), "hoops")
	if err != nil {
		t.Fatalf("Rules error: %v", err)
	}
	if rules.Sport != sport.Basketball || rules.PointsForLoss != 1 {
		t.Fatalf("unexpected basketball rules: %+v", rules)
	}

	// Unknown sport codes degrade to the football rule set.
	rules, err = service.Rules(context.Background(), "odd")
	if err != nil {
		t.Fatalf("Rules error: %v", err)
	}
	if rules.Sport != sport.Football {
		t.Fatalf("expected football fallback, got %s", rules.Sport)
	}

	if _, err := service.Rules(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompetitionService_List(t *testing.T) {
	t.Parallel()

	competitionRepo := &stubCompetitionRepository{
		byID: map[string]competition.Competition{
			"b": {ID: "b"},
			"a": {ID: "a"},
		},
	}
	service := NewCompetitionService(competitionRepo)

	items, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 competitions, got %d", len(items))
	}
}
