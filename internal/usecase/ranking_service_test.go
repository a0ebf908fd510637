package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/ranking"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

func TestRankingService_Get(t *testing.T) {
	t.Parallel()

	competitionRepo := &stubCompetitionRepository{
		byID: map[string]competition.Competition{
			testCompetitionID: {ID: testCompetitionID, Sport: sport.Football},
		},
	}
	playerStatsRepo := &stubPlayerStatsRepository{
		byCompetition: map[string][]playerstats.PlayerSeasonStat{
			testCompetitionID: {
				{PlayerID: "p1", PlayerName: "Ada", TeamID: "team-a", Goals: 9, Appearances: 12},
				{PlayerID: "p2", PlayerName: "Ben", TeamID: "team-b", Goals: 14, Appearances: 10},
			},
		},
	}
	service := NewRankingService(competitionRepo, playerStatsRepo)

	result, err := service.Get(context.Background(), testCompetitionID, 0)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}

	scorers, ok := result.Lists["topScorers"]
	if !ok {
		t.Fatal("expected topScorers list")
	}
	if scorers.Entries[0].PlayerID != "p2" || scorers.Entries[0].Value != 14 {
		t.Fatalf("unexpected leader: %+v", scorers.Entries)
	}

	// No assists recorded anywhere: empty list, not an error.
	assists := result.Lists["topAssists"]
	if assists.Entries == nil || len(assists.Entries) != 0 {
		t.Fatalf("expected empty non-nil assists list, got %#v", assists.Entries)
	}
}

func TestRankingService_Get_Validation(t *testing.T) {
	t.Parallel()

	competitionRepo := &stubCompetitionRepository{
		byID: map[string]competition.Competition{
			testCompetitionID: {ID: testCompetitionID, Sport: sport.Football},
		},
	}
	service := NewRankingService(competitionRepo, &stubPlayerStatsRepository{})

	if _, err := service.Get(context.Background(), "", 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
	if _, err := service.Get(context.Background(), testCompetitionID, maxRankingLimit+1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for oversized limit, got %v", err)
	}
	if _, err := service.Get(context.Background(), "missing", 0); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRankingService_Get_DefaultLimit(t *testing.T) {
	t.Parallel()

	players := make([]playerstats.PlayerSeasonStat, 0, 14)
	for i := 0; i < 14; i++ {
		players = append(players, playerstats.PlayerSeasonStat{
			PlayerID:   string(rune('a' + i)),
			PlayerName: string(rune('A' + i)),
			TeamID:     "team-a",
			Goals:      i + 1,
		})
	}
	competitionRepo := &stubCompetitionRepository{
		byID: map[string]competition.Competition{
			testCompetitionID: {ID: testCompetitionID, Sport: sport.Football},
		},
	}
	playerStatsRepo := &stubPlayerStatsRepository{
		byCompetition: map[string][]playerstats.PlayerSeasonStat{testCompetitionID: players},
	}
	service := NewRankingService(competitionRepo, playerStatsRepo)

	result, err := service.Get(context.Background(), testCompetitionID, 0)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got := len(result.Lists["topScorers"].Entries); got != ranking.DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", ranking.DefaultLimit, got)
	}
}
