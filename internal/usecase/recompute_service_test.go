package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

func TestRecomputeService_Run_AllCompetitions(t *testing.T) {
	t.Parallel()

	competitionRepo, matchRepo, teamRepo := newStandingsFixtures()
	competitionRepo.byID["midweek-cup-2025"] = competition.Competition{
		ID: "midweek-cup-2025", Code: "MWC", Sport: sport.Basketball, Season: "2025",
	}
	snapshotRepo := &stubStandingsRepository{}
	standingsService := NewStandingsService(competitionRepo, matchRepo, teamRepo, snapshotRepo, nil, nil)
	service := NewRecomputeService(competitionRepo, standingsService, nil)

	result, err := service.Run(context.Background(), RecomputeInput{MaxWorkers: 4})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}

	if result.CompetitionCount != 2 || result.SuccessCount != 2 || result.FailedCount != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(result.Tasks) != 2 {
		t.Fatalf("expected 2 task rows, got %d", len(result.Tasks))
	}
	// Results are sorted by competition for stable job output.
	if result.Tasks[0].CompetitionID != "midweek-cup-2025" || result.Tasks[1].CompetitionID != testCompetitionID {
		t.Fatalf("unexpected task order: %+v", result.Tasks)
	}

	if rows := snapshotRepo.byCompetition[testCompetitionID]; len(rows) != 3 {
		t.Fatalf("expected persisted snapshot, got %d rows", len(rows))
	}
}

func TestRecomputeService_Run_SingleAndDryRun(t *testing.T) {
	t.Parallel()

	competitionRepo, matchRepo, teamRepo := newStandingsFixtures()
	snapshotRepo := &stubStandingsRepository{}
	standingsService := NewStandingsService(competitionRepo, matchRepo, teamRepo, snapshotRepo, nil, nil)
	service := NewRecomputeService(competitionRepo, standingsService, nil)

	result, err := service.Run(context.Background(), RecomputeInput{
		CompetitionID: testCompetitionID,
		DryRun:        true,
	})
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.SuccessCount != 1 || result.Tasks[0].Rows != 3 {
		t.Fatalf("unexpected dry run result: %+v", result)
	}
	if len(snapshotRepo.byCompetition) != 0 {
		t.Fatal("dry run must not persist snapshots")
	}

	_, err = service.Run(context.Background(), RecomputeInput{CompetitionID: "missing"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNormalizeRecomputeWorkerCount(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value, tasks, want int
	}{
		{0, 10, 2},
		{4, 10, 4},
		{100, 10, 8},
		{4, 2, 2},
		{4, 0, 1},
	}
	for _, tc := range cases {
		if got := normalizeRecomputeWorkerCount(tc.value, tc.tasks); got != tc.want {
			t.Fatalf("normalizeRecomputeWorkerCount(%d, %d) = %d, want %d", tc.value, tc.tasks, got, tc.want)
		}
	}
}
