package cache

import (
	"context"
	"testing"
	"time"

	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
	"github.com/pitchconnect/standings-engine/internal/infrastructure/repository/memory"
	basecache "github.com/pitchconnect/standings-engine/internal/platform/cache"
)

func TestTeamRepositoryServesFromCache(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := memory.NewTeamRepository([]team.Team{
		{ID: "t1", CompetitionID: "comp", Name: "Alpha"},
	})
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.ListByCompetition(ctx, "comp")
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("first list = %d teams", len(first))
	}

	// Write behind the decorator's back; the cached list must not see it.
	if err := next.UpsertTeams(ctx, []team.Team{{ID: "t2", CompetitionID: "comp", Name: "Bravo"}}); err != nil {
		t.Fatalf("upsert direct: %v", err)
	}

	second, err := repo.ListByCompetition(ctx, "comp")
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("second list = %d teams, want cached 1", len(second))
	}
}

func TestTeamRepositoryUpsertInvalidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := memory.NewTeamRepository([]team.Team{
		{ID: "t1", CompetitionID: "comp", Name: "Alpha"},
	})
	repo := NewTeamRepository(next, basecache.NewStore(time.Minute))

	if _, err := repo.ListByCompetition(ctx, "comp"); err != nil {
		t.Fatalf("prime cache: %v", err)
	}
	if err := repo.UpsertTeams(ctx, []team.Team{{ID: "t2", CompetitionID: "comp", Name: "Bravo"}}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	items, err := repo.ListByCompetition(ctx, "comp")
	if err != nil {
		t.Fatalf("list after upsert: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("list after upsert = %d teams, want 2", len(items))
	}
}

func TestMatchRepositoryUpsertInvalidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	score := func(v int) *int { return &v }
	next := memory.NewMatchRepository([]match.Match{
		{
			ID:            "m1",
			CompetitionID: "comp",
			HomeTeamID:    "t1",
			AwayTeamID:    "t2",
			ScheduledAt:   time.Date(2025, 9, 7, 11, 0, 0, 0, time.UTC),
			Status:        match.StatusScheduled,
		},
	})
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	if _, err := repo.ListByCompetition(ctx, "comp"); err != nil {
		t.Fatalf("prime cache: %v", err)
	}

	finished := match.Match{
		ID:            "m1",
		CompetitionID: "comp",
		HomeTeamID:    "t1",
		AwayTeamID:    "t2",
		HomeScore:     score(2),
		AwayScore:     score(0),
		ScheduledAt:   time.Date(2025, 9, 7, 11, 0, 0, 0, time.UTC),
		Status:        match.StatusFinished,
	}
	if err := repo.UpsertMatches(ctx, []match.Match{finished}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	items, err := repo.ListByCompetition(ctx, "comp")
	if err != nil {
		t.Fatalf("list after upsert: %v", err)
	}
	if len(items) != 1 || items[0].Status != match.StatusFinished {
		t.Fatalf("list after upsert = %+v", items)
	}

	got, exists, err := repo.GetByID(ctx, "m1")
	if err != nil || !exists {
		t.Fatalf("get by id: exists=%t err=%v", exists, err)
	}
	if got.HomeScore == nil || *got.HomeScore != 2 {
		t.Fatalf("home score = %v", got.HomeScore)
	}
}
