package ranking

import (
	"testing"

	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

func TestBuild_FootballCategories(t *testing.T) {
	t.Parallel()

	players := []playerstats.PlayerSeasonStat{
		{PlayerID: "p1", PlayerName: "Ada", TeamID: "team-a", Goals: 12, Assists: 3, Appearances: 20},
		{PlayerID: "p2", PlayerName: "Ben", TeamID: "team-b", Goals: 9, Assists: 11, Appearances: 22},
		{PlayerID: "p3", PlayerName: "Cleo", TeamID: "team-a", Goals: 12, Assists: 7, Appearances: 18},
	}

	lists := Build(players, sport.RulesFor(sport.Football), 0)

	scorers, ok := lists["topScorers"]
	if !ok {
		t.Fatal("expected topScorers category")
	}
	if len(scorers.Entries) != 3 {
		t.Fatalf("expected 3 scorers, got %d", len(scorers.Entries))
	}
	// 12-goal tie resolves by name: Ada before Cleo.
	if scorers.Entries[0].PlayerID != "p1" || scorers.Entries[1].PlayerID != "p3" || scorers.Entries[2].PlayerID != "p2" {
		t.Fatalf("unexpected scorer order: %+v", scorers.Entries)
	}

	assists := lists["topAssists"]
	if assists.Entries[0].PlayerID != "p2" || assists.Entries[0].Value != 11 {
		t.Fatalf("unexpected assist leader: %+v", assists.Entries)
	}
}

func TestBuild_EmptyCategoryIsNotAnError(t *testing.T) {
	t.Parallel()

	players := []playerstats.PlayerSeasonStat{
		{PlayerID: "p1", PlayerName: "Ada", TeamID: "team-a", Goals: 4},
	}

	lists := Build(players, sport.RulesFor(sport.Football), 0)

	minutes, ok := lists["mostMinutes"]
	if !ok {
		t.Fatal("expected mostMinutes category to exist")
	}
	if minutes.Entries == nil {
		t.Fatal("expected empty non-nil entries")
	}
	if len(minutes.Entries) != 0 {
		t.Fatalf("expected no qualifying players, got %+v", minutes.Entries)
	}
}

func TestBuild_LimitTruncates(t *testing.T) {
	t.Parallel()

	players := make([]playerstats.PlayerSeasonStat, 0, 15)
	for i := 0; i < 15; i++ {
		players = append(players, playerstats.PlayerSeasonStat{
			PlayerID:   string(rune('a' + i)),
			PlayerName: string(rune('A' + i)),
			TeamID:     "team-a",
			Goals:      i + 1,
		})
	}

	lists := Build(players, sport.RulesFor(sport.Football), 0)
	if got := len(lists["topScorers"].Entries); got != DefaultLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultLimit, got)
	}

	lists = Build(players, sport.RulesFor(sport.Football), 3)
	scorers := lists["topScorers"].Entries
	if len(scorers) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(scorers))
	}
	if scorers[0].Value != 15 || scorers[2].Value != 13 {
		t.Fatalf("expected top values kept after truncation, got %+v", scorers)
	}
}

func TestBuild_SportSpecificMetricsFromExtra(t *testing.T) {
	t.Parallel()

	players := []playerstats.PlayerSeasonStat{
		{PlayerID: "p1", PlayerName: "Ada", TeamID: "team-a", Extra: map[string]int{sport.MetricTries: 7}},
		{PlayerID: "p2", PlayerName: "Ben", TeamID: "team-b", Extra: map[string]int{sport.MetricTries: 9}},
		{PlayerID: "p3", PlayerName: "Cleo", TeamID: "team-b"},
	}

	lists := Build(players, sport.RulesFor(sport.Rugby), 0)
	tries := lists["topTries"].Entries
	if len(tries) != 2 {
		t.Fatalf("expected players without the stat excluded, got %+v", tries)
	}
	if tries[0].PlayerID != "p2" || tries[0].Value != 9 {
		t.Fatalf("unexpected try leader: %+v", tries)
	}
}

func TestBuild_DisciplinaryWeighsRedCards(t *testing.T) {
	t.Parallel()

	players := []playerstats.PlayerSeasonStat{
		{PlayerID: "p1", PlayerName: "Ada", TeamID: "team-a", YellowCards: 5},
		{PlayerID: "p2", PlayerName: "Ben", TeamID: "team-b", YellowCards: 1, RedCards: 2},
	}

	lists := Build(players, sport.RulesFor(sport.Football), 0)
	disciplinary := lists["disciplinary"].Entries
	if disciplinary[0].PlayerID != "p2" || disciplinary[0].Value != 7 {
		t.Fatalf("expected red cards weighted x3, got %+v", disciplinary)
	}
}

func TestBuild_DeterministicAcrossRuns(t *testing.T) {
	t.Parallel()

	players := []playerstats.PlayerSeasonStat{
		{PlayerID: "p2", PlayerName: "Same", TeamID: "team-b", Goals: 5},
		{PlayerID: "p1", PlayerName: "Same", TeamID: "team-a", Goals: 5},
	}

	for i := 0; i < 3; i++ {
		lists := Build(players, sport.RulesFor(sport.Football), 0)
		scorers := lists["topScorers"].Entries
		if scorers[0].PlayerID != "p1" {
			t.Fatalf("run %d: expected ID tiebreak, got %+v", i, scorers)
		}
	}
}
