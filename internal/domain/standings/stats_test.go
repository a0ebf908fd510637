package standings

import (
	"testing"
	"time"

	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

func intPtr(v int) *int {
	return &v
}

func finishedMatch(id, home, away string, homeScore, awayScore int, kickoff time.Time) match.Match {
	return match.Match{
		ID:            id,
		CompetitionID: "comp-1",
		HomeTeamID:    home,
		AwayTeamID:    away,
		HomeScore:     intPtr(homeScore),
		AwayScore:     intPtr(awayScore),
		ScheduledAt:   kickoff,
		Status:        match.StatusFinished,
	}
}

func TestComputeTeamStats_FootballScenario(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []match.Match{
		finishedMatch("m1", "team-a", "team-b", 3, 1, base),
		finishedMatch("m2", "team-c", "team-a", 1, 1, base.AddDate(0, 0, 7)),
		finishedMatch("m3", "team-a", "team-d", 0, 2, base.AddDate(0, 0, 14)),
	}

	stats := ComputeTeamStats(matches, "team-a", sport.RulesFor(sport.Football))

	if stats.Played != 3 || stats.Won != 1 || stats.Drawn != 1 || stats.Lost != 1 {
		t.Fatalf("unexpected counters: %+v", stats)
	}
	if stats.Won+stats.Drawn+stats.Lost != stats.Played {
		t.Fatalf("W+D+L != played: %+v", stats)
	}
	if stats.GoalsFor != 4 || stats.GoalsAgainst != 4 || stats.GoalDifference != 0 {
		t.Fatalf("unexpected goals: %+v", stats)
	}
	if stats.Points != 4 {
		t.Fatalf("expected 4 points under football rules, got %d", stats.Points)
	}
	if got := stats.FormString(); got != "WDL" {
		t.Fatalf("expected form WDL oldest-first, got %q", got)
	}
	if stats.CleanSheets != 0 {
		t.Fatalf("expected no clean sheets, got %d", stats.CleanSheets)
	}
}

func TestComputeTeamStats_RugbyPointRule(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []match.Match{
		finishedMatch("m1", "team-a", "team-b", 3, 1, base),
		finishedMatch("m2", "team-c", "team-a", 1, 1, base.AddDate(0, 0, 7)),
		finishedMatch("m3", "team-a", "team-d", 0, 2, base.AddDate(0, 0, 14)),
	}

	stats := ComputeTeamStats(matches, "team-a", sport.RulesFor(sport.Rugby))
	if stats.Points != 6 {
		t.Fatalf("expected 6 points under rugby rules (1 win x4 + 1 draw x2), got %d", stats.Points)
	}
}

func TestComputeTeamStats_PointsTrackRuleDelta(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []match.Match{
		finishedMatch("m1", "team-a", "team-b", 2, 0, base),
		finishedMatch("m2", "team-a", "team-c", 1, 0, base.AddDate(0, 0, 7)),
	}

	rules := sport.RulesFor(sport.Football)
	before := ComputeTeamStats(matches, "team-a", rules)

	rules.PointsForWin += 2
	after := ComputeTeamStats(matches, "team-a", rules)

	if after.Points-before.Points != before.Won*2 {
		t.Fatalf("points delta %d, expected %d", after.Points-before.Points, before.Won*2)
	}
}

func TestComputeTeamStats_EmptyInput(t *testing.T) {
	t.Parallel()

	stats := ComputeTeamStats(nil, "team-a", sport.RulesFor(sport.Football))
	if stats.Played != 0 || stats.Points != 0 || stats.WinRatePercent != 0 {
		t.Fatalf("expected all-zero stats, got %+v", stats)
	}
	if stats.Form == nil || len(stats.Form) != 0 {
		t.Fatalf("expected empty non-nil form, got %#v", stats.Form)
	}
}

func TestComputeTeamStats_SkipsUnfinishedAndMalformed(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	negative := -1
	matches := []match.Match{
		finishedMatch("m1", "team-a", "team-b", 1, 0, base),
		{
			ID:          "m2",
			HomeTeamID:  "team-a",
			AwayTeamID:  "team-c",
			ScheduledAt: base.AddDate(0, 0, 7),
			Status:      match.StatusScheduled,
		},
		{
			ID:          "m3",
			HomeTeamID:  "team-a",
			AwayTeamID:  "team-d",
			HomeScore:   intPtr(2),
			ScheduledAt: base.AddDate(0, 0, 14),
			Status:      match.StatusFinished,
		},
		{
			ID:          "m4",
			HomeTeamID:  "team-a",
			AwayTeamID:  "team-e",
			HomeScore:   &negative,
			AwayScore:   intPtr(0),
			ScheduledAt: base.AddDate(0, 0, 21),
			Status:      match.StatusFinished,
		},
		finishedMatch("m5", "team-x", "team-y", 4, 4, base),
	}

	stats := ComputeTeamStats(matches, "team-a", sport.RulesFor(sport.Football))
	if stats.Played != 1 || stats.Won != 1 {
		t.Fatalf("expected only the finished valid match to count, got %+v", stats)
	}
	if stats.CleanSheets != 1 {
		t.Fatalf("expected one clean sheet, got %d", stats.CleanSheets)
	}
	if stats.WinRatePercent != 100 {
		t.Fatalf("expected 100%% win rate, got %d", stats.WinRatePercent)
	}
}

func TestComputeTeamStats_FormBoundedToFive(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	matches := make([]match.Match, 0, 7)
	// 7 wins then the two most recent are draws: window must show the last 5
	// with oldest of the window first.
	for i := 0; i < 5; i++ {
		matches = append(matches, finishedMatch("w", "team-a", "team-b", 1, 0, base.AddDate(0, 0, i)))
	}
	matches = append(matches, finishedMatch("d1", "team-a", "team-b", 0, 0, base.AddDate(0, 0, 5)))
	matches = append(matches, finishedMatch("d2", "team-a", "team-b", 2, 2, base.AddDate(0, 0, 6)))

	stats := ComputeTeamStats(matches, "team-a", sport.RulesFor(sport.Football))
	if got := stats.FormString(); got != "WWWDD" {
		t.Fatalf("expected form WWWDD, got %q", got)
	}
}

func TestComputeTeamStats_Idempotent(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)
	matches := []match.Match{
		finishedMatch("m1", "team-a", "team-b", 3, 1, base),
		finishedMatch("m2", "team-b", "team-a", 2, 2, base.AddDate(0, 0, 7)),
	}
	rules := sport.RulesFor(sport.Netball)

	first := ComputeTeamStats(matches, "team-a", rules)
	second := ComputeTeamStats(matches, "team-a", rules)

	if first.Points != second.Points || first.FormString() != second.FormString() || first.Played != second.Played {
		t.Fatalf("expected identical results, got %+v vs %+v", first, second)
	}
}
