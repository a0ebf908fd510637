package standings

import (
	"strings"
	"testing"

	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

func TestExportCSV_TwoRows(t *testing.T) {
	t.Parallel()

	rules := sport.RulesFor(sport.Football)
	rows := []Row{
		{
			TeamID:   "team-a",
			TeamName: "Alpha",
			Position: 1,
			Stats: TeamStats{
				Played: 4, Won: 3, Drawn: 1, GoalsFor: 9, GoalsAgainst: 2,
				GoalDifference: 7, Points: 10, Form: []string{"W", "W", "D", "W"},
			},
		},
		{
			TeamID:   "team-b",
			TeamName: "Bravo",
			Position: 2,
			Stats: TeamStats{
				Played: 4, Won: 2, Drawn: 1, Lost: 1, GoalsFor: 6, GoalsAgainst: 5,
				GoalDifference: 1, Points: 7, Form: []string{"L", "W", "D", "W"},
			},
		},
	}

	out, err := ExportCSV(rows, rules.StandingsColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines: %q", len(lines), out)
	}
	if lines[0] != "position,team,played,won,drawn,lost,goals_for,goals_against,goal_difference,points,form" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "1,Alpha,4,3,1,0,9,2,7,10,WWDW" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "2,Bravo,4,2,1,1,6,5,1,7,LWDW" {
		t.Fatalf("unexpected second row: %q", lines[2])
	}
}

func TestExportCSV_QuotesDelimiterInTeamName(t *testing.T) {
	t.Parallel()

	rows := []Row{
		{
			TeamID:   "team-a",
			TeamName: "Borussia, United",
			Position: 1,
			Stats:    TeamStats{Played: 1, Won: 1, Points: 3},
		},
	}

	out, err := ExportCSV(rows, []sport.Column{sport.ColumnPosition, sport.ColumnTeam, sport.ColumnPoints})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"Borussia, United"`) {
		t.Fatalf("expected quoted team name, got %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("quoting must not add lines, got %d: %q", len(lines), out)
	}
}

func TestExportCSV_EmptyTableStillHasHeader(t *testing.T) {
	t.Parallel()

	out, err := ExportCSV(nil, sport.RulesFor(sport.Netball).StandingsColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %q", out)
	}
}

func TestExportCSV_RequiresColumns(t *testing.T) {
	t.Parallel()

	if _, err := ExportCSV(nil, nil); err == nil {
		t.Fatal("expected error for empty column set")
	}
}

func TestExportCSV_CricketColumnsIncludeNetRunRate(t *testing.T) {
	t.Parallel()

	rules := sport.RulesFor(sport.Cricket)
	rows := []Row{
		{
			TeamID:   "team-a",
			TeamName: "Alpha CC",
			Position: 1,
			Stats:    TeamStats{Played: 5, Won: 4, Lost: 1, Points: 8, NetRunRate: 1.25},
		},
	}

	out, err := ExportCSV(rows, rules.StandingsColumns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "net_run_rate") {
		t.Fatalf("expected net_run_rate column in header: %q", out)
	}
	if !strings.Contains(out, "1.250") {
		t.Fatalf("expected formatted net run rate: %q", out)
	}
}
