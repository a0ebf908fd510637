package standings

import (
	"sort"

	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

// Outcome symbols used in form strings.
const (
	OutcomeWin  = "W"
	OutcomeDraw = "D"
	OutcomeLoss = "L"
)

const formWindow = 5

// TeamStats is the season aggregate for one team, recomputed on demand from
// finished matches. It is never persisted as a source of truth.
type TeamStats struct {
	TeamID         string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	WinRatePercent int
	CleanSheets    int
	// Form holds outcome symbols for the most recent finished matches,
	// oldest first, bounded to the last 5.
	Form []string
	// NetRunRate is only meaningful for sports that feed it (cricket). It
	// stays zero when the metric is unavailable and the tiebreaker falls
	// through.
	NetRunRate float64
}

// FormString flattens the form window into the compact "WDLWW" shape used by
// standings tables and exports.
func (s TeamStats) FormString() string {
	out := ""
	for _, symbol := range s.Form {
		out += symbol
	}
	return out
}

// ComputeTeamStats folds the finished matches involving teamID into season
// aggregates under the sport's point rule. Matches that are not finished,
// are missing scores, or do not involve the team are skipped. An empty input
// yields all-zero stats with an empty form.
func ComputeTeamStats(matches []match.Match, teamID string, rules sport.Rules) TeamStats {
	stats := TeamStats{TeamID: teamID, Form: []string{}}

	counted := make([]match.Match, 0, len(matches))
	for _, item := range matches {
		if !match.CountsForTable(item) || !item.Involves(teamID) {
			continue
		}
		counted = append(counted, item)

		teamScore, opponentScore, _, ok := item.SideScores(teamID)
		if !ok {
			continue
		}

		stats.Played++
		stats.GoalsFor += teamScore
		stats.GoalsAgainst += opponentScore
		if opponentScore == 0 {
			stats.CleanSheets++
		}

		switch {
		case teamScore > opponentScore:
			stats.Won++
		case teamScore < opponentScore:
			stats.Lost++
		default:
			stats.Drawn++
		}
	}

	stats.GoalDifference = stats.GoalsFor - stats.GoalsAgainst
	stats.Points = stats.Won*rules.PointsForWin +
		stats.Drawn*rules.PointsForDraw +
		stats.Lost*rules.PointsForLoss +
		rules.BonusPoints(stats.Won, stats.Drawn, stats.Lost)

	if stats.Played > 0 {
		stats.WinRatePercent = (stats.Won*100 + stats.Played/2) / stats.Played
	}

	stats.Form = computeForm(counted, teamID)

	return stats
}

// computeForm picks the last formWindow finished matches by kickoff time and
// maps them to outcome symbols, oldest of the window first.
func computeForm(counted []match.Match, teamID string) []string {
	ordered := append([]match.Match(nil), counted...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ScheduledAt.After(ordered[j].ScheduledAt)
	})
	if len(ordered) > formWindow {
		ordered = ordered[:formWindow]
	}

	form := make([]string, 0, len(ordered))
	for i := len(ordered) - 1; i >= 0; i-- {
		teamScore, opponentScore, _, ok := ordered[i].SideScores(teamID)
		if !ok {
			continue
		}
		switch {
		case teamScore > opponentScore:
			form = append(form, OutcomeWin)
		case teamScore < opponentScore:
			form = append(form, OutcomeLoss)
		default:
			form = append(form, OutcomeDraw)
		}
	}

	return form
}
