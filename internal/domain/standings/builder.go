package standings

import (
	"sort"
	"time"

	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

// BuildTable ranks the supplied team stats into a standings table. Primary
// order is points descending; ties are resolved by the sport's tiebreaker
// chain and finally by team name then team ID so positions are always a
// total order with contiguous values 1..N.
//
// The match set is consulted only by the HEAD_TO_HEAD tiebreaker, which
// looks for the direct finished match between the two tied teams and falls
// through to the next comparator when none exists.
func BuildTable(
	statsByTeam map[string]TeamStats,
	matches []match.Match,
	nameByTeam map[string]string,
	rules sport.Rules,
) []Row {
	rows := make([]Row, 0, len(statsByTeam))
	computedAt := time.Now().UTC()
	for teamID, stats := range statsByTeam {
		rows = append(rows, Row{
			TeamID:     teamID,
			TeamName:   nameByTeam[teamID],
			Stats:      stats,
			ComputedAt: computedAt,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return lessRow(rows[i], rows[j], matches, rules.TiebreakerChain)
	})

	for idx := range rows {
		rows[idx].Position = idx + 1
	}

	return rows
}

func lessRow(a, b Row, matches []match.Match, chain []sport.Tiebreaker) bool {
	if a.Stats.Points != b.Stats.Points {
		return a.Stats.Points > b.Stats.Points
	}

	for _, tiebreaker := range chain {
		switch tiebreaker {
		case sport.TiebreakGoalDifference:
			if a.Stats.GoalDifference != b.Stats.GoalDifference {
				return a.Stats.GoalDifference > b.Stats.GoalDifference
			}
		case sport.TiebreakGoalsScored:
			if a.Stats.GoalsFor != b.Stats.GoalsFor {
				return a.Stats.GoalsFor > b.Stats.GoalsFor
			}
		case sport.TiebreakHeadToHead:
			if winner, ok := headToHeadWinner(matches, a.TeamID, b.TeamID); ok {
				return winner == a.TeamID
			}
		case sport.TiebreakNetRunRate:
			if a.Stats.NetRunRate != b.Stats.NetRunRate {
				return a.Stats.NetRunRate > b.Stats.NetRunRate
			}
		}
	}

	// Deterministic fallback after the chain is exhausted.
	if a.TeamName != b.TeamName {
		return a.TeamName < b.TeamName
	}
	return a.TeamID < b.TeamID
}

// headToHeadWinner scans for finished direct matches between the two teams
// and aggregates their scores across home and away legs. ok is false when no
// direct result exists or the legs cancel out.
func headToHeadWinner(matches []match.Match, teamA, teamB string) (string, bool) {
	scoreA, scoreB := 0, 0
	found := false
	for _, item := range matches {
		if !match.CountsForTable(item) {
			continue
		}
		if !item.Involves(teamA) || !item.Involves(teamB) {
			continue
		}
		sideA, sideB, _, ok := item.SideScores(teamA)
		if !ok {
			continue
		}
		found = true
		scoreA += sideA
		scoreB += sideB
	}
	if !found || scoreA == scoreB {
		return "", false
	}
	if scoreA > scoreB {
		return teamA, true
	}
	return teamB, true
}
