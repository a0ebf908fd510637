package ranking

import (
	"sort"

	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
)

// DefaultLimit bounds a leaderboard when the caller does not ask otherwise.
const DefaultLimit = 10

// Entry is one player's line in a leaderboard.
type Entry struct {
	PlayerID   string
	PlayerName string
	TeamID     string
	Value      int
}

// List is a sorted, bounded leaderboard for one ranking category.
type List struct {
	Key     string
	Label   string
	Metric  string
	Entries []Entry
}

// Build produces one leaderboard per category the sport declares. Players
// are ordered by the category metric descending; ties are broken by player
// name then player ID so repeated builds are bit-identical. A category no
// player has recorded still yields an empty, non-nil list so consumers can
// render an explicit empty state.
func Build(players []playerstats.PlayerSeasonStat, rules sport.Rules, limit int) map[string]List {
	if limit <= 0 {
		limit = DefaultLimit
	}

	out := make(map[string]List, len(rules.RankingCategories))
	for _, category := range rules.RankingCategories {
		out[category.Key] = buildCategory(players, category, limit)
	}
	return out
}

func buildCategory(players []playerstats.PlayerSeasonStat, category sport.Category, limit int) List {
	entries := make([]Entry, 0, len(players))
	for _, player := range players {
		value := player.Metric(category.Metric)
		if value <= 0 {
			continue
		}
		entries = append(entries, Entry{
			PlayerID:   player.PlayerID,
			PlayerName: player.PlayerName,
			TeamID:     player.TeamID,
			Value:      value,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value > entries[j].Value
		}
		if entries[i].PlayerName != entries[j].PlayerName {
			return entries[i].PlayerName < entries[j].PlayerName
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	if len(entries) > limit {
		entries = entries[:limit]
	}

	return List{
		Key:     category.Key,
		Label:   category.Label,
		Metric:  category.Metric,
		Entries: entries,
	}
}
