package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	mu                 sync.RWMutex
	statsByCompetition map[string][]playerstats.PlayerSeasonStat
}

func NewPlayerStatsRepository(stats []playerstats.PlayerSeasonStat) *PlayerStatsRepository {
	statsByCompetition := make(map[string][]playerstats.PlayerSeasonStat)
	for _, item := range stats {
		statsByCompetition[item.CompetitionID] = append(statsByCompetition[item.CompetitionID], item)
	}

	return &PlayerStatsRepository{statsByCompetition: statsByCompetition}
}

func (r *PlayerStatsRepository) ListByCompetition(_ context.Context, competitionID string) ([]playerstats.PlayerSeasonStat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := r.statsByCompetition[competitionID]
	out := make([]playerstats.PlayerSeasonStat, 0, len(stats))
	for _, item := range stats {
		out = append(out, copyStat(item))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })

	return out, nil
}

func (r *PlayerStatsRepository) UpsertSeasonStats(_ context.Context, items []playerstats.PlayerSeasonStat) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		competitionID := strings.TrimSpace(item.CompetitionID)
		playerID := strings.TrimSpace(item.PlayerID)
		if competitionID == "" || playerID == "" {
			continue
		}

		rows := r.statsByCompetition[competitionID]
		updated := false
		for idx := range rows {
			if rows[idx].PlayerID == playerID {
				rows[idx] = copyStat(item)
				updated = true
				break
			}
		}
		if !updated {
			rows = append(rows, copyStat(item))
		}
		r.statsByCompetition[competitionID] = rows
	}

	return nil
}

func copyStat(item playerstats.PlayerSeasonStat) playerstats.PlayerSeasonStat {
	out := item
	if item.Extra != nil {
		out.Extra = make(map[string]int, len(item.Extra))
		for key, value := range item.Extra {
			out.Extra[key] = value
		}
	}
	return out
}
