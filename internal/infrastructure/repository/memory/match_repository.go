package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pitchconnect/standings-engine/internal/domain/match"
)

type MatchRepository struct {
	mu                   sync.RWMutex
	matchesByCompetition map[string][]match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	matchesByCompetition := make(map[string][]match.Match)
	for _, item := range matches {
		matchesByCompetition[item.CompetitionID] = append(matchesByCompetition[item.CompetitionID], item)
	}

	return &MatchRepository{matchesByCompetition: matchesByCompetition}
}

func (r *MatchRepository) ListByCompetition(_ context.Context, competitionID string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := r.matchesByCompetition[competitionID]
	out := make([]match.Match, 0, len(matches))
	out = append(out, matches...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ScheduledAt.Equal(out[j].ScheduledAt) {
			return out[i].ScheduledAt.Before(out[j].ScheduledAt)
		}
		return out[i].ID < out[j].ID
	})

	return out, nil
}

func (r *MatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, matches := range r.matchesByCompetition {
		for _, item := range matches {
			if item.ID == matchID {
				return item, true, nil
			}
		}
	}

	return match.Match{}, false, nil
}

func (r *MatchRepository) UpsertMatches(_ context.Context, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		competitionID := strings.TrimSpace(item.CompetitionID)
		matchID := strings.TrimSpace(item.ID)
		if competitionID == "" || matchID == "" {
			continue
		}

		rows := r.matchesByCompetition[competitionID]
		updated := false
		for idx := range rows {
			if rows[idx].ID == matchID {
				rows[idx] = item
				updated = true
				break
			}
		}
		if !updated {
			rows = append(rows, item)
		}
		r.matchesByCompetition[competitionID] = rows
	}

	return nil
}
