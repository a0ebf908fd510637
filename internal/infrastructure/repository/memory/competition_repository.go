package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
)

type CompetitionRepository struct {
	mu   sync.RWMutex
	byID map[string]competition.Competition
}

func NewCompetitionRepository(items []competition.Competition) *CompetitionRepository {
	byID := make(map[string]competition.Competition, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	return &CompetitionRepository{byID: byID}
}

func (r *CompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]competition.Competition, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[competitionID]
	return item, ok, nil
}
