package memory

import (
	"context"
	"sync"

	"github.com/pitchconnect/standings-engine/internal/domain/standings"
)

type StandingsRepository struct {
	mu                sync.RWMutex
	rowsByCompetition map[string][]standings.Row
}

func NewStandingsRepository() *StandingsRepository {
	return &StandingsRepository{rowsByCompetition: make(map[string][]standings.Row)}
}

func (r *StandingsRepository) ListByCompetition(_ context.Context, competitionID string) ([]standings.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.rowsByCompetition[competitionID]
	out := make([]standings.Row, 0, len(rows))
	out = append(out, rows...)

	return out, nil
}

func (r *StandingsRepository) ReplaceByCompetition(_ context.Context, competitionID string, rows []standings.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := make([]standings.Row, 0, len(rows))
	stored = append(stored, rows...)
	r.rowsByCompetition[competitionID] = stored

	return nil
}
