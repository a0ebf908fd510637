package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/pitchconnect/standings-engine/internal/domain/team"
)

type TeamRepository struct {
	mu                 sync.RWMutex
	teamsByCompetition map[string][]team.Team
}

func NewTeamRepository(teams []team.Team) *TeamRepository {
	teamsByCompetition := make(map[string][]team.Team)
	for _, item := range teams {
		teamsByCompetition[item.CompetitionID] = append(teamsByCompetition[item.CompetitionID], item)
	}

	return &TeamRepository{teamsByCompetition: teamsByCompetition}
}

func (r *TeamRepository) ListByCompetition(_ context.Context, competitionID string) ([]team.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	teams := r.teamsByCompetition[competitionID]
	out := make([]team.Team, 0, len(teams))
	out = append(out, teams...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	return out, nil
}

func (r *TeamRepository) GetByID(_ context.Context, competitionID, teamID string) (team.Team, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.teamsByCompetition[competitionID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}

	return team.Team{}, false, nil
}

func (r *TeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		competitionID := strings.TrimSpace(item.CompetitionID)
		teamID := strings.TrimSpace(item.ID)
		if competitionID == "" || teamID == "" {
			continue
		}

		rows := r.teamsByCompetition[competitionID]
		updated := false
		for idx := range rows {
			if rows[idx].ID == teamID {
				rows[idx] = item
				updated = true
				break
			}
		}
		if !updated {
			rows = append(rows, item)
		}
		r.teamsByCompetition[competitionID] = rows
	}

	return nil
}
