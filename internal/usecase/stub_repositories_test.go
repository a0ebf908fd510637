package usecase

import (
	"context"
	"errors"
	"sort"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/standings"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
)

type stubCompetitionRepository struct {
	byID    map[string]competition.Competition
	listErr error
}

func (r *stubCompetitionRepository) List(_ context.Context) ([]competition.Competition, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]competition.Competition, 0, len(r.byID))
	for _, item := range r.byID {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubCompetitionRepository) GetByID(_ context.Context, competitionID string) (competition.Competition, bool, error) {
	item, ok := r.byID[competitionID]
	return item, ok, nil
}

type stubTeamRepository struct {
	byCompetition map[string][]team.Team
	upserted      []team.Team
}

func (r *stubTeamRepository) ListByCompetition(_ context.Context, competitionID string) ([]team.Team, error) {
	return r.byCompetition[competitionID], nil
}

func (r *stubTeamRepository) GetByID(_ context.Context, competitionID, teamID string) (team.Team, bool, error) {
	for _, item := range r.byCompetition[competitionID] {
		if item.ID == teamID {
			return item, true, nil
		}
	}
	return team.Team{}, false, nil
}

func (r *stubTeamRepository) UpsertTeams(_ context.Context, items []team.Team) error {
	r.upserted = append(r.upserted, items...)
	return nil
}

type stubMatchRepository struct {
	byCompetition map[string][]match.Match
	listErr       error
	listCalls     int
	upserted      []match.Match
}

func (r *stubMatchRepository) ListByCompetition(_ context.Context, competitionID string) ([]match.Match, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.byCompetition[competitionID], nil
}

func (r *stubMatchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	for _, items := range r.byCompetition {
		for _, item := range items {
			if item.ID == matchID {
				return item, true, nil
			}
		}
	}
	return match.Match{}, false, nil
}

func (r *stubMatchRepository) UpsertMatches(_ context.Context, items []match.Match) error {
	r.upserted = append(r.upserted, items...)
	return nil
}

type stubPlayerStatsRepository struct {
	byCompetition map[string][]playerstats.PlayerSeasonStat
	upserted      []playerstats.PlayerSeasonStat
}

func (r *stubPlayerStatsRepository) ListByCompetition(_ context.Context, competitionID string) ([]playerstats.PlayerSeasonStat, error) {
	return r.byCompetition[competitionID], nil
}

func (r *stubPlayerStatsRepository) UpsertSeasonStats(_ context.Context, items []playerstats.PlayerSeasonStat) error {
	r.upserted = append(r.upserted, items...)
	return nil
}

type stubStandingsRepository struct {
	byCompetition map[string][]standings.Row
}

func (r *stubStandingsRepository) ListByCompetition(_ context.Context, competitionID string) ([]standings.Row, error) {
	return r.byCompetition[competitionID], nil
}

func (r *stubStandingsRepository) ReplaceByCompetition(_ context.Context, competitionID string, rows []standings.Row) error {
	if r.byCompetition == nil {
		r.byCompetition = make(map[string][]standings.Row)
	}
	r.byCompetition[competitionID] = append([]standings.Row(nil), rows...)
	return nil
}

type stubIDGenerator struct {
	next int
}

func (g *stubIDGenerator) NewID() (string, error) {
	g.next++
	return "generated-" + string(rune('0'+g.next)), nil
}

var errStubUnavailable = errors.New("backing store unavailable")
