package cache

import (
	"context"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
	basecache "github.com/pitchconnect/standings-engine/internal/platform/cache"
)

// Read-through decorators over the persistent repositories. Writes go
// straight to the next layer and invalidate the touched keys.

type CompetitionRepository struct {
	next  competition.Repository
	cache *basecache.Store
}

func NewCompetitionRepository(next competition.Repository, cache *basecache.Store) *CompetitionRepository {
	return &CompetitionRepository{next: next, cache: cache}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	v, err := r.cache.GetOrLoad(ctx, "competition:list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]competition.Competition(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]competition.Competition)
	return append([]competition.Competition(nil), items...), nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	key := "competition:id:" + competitionID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		return cachedCompetitionByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return competition.Competition{}, false, err
	}

	cached, _ := v.(cachedCompetitionByID)
	return cached.value, cached.exists, nil
}

type cachedCompetitionByID struct {
	value  competition.Competition
	exists bool
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	key := "team:list:" + competitionID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCompetition(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		return append([]team.Team(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]team.Team)
	return append([]team.Team(nil), items...), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, competitionID, teamID string) (team.Team, bool, error) {
	key := "team:id:" + competitionID + ":" + teamID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, competitionID, teamID)
		if err != nil {
			return nil, err
		}
		return cachedTeamByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return team.Team{}, false, err
	}

	cached, _ := v.(cachedTeamByID)
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, items []team.Team) error {
	if err := r.next.UpsertTeams(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "team:")
	return nil
}

type cachedTeamByID struct {
	value  team.Team
	exists bool
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListByCompetition(ctx context.Context, competitionID string) ([]match.Match, error) {
	key := "match:list:" + competitionID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCompetition(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	key := "match:id:" + matchID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return cachedMatchByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return match.Match{}, false, err
	}

	cached, _ := v.(cachedMatchByID)
	return cached.value, cached.exists, nil
}

func (r *MatchRepository) UpsertMatches(ctx context.Context, items []match.Match) error {
	if err := r.next.UpsertMatches(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "match:")
	return nil
}

type cachedMatchByID struct {
	value  match.Match
	exists bool
}

type PlayerStatsRepository struct {
	next  playerstats.Repository
	cache *basecache.Store
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cache: cache}
}

func (r *PlayerStatsRepository) ListByCompetition(ctx context.Context, competitionID string) ([]playerstats.PlayerSeasonStat, error) {
	key := "player-stats:list:" + competitionID
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListByCompetition(ctx, competitionID)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.PlayerSeasonStat(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]playerstats.PlayerSeasonStat)
	return append([]playerstats.PlayerSeasonStat(nil), items...), nil
}

func (r *PlayerStatsRepository) UpsertSeasonStats(ctx context.Context, items []playerstats.PlayerSeasonStat) error {
	if err := r.next.UpsertSeasonStats(ctx, items); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, "player-stats:")
	return nil
}
