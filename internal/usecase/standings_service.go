package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
	"github.com/pitchconnect/standings-engine/internal/domain/standings"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
	"github.com/pitchconnect/standings-engine/internal/platform/cache"
	"github.com/pitchconnect/standings-engine/internal/platform/logging"
	"github.com/pitchconnect/standings-engine/internal/platform/resilience"
)

// StandingsTable bundles a computed table with the competition and rule set
// it was computed under, so handlers and exporters can render columns without
// re-resolving the sport.
type StandingsTable struct {
	Competition competition.Competition
	Rules       sport.Rules
	Rows        []standings.Row
}

type StandingsService struct {
	competitionRepo competition.Repository
	matchRepo       match.Repository
	teamRepo        team.Repository
	// snapshotRepo is optional. When present, computed tables are persisted
	// and served as a fallback if match data is temporarily unreadable.
	snapshotRepo standings.Repository
	cache        *cache.Store
	logger       *logging.Logger
	// breaker guards the match-store read. While open, standings reads go
	// straight to the snapshot fallback instead of hammering a failing store.
	breaker *resilience.CircuitBreaker
}

func NewStandingsService(
	competitionRepo competition.Repository,
	matchRepo match.Repository,
	teamRepo team.Repository,
	snapshotRepo standings.Repository,
	cacheStore *cache.Store,
	logger *logging.Logger,
) *StandingsService {
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.DefaultCircuitBreakerConfig()
	return &StandingsService{
		competitionRepo: competitionRepo,
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		snapshotRepo:    snapshotRepo,
		cache:           cacheStore,
		logger:          logger,
		breaker: resilience.NewCircuitBreaker(
			breakerCfg.FailureThreshold,
			breakerCfg.OpenTimeout,
			breakerCfg.HalfOpenMaxReq,
		),
	}
}

// Table computes the current standings for a competition from its finished
// matches. Results are cached per competition; concurrent callers for the
// same competition share a single computation.
func (s *StandingsService) Table(ctx context.Context, competitionID string) (StandingsTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Table")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return StandingsTable{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	if s.cache == nil {
		return s.computeTable(ctx, competitionID)
	}

	value, err := s.cache.GetOrLoad(ctx, "standings:table:"+competitionID, func(ctx context.Context) (any, error) {
		return s.computeTable(ctx, competitionID)
	})
	if err != nil {
		return StandingsTable{}, err
	}
	table, ok := value.(StandingsTable)
	if !ok {
		return s.computeTable(ctx, competitionID)
	}
	return table, nil
}

func (s *StandingsService) computeTable(ctx context.Context, competitionID string) (StandingsTable, error) {
	comp, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return StandingsTable{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return StandingsTable{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	rules := sport.RulesFor(comp.Sport)

	teams, err := s.teamRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return StandingsTable{}, fmt.Errorf("list teams: %w", err)
	}

	matches, err := s.listMatchesGuarded(ctx, competitionID)
	if err != nil {
		if rows, snapErr := s.snapshotRows(ctx, competitionID); snapErr == nil && len(rows) > 0 {
			s.logger.WarnContext(ctx, "serving standings snapshot, match data unavailable",
				"competition_id", competitionID, "error", err)
			return StandingsTable{Competition: comp, Rules: rules, Rows: rows}, nil
		}
		return StandingsTable{}, fmt.Errorf("list matches: %w", err)
	}

	statsByTeam := make(map[string]standings.TeamStats, len(teams))
	nameByTeam := make(map[string]string, len(teams))
	for _, item := range teams {
		statsByTeam[item.ID] = standings.ComputeTeamStats(matches, item.ID, rules)
		nameByTeam[item.ID] = item.Name
	}

	rows := standings.BuildTable(statsByTeam, matches, nameByTeam, rules)
	for idx := range rows {
		rows[idx].CompetitionID = competitionID
	}

	return StandingsTable{Competition: comp, Rules: rules, Rows: rows}, nil
}

// RecomputeAndStore refreshes the competition's persisted snapshot and drops
// the cached table so the next read sees the new data.
func (s *StandingsService) RecomputeAndStore(ctx context.Context, competitionID string) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.RecomputeAndStore")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return 0, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	table, err := s.computeTable(ctx, competitionID)
	if err != nil {
		return 0, err
	}

	if s.snapshotRepo != nil {
		if err := s.snapshotRepo.ReplaceByCompetition(ctx, competitionID, table.Rows); err != nil {
			return 0, fmt.Errorf("replace standings snapshot: %w", err)
		}
	}
	s.InvalidateCompetition(ctx, competitionID)

	return len(table.Rows), nil
}

// InvalidateCompetition evicts cached standings for a competition, typically
// after new results were ingested.
func (s *StandingsService) InvalidateCompetition(ctx context.Context, competitionID string) {
	if s.cache == nil || competitionID == "" {
		return
	}
	s.cache.Delete(ctx, "standings:table:"+competitionID)
}

func (s *StandingsService) listMatchesGuarded(ctx context.Context, competitionID string) ([]match.Match, error) {
	if err := s.breaker.Allow(); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		s.breaker.RecordFailure()
		return nil, err
	}
	s.breaker.RecordSuccess()
	return matches, nil
}

func (s *StandingsService) snapshotRows(ctx context.Context, competitionID string) ([]standings.Row, error) {
	if s.snapshotRepo == nil {
		return nil, nil
	}
	return s.snapshotRepo.ListByCompetition(ctx, competitionID)
}

// Snapshot returns the last persisted table with its computation timestamp,
// without touching match data.
func (s *StandingsService) Snapshot(ctx context.Context, competitionID string) ([]standings.Row, time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Snapshot")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return nil, time.Time{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if s.snapshotRepo == nil {
		return nil, time.Time{}, fmt.Errorf("%w: standings snapshots are not configured", ErrDependencyUnavailable)
	}

	rows, err := s.snapshotRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("list standings snapshot: %w", err)
	}

	var computedAt time.Time
	for _, row := range rows {
		if row.ComputedAt.After(computedAt) {
			computedAt = row.ComputedAt
		}
	}
	return rows, computedAt, nil
}
