package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/platform/logging"
)

type RecomputeInput struct {
	// CompetitionID narrows the run to one competition; empty means all.
	CompetitionID string
	MaxWorkers    int
	// DryRun computes tables without persisting snapshots.
	DryRun bool
}

type RecomputeResult struct {
	CompetitionCount int                   `json:"competition_count"`
	SuccessCount     int                   `json:"success_count"`
	FailedCount      int                   `json:"failed_count"`
	WorkerCount      int                   `json:"worker_count"`
	Tasks            []RecomputeTaskResult `json:"tasks"`
}

type RecomputeTaskResult struct {
	CompetitionID string `json:"competition_id"`
	Status        string `json:"status"`
	Rows          int    `json:"rows"`
	DurationMs    int64  `json:"duration_ms"`
	Message       string `json:"message,omitempty"`
}

const (
	recomputeStatusSuccess = "success"
	recomputeStatusFailed  = "failed"
)

// RecomputeService refreshes standings snapshots across competitions with a
// bounded worker pool, so a full-league refresh after a big ingestion batch
// does not serialize on one goroutine.
type RecomputeService struct {
	competitionRepo  competition.Repository
	standingsService *StandingsService
	logger           *logging.Logger
	defaultWorkers   int
}

// SetDefaultWorkers sets the pool size used when a run does not request one.
func (s *RecomputeService) SetDefaultWorkers(n int) {
	if n > 0 {
		s.defaultWorkers = n
	}
}

func NewRecomputeService(
	competitionRepo competition.Repository,
	standingsService *StandingsService,
	logger *logging.Logger,
) *RecomputeService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecomputeService{
		competitionRepo:  competitionRepo,
		standingsService: standingsService,
		logger:           logger,
	}
}

func (s *RecomputeService) Run(ctx context.Context, input RecomputeInput) (RecomputeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecomputeService.Run")
	defer span.End()

	if s.standingsService == nil {
		return RecomputeResult{}, fmt.Errorf("%w: standings service is not configured", ErrDependencyUnavailable)
	}

	targets, err := s.resolveTargets(ctx, input.CompetitionID)
	if err != nil {
		return RecomputeResult{}, err
	}

	maxWorkers := input.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = s.defaultWorkers
	}
	workerCount := normalizeRecomputeWorkerCount(maxWorkers, len(targets))
	result := RecomputeResult{
		CompetitionCount: len(targets),
		WorkerCount:      workerCount,
		Tasks:            make([]RecomputeTaskResult, 0, len(targets)),
	}
	if len(targets) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return RecomputeResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan RecomputeTaskResult, len(targets))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	for _, target := range targets {
		target := target
		if err := pool.Submit(func() {
			start := time.Now()
			row := RecomputeTaskResult{CompetitionID: target.ID}

			rows, runErr := s.runOne(ctx, target.ID, input.DryRun)
			row.Rows = rows
			row.DurationMs = time.Since(start).Milliseconds()
			if runErr != nil {
				row.Status = recomputeStatusFailed
				row.Message = runErr.Error()
				failedCount.Add(1)
				s.logger.ErrorContext(ctx, "standings recompute failed",
					"competition_id", target.ID, "error", runErr)
			} else {
				row.Status = recomputeStatusSuccess
				successCount.Add(1)
			}

			results <- row
		}); err != nil {
			return RecomputeResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	for len(result.Tasks) < len(targets) {
		result.Tasks = append(result.Tasks, <-results)
	}

	sort.SliceStable(result.Tasks, func(i, j int) bool {
		return result.Tasks[i].CompetitionID < result.Tasks[j].CompetitionID
	})

	result.SuccessCount = int(successCount.Load())
	result.FailedCount = int(failedCount.Load())
	return result, nil
}

func (s *RecomputeService) runOne(ctx context.Context, competitionID string, dryRun bool) (int, error) {
	if dryRun {
		table, err := s.standingsService.computeTable(ctx, competitionID)
		if err != nil {
			return 0, err
		}
		return len(table.Rows), nil
	}
	return s.standingsService.RecomputeAndStore(ctx, competitionID)
}

func (s *RecomputeService) resolveTargets(ctx context.Context, competitionID string) ([]competition.Competition, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID != "" {
		item, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
		if err != nil {
			return nil, fmt.Errorf("get competition: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
		}
		return []competition.Competition{item}, nil
	}

	items, err := s.competitionRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items, nil
}

func normalizeRecomputeWorkerCount(value int, taskCount int) int {
	if taskCount <= 0 {
		return 1
	}
	if value <= 0 {
		value = 2
	}
	if value > 8 {
		value = 8
	}
	if value > taskCount {
		value = taskCount
	}
	return value
}
