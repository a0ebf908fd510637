package standings

import (
	"context"
	"time"
)

// Row is one team's position within a computed competition table.
type Row struct {
	CompetitionID string
	TeamID        string
	TeamName      string
	Position      int
	Stats         TeamStats
	ComputedAt    time.Time
}

// Repository stores computed standings snapshots so a table can be served
// without refolding every match on each request.
type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]Row, error)
	ReplaceByCompetition(ctx context.Context, competitionID string, rows []Row) error
}
