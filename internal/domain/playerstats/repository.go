package playerstats

import "context"

type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]PlayerSeasonStat, error)
	UpsertSeasonStats(ctx context.Context, items []PlayerSeasonStat) error
}
