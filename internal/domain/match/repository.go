package match

import "context"

// Repository provides read/write access to match results for a competition.
type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	UpsertMatches(ctx context.Context, items []Match) error
}
