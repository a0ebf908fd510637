package team

import "context"

type Repository interface {
	ListByCompetition(ctx context.Context, competitionID string) ([]Team, error)
	GetByID(ctx context.Context, competitionID, teamID string) (Team, bool, error)
	UpsertTeams(ctx context.Context, items []Team) error
}
