package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
	qb "github.com/pitchconnect/standings-engine/internal/platform/querybuilder"
)

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context) ([]competition.Competition, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(qb.IsNull("deleted_at")).
		OrderBy("public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list competitions query")
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "list competitions")
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, competitionFromModel(row))
	}

	return out, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, competitionID string) (competition.Competition, bool, error) {
	query, args, err := qb.Select("*").From("competitions").
		Where(
			qb.Eq("public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, crerr.Wrap(err, "build get competition query")
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, crerr.Wrapf(err, "get competition %s", competitionID)
	}

	return competitionFromModel(row), true, nil
}

func competitionFromModel(row competitionTableModel) competition.Competition {
	return competition.Competition{
		ID:     row.PublicID,
		Code:   row.Code,
		Name:   row.Name,
		Sport:  sport.Parse(row.Sport),
		Season: row.Season,
	}
}
