package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/pitchconnect/standings-engine/internal/domain/team"
	qb "github.com/pitchconnect/standings-engine/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list teams query")
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list teams competition=%s", competitionID)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromModel(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, competitionID, teamID string) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.Eq("public_id", teamID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, crerr.Wrap(err, "build get team query")
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, crerr.Wrapf(err, "get team %s competition=%s", teamID, competitionID)
	}

	return teamFromModel(row), true, nil
}

func (r *TeamRepository) UpsertTeams(ctx context.Context, items []team.Team) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx upsert teams")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := teamInsertModel{
			PublicID:      strings.TrimSpace(item.ID),
			CompetitionID: strings.TrimSpace(item.CompetitionID),
			Name:          strings.TrimSpace(item.Name),
			Short:         strings.TrimSpace(item.Short),
		}
		query, args, err := qb.InsertModel("teams", insertModel, `ON CONFLICT (public_id)
DO UPDATE SET
    competition_public_id = EXCLUDED.competition_public_id,
    name = EXCLUDED.name,
    short = EXCLUDED.short,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return crerr.Wrap(err, "build upsert team query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "upsert team %s", item.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit upsert teams tx")
	}
	return nil
}

func teamFromModel(row teamTableModel) team.Team {
	return team.Team{
		ID:            row.PublicID,
		CompetitionID: row.CompetitionID,
		Name:          row.Name,
		Short:         row.Short,
	}
}
