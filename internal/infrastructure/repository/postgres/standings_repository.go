package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/pitchconnect/standings-engine/internal/domain/standings"
	qb "github.com/pitchconnect/standings-engine/internal/platform/querybuilder"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

func (r *StandingsRepository) ListByCompetition(ctx context.Context, competitionID string) ([]standings.Row, error) {
	query, args, err := qb.Select("*").From("standings_rows").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("position", "points DESC", "goal_difference DESC", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list standings rows query")
	}

	var rows []standingsRowTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list standings rows competition=%s", competitionID)
	}

	out := make([]standings.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, standings.Row{
			CompetitionID: row.CompetitionID,
			TeamID:        row.TeamID,
			TeamName:      row.TeamName,
			Position:      row.Position,
			Stats: standings.TeamStats{
				TeamID:         row.TeamID,
				Played:         row.Played,
				Won:            row.Won,
				Drawn:          row.Drawn,
				Lost:           row.Lost,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
				Points:         row.Points,
				WinRatePercent: row.WinRatePercent,
				CleanSheets:    row.CleanSheets,
				Form:           formToSymbols(row.Form),
				NetRunRate:     row.NetRunRate,
			},
			ComputedAt: row.ComputedAt,
		})
	}

	return out, nil
}

func (r *StandingsRepository) ReplaceByCompetition(ctx context.Context, competitionID string, rows []standings.Row) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx replace standings rows")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	clearQuery, clearArgs, err := qb.Update("standings_rows").
		SetExpr("deleted_at", "NOW()").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return crerr.Wrap(err, "build clear standings rows query")
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return crerr.Wrapf(err, "clear standings rows competition=%s", competitionID)
	}

	for _, item := range rows {
		insertModel := standingsRowInsertModel{
			CompetitionID:  competitionID,
			TeamID:         item.TeamID,
			TeamName:       item.TeamName,
			Position:       item.Position,
			Played:         item.Stats.Played,
			Won:            item.Stats.Won,
			Drawn:          item.Stats.Drawn,
			Lost:           item.Stats.Lost,
			GoalsFor:       item.Stats.GoalsFor,
			GoalsAgainst:   item.Stats.GoalsAgainst,
			GoalDifference: item.Stats.GoalDifference,
			Points:         item.Stats.Points,
			WinRatePercent: item.Stats.WinRatePercent,
			CleanSheets:    item.Stats.CleanSheets,
			Form:           item.Stats.FormString(),
			NetRunRate:     item.Stats.NetRunRate,
			ComputedAt:     item.ComputedAt,
		}
		query, args, err := qb.InsertModel("standings_rows", insertModel, `ON CONFLICT (competition_public_id, team_public_id) WHERE deleted_at IS NULL
DO UPDATE SET
    team_name = EXCLUDED.team_name,
    position = EXCLUDED.position,
    played = EXCLUDED.played,
    won = EXCLUDED.won,
    drawn = EXCLUDED.drawn,
    lost = EXCLUDED.lost,
    goals_for = EXCLUDED.goals_for,
    goals_against = EXCLUDED.goals_against,
    goal_difference = EXCLUDED.goal_difference,
    points = EXCLUDED.points,
    win_rate_percent = EXCLUDED.win_rate_percent,
    clean_sheets = EXCLUDED.clean_sheets,
    form = EXCLUDED.form,
    net_run_rate = EXCLUDED.net_run_rate,
    computed_at = EXCLUDED.computed_at,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return crerr.Wrap(err, "build upsert standings row query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "upsert standings row team=%s", item.TeamID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit replace standings rows tx")
	}
	return nil
}
