package postgres

import (
	"context"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/pitchconnect/standings-engine/internal/domain/match"
	qb "github.com/pitchconnect/standings-engine/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListByCompetition(ctx context.Context, competitionID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("scheduled_at", "id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list matches query")
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		// pgbouncer in transaction mode can drop the unnamed prepared
		// statement between Prepare and Bind; one retry gets a fresh one.
		if !isBindParameterMismatch(err) && !isUnnamedPreparedStatementMissing(err) {
			return nil, crerr.Wrapf(err, "list matches competition=%s", competitionID)
		}
		rows = rows[:0]
		if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
			return nil, crerr.Wrapf(err, "list matches retry competition=%s", competitionID)
		}
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromModel(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("public_id", matchID),
			qb.IsNull("deleted_at"),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, crerr.Wrap(err, "build get match query")
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, crerr.Wrapf(err, "get match %s", matchID)
	}

	return matchFromModel(row), true, nil
}

func (r *MatchRepository) UpsertMatches(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx upsert matches")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := matchInsertModel{
			PublicID:      strings.TrimSpace(item.ID),
			CompetitionID: strings.TrimSpace(item.CompetitionID),
			HomeTeamID:    strings.TrimSpace(item.HomeTeamID),
			AwayTeamID:    strings.TrimSpace(item.AwayTeamID),
			HomeScore:     intPtrToNullInt64(item.HomeScore),
			AwayScore:     intPtrToNullInt64(item.AwayScore),
			ScheduledAt:   item.ScheduledAt,
			Status:        match.NormalizeStatus(item.Status),
			FinishedAt:    timePtrToNullTime(item.FinishedAt),
		}
		query, args, err := qb.InsertModel("matches", insertModel, `ON CONFLICT (public_id)
DO UPDATE SET
    competition_public_id = EXCLUDED.competition_public_id,
    home_team_public_id = EXCLUDED.home_team_public_id,
    away_team_public_id = EXCLUDED.away_team_public_id,
    home_score = EXCLUDED.home_score,
    away_score = EXCLUDED.away_score,
    scheduled_at = EXCLUDED.scheduled_at,
    status = EXCLUDED.status,
    finished_at = EXCLUDED.finished_at,
    updated_at = NOW(),
    deleted_at = NULL`)
		if err != nil {
			return crerr.Wrap(err, "build upsert match query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "upsert match %s", item.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit upsert matches tx")
	}
	return nil
}

func matchFromModel(row matchTableModel) match.Match {
	return match.Match{
		ID:            row.PublicID,
		CompetitionID: row.CompetitionID,
		HomeTeamID:    row.HomeTeamID,
		AwayTeamID:    row.AwayTeamID,
		HomeScore:     nullInt64ToIntPtr(row.HomeScore),
		AwayScore:     nullInt64ToIntPtr(row.AwayScore),
		ScheduledAt:   row.ScheduledAt,
		Status:        row.Status,
		FinishedAt:    nullTimeToTimePtr(row.FinishedAt),
	}
}
