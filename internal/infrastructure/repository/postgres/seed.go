package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/pitchconnect/standings-engine/internal/infrastructure/repository/memory"
)

// BootstrapSeed inserts the demo competitions, teams, matches and player
// stats on an empty database so a fresh deployment serves data immediately.
// A non-empty competitions table short-circuits.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM competitions WHERE deleted_at IS NULL`); err != nil {
		return crerr.Wrap(err, "count competitions for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range memory.SeedCompetitions() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO competitions (public_id, code, name, sport, season)
VALUES (:public_id, :code, :name, :sport, :season)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": c.ID,
			"code":      c.Code,
			"name":      c.Name,
			"sport":     string(c.Sport),
			"season":    c.Season,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed competition %s query", c.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed competition %s", c.ID)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, competition_public_id, name, short)
VALUES (:public_id, :competition_public_id, :name, :short)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             t.ID,
			"competition_public_id": t.CompetitionID,
			"name":                  t.Name,
			"short":                 t.Short,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed team %s query", t.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed team %s", t.ID)
		}
	}

	for _, m := range memory.SeedMatches() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO matches (public_id, competition_public_id, home_team_public_id, away_team_public_id, home_score, away_score, scheduled_at, status)
VALUES (:public_id, :competition_public_id, :home_team_public_id, :away_team_public_id, :home_score, :away_score, :scheduled_at, :status)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":             m.ID,
			"competition_public_id": m.CompetitionID,
			"home_team_public_id":   m.HomeTeamID,
			"away_team_public_id":   m.AwayTeamID,
			"home_score":            intPtrToNullInt64(m.HomeScore),
			"away_score":            intPtrToNullInt64(m.AwayScore),
			"scheduled_at":          m.ScheduledAt,
			"status":                m.Status,
		})
		if err != nil {
			return crerr.Wrapf(err, "bind seed match %s query", m.ID)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return crerr.Wrapf(err, "seed match %s", m.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}

	statsRepo := NewPlayerStatsRepository(db)
	if err := statsRepo.UpsertSeasonStats(ctx, memory.SeedPlayerSeasonStats()); err != nil {
		return crerr.Wrap(err, "seed player season stats")
	}

	return nil
}
