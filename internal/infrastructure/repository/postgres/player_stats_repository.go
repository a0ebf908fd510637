package postgres

import (
	"context"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"

	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	qb "github.com/pitchconnect/standings-engine/internal/platform/querybuilder"
)

type PlayerStatsRepository struct {
	db *sqlx.DB
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{db: db}
}

func (r *PlayerStatsRepository) ListByCompetition(ctx context.Context, competitionID string) ([]playerstats.PlayerSeasonStat, error) {
	query, args, err := qb.Select("*").From("player_season_stats").
		Where(
			qb.Eq("competition_public_id", competitionID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("player_public_id").
		ToSQL()
	if err != nil {
		return nil, crerr.Wrap(err, "build list player season stats query")
	}

	var rows []playerSeasonStatTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrapf(err, "list player season stats competition=%s", competitionID)
	}

	out := make([]playerstats.PlayerSeasonStat, 0, len(rows))
	for _, row := range rows {
		item, err := playerSeasonStatFromModel(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *PlayerStatsRepository) UpsertSeasonStats(ctx context.Context, items []playerstats.PlayerSeasonStat) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin tx upsert player season stats")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		extra := []byte("{}")
		if len(item.Extra) > 0 {
			encoded, err := sonic.Marshal(item.Extra)
			if err != nil {
				return crerr.Wrapf(err, "encode extra metrics player=%s", item.PlayerID)
			}
			extra = encoded
		}

		query, args, err := qb.InsertInto("player_season_stats").
			Columns(
				"player_public_id",
				"player_name",
				"team_public_id",
				"competition_public_id",
				"goals",
				"assists",
				"appearances",
				"minutes_played",
				"yellow_cards",
				"red_cards",
				"extra",
			).
			Values(
				strings.TrimSpace(item.PlayerID),
				strings.TrimSpace(item.PlayerName),
				strings.TrimSpace(item.TeamID),
				strings.TrimSpace(item.CompetitionID),
				item.Goals,
				item.Assists,
				item.Appearances,
				item.MinutesPlayed,
				item.YellowCards,
				item.RedCards,
				extra,
			).
			Suffix(`ON CONFLICT (competition_public_id, player_public_id)
DO UPDATE SET
    player_name = EXCLUDED.player_name,
    team_public_id = EXCLUDED.team_public_id,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    appearances = EXCLUDED.appearances,
    minutes_played = EXCLUDED.minutes_played,
    yellow_cards = EXCLUDED.yellow_cards,
    red_cards = EXCLUDED.red_cards,
    extra = EXCLUDED.extra,
    updated_at = NOW(),
    deleted_at = NULL`).
			ToSQL()
		if err != nil {
			return crerr.Wrap(err, "build upsert player season stat query")
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return crerr.Wrapf(err, "upsert player season stat player=%s", item.PlayerID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit upsert player season stats tx")
	}
	return nil
}

func playerSeasonStatFromModel(row playerSeasonStatTableModel) (playerstats.PlayerSeasonStat, error) {
	out := playerstats.PlayerSeasonStat{
		PlayerID:      row.PlayerID,
		PlayerName:    row.PlayerName,
		TeamID:        row.TeamID,
		CompetitionID: row.CompetitionID,
		Goals:         row.Goals,
		Assists:       row.Assists,
		Appearances:   row.Appearances,
		MinutesPlayed: row.MinutesPlayed,
		YellowCards:   row.YellowCards,
		RedCards:      row.RedCards,
	}

	if len(row.Extra) > 0 && string(row.Extra) != "null" {
		extra := make(map[string]int)
		if err := sonic.Unmarshal(row.Extra, &extra); err != nil {
			return playerstats.PlayerSeasonStat{}, crerr.Wrapf(err, "decode extra metrics player=%s", row.PlayerID)
		}
		if len(extra) > 0 {
			out.Extra = extra
		}
	}

	return out, nil
}
