package postgres

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

type competitionTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Code      string     `db:"code"`
	Name      string     `db:"name"`
	Sport     string     `db:"sport"`
	Season    string     `db:"season"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type teamTableModel struct {
	ID            int64      `db:"id"`
	PublicID      string     `db:"public_id"`
	CompetitionID string     `db:"competition_public_id"`
	Name          string     `db:"name"`
	Short         string     `db:"short"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type teamInsertModel struct {
	PublicID      string `db:"public_id"`
	CompetitionID string `db:"competition_public_id"`
	Name          string `db:"name"`
	Short         string `db:"short"`
}

type matchTableModel struct {
	ID            int64         `db:"id"`
	PublicID      string        `db:"public_id"`
	CompetitionID string        `db:"competition_public_id"`
	HomeTeamID    string        `db:"home_team_public_id"`
	AwayTeamID    string        `db:"away_team_public_id"`
	HomeScore     sql.NullInt64 `db:"home_score"`
	AwayScore     sql.NullInt64 `db:"away_score"`
	ScheduledAt   time.Time     `db:"scheduled_at"`
	Status        string        `db:"status"`
	FinishedAt    sql.NullTime  `db:"finished_at"`
	CreatedAt     time.Time     `db:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at"`
	DeletedAt     *time.Time    `db:"deleted_at"`
}

type matchInsertModel struct {
	PublicID      string        `db:"public_id"`
	CompetitionID string        `db:"competition_public_id"`
	HomeTeamID    string        `db:"home_team_public_id"`
	AwayTeamID    string        `db:"away_team_public_id"`
	HomeScore     sql.NullInt64 `db:"home_score"`
	AwayScore     sql.NullInt64 `db:"away_score"`
	ScheduledAt   time.Time     `db:"scheduled_at"`
	Status        string        `db:"status"`
	FinishedAt    sql.NullTime  `db:"finished_at"`
}

type playerSeasonStatTableModel struct {
	ID            int64      `db:"id"`
	PlayerID      string     `db:"player_public_id"`
	PlayerName    string     `db:"player_name"`
	TeamID        string     `db:"team_public_id"`
	CompetitionID string     `db:"competition_public_id"`
	Goals         int        `db:"goals"`
	Assists       int        `db:"assists"`
	Appearances   int        `db:"appearances"`
	MinutesPlayed int        `db:"minutes_played"`
	YellowCards   int        `db:"yellow_cards"`
	RedCards      int        `db:"red_cards"`
	Extra         []byte     `db:"extra"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
	DeletedAt     *time.Time `db:"deleted_at"`
}

type standingsRowTableModel struct {
	ID             int64      `db:"id"`
	CompetitionID  string     `db:"competition_public_id"`
	TeamID         string     `db:"team_public_id"`
	TeamName       string     `db:"team_name"`
	Position       int        `db:"position"`
	Played         int        `db:"played"`
	Won            int        `db:"won"`
	Drawn          int        `db:"drawn"`
	Lost           int        `db:"lost"`
	GoalsFor       int        `db:"goals_for"`
	GoalsAgainst   int        `db:"goals_against"`
	GoalDifference int        `db:"goal_difference"`
	Points         int        `db:"points"`
	WinRatePercent int        `db:"win_rate_percent"`
	CleanSheets    int        `db:"clean_sheets"`
	Form           string     `db:"form"`
	NetRunRate     float64    `db:"net_run_rate"`
	ComputedAt     time.Time  `db:"computed_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

type standingsRowInsertModel struct {
	CompetitionID  string    `db:"competition_public_id"`
	TeamID         string    `db:"team_public_id"`
	TeamName       string    `db:"team_name"`
	Position       int       `db:"position"`
	Played         int       `db:"played"`
	Won            int       `db:"won"`
	Drawn          int       `db:"drawn"`
	Lost           int       `db:"lost"`
	GoalsFor       int       `db:"goals_for"`
	GoalsAgainst   int       `db:"goals_against"`
	GoalDifference int       `db:"goal_difference"`
	Points         int       `db:"points"`
	WinRatePercent int       `db:"win_rate_percent"`
	CleanSheets    int       `db:"clean_sheets"`
	Form           string    `db:"form"`
	NetRunRate     float64   `db:"net_run_rate"`
	ComputedAt     time.Time `db:"computed_at"`
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func intPtrToNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullTimeToTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	out := v.Time
	return &out
}

func timePtrToNullTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}

func nullStringToInt64(v sql.NullString) int64 {
	if !v.Valid {
		return 0
	}
	parsed, err := strconv.ParseInt(strings.TrimSpace(v.String), 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}

// formToSymbols splits a stored "WDLWW" form string back into the one-symbol
// slices the domain layer carries.
func formToSymbols(form string) []string {
	form = strings.TrimSpace(form)
	out := make([]string, 0, len(form))
	for _, r := range form {
		out = append(out, string(r))
	}
	return out
}
