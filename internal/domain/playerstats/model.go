package playerstats

// PlayerSeasonStat aggregates one player's numbers over a season. The common
// fields exist for every sport; sport-specific metrics (tries, wickets,
// rebounds, touchdowns, points_scored, runs) travel in Extra keyed by the
// metric names declared in the sport rule table.
type PlayerSeasonStat struct {
	PlayerID      string
	PlayerName    string
	TeamID        string
	CompetitionID string
	Goals         int
	Assists       int
	Appearances   int
	MinutesPlayed int
	YellowCards   int
	RedCards      int
	Extra         map[string]int
}

// Metric resolves a metric key against the stat line. Unknown or absent
// metrics read as zero so sparse sport-specific data never breaks a ranking.
func (p PlayerSeasonStat) Metric(key string) int {
	switch key {
	case "goals":
		return p.Goals
	case "assists":
		return p.Assists
	case "appearances":
		return p.Appearances
	case "minutes":
		return p.MinutesPlayed
	case "disciplinary":
		return p.YellowCards + p.RedCards*3
	default:
		return p.Extra[key]
	}
}
