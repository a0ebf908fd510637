package sport

// Tiebreaker names one comparator in a rule set's tiebreaker chain.
type Tiebreaker string

const (
	TiebreakGoalDifference Tiebreaker = "GOAL_DIFFERENCE"
	TiebreakGoalsScored    Tiebreaker = "GOALS_SCORED"
	TiebreakHeadToHead     Tiebreaker = "HEAD_TO_HEAD"
	TiebreakNetRunRate     Tiebreaker = "NET_RUN_RATE"
)

// Column keys a displayable/exportable standings column.
type Column string

const (
	ColumnPosition       Column = "position"
	ColumnTeam           Column = "team"
	ColumnPlayed         Column = "played"
	ColumnWon            Column = "won"
	ColumnDrawn          Column = "drawn"
	ColumnLost           Column = "lost"
	ColumnGoalsFor       Column = "goals_for"
	ColumnGoalsAgainst   Column = "goals_against"
	ColumnGoalDifference Column = "goal_difference"
	ColumnPoints         Column = "points"
	ColumnForm           Column = "form"
	ColumnNetRunRate     Column = "net_run_rate"
)

// Category describes one player leaderboard a sport exposes.
type Category struct {
	Key    string
	Metric string
	Label  string
}

// Shared category metrics. Sport-specific metrics (tries, wickets, rebounds,
// touchdowns) live in PlayerSeasonStat.Extra under the same key.
const (
	MetricGoals        = "goals"
	MetricAssists      = "assists"
	MetricAppearances  = "appearances"
	MetricMinutes      = "minutes"
	MetricDisciplinary = "disciplinary"
	MetricTries        = "tries"
	MetricWickets      = "wickets"
	MetricRuns         = "runs"
	MetricRebounds     = "rebounds"
	MetricTouchdowns   = "touchdowns"
	MetricPointsScored = "points_scored"
)

// Rules stores scoring, tiebreak, and presentation parameters for one sport.
type Rules struct {
	Sport             Sport
	PointsForWin      int
	PointsForDraw     int
	PointsForLoss     int
	BonusPointsEnabled bool
	// BonusPointsConfig maps a bonus condition name to its point value. The
	// trigger detection for these conditions is not wired to match-level data
	// yet; see BonusPoints.
	BonusPointsConfig map[string]int
	TiebreakerChain   []Tiebreaker
	StandingsColumns  []Column
	RankingCategories []Category
}

// BonusPoints is the extension point for sport-specific bonus scoring (rugby
// try/losing bonuses and similar). Trigger conditions are not derivable from
// the match fields this engine receives, so the hook currently awards zero.
func (r Rules) BonusPoints(won, drawn, lost int) int {
	if !r.BonusPointsEnabled {
		return 0
	}
	return 0
}

var defaultColumns = []Column{
	ColumnPosition, ColumnTeam, ColumnPlayed, ColumnWon, ColumnDrawn,
	ColumnLost, ColumnGoalsFor, ColumnGoalsAgainst, ColumnGoalDifference,
	ColumnPoints, ColumnForm,
}

var footballCategories = []Category{
	{Key: "topScorers", Metric: MetricGoals, Label: "Top Scorers"},
	{Key: "topAssists", Metric: MetricAssists, Label: "Top Assists"},
	{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
	{Key: "mostMinutes", Metric: MetricMinutes, Label: "Most Minutes"},
	{Key: "disciplinary", Metric: MetricDisciplinary, Label: "Disciplinary"},
}

var rulesBySport = map[Sport]Rules{
	Football: {
		Sport:             Football,
		PointsForWin:      3,
		PointsForDraw:     1,
		TiebreakerChain:   []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored, TiebreakHeadToHead},
		StandingsColumns:  defaultColumns,
		RankingCategories: footballCategories,
	},
	Futsal: {
		Sport:             Futsal,
		PointsForWin:      3,
		PointsForDraw:     1,
		TiebreakerChain:   []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored, TiebreakHeadToHead},
		StandingsColumns:  defaultColumns,
		RankingCategories: footballCategories,
	},
	BeachFootball: {
		Sport:             BeachFootball,
		PointsForWin:      3,
		PointsForDraw:     1,
		TiebreakerChain:   []Tiebreaker{TiebreakHeadToHead, TiebreakGoalDifference, TiebreakGoalsScored},
		StandingsColumns:  defaultColumns,
		RankingCategories: footballCategories,
	},
	Netball: {
		Sport:            Netball,
		PointsForWin:     2,
		PointsForDraw:    1,
		TiebreakerChain:  []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored},
		StandingsColumns: defaultColumns,
		RankingCategories: []Category{
			{Key: "topScorers", Metric: MetricGoals, Label: "Top Goal Shooters"},
			{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
		},
	},
	Rugby: {
		Sport:              Rugby,
		PointsForWin:       4,
		PointsForDraw:      2,
		BonusPointsEnabled: true,
		BonusPointsConfig: map[string]int{
			"tryBonus":    1,
			"losingBonus": 1,
		},
		TiebreakerChain:  []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored, TiebreakHeadToHead},
		StandingsColumns: defaultColumns,
		RankingCategories: []Category{
			{Key: "topTries", Metric: MetricTries, Label: "Top Try Scorers"},
			{Key: "topPoints", Metric: MetricPointsScored, Label: "Top Points Scorers"},
			{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
			{Key: "disciplinary", Metric: MetricDisciplinary, Label: "Disciplinary"},
		},
	},
	Cricket: {
		Sport:            Cricket,
		PointsForWin:     2,
		PointsForDraw:    1,
		TiebreakerChain:  []Tiebreaker{TiebreakNetRunRate, TiebreakHeadToHead},
		StandingsColumns: []Column{ColumnPosition, ColumnTeam, ColumnPlayed, ColumnWon, ColumnDrawn, ColumnLost, ColumnPoints, ColumnNetRunRate, ColumnForm},
		RankingCategories: []Category{
			{Key: "topRuns", Metric: MetricRuns, Label: "Most Runs"},
			{Key: "topWickets", Metric: MetricWickets, Label: "Most Wickets"},
			{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
		},
	},
	AmericanFootball: {
		Sport:            AmericanFootball,
		PointsForWin:     2,
		PointsForDraw:    1,
		TiebreakerChain:  []Tiebreaker{TiebreakHeadToHead, TiebreakGoalDifference},
		StandingsColumns: defaultColumns,
		RankingCategories: []Category{
			{Key: "topTouchdowns", Metric: MetricTouchdowns, Label: "Top Touchdowns"},
			{Key: "topPoints", Metric: MetricPointsScored, Label: "Top Points Scorers"},
			{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
		},
	},
	Basketball: {
		Sport:            Basketball,
		PointsForWin:     2,
		PointsForDraw:    0,
		PointsForLoss:    1,
		TiebreakerChain:  []Tiebreaker{TiebreakHeadToHead, TiebreakGoalDifference},
		StandingsColumns: []Column{ColumnPosition, ColumnTeam, ColumnPlayed, ColumnWon, ColumnLost, ColumnGoalsFor, ColumnGoalsAgainst, ColumnGoalDifference, ColumnPoints, ColumnForm},
		RankingCategories: []Category{
			{Key: "topScorers", Metric: MetricPointsScored, Label: "Top Scorers"},
			{Key: "topRebounders", Metric: MetricRebounds, Label: "Top Rebounders"},
			{Key: "topAssists", Metric: MetricAssists, Label: "Top Assists"},
			{Key: "mostMinutes", Metric: MetricMinutes, Label: "Most Minutes"},
		},
	},
	Hockey: {
		Sport:             Hockey,
		PointsForWin:      3,
		PointsForDraw:     1,
		TiebreakerChain:   []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored, TiebreakHeadToHead},
		StandingsColumns:  defaultColumns,
		RankingCategories: footballCategories,
	},
	Lacrosse: {
		Sport:            Lacrosse,
		PointsForWin:     2,
		PointsForDraw:    1,
		TiebreakerChain:  []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored},
		StandingsColumns: defaultColumns,
		RankingCategories: []Category{
			{Key: "topScorers", Metric: MetricGoals, Label: "Top Scorers"},
			{Key: "topAssists", Metric: MetricAssists, Label: "Top Assists"},
			{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
		},
	},
	AustralianRules: {
		Sport:            AustralianRules,
		PointsForWin:     4,
		PointsForDraw:    2,
		TiebreakerChain:  []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored},
		StandingsColumns: defaultColumns,
		RankingCategories: []Category{
			{Key: "topScorers", Metric: MetricGoals, Label: "Leading Goalkickers"},
			{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
		},
	},
	GaelicFootball: {
		Sport:            GaelicFootball,
		PointsForWin:     2,
		PointsForDraw:    1,
		TiebreakerChain:  []Tiebreaker{TiebreakGoalDifference, TiebreakGoalsScored, TiebreakHeadToHead},
		StandingsColumns: defaultColumns,
		RankingCategories: []Category{
			{Key: "topScorers", Metric: MetricPointsScored, Label: "Top Scorers"},
			{Key: "mostAppearances", Metric: MetricAppearances, Label: "Most Appearances"},
			{Key: "disciplinary", Metric: MetricDisciplinary, Label: "Disciplinary"},
		},
	},
}

// RulesFor resolves the rule set for a sport. Unrecognized sports resolve to
// the FOOTBALL rule set on purpose: a new sport code arriving from upstream
// data must degrade to a sane table instead of breaking the aggregator.
func RulesFor(s Sport) Rules {
	if rules, ok := rulesBySport[s]; ok {
		return copyRules(rules)
	}
	// Explicit fallback branch, kept auditable rather than buried in the map.
	return copyRules(rulesBySport[Football])
}

func copyRules(r Rules) Rules {
	out := r
	out.TiebreakerChain = append([]Tiebreaker(nil), r.TiebreakerChain...)
	out.StandingsColumns = append([]Column(nil), r.StandingsColumns...)
	out.RankingCategories = append([]Category(nil), r.RankingCategories...)
	if r.BonusPointsConfig != nil {
		out.BonusPointsConfig = make(map[string]int, len(r.BonusPointsConfig))
		for k, v := range r.BonusPointsConfig {
			out.BonusPointsConfig[k] = v
		}
	}
	return out
}

// CategoryMetrics returns the metric keys the sport's leaderboards use,
// which doubles as the validation set for sport-specific Extra stats.
func (r Rules) CategoryMetrics() map[string]struct{} {
	out := make(map[string]struct{}, len(r.RankingCategories))
	for _, category := range r.RankingCategories {
		out[category.Metric] = struct{}{}
	}
	return out
}
