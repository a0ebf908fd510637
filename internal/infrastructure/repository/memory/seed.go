package memory

import (
	"time"

	"github.com/pitchconnect/standings-engine/internal/domain/competition"
	"github.com/pitchconnect/standings-engine/internal/domain/match"
	"github.com/pitchconnect/standings-engine/internal/domain/playerstats"
	"github.com/pitchconnect/standings-engine/internal/domain/sport"
	"github.com/pitchconnect/standings-engine/internal/domain/team"
)

const (
	CompetitionIDSundayFootball = "sunday-football-2025"
	CompetitionIDCityBasketball = "city-basketball-2025"
	CompetitionIDCountyRugby    = "county-rugby-2025"
)

func SeedCompetitions() []competition.Competition {
	return []competition.Competition{
		{
			ID:     CompetitionIDSundayFootball,
			Code:   "SUN",
			Name:   "Sunday Football League",
			Sport:  sport.Football,
			Season: "2025/2026",
		},
		{
			ID:     CompetitionIDCityBasketball,
			Code:   "CBB",
			Name:   "City Basketball League",
			Sport:  sport.Basketball,
			Season: "2025/2026",
		},
		{
			ID:     CompetitionIDCountyRugby,
			Code:   "CRU",
			Name:   "County Rugby Championship",
			Sport:  sport.Rugby,
			Season: "2025/2026",
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "sun-rovers", CompetitionID: CompetitionIDSundayFootball, Name: "Riverside Rovers", Short: "ROV"},
		{ID: "sun-athletic", CompetitionID: CompetitionIDSundayFootball, Name: "Oakfield Athletic", Short: "OAK"},
		{ID: "sun-wanderers", CompetitionID: CompetitionIDSundayFootball, Name: "Hillcrest Wanderers", Short: "HLW"},
		{ID: "sun-united", CompetitionID: CompetitionIDSundayFootball, Name: "Milltown United", Short: "MTU"},
		{ID: "cbb-hawks", CompetitionID: CompetitionIDCityBasketball, Name: "Harbour Hawks", Short: "HWK"},
		{ID: "cbb-comets", CompetitionID: CompetitionIDCityBasketball, Name: "Northside Comets", Short: "CMT"},
		{ID: "cbb-giants", CompetitionID: CompetitionIDCityBasketball, Name: "Dockland Giants", Short: "GNT"},
		{ID: "cru-bulls", CompetitionID: CompetitionIDCountyRugby, Name: "Westmoor Bulls", Short: "BUL"},
		{ID: "cru-saints", CompetitionID: CompetitionIDCountyRugby, Name: "Eastbrook Saints", Short: "STS"},
	}
}

func SeedMatches() []match.Match {
	score := func(v int) *int { return &v }

	return []match.Match{
		{
			ID:            "sun-001",
			CompetitionID: CompetitionIDSundayFootball,
			HomeTeamID:    "sun-rovers",
			AwayTeamID:    "sun-athletic",
			HomeScore:     score(2),
			AwayScore:     score(1),
			ScheduledAt:   time.Date(2025, 9, 7, 11, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
		},
		{
			ID:            "sun-002",
			CompetitionID: CompetitionIDSundayFootball,
			HomeTeamID:    "sun-wanderers",
			AwayTeamID:    "sun-united",
			HomeScore:     score(0),
			AwayScore:     score(0),
			ScheduledAt:   time.Date(2025, 9, 7, 13, 0, 0, 0, time.UTC),
			Status:        "FT",
		},
		{
			ID:            "sun-003",
			CompetitionID: CompetitionIDSundayFootball,
			HomeTeamID:    "sun-athletic",
			AwayTeamID:    "sun-wanderers",
			HomeScore:     score(3),
			AwayScore:     score(2),
			ScheduledAt:   time.Date(2025, 9, 14, 11, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
		},
		{
			ID:            "sun-004",
			CompetitionID: CompetitionIDSundayFootball,
			HomeTeamID:    "sun-united",
			AwayTeamID:    "sun-rovers",
			HomeScore:     score(1),
			AwayScore:     score(1),
			ScheduledAt:   time.Date(2025, 9, 14, 13, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
		},
		{
			ID:            "sun-005",
			CompetitionID: CompetitionIDSundayFootball,
			HomeTeamID:    "sun-rovers",
			AwayTeamID:    "sun-wanderers",
			ScheduledAt:   time.Date(2025, 9, 21, 11, 0, 0, 0, time.UTC),
			Status:        match.StatusScheduled,
		},
		{
			ID:            "cbb-001",
			CompetitionID: CompetitionIDCityBasketball,
			HomeTeamID:    "cbb-hawks",
			AwayTeamID:    "cbb-comets",
			HomeScore:     score(88),
			AwayScore:     score(79),
			ScheduledAt:   time.Date(2025, 10, 3, 19, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
		},
		{
			ID:            "cbb-002",
			CompetitionID: CompetitionIDCityBasketball,
			HomeTeamID:    "cbb-giants",
			AwayTeamID:    "cbb-hawks",
			HomeScore:     score(91),
			AwayScore:     score(95),
			ScheduledAt:   time.Date(2025, 10, 10, 19, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
		},
		{
			ID:            "cbb-003",
			CompetitionID: CompetitionIDCityBasketball,
			HomeTeamID:    "cbb-comets",
			AwayTeamID:    "cbb-giants",
			HomeScore:     score(84),
			AwayScore:     score(86),
			ScheduledAt:   time.Date(2025, 10, 17, 19, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
		},
		{
			ID:            "cru-001",
			CompetitionID: CompetitionIDCountyRugby,
			HomeTeamID:    "cru-bulls",
			AwayTeamID:    "cru-saints",
			HomeScore:     score(24),
			AwayScore:     score(17),
			ScheduledAt:   time.Date(2025, 11, 1, 15, 0, 0, 0, time.UTC),
			Status:        match.StatusFinished,
		},
	}
}

func SeedPlayerSeasonStats() []playerstats.PlayerSeasonStat {
	return []playerstats.PlayerSeasonStat{
		{
			PlayerID:      "sun-p-001",
			PlayerName:    "Danny Whitmore",
			TeamID:        "sun-rovers",
			CompetitionID: CompetitionIDSundayFootball,
			Goals:         3,
			Assists:       1,
			Appearances:   3,
			MinutesPlayed: 270,
			YellowCards:   1,
		},
		{
			PlayerID:      "sun-p-002",
			PlayerName:    "Kieran Ashby",
			TeamID:        "sun-athletic",
			CompetitionID: CompetitionIDSundayFootball,
			Goals:         2,
			Assists:       3,
			Appearances:   3,
			MinutesPlayed: 255,
		},
		{
			PlayerID:      "sun-p-003",
			PlayerName:    "Tom Pelham",
			TeamID:        "sun-wanderers",
			CompetitionID: CompetitionIDSundayFootball,
			Goals:         2,
			Assists:       0,
			Appearances:   3,
			MinutesPlayed: 270,
			YellowCards:   2,
			RedCards:      1,
		},
		{
			PlayerID:      "cbb-p-001",
			PlayerName:    "Marcus Vale",
			TeamID:        "cbb-hawks",
			CompetitionID: CompetitionIDCityBasketball,
			Appearances:   2,
			MinutesPlayed: 68,
			Extra:         map[string]int{"points_scored": 47, "rebounds": 18},
		},
		{
			PlayerID:      "cbb-p-002",
			PlayerName:    "Jordan Okafor",
			TeamID:        "cbb-giants",
			CompetitionID: CompetitionIDCityBasketball,
			Appearances:   2,
			MinutesPlayed: 71,
			Extra:         map[string]int{"points_scored": 51, "rebounds": 12},
		},
		{
			PlayerID:      "cru-p-001",
			PlayerName:    "Owen Llewellyn",
			TeamID:        "cru-bulls",
			CompetitionID: CompetitionIDCountyRugby,
			Appearances:   1,
			MinutesPlayed: 80,
			Extra:         map[string]int{"tries": 2, "points_scored": 14},
		},
	}
}
