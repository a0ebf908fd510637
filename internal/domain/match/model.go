package match

import (
	"strings"
	"time"
)

const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
	StatusFinished  = "FINISHED"
	StatusCancelled = "CANCELLED"
	StatusPostponed = "POSTPONED"
)

// Match represents one fixture between two teams in a competition.
type Match struct {
	ID            string
	CompetitionID string
	HomeTeamID    string
	AwayTeamID    string
	HomeScore     *int
	AwayScore     *int
	ScheduledAt   time.Time
	Status        string
	FinishedAt    *time.Time
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	return status
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusLive, "IN_PLAY", "HT", "1H", "2H", "ET":
		return true
	default:
		return false
	}
}

func IsFinishedStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusFinished, "FT", "AET", "PEN":
		return true
	default:
		return false
	}
}

func IsCancelledLikeStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusCancelled, StatusPostponed, "ABANDONED":
		return true
	default:
		return false
	}
}

// CountsForTable reports whether the match contributes to standings and team
// statistics: finished with both scores recorded and sane. Anything else is
// treated as not yet played and skipped without error.
func CountsForTable(m Match) bool {
	if !IsFinishedStatus(m.Status) {
		return false
	}
	if m.HomeScore == nil || m.AwayScore == nil {
		return false
	}
	if *m.HomeScore < 0 || *m.AwayScore < 0 {
		return false
	}
	return true
}

// Involves reports whether teamID played in this match.
func (m Match) Involves(teamID string) bool {
	return teamID != "" && (m.HomeTeamID == teamID || m.AwayTeamID == teamID)
}

// SideScores returns the team's own and opponent scores plus the opponent ID,
// from the perspective of teamID. ok is false when the team did not play or
// scores are missing.
func (m Match) SideScores(teamID string) (teamScore, opponentScore int, opponentID string, ok bool) {
	if m.HomeScore == nil || m.AwayScore == nil {
		return 0, 0, "", false
	}
	switch teamID {
	case m.HomeTeamID:
		return *m.HomeScore, *m.AwayScore, m.AwayTeamID, true
	case m.AwayTeamID:
		return *m.AwayScore, *m.HomeScore, m.HomeTeamID, true
	default:
		return 0, 0, "", false
	}
}
