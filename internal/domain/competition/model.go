package competition

import "github.com/pitchconnect/standings-engine/internal/domain/sport"

// Competition is one league/season a club fields teams in.
type Competition struct {
	ID     string
	Code   string
	Name   string
	Sport  sport.Sport
	Season string
}
