package sport

import "strings"

// Sport identifies one of the disciplines a competition can be played in.
type Sport string

const (
	Football         Sport = "FOOTBALL"
	Netball          Sport = "NETBALL"
	Rugby            Sport = "RUGBY"
	Cricket          Sport = "CRICKET"
	AmericanFootball Sport = "AMERICAN_FOOTBALL"
	Basketball       Sport = "BASKETBALL"
	Hockey           Sport = "HOCKEY"
	Lacrosse         Sport = "LACROSSE"
	AustralianRules  Sport = "AUSTRALIAN_RULES"
	GaelicFootball   Sport = "GAELIC_FOOTBALL"
	Futsal           Sport = "FUTSAL"
	BeachFootball    Sport = "BEACH_FOOTBALL"
)

// All lists every supported sport in declaration order.
var All = []Sport{
	Football,
	Netball,
	Rugby,
	Cricket,
	AmericanFootball,
	Basketball,
	Hockey,
	Lacrosse,
	AustralianRules,
	GaelicFootball,
	Futsal,
	BeachFootball,
}

// Parse normalizes a raw sport code. Unknown values are returned as-is so
// that callers hit the explicit FOOTBALL fallback in RulesFor instead of
// failing here.
func Parse(value string) Sport {
	normalized := Sport(strings.ToUpper(strings.TrimSpace(value)))
	if normalized == "" {
		return Football
	}
	return normalized
}

// IsKnown reports whether the value is one of the 12 supported sports.
func IsKnown(s Sport) bool {
	for _, known := range All {
		if s == known {
			return true
		}
	}
	return false
}
