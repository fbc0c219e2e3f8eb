package parse

import (
	"regexp"
	"strconv"
	"strings"
)

// trackEvent matches a metric track distance at the start of the first
// token, e.g. "800m", "60m Indoor", "100m Hurdles".
var trackEvent = regexp.MustCompile(`^(\d+)m`)

// roadEvents maps named road-race labels to meters. The three "km Road"
// values are offset by +1 on purpose: they break ties against
// identically-valued track events when sorting by distance.
var roadEvents = map[string]float64{
	"5km Road":     5001,
	"10km Road":    10001,
	"20km Road":    20001,
	"1/2 Marathon": 21097.5,
}

// Meters parses an event label into a distance in meters. A metric
// prefix on the leading token wins; otherwise the full label is looked
// up in the named road-race table. Returns ok=false for anything else.
func Meters(raw string) (float64, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return 0, false
	}
	if m := trackEvent.FindStringSubmatch(fields[0]); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, false
		}
		return v, true
	}
	if v, ok := roadEvents[raw]; ok {
		return v, true
	}
	return 0, false
}

// MetersOrZero is the total form of Meters: unknown labels map to the
// 0.0 sentinel.
func MetersOrZero(raw string) float64 {
	v, _ := Meters(raw)
	return v
}
