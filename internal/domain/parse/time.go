// Package parse converts the free-text time, distance and date columns
// of athlete records into sortable numeric keys. All parsers are pure;
// the OrZero variants are total and degrade malformed input to a zero
// sentinel instead of failing a render.
package parse

import (
	"strconv"
	"strings"
)

// Time grammar constants.
const (
	secondsPerHour      = 3600
	secondsPerMinute    = 60
	hundredthsPerSecond = 100
)

// isSeparator reports whether r is a minute/second separator. Source
// data mixes ' and " for the same role.
func isSeparator(r rune) bool {
	return r == '\'' || r == '"'
}

// Seconds parses a free-text race time into elapsed seconds.
//
// Grammar, tried in order:
//  1. hour form:        <H>h<M>'<S>         -> H*3600 + M*60 + S
//  2. two separators:   <M>'<S>"<C>         -> M*60 + S + C/100
//  3. one separator:    <M>'<S>             -> M*60 + S
//  4. fallback: separators become a decimal point, plain float seconds
//
// Returns ok=false when no rule matched.
func Seconds(raw string) (float64, bool) {
	clean := strings.ReplaceAll(strings.TrimSpace(raw), `"`, "'")

	if strings.Contains(clean, "h") {
		return hourForm(clean)
	}

	parts := splitSeparators(clean)
	switch len(parts) {
	case 2:
		m, errM := strconv.ParseFloat(parts[0], 64)
		s, errS := strconv.ParseFloat(parts[1], 64)
		if errM == nil && errS == nil {
			return m*secondsPerMinute + s, true
		}
	case 3:
		m, errM := strconv.ParseFloat(parts[0], 64)
		s, errS := strconv.ParseFloat(parts[1], 64)
		c, errC := strconv.ParseFloat(parts[2], 64)
		if errM == nil && errS == nil && errC == nil {
			return m*secondsPerMinute + s + c/hundredthsPerSecond, true
		}
	}

	// Plain seconds, possibly written with a separator as the decimal
	// point ("45'30" never reaches here; "45.30" and "45" do).
	v, err := strconv.ParseFloat(strings.ReplaceAll(clean, "'", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SecondsOrZero is the total form of Seconds: malformed input maps to
// the 0.0 sentinel. The sentinel is indistinguishable from a genuine
// zero time; callers that must tell them apart use Seconds.
func SecondsOrZero(raw string) float64 {
	v, _ := Seconds(raw)
	return v
}

// hourForm parses <H>h<M>'<S>, where S may carry a fraction and stray
// trailing separators are ignored.
func hourForm(clean string) (float64, bool) {
	hPart, rest, _ := strings.Cut(clean, "h")
	mPart, sPart, found := strings.Cut(rest, "'")
	if !found {
		return 0, false
	}
	h, errH := strconv.Atoi(hPart)
	m, errM := strconv.Atoi(mPart)
	s, errS := strconv.ParseFloat(strings.ReplaceAll(sPart, "'", ""), 64)
	if errH != nil || errM != nil || errS != nil {
		return 0, false
	}
	return float64(h)*secondsPerHour + float64(m)*secondsPerMinute + s, true
}

// splitSeparators splits on ' and " ; empty tokens are dropped.
func splitSeparators(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}
