package parse

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. The dataset writes dates day-first;
// ISO input is accepted as a courtesy.
var dateLayouts = []string{
	"2/1/2006",
	"2-1-2006",
	"2.1.2006",
	"2/1/06",
	"2006-01-02",
}

// Date parses a day-first free-text date. Returns ok=false when no
// layout matches; unlike the time and distance parsers there is no
// numeric sentinel, because the sorter must push missing dates last.
func Date(raw string) (time.Time, bool) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, clean); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
