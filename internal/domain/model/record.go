// Package model contains domain models passed between layers.
package model

// Column names of the athlete record table, in display order.
const (
	ColumnEvent    = "Event"
	ColumnTime     = "Time"
	ColumnCategory = "Category"
	ColumnClub     = "Club"
	ColumnRegion   = "Region"
	ColumnLocation = "Location"
	ColumnDate     = "Date"
)

// Columns lists the table columns in display order.
var Columns = []string{
	ColumnEvent,
	ColumnTime,
	ColumnCategory,
	ColumnClub,
	ColumnRegion,
	ColumnLocation,
	ColumnDate,
}

// IsColumn reports whether name is a known table column.
func IsColumn(name string) bool {
	for _, c := range Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Record is a single performance entry for an athlete.
// Every field is present at the schema level; any value may be
// empty or malformed free text.
type Record struct {
	Event    string `json:"Event"`    // event label, e.g. "800m Indoor", "5km Road"
	Time     string `json:"Time"`     // free-text race time, e.g. "3'45\"67", "2h03'45.67"
	Category string `json:"Category"` // age/ability category
	Club     string `json:"Club"`
	Region   string `json:"Region"`
	Location string `json:"Location"`
	Date     string `json:"Date"` // day-first free text, e.g. "14/06/2024"
}

// Field returns the value of the named column, or the empty string
// for an unknown column name.
func (r Record) Field(column string) string {
	switch column {
	case ColumnEvent:
		return r.Event
	case ColumnTime:
		return r.Time
	case ColumnCategory:
		return r.Category
	case ColumnClub:
		return r.Club
	case ColumnRegion:
		return r.Region
	case ColumnLocation:
		return r.Location
	case ColumnDate:
		return r.Date
	}
	return ""
}

// Dataset maps an athlete name to that athlete's records. Order within
// a record slice carries no meaning; it is re-established by sorting.
type Dataset map[string][]Record
