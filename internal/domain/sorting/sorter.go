// Package sorting orders athlete records by a single column, replacing
// the Event, Time and Date columns with normalized numeric keys so they
// sort semantically rather than lexically.
package sorting

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/adurand33/Performance/internal/domain/model"
	"github.com/adurand33/Performance/internal/domain/parse"
	"github.com/adurand33/Performance/pkg/metrics"
)

// ErrUnknownColumn signals that the requested column is not part of the
// table. The sort still succeeds, falling back to lexical order on the
// raw column text; callers surface it as a non-fatal warning.
var ErrUnknownColumn = errors.New("unknown sort column")

// keyKind tags the comparator value derived for a record.
type keyKind int

const (
	kindText keyKind = iota
	kindNumber
	kindTimestamp
	kindInvalid // projection missing; sorts last regardless of direction
)

// sortValue is the per-record comparator value, computed once per pass.
type sortValue struct {
	kind keyKind
	num  float64
	ts   time.Time
	text string
}

// compare is a three-way comparison between values of the same kind.
// The caller has already ordered invalid values last.
func (v sortValue) compare(o sortValue) int {
	switch v.kind {
	case kindNumber:
		switch {
		case v.num < o.num:
			return -1
		case v.num > o.num:
			return 1
		}
		return 0
	case kindTimestamp:
		switch {
		case v.ts.Before(o.ts):
			return -1
		case v.ts.After(o.ts):
			return 1
		}
		return 0
	default:
		return strings.Compare(v.text, o.text)
	}
}

// project derives the comparator value for one record and column.
// Unparsable events and times keep their 0.0 sentinel and participate
// in the ordering; only a missing date is treated as incomparable.
func project(r model.Record, column string) sortValue {
	switch column {
	case model.ColumnEvent:
		m, ok := parse.Meters(r.Event)
		if !ok {
			metrics.RecordParseFailure("distance")
		}
		return sortValue{kind: kindNumber, num: m}
	case model.ColumnTime:
		s, ok := parse.Seconds(r.Time)
		if !ok {
			metrics.RecordParseFailure("time")
		}
		return sortValue{kind: kindNumber, num: s}
	case model.ColumnDate:
		ts, ok := parse.Date(r.Date)
		if !ok {
			metrics.RecordParseFailure("date")
			return sortValue{kind: kindInvalid}
		}
		return sortValue{kind: kindTimestamp, ts: ts}
	default:
		return sortValue{kind: kindText, text: r.Field(column)}
	}
}

// Sort returns the records ordered by key. The sort is stable: records
// comparing equal on the active key keep their relative input order, so
// repeated clicks on a column produce a predictable, reversible
// ordering instead of reshuffling ties.
//
// An unknown key column degrades to a lexical sort over the raw column
// text (empty for every record, so input order is preserved) and is
// reported via ErrUnknownColumn; the returned slice is always valid.
func Sort(records []model.Record, key model.SortKey) ([]model.Record, error) {
	metrics.RecordSortOperation(key.Column, key.Ascending)

	var warn error
	if !model.IsColumn(key.Column) {
		warn = fmt.Errorf("sorting %q: %w", key.Column, ErrUnknownColumn)
		metrics.RecordSortFallback()
	}

	type keyed struct {
		rec model.Record
		key sortValue
	}
	rows := make([]keyed, len(records))
	for i, r := range records {
		rows[i] = keyed{rec: r, key: project(r, key.Column)}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].key, rows[j].key
		// Missing projections sort last in both directions.
		if (a.kind == kindInvalid) != (b.kind == kindInvalid) {
			return b.kind == kindInvalid
		}
		c := a.compare(b)
		if !key.Ascending {
			c = -c
		}
		return c < 0
	})

	out := make([]model.Record, len(rows))
	for i, row := range rows {
		out[i] = row.rec
	}
	return out, warn
}
