package model

// SortKey is the (column, direction) pair driving the current table
// ordering. It is session-scoped state owned by the caller; nothing in
// this package or below keeps a process-wide instance.
type SortKey struct {
	Column    string `json:"column"`
	Ascending bool   `json:"ascending"`
}

// DefaultSortKey is the ordering a fresh session starts with.
func DefaultSortKey() SortKey {
	return SortKey{Column: ColumnEvent, Ascending: true}
}

// Toggle returns the key after a click on column: same column flips the
// direction, a different column resets to ascending.
func (k SortKey) Toggle(column string) SortKey {
	if k.Column == column {
		return SortKey{Column: column, Ascending: !k.Ascending}
	}
	return SortKey{Column: column, Ascending: true}
}
