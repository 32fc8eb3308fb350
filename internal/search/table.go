package search

import "github.com/mesh-intelligence/repunit/pkg/types"

// Table keeps the shortest known rendering for every result in
// [0, MaxResult]. An empty entry means the result has not been reached.
// Entries are only ever replaced by strictly shorter strings.
type Table struct {
	entries []string
}

// NewTable returns a table with all MaxResult+1 entries empty.
func NewTable() *Table {
	return &Table{entries: make([]string, types.MaxResult+1)}
}

// InRange reports whether result has a slot in the table.
func InRange(result int64) bool {
	return result >= 0 && result <= types.MaxResult
}

// Offer records expr for result if result is in range and the slot is empty
// or holds a longer string. It reports whether the table changed.
func (t *Table) Offer(result int64, expr string) bool {
	if !InRange(result) || expr == "" {
		return false
	}
	cur := t.entries[result]
	if cur != "" && len(cur) <= len(expr) {
		return false
	}
	t.entries[result] = expr
	return true
}

// Get returns the entry for result and whether it has been reached.
func (t *Table) Get(result int) (string, bool) {
	if !InRange(int64(result)) {
		return "", false
	}
	s := t.entries[result]
	return s, s != ""
}

// Reached returns the number of non-empty entries.
func (t *Table) Reached() int {
	n := 0
	for _, s := range t.entries {
		if s != "" {
			n++
		}
	}
	return n
}

// Merge offers every entry of other in index order.
func (t *Table) Merge(other *Table) {
	for r, s := range other.entries {
		t.Offer(int64(r), s)
	}
}

// Entries returns a copy of the table indexed by result.
func (t *Table) Entries() []string {
	out := make([]string, len(t.entries))
	copy(out, t.entries)
	return out
}
