// SPDX-License-Identifier: MIT
package symbol

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type (
	// Entry holds the metadata tracked for a single identifier.
	Entry struct {
		Name         string
		DeclaredType string // Set during semantic analysis; a later phase.
		FirstLine    int
		FirstCol     int
		Occurrences  int
	}

	// Table tracks every identifier encountered during a scan session.
	//
	// Synchronization is unnecessary, the type is owned by a single scan
	// session & mutated by its control goroutine alone.
	Table struct {
		entries map[string]*Entry

		// order preserves discovery order for stable listings.
		order []string
	}
)

// untypedMarker is the placeholder type annotation until a later compiler
// phase fills declarations in.
const untypedMarker = "unknown"

// String is the `fmt.Stringer` interface implementation for `Entry`.
func (e Entry) String() string {
	return fmt.Sprintf("%-22s | %-12s | Line: %-4d Col: %-4d | Count: %d",
		e.Name, e.DeclaredType, e.FirstLine, e.FirstCol, e.Occurrences)
}

// New instantiates a Table.
func New() *Table {
	return &Table{
		entries: make(map[string]*Entry),
		order:   make([]string, 0),
	}
}

// Record an identifier occurrence.
//
// The first call for a name captures its first-occurrence position; later
// calls increment its counter only. O(1) amortized.
func (t *Table) Record(name string, line, col int) {
	if entry, ok := t.entries[name]; ok {
		entry.Occurrences++
		return
	}

	t.entries[name] = &Entry{
		Name:         name,
		DeclaredType: untypedMarker,
		FirstLine:    line,
		FirstCol:     col,
		Occurrences:  1,
	}
	t.order = append(t.order, name)
}

// Has checks whether the name has been seen at least once.
func (t *Table) Has(name string) (ok bool) {
	_, ok = t.entries[name]
	return
}

// OccurrenceCount obtains how many times the name has appeared; 0 if absent.
func (t *Table) OccurrenceCount(name string) (count int) {
	if entry, ok := t.entries[name]; ok {
		count = entry.Occurrences
	}

	return
}

// UniqueCount obtains the number of distinct identifiers recorded.
func (t *Table) UniqueCount() int { return len(t.order) }

// Entries lists all entries in discovery order.
func (t *Table) Entries() (list []Entry) {
	list = make([]Entry, len(t.order))
	for index := range t.order {
		list[index] = *t.entries[t.order[index]]
	}

	return
}

// ByFrequency lists all entries sorted by occurrence count, descending.
//
// The sort is stable; ties hold their discovery order.
func (t *Table) ByFrequency() (list []Entry) {
	list = t.Entries()
	slices.SortStableFunc(list, func(a, b Entry) int { return b.Occurrences - a.Occurrences })

	return
}

// Reset clears the Table for reuse across scan sessions.
func (t *Table) Reset() {
	t.entries = make(map[string]*Entry)
	t.order = t.order[:0]
}
