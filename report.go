// SPDX-License-Identifier: MIT
package zenlex

import (
	"strings"

	"golang.org/x/exp/slices"

	"gitlab.com/fisherprime/zenlex/symbol"
	"gitlab.com/fisherprime/zenlex/token"
)

// Read-only views over a scan session's output structures, consumed by a
// presentation layer outside this module.

type (
	// CategoryCount pairs a token category with its emitted-stream tally.
	CategoryCount struct {
		Category token.Category
		Count    int
	}
)

// TokenDump renders the emitted stream in canonical form, excluding the
// END_OF_FILE sentinel.
func (r *Result) TokenDump() (lines []string) {
	lines = make([]string, 0, len(r.Tokens))
	for index := range r.Tokens {
		if r.Tokens[index].Category == token.EndOfFile {
			continue
		}

		lines = append(lines, r.Tokens[index].String())
	}

	return
}

// CategoryBreakdown lists per-category counts sorted by category name.
func (r *Result) CategoryBreakdown() (breakdown []CategoryCount) {
	breakdown = make([]CategoryCount, 0, len(r.Stats.PerCategory))
	for category, count := range r.Stats.PerCategory {
		breakdown = append(breakdown, CategoryCount{Category: category, Count: count})
	}

	slices.SortFunc(breakdown, func(a, b CategoryCount) int {
		return strings.Compare(a.Category.String(), b.Category.String())
	})

	return
}

// IdentifierDump renders the identifier table in discovery order.
func (r *Result) IdentifierDump() (lines []string) {
	entries := r.Symbols.Entries()

	lines = make([]string, len(entries))
	for index := range entries {
		lines[index] = entries[index].String()
	}

	return
}

// IdentifiersByFrequency lists identifier entries by descending occurrence
// count; ties hold their discovery order.
func (r *Result) IdentifiersByFrequency() []symbol.Entry { return r.Symbols.ByFrequency() }

// ErrorReport renders the error log in recording order; empty for a clean
// scan.
func (r *Result) ErrorReport() []string { return r.Errors.AllMessages() }
