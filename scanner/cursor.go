// SPDX-License-Identifier: MIT
package scanner

type (
	// cursor owns the read position & line/column bookkeeping for one scan
	// session.
	//
	// Each Scanner holds its own cursor; independent scans never share
	// position state.
	cursor struct {
		src []rune

		// pos indexes the next unread rune.
		pos int

		// line & col reference the next unread rune, 1-based.
		line int
		col  int

		// markPos, markLine & markCol reference the first rune of the
		// lexeme being scanned.
		markPos  int
		markLine int
		markCol  int
	}
)

// emptyRune is returned by lookahead past the end of the source.
const emptyRune rune = 0

// newCursor instantiates a cursor over a fully-loaded source buffer.
func newCursor(source string) *cursor {
	return &cursor{
		src:  []rune(source),
		line: 1,
		col:  1,
	}
}

// done checks whether the entire source has been consumed.
func (c *cursor) done() bool { return c.pos >= len(c.src) }

// mark saves the current position as the start of the next lexeme.
func (c *cursor) mark() {
	c.markPos = c.pos
	c.markLine = c.line
	c.markCol = c.col
}

// eat consumes & returns the current rune, updating line/column counters.
//
// A newline increments line & resets column to 1; any other rune increments
// column by one.
func (c *cursor) eat() (r rune) {
	r = c.src[c.pos]
	c.pos++

	if r == '\n' {
		c.line++
		c.col = 1
		return
	}
	c.col++

	return
}

// step consumes one rune without returning it; no-op at end of input.
func (c *cursor) step() {
	if !c.done() {
		_ = c.eat()
	}
}

// lookahead peeks at the rune `offset` positions ahead without consuming;
// 0 references the current rune, emptyRune marks end of input.
func (c *cursor) lookahead(offset int) (r rune) {
	index := c.pos + offset
	if index >= len(c.src) {
		return emptyRune
	}

	return c.src[index]
}

// wordAhead checks whether the source at the current position spells `word`
// exactly, followed by a non-identifier-class character (word boundary).
func (c *cursor) wordAhead(word string) bool {
	runes := []rune(word)
	for index := range runes {
		if c.lookahead(index) != runes[index] {
			return false
		}
	}

	after := c.lookahead(len(runes))
	return !isLetter(after) && !isDigit(after) && after != '_'
}

// span obtains the raw source consumed since the last mark.
func (c *cursor) span() string { return string(c.src[c.markPos:c.pos]) }
