// SPDX-License-Identifier: MIT
package token

import "fmt"

type (
	// Category int identifying the lexical class of a Token.
	Category int

	// Token is an immutable, classified & positioned slice of source text.
	//
	// Text holds the exact lexeme; Line & Col are 1-based and reference the
	// first character of the lexeme.
	Token struct {
		Text     string
		Category Category
		Line     int
		Col      int
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_            Category = iota // Consume 0 to start actual numbering at 1.
	Keyword                      // start, finish, loop, condition, declare, output, input, function, return, break, continue, else.
	Identifier                   // [A-Z][a-z0-9_]{0,30}.
	IntLiteral                   // [+-]?[0-9]+.
	RealLiteral                  // [+-]?[0-9]+\.[0-9]{1,6}([eE][+-]?[0-9]+)?.
	TextLiteral                  // "..." with escape sequences.
	CharLiteral                  // '.' with escape sequences.
	BoolLiteral                  // true | false.
	ArithOp                      // + - * / % **.
	RelationalOp                 // == != < > <= >=.
	LogicalOp                    // && || !.
	AssignOp                     // = += -= *= /= %=.
	IncOp                        // ++.
	DecOp                        // --.
	Delimiter                    // ( ) { } [ ] , ; :.
	LineComment                  // ## ...; tracked, not emitted.
	BlockComment                 // #* ... *#; tracked, not emitted.
	Space                        // Whitespace run; tracked, not emitted.
	Invalid                      // Unrecognised token.
	EndOfFile                    // Sentinel appended once per scan.
)

var categoryNames = map[Category]string{
	Keyword:      "KEYWORD",
	Identifier:   "IDENTIFIER",
	IntLiteral:   "INT_LITERAL",
	RealLiteral:  "REAL_LITERAL",
	TextLiteral:  "TEXT_LITERAL",
	CharLiteral:  "CHAR_LITERAL",
	BoolLiteral:  "BOOL_LITERAL",
	ArithOp:      "ARITH_OP",
	RelationalOp: "RELATIONAL_OP",
	LogicalOp:    "LOGICAL_OP",
	AssignOp:     "ASSIGN_OP",
	IncOp:        "INC_OP",
	DecOp:        "DEC_OP",
	Delimiter:    "DELIMITER",
	LineComment:  "LINE_COMMENT",
	BlockComment: "BLOCK_COMMENT",
	Space:        "SPACE",
	Invalid:      "INVALID",
	EndOfFile:    "END_OF_FILE",
}

// String is the `fmt.Stringer` interface implementation for `Category`.
func (c Category) String() (name string) {
	var ok bool
	if name, ok = categoryNames[c]; !ok {
		name = fmt.Sprintf("CATEGORY(%d)", int(c))
	}

	return
}

// Emittable checks whether tokens of this Category belong in the output
// stream; comments & whitespace are consumed but discarded.
func (c Category) Emittable() bool {
	switch c {
	case LineComment, BlockComment, Space:
		return false
	default:
		return true
	}
}

// Comment checks whether the Category is one of the comment classes.
func (c Category) Comment() bool { return c == LineComment || c == BlockComment }

// String renders the canonical token form:
//
//	<IDENTIFIER, "Count", Line: 2, Col: 13>
func (t Token) String() string {
	return fmt.Sprintf("<%s, \"%s\", Line: %d, Col: %d>", t.Category, t.Text, t.Line, t.Col)
}

// DebugString renders a verbose form for debug output.
func (t Token) DebugString() string {
	return fmt.Sprintf("Token{cat=%s, text='%s', line=%d, col=%d}", t.Category, t.Text, t.Line, t.Col)
}
