// SPDX-License-Identifier: MIT
package scanner

import (
	"gitlab.com/fisherprime/zenlex/token"
)

type (
	// action tags the outcome of one dispatch step.
	action int

	// stepResult is the tagged result of one dispatch step: EMIT carries a
	// token, SKIP reports an error-recovery skip & DONE ends the scan.
	stepResult struct {
		tok    token.Token
		action action
	}

	// matchFn checks whether a rule applies at the current position.
	matchFn func(*Scanner) bool

	// handleFn consumes the rule's lexeme & yields a stepResult.
	handleFn func(*Scanner) stepResult

	// rule pairs a predicate with its handler.
	rule struct {
		name   string
		match  matchFn
		handle handleFn
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	actionEmit action = iota
	actionSkip
	actionDone
)

const (
	// maxIdentifierLen bounds identifiers to 1 uppercase + 30 continuation
	// characters.
	maxIdentifierLen = 31

	// maxFractionDigits bounds the fractional part of a real literal.
	maxFractionDigits = 6
)

// reservedWords lists the ZenLang keywords.
var reservedWords = []string{
	"start", "finish", "loop", "condition", "declare",
	"output", "input", "function", "return", "break", "continue", "else",
}

// boolWords lists the reserved boolean literal spellings.
var boolWords = []string{"true", "false"}

// twoCharOps maps every two-character operator to its category; checked
// before any one-character operator so `==` is never split.
var twoCharOps = map[string]token.Category{
	"**": token.ArithOp,
	"==": token.RelationalOp,
	"!=": token.RelationalOp,
	"<=": token.RelationalOp,
	">=": token.RelationalOp,
	"&&": token.LogicalOp,
	"||": token.LogicalOp,
	"++": token.IncOp,
	"--": token.DecOp,
	"+=": token.AssignOp,
	"-=": token.AssignOp,
	"*=": token.AssignOp,
	"/=": token.AssignOp,
	"%=": token.AssignOp,
}

// singleOps maps every one-character operator to its category.
var singleOps = map[rune]token.Category{
	'+': token.ArithOp,
	'-': token.ArithOp,
	'*': token.ArithOp,
	'/': token.ArithOp,
	'%': token.ArithOp,
	'<': token.RelationalOp,
	'>': token.RelationalOp,
	'!': token.LogicalOp,
	'=': token.AssignOp,
}

// Delimiter singletons.
var delimiters = [256]bool{
	'(': true, ')': true,
	'{': true, '}': true,
	'[': true, ']': true,
	',': true, ';': true, ':': true,
}

// scanRules is the priority-ordered rule list; at each position the first
// matching rule wins. Unmatched input falls through to the INVALID_CHAR
// skip in Scanner.next.
var scanRules = []rule{
	{name: "block-comment", match: (*Scanner).matchBlockComment, handle: (*Scanner).readBlockComment},
	{name: "line-comment", match: (*Scanner).matchLineComment, handle: (*Scanner).readLineComment},
	{name: "two-char-op", match: (*Scanner).matchTwoCharOp, handle: (*Scanner).readTwoCharOp},
	{name: "keyword", match: (*Scanner).matchKeyword, handle: (*Scanner).readKeyword},
	{name: "bool-literal", match: (*Scanner).matchBoolean, handle: (*Scanner).readBoolean},
	{name: "identifier", match: (*Scanner).matchIdentifier, handle: (*Scanner).readIdentifier},
	{name: "real-literal", match: (*Scanner).matchReal, handle: (*Scanner).readRealLiteral},
	{name: "int-literal", match: (*Scanner).matchInt, handle: (*Scanner).readIntLiteral},
	{name: "text-literal", match: (*Scanner).matchText, handle: (*Scanner).readTextLiteral},
	{name: "char-literal", match: (*Scanner).matchChar, handle: (*Scanner).readCharLiteral},
	{name: "single-char-op", match: (*Scanner).matchSingleOp, handle: (*Scanner).readSingleOp},
	{name: "delimiter", match: (*Scanner).matchDelimiter, handle: (*Scanner).readDelimiter},
	{name: "whitespace", match: (*Scanner).matchWhitespace, handle: (*Scanner).readWhitespace},
}

// ── Rule predicates ──

func (s *Scanner) matchBlockComment() bool {
	return s.cursor.lookahead(0) == '#' && s.cursor.lookahead(1) == '*'
}

func (s *Scanner) matchLineComment() bool {
	return s.cursor.lookahead(0) == '#' && s.cursor.lookahead(1) == '#'
}

func (s *Scanner) matchTwoCharOp() (ok bool) {
	_, ok = twoCharOps[string([]rune{s.cursor.lookahead(0), s.cursor.lookahead(1)})]
	return
}

func (s *Scanner) matchKeyword() bool {
	if !isLower(s.cursor.lookahead(0)) {
		return false
	}

	return s.keywordAhead() != ""
}

func (s *Scanner) matchBoolean() bool {
	if !isLower(s.cursor.lookahead(0)) {
		return false
	}

	return s.boolAhead() != ""
}

func (s *Scanner) matchIdentifier() bool { return isUpper(s.cursor.lookahead(0)) }

// matchReal peeks past the optional sign & digit run for a decimal point
// before committing; this disambiguates reals from integers with bounded
// lookahead only.
func (s *Scanner) matchReal() bool {
	if !s.matchInt() {
		return false
	}

	probe := 0
	if r := s.cursor.lookahead(probe); r == '+' || r == '-' {
		probe++
	}
	for isDigit(s.cursor.lookahead(probe)) {
		probe++
	}

	return s.cursor.lookahead(probe) == '.'
}

func (s *Scanner) matchInt() bool {
	r := s.cursor.lookahead(0)
	if isDigit(r) {
		return true
	}

	return (r == '+' || r == '-') && isDigit(s.cursor.lookahead(1))
}

func (s *Scanner) matchText() bool { return s.cursor.lookahead(0) == '"' }

func (s *Scanner) matchChar() bool { return s.cursor.lookahead(0) == '\'' }

func (s *Scanner) matchSingleOp() (ok bool) {
	_, ok = singleOps[s.cursor.lookahead(0)]
	return
}

func (s *Scanner) matchDelimiter() bool {
	r := s.cursor.lookahead(0)
	return r < 256 && delimiters[r]
}

func (s *Scanner) matchWhitespace() bool { return isWhitespace(s.cursor.lookahead(0)) }

// keywordAhead obtains the keyword spelled at the current position, honoring
// the word-boundary check; "" for none.
func (s *Scanner) keywordAhead() (word string) {
	for index := range reservedWords {
		if s.cursor.wordAhead(reservedWords[index]) {
			word = reservedWords[index]
			return
		}
	}

	return
}

// boolAhead obtains the boolean literal spelled at the current position; ""
// for none.
func (s *Scanner) boolAhead() (word string) {
	for index := range boolWords {
		if s.cursor.wordAhead(boolWords[index]) {
			word = boolWords[index]
			return
		}
	}

	return
}

// ── Character classification ──

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }

func isLetter(r rune) bool { return isUpper(r) || isLower(r) }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isWhitespace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// emit wraps a token into an EMIT stepResult.
func emit(t token.Token) stepResult { return stepResult{action: actionEmit, tok: t} }

// skip yields a SKIP stepResult; one character was consumed as an
// error-recovery skip.
func skip() stepResult { return stepResult{action: actionSkip} }
