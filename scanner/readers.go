// SPDX-License-Identifier: MIT
package scanner

import (
	"fmt"

	"gitlab.com/fisherprime/zenlex/token"
)

// readBlockComment consumes `#* ... *#`; spans lines.
//
// A missing closer before end of input records UNTERMINATED_COMMENT at the
// opening marker's position; the scan still terminates.
func (s *Scanner) readBlockComment() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	buf := []rune{s.cursor.eat(), s.cursor.eat()} // #*

	closed := false
	for !s.cursor.done() {
		if s.cursor.lookahead(0) == '*' && s.cursor.lookahead(1) == '#' {
			buf = append(buf, s.cursor.eat())
			buf = append(buf, s.cursor.eat())
			closed = true

			break
		}

		buf = append(buf, s.cursor.eat())
	}

	if !closed {
		s.errors.UnterminatedComment(line, col)
	}

	return emit(token.Token{Category: token.BlockComment, Text: string(buf), Line: line, Col: col})
}

// readLineComment consumes `## ...` up to, not including, the newline.
func (s *Scanner) readLineComment() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	buf := []rune{s.cursor.eat(), s.cursor.eat()} // ##
	for !s.cursor.done() && s.cursor.lookahead(0) != '\n' {
		buf = append(buf, s.cursor.eat())
	}

	return emit(token.Token{Category: token.LineComment, Text: string(buf), Line: line, Col: col})
}

// readTwoCharOp consumes a two-character operator.
func (s *Scanner) readTwoCharOp() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	pair := string([]rune{s.cursor.eat(), s.cursor.eat()})

	return emit(token.Token{Category: twoCharOps[pair], Text: pair, Line: line, Col: col})
}

// readKeyword consumes a reserved word; the boundary check in the predicate
// guarantees the spelled word is the full lexeme.
func (s *Scanner) readKeyword() stepResult {
	return s.readWord(s.keywordAhead(), token.Keyword)
}

// readBoolean consumes a boolean literal, same boundary discipline as
// keywords.
func (s *Scanner) readBoolean() stepResult {
	return s.readWord(s.boolAhead(), token.BoolLiteral)
}

func (s *Scanner) readWord(word string, category token.Category) stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol
	for range word {
		s.cursor.step()
	}

	return emit(token.Token{Category: category, Text: word, Line: line, Col: col})
}

// readIdentifier consumes `[A-Z][a-z0-9_]*`.
//
// Identifiers beyond maxIdentifierLen keep their full lexeme, never
// truncated, but record BAD_IDENTIFIER reporting the excess length.
func (s *Scanner) readIdentifier() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	buf := []rune{s.cursor.eat()} // Uppercase start.
	for {
		r := s.cursor.lookahead(0)
		if !isLower(r) && !isDigit(r) && r != '_' {
			break
		}

		buf = append(buf, s.cursor.eat())
	}

	name := string(buf)
	if len(buf) > maxIdentifierLen {
		s.errors.BadIdentifier(name, line, col,
			fmt.Sprintf("Identifier length %d exceeds the %d-character limit", len(buf), maxIdentifierLen))
	}

	return emit(token.Token{Category: token.Identifier, Text: name, Line: line, Col: col})
}

// readIntLiteral consumes `[+-]?[0-9]+`.
//
// A lone sign with no following digit records BAD_NUMBER & yields an INVALID
// token rather than dropping the character silently.
func (s *Scanner) readIntLiteral() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	var buf []rune
	if r := s.cursor.lookahead(0); r == '+' || r == '-' {
		buf = append(buf, s.cursor.eat())
	}

	if !isDigit(s.cursor.lookahead(0)) {
		s.errors.BadNumber(string(buf), line, col, "Digit expected after sign")
		return emit(token.Token{Category: token.Invalid, Text: string(buf), Line: line, Col: col})
	}

	for isDigit(s.cursor.lookahead(0)) {
		buf = append(buf, s.cursor.eat())
	}

	return emit(token.Token{Category: token.IntLiteral, Text: string(buf), Line: line, Col: col})
}

// readRealLiteral consumes `[+-]?[0-9]+\.[0-9]{1,6}([eE][+-]?[0-9]+)?`.
//
// Each malformation (missing decimal point, 0 or >6 fractional digits,
// exponent marker without digits) records BAD_NUMBER; the best-effort lexeme
// is still emitted so the stream stays synchronized.
func (s *Scanner) readRealLiteral() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	var buf []rune
	if r := s.cursor.lookahead(0); r == '+' || r == '-' {
		buf = append(buf, s.cursor.eat())
	}

	for isDigit(s.cursor.lookahead(0)) {
		buf = append(buf, s.cursor.eat())
	}

	if s.cursor.lookahead(0) != '.' {
		s.errors.BadNumber(string(buf), line, col, "Decimal point expected")
		return emit(token.Token{Category: token.Invalid, Text: string(buf), Line: line, Col: col})
	}
	buf = append(buf, s.cursor.eat())

	fracDigits := 0
	for isDigit(s.cursor.lookahead(0)) {
		buf = append(buf, s.cursor.eat())
		fracDigits++
	}

	switch {
	case fracDigits == 0:
		s.errors.BadNumber(string(buf), line, col,
			"At least one digit required after the decimal point")
	case fracDigits > maxFractionDigits:
		s.errors.BadNumber(string(buf), line, col,
			fmt.Sprintf("Too many fractional digits (max %d, found %d)", maxFractionDigits, fracDigits))
	}

	if r := s.cursor.lookahead(0); r == 'e' || r == 'E' {
		buf = append(buf, s.cursor.eat())

		if r = s.cursor.lookahead(0); r == '+' || r == '-' {
			buf = append(buf, s.cursor.eat())
		}

		expDigits := 0
		for isDigit(s.cursor.lookahead(0)) {
			buf = append(buf, s.cursor.eat())
			expDigits++
		}

		if expDigits == 0 {
			s.errors.BadNumber(string(buf), line, col, "Digit(s) required after exponent marker")
		}
	}

	return emit(token.Token{Category: token.RealLiteral, Text: string(buf), Line: line, Col: col})
}

// readTextLiteral consumes a double-quoted literal.
//
// Recognized escapes: \" \\ \n \t \r. An unrecognised escape letter records
// BAD_ESCAPE, skips the letter & the literal's scan continues. A raw newline
// or end of input before the closing quote records UNTERMINATED_STRING at
// the opening position; the partial content is still emitted.
func (s *Scanner) readTextLiteral() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	buf := []rune{s.cursor.eat()} // Opening quote.

	closed := false
	for !s.cursor.done() {
		r := s.cursor.lookahead(0)

		if r == '\n' {
			// Leave the newline for the whitespace rule.
			break
		}

		if r == '"' {
			buf = append(buf, s.cursor.eat())
			closed = true

			break
		}

		if r == '\\' {
			buf = append(buf, s.cursor.eat())
			buf = s.readEscapeTail(buf, '"')

			continue
		}

		buf = append(buf, s.cursor.eat())
	}

	if !closed {
		s.errors.UnterminatedString(string(buf), line, col)
	}

	return emit(token.Token{Category: token.TextLiteral, Text: string(buf), Line: line, Col: col})
}

// readCharLiteral consumes a single-quoted literal with the same
// delimiter/escape rules as text literals.
//
// The interior must reduce to exactly one logical character; any other
// arity, or a missing closing quote, records UNTERMINATED_CHAR.
func (s *Scanner) readCharLiteral() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	buf := []rune{s.cursor.eat()} // Opening quote.

	closed := false
	seen := 0
	for !s.cursor.done() && seen < 3 {
		r := s.cursor.lookahead(0)

		if r == '\n' {
			break
		}

		if r == '\'' {
			buf = append(buf, s.cursor.eat())
			closed = true

			break
		}

		if r == '\\' {
			buf = append(buf, s.cursor.eat())
			seen++
			buf = s.readEscapeTail(buf, '\'')

			continue
		}

		buf = append(buf, s.cursor.eat())
		seen++
	}

	lexeme := string(buf)
	switch {
	case !closed:
		s.errors.UnterminatedChar(lexeme, line, col)
	case seen != 1:
		s.errors.OverfullChar(lexeme, line, col, seen)
	}

	return emit(token.Token{Category: token.CharLiteral, Text: lexeme, Line: line, Col: col})
}

// readEscapeTail handles the character after a consumed backslash inside a
// quoted literal; quote is the literal's own delimiter.
//
// A valid escape letter is appended to buf; an invalid one is consumed as a
// single-character error skip & dropped from the lexeme.
func (s *Scanner) readEscapeTail(buf []rune, quote rune) []rune {
	if s.cursor.done() {
		return buf
	}

	esc := s.cursor.lookahead(0)
	if esc == quote || esc == '\\' || esc == 'n' || esc == 't' || esc == 'r' {
		return append(buf, s.cursor.eat())
	}

	s.errors.BadEscape(`\`+string(esc), s.cursor.line, s.cursor.col)
	s.cursor.step()

	return buf
}

// readSingleOp consumes a one-character operator.
func (s *Scanner) readSingleOp() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	r := s.cursor.eat()

	return emit(token.Token{Category: singleOps[r], Text: string(r), Line: line, Col: col})
}

// readDelimiter consumes a punctuation singleton.
func (s *Scanner) readDelimiter() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	r := s.cursor.eat()

	return emit(token.Token{Category: token.Delimiter, Text: string(r), Line: line, Col: col})
}

// readWhitespace consumes a run of space/tab/CR/LF as one discarded token.
func (s *Scanner) readWhitespace() stepResult {
	line, col := s.cursor.markLine, s.cursor.markCol

	var buf []rune
	for !s.cursor.done() && isWhitespace(s.cursor.lookahead(0)) {
		buf = append(buf, s.cursor.eat())
	}

	return emit(token.Token{Category: token.Space, Text: string(buf), Line: line, Col: col})
}
