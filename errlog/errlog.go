// SPDX-License-Identifier: MIT
package errlog

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Error recovery strategy: every lexical error is logged & scanning
// continues, so all errors in a file are reported in a single pass.

type (
	// Kind int tagging the class of a lexical error.
	Kind int

	// Record is a single immutable lexical-error entry.
	Record struct {
		Lexeme string // Offending lexeme, possibly partial.
		Detail string // Human-readable explanation.
		Kind   Kind
		Line   int
		Col    int
	}

	// Log is an append-only, ordered collection of Records.
	//
	// A Log is owned by a single scan session; entries are non-decreasing in
	// (Line, Col) as they follow scan order.
	Log struct {
		logger  logrus.FieldLogger
		records []Record
	}

	// Option defines the Log functional option type.
	Option func(*Log)
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_             Kind = iota // Consume 0 to start actual numbering at 1.
	InvalidChar               // No rule matched; one character skipped.
	BadNumber                 // Malformed integer or real literal.
	BadIdentifier             // Identifier exceeds the length limit.
	UntermString              // Text literal never closed.
	UntermChar                // Character literal never closed or over-full.
	UntermComment             // Block comment never closed.
	BadEscape                 // Unrecognised escape letter.
)

var kindNames = map[Kind]string{
	InvalidChar:   "INVALID_CHAR",
	BadNumber:     "BAD_NUMBER",
	BadIdentifier: "BAD_IDENTIFIER",
	UntermString:  "UNTERMINATED_STRING",
	UntermChar:    "UNTERMINATED_CHAR",
	UntermComment: "UNTERMINATED_COMMENT",
	BadEscape:     "BAD_ESCAPE",
}

// String is the `fmt.Stringer` interface implementation for `Kind`.
func (k Kind) String() (name string) {
	var ok bool
	if name, ok = kindNames[k]; !ok {
		name = fmt.Sprintf("KIND(%d)", int(k))
	}

	return
}

// String is the `fmt.Stringer` interface implementation for `Record`.
func (r Record) String() string {
	return fmt.Sprintf("ERROR [%s] Line: %d, Col: %d  lexeme='%s'  -> %s",
		r.Kind, r.Line, r.Col, r.Lexeme, r.Detail)
}

// New instantiates a Log.
func New(opts ...Option) *Log {
	l := &Log{
		logger:  logrus.New(),
		records: make([]Record, 0),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Log) { l.logger = logger } }

// Push appends a Record to the Log; the general-purpose entry point.
func (l *Log) Push(kind Kind, line, col int, lexeme, detail string) {
	record := Record{
		Kind:   kind,
		Line:   line,
		Col:    col,
		Lexeme: lexeme,
		Detail: detail,
	}

	l.logger.Debugf("lexical error: %s", record)
	l.records = append(l.records, record)
}

// BadChar records an unrecognised character.
func (l *Log) BadChar(ch rune, line, col int) {
	l.Push(InvalidChar, line, col, string(ch),
		fmt.Sprintf("Character '%c' is not part of the ZenLang alphabet", ch))
}

// BadNumber records a malformed numeric literal.
func (l *Log) BadNumber(lexeme string, line, col int, reason string) {
	l.Push(BadNumber, line, col, lexeme, reason)
}

// BadIdentifier records an identifier that violates naming rules.
func (l *Log) BadIdentifier(lexeme string, line, col int, reason string) {
	l.Push(BadIdentifier, line, col, lexeme, reason)
}

// UnterminatedString records a text literal that was never closed.
func (l *Log) UnterminatedString(partial string, line, col int) {
	l.Push(UntermString, line, col, partial,
		`String literal opened with '"' but never closed`)
}

// UnterminatedChar records a character literal that was never closed.
func (l *Log) UnterminatedChar(partial string, line, col int) {
	l.Push(UntermChar, line, col, partial,
		"Character literal opened with ''' but never closed")
}

// OverfullChar records a closed character literal whose interior does not
// reduce to exactly one character.
func (l *Log) OverfullChar(lexeme string, line, col, seen int) {
	l.Push(UntermChar, line, col, lexeme,
		fmt.Sprintf("Character literal holds %d characters, expected exactly 1", seen))
}

// UnterminatedComment records a block comment that was never closed.
func (l *Log) UnterminatedComment(line, col int) {
	l.Push(UntermComment, line, col, "#*",
		"Block comment opened with '#*' but '*#' was never found")
}

// BadEscape records an invalid escape sequence inside a string or char
// literal.
func (l *Log) BadEscape(seq string, line, col int) {
	l.Push(BadEscape, line, col, seq,
		`Unrecognised escape sequence. Valid: \n \t \r \" \' \\`)
}

// HasErrors checks for the presence of at least one Record.
func (l *Log) HasErrors() bool { return len(l.records) > 0 }

// Count obtains the number of recorded errors.
func (l *Log) Count() int { return len(l.records) }

// Records obtains the recorded errors in recording order.
func (l *Log) Records() []Record { return l.records }

// AllMessages renders all Records in recording order.
func (l *Log) AllMessages() (messages []string) {
	messages = make([]string, len(l.records))
	for index := range l.records {
		messages[index] = l.records[index].String()
	}

	return
}

// Reset clears all recorded errors for reuse across scan sessions.
func (l *Log) Reset() { l.records = l.records[:0] }
