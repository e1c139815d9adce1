// SPDX-License-Identifier: MIT
package scanner

// REF: https://gitlab.com/fisherprime/hierarchy/-/blob/master/lexer/v2/lexer.go
//
// The engine is a single-pass, priority-ordered recognizer: at each position
// the rules in scanRules are tried in order & the first match wins;
// unmatched input degrades to a one-character INVALID_CHAR skip, so the
// cursor strictly advances on every dispatch step.

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/zenlex/errlog"
	"gitlab.com/fisherprime/zenlex/symbol"
	"gitlab.com/fisherprime/zenlex/token"
)

type (
	// Scanner converts ZenLang source text into a stream of classified
	// tokens, tracking identifier usage & logging malformed input without
	// halting.
	//
	// A Scanner owns its cursor, symbol table & error log exclusively;
	// concurrent scans must use independent instances.
	Scanner struct {
		logger logrus.FieldLogger
		cursor *cursor

		symbols *symbol.Table
		errors  *errlog.Log

		// tokens is the output stream; comments & whitespace land in
		// discarded instead.
		tokens    []token.Token
		discarded []token.Token

		// trail holds every consumed raw span in scan order; emitted,
		// discarded & error-skipped alike. Concatenating it reproduces the
		// source exactly.
		trail []string

		counts       map[token.Category]int
		commentCount int

		debug    bool
		finished bool
	}

	// Option defines the Scanner functional option type.
	Option func(*Scanner)
)

// New instantiates a Scanner over a fully-loaded source buffer.
func New(source string, opts ...Option) *Scanner {
	s := &Scanner{
		logger:  logrus.New(),
		cursor:  newCursor(source),
		symbols: symbol.New(),
		errors:  errlog.New(),

		tokens:    make([]token.Token, 0),
		discarded: make([]token.Token, 0),
		trail:     make([]string, 0),
		counts:    make(map[token.Category]int),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(s *Scanner) { s.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(s *Scanner) {
		if logger == nil {
			return
		}
		s.logger = logger

		// Reinstall the default collaborators with the configured logger.
		s.errors = errlog.New(errlog.WithLogger(logger))
	}
}

// WithSymbolTable configures an externally owned symbol table, e.g. one
// reused across sessions after a Reset.
func WithSymbolTable(table *symbol.Table) Option {
	return func(s *Scanner) {
		if table != nil {
			s.symbols = table
		}
	}
}

// WithErrorLog configures an externally owned error log, e.g. one reused
// across sessions after a Reset.
func WithErrorLog(log *errlog.Log) Option {
	return func(s *Scanner) {
		if log != nil {
			s.errors = log
		}
	}
}

// Tokenize scans the entire source.
//
// Scanning is left-to-right with bounded lookahead & no backtracking; no
// condition is fatal, every malformed case degrades to log-and-continue.
// The returned stream ends with one END_OF_FILE sentinel. Repeat calls
// return the first scan's results.
func (s *Scanner) Tokenize() (tokens []token.Token, symbols *symbol.Table, errors *errlog.Log) {
	if s.finished {
		return s.tokens, s.symbols, s.errors
	}

	for {
		s.cursor.mark()

		resl := s.next()
		if resl.action == actionDone {
			break
		}

		s.trail = append(s.trail, s.cursor.span())

		if resl.action == actionSkip {
			continue
		}

		s.collect(resl.tok)
	}

	// Append the sentinel at the final position.
	s.tokens = append(s.tokens, token.Token{
		Category: token.EndOfFile,
		Line:     s.cursor.line,
		Col:      s.cursor.col,
	})
	s.finished = true

	return s.tokens, s.symbols, s.errors
}

// next performs one dispatch step over the priority-ordered rule list.
func (s *Scanner) next() stepResult {
	if s.cursor.done() {
		return stepResult{action: actionDone}
	}

	for index := range scanRules {
		if !scanRules[index].match(s) {
			continue
		}

		if s.debug {
			s.logger.Debugf("rule %s at line %d col %d",
				scanRules[index].name, s.cursor.line, s.cursor.col)
		}

		return scanRules[index].handle(s)
	}

	// Fallback: no rule matched; consume exactly one character so the scan
	// always makes forward progress.
	s.errors.BadChar(s.cursor.lookahead(0), s.cursor.markLine, s.cursor.markCol)
	s.cursor.step()

	return skip()
}

// collect routes one recognized token: comments are counted & discarded,
// whitespace is discarded, everything else joins the output stream.
func (s *Scanner) collect(tok token.Token) {
	if s.debug {
		s.logger.Debugf("scanned %s", tok.DebugString())
	}

	if !tok.Category.Emittable() {
		if tok.Category.Comment() {
			s.commentCount++
		}
		s.discarded = append(s.discarded, tok)

		return
	}

	s.tokens = append(s.tokens, tok)
	s.counts[tok.Category]++

	if tok.Category == token.Identifier {
		s.symbols.Record(tok.Text, tok.Line, tok.Col)
	}
}

// Tokens obtains the output stream; valid after Tokenize.
func (s *Scanner) Tokens() []token.Token { return s.tokens }

// Symbols obtains the session's symbol table.
func (s *Scanner) Symbols() *symbol.Table { return s.symbols }

// Errors obtains the session's error log.
func (s *Scanner) Errors() *errlog.Log { return s.errors }

// Discarded obtains the comment & whitespace tokens consumed but withheld
// from the output stream.
func (s *Scanner) Discarded() []token.Token { return s.discarded }

// Spans obtains every consumed raw span in scan order; their concatenation
// reproduces the source exactly.
func (s *Scanner) Spans() []string { return s.trail }

// CategoryCounts obtains per-category counts for the emitted stream;
// comments & whitespace never contribute.
func (s *Scanner) CategoryCounts() map[token.Category]int { return s.counts }

// CommentCount obtains the number of comments removed.
func (s *Scanner) CommentCount() int { return s.commentCount }

// Lines obtains the number of lines processed.
func (s *Scanner) Lines() int { return s.cursor.line }
