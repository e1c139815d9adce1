// SPDX-License-Identifier: MIT

// Package zenlex converts raw ZenLang source text into a stream of
// classified lexical units, tracking declared-name usage & logging malformed
// input without halting.
package zenlex

import (
	"github.com/sirupsen/logrus"

	"gitlab.com/fisherprime/zenlex/errlog"
	"gitlab.com/fisherprime/zenlex/scanner"
	"gitlab.com/fisherprime/zenlex/symbol"
	"gitlab.com/fisherprime/zenlex/token"
)

type (
	// Result bundles the output structures of one scan session.
	Result struct {
		Symbols *symbol.Table
		Errors  *errlog.Log
		Tokens  []token.Token
		Stats   Stats
	}

	// Stats summarizes a scan session.
	//
	// Comments & whitespace never contribute to the per-category counts;
	// they are consumed, tallied & discarded.
	Stats struct {
		PerCategory     map[token.Category]int
		TokensEmitted   int // Excludes the END_OF_FILE sentinel.
		LinesProcessed  int
		CommentsRemoved int
		LexicalErrors   int
	}
)

var fLogger logrus.FieldLogger = logrus.NewEntry(logrus.New())

// SetLogger configures a logrus.FieldLogger for the package.
func SetLogger(l logrus.FieldLogger) { fLogger = l }

// Scan tokenizes a fully-loaded source buffer within an independent scan
// session.
func Scan(source string, opts ...scanner.Option) (res *Result) {
	options := append([]scanner.Option{scanner.WithLogger(fLogger)}, opts...)

	s := scanner.New(source, options...)
	tokens, symbols, errors := s.Tokenize()

	return &Result{
		Tokens:  tokens,
		Symbols: symbols,
		Errors:  errors,
		Stats: Stats{
			TokensEmitted:   len(tokens) - 1,
			LinesProcessed:  s.Lines(),
			CommentsRemoved: s.CommentCount(),
			LexicalErrors:   errors.Count(),
			PerCategory:     s.CategoryCounts(),
		},
	}
}
