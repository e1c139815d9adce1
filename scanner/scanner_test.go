// SPDX-License-Identifier: NONE
package scanner

import (
	"reflect"
	"strings"
	"testing"

	"gitlab.com/fisherprime/zenlex/errlog"
	"gitlab.com/fisherprime/zenlex/token"
)

func TestScanner_Tokenize_Stream(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   []token.Token
	}{
		{
			name:   "empty source",
			source: "",
			want: []token.Token{
				{Category: token.EndOfFile, Line: 1, Col: 1},
			},
		},
		{
			name:   "keyword alone",
			source: "start",
			want: []token.Token{
				{Text: "start", Category: token.Keyword, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 6},
			},
		},
		{
			name:   "identifier alone",
			source: "Start",
			want: []token.Token{
				{Text: "Start", Category: token.Identifier, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 6},
			},
		},
		{
			name:   "two-char operator never split",
			source: "Count==Total",
			want: []token.Token{
				{Text: "Count", Category: token.Identifier, Line: 1, Col: 1},
				{Text: "==", Category: token.RelationalOp, Line: 1, Col: 6},
				{Text: "Total", Category: token.Identifier, Line: 1, Col: 8},
				{Category: token.EndOfFile, Line: 1, Col: 13},
			},
		},
		{
			name:   "integer literal",
			source: "12",
			want: []token.Token{
				{Text: "12", Category: token.IntLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 3},
			},
		},
		{
			name:   "real literal",
			source: "12.5",
			want: []token.Token{
				{Text: "12.5", Category: token.RealLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 5},
			},
		},
		{
			name:   "real literal with exponent",
			source: "-1.25e+10",
			want: []token.Token{
				{Text: "-1.25e+10", Category: token.RealLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 10},
			},
		},
		{
			name:   "signed integer after identifier",
			source: "X+5",
			want: []token.Token{
				{Text: "X", Category: token.Identifier, Line: 1, Col: 1},
				{Text: "+5", Category: token.IntLiteral, Line: 1, Col: 2},
				{Category: token.EndOfFile, Line: 1, Col: 4},
			},
		},
		{
			name:   "boolean literals",
			source: "true false",
			want: []token.Token{
				{Text: "true", Category: token.BoolLiteral, Line: 1, Col: 1},
				{Text: "false", Category: token.BoolLiteral, Line: 1, Col: 6},
				{Category: token.EndOfFile, Line: 1, Col: 11},
			},
		},
		{
			name:   "increment decrement power assign",
			source: "++ -- ** %=",
			want: []token.Token{
				{Text: "++", Category: token.IncOp, Line: 1, Col: 1},
				{Text: "--", Category: token.DecOp, Line: 1, Col: 4},
				{Text: "**", Category: token.ArithOp, Line: 1, Col: 7},
				{Text: "%=", Category: token.AssignOp, Line: 1, Col: 10},
				{Category: token.EndOfFile, Line: 1, Col: 12},
			},
		},
		{
			name:   "single operators and delimiters",
			source: "< = ! ( ) ;",
			want: []token.Token{
				{Text: "<", Category: token.RelationalOp, Line: 1, Col: 1},
				{Text: "=", Category: token.AssignOp, Line: 1, Col: 3},
				{Text: "!", Category: token.LogicalOp, Line: 1, Col: 5},
				{Text: "(", Category: token.Delimiter, Line: 1, Col: 7},
				{Text: ")", Category: token.Delimiter, Line: 1, Col: 9},
				{Text: ";", Category: token.Delimiter, Line: 1, Col: 11},
				{Category: token.EndOfFile, Line: 1, Col: 12},
			},
		},
		{
			name:   "text literal with escapes",
			source: `"hi\tthere"`,
			want: []token.Token{
				{Text: `"hi\tthere"`, Category: token.TextLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 12},
			},
		},
		{
			name:   "char literal",
			source: "'a'",
			want: []token.Token{
				{Text: "'a'", Category: token.CharLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 4},
			},
		},
		{
			name:   "line comment discarded",
			source: "## note",
			want: []token.Token{
				{Category: token.EndOfFile, Line: 1, Col: 8},
			},
		},
		{
			name:   "block comment discarded",
			source: "#* x *# 5",
			want: []token.Token{
				{Text: "5", Category: token.IntLiteral, Line: 1, Col: 9},
				{Category: token.EndOfFile, Line: 1, Col: 10},
			},
		},
		{
			name:   "newline resets column",
			source: "start\nCount",
			want: []token.Token{
				{Text: "start", Category: token.Keyword, Line: 1, Col: 1},
				{Text: "Count", Category: token.Identifier, Line: 2, Col: 1},
				{Category: token.EndOfFile, Line: 2, Col: 6},
			},
		},
		{
			name:   "uppercase continuation splits identifiers",
			source: "CamelCase",
			want: []token.Token{
				{Text: "Camel", Category: token.Identifier, Line: 1, Col: 1},
				{Text: "Case", Category: token.Identifier, Line: 1, Col: 6},
				{Category: token.EndOfFile, Line: 1, Col: 10},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, errors := New(tt.source).Tokenize()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scanner.Tokenize() = %v, want %v", got, tt.want)
			}
			if errors.HasErrors() {
				t.Errorf("Scanner.Tokenize() unexpected errors: %v", errors.AllMessages())
			}
		})
	}
}

// anomaly is a positionally comparable view of an error record.
type anomaly struct {
	kind errlog.Kind
	line int
	col  int
}

func recorded(log *errlog.Log) (list []anomaly) {
	for _, record := range log.Records() {
		list = append(list, anomaly{kind: record.Kind, line: record.Line, col: record.Col})
	}

	return
}

func TestScanner_Tokenize_Errors(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		wantTokens []token.Token
		wantErrors []anomaly
	}{
		{
			name:   "missing fractional digits",
			source: "12.",
			wantTokens: []token.Token{
				{Text: "12.", Category: token.RealLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 4},
			},
			wantErrors: []anomaly{{kind: errlog.BadNumber, line: 1, col: 1}},
		},
		{
			name:   "six fractional digits pass",
			source: "1.23456",
			wantTokens: []token.Token{
				{Text: "1.23456", Category: token.RealLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 8},
			},
		},
		{
			name:   "seven fractional digits fail",
			source: "1.234567",
			wantTokens: []token.Token{
				{Text: "1.234567", Category: token.RealLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 9},
			},
			wantErrors: []anomaly{{kind: errlog.BadNumber, line: 1, col: 1}},
		},
		{
			name:   "exponent without digits",
			source: "1.2e",
			wantTokens: []token.Token{
				{Text: "1.2e", Category: token.RealLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 5},
			},
			wantErrors: []anomaly{{kind: errlog.BadNumber, line: 1, col: 1}},
		},
		{
			name:   "invalid character",
			source: "@",
			wantTokens: []token.Token{
				{Category: token.EndOfFile, Line: 1, Col: 2},
			},
			wantErrors: []anomaly{{kind: errlog.InvalidChar, line: 1, col: 1}},
		},
		{
			name:   "keyword boundary violation",
			source: "starts",
			wantTokens: []token.Token{
				{Category: token.EndOfFile, Line: 1, Col: 7},
			},
			wantErrors: []anomaly{
				{kind: errlog.InvalidChar, line: 1, col: 1},
				{kind: errlog.InvalidChar, line: 1, col: 2},
				{kind: errlog.InvalidChar, line: 1, col: 3},
				{kind: errlog.InvalidChar, line: 1, col: 4},
				{kind: errlog.InvalidChar, line: 1, col: 5},
				{kind: errlog.InvalidChar, line: 1, col: 6},
			},
		},
		{
			name:   "unterminated block comment",
			source: "#* never closed",
			wantTokens: []token.Token{
				{Category: token.EndOfFile, Line: 1, Col: 16},
			},
			wantErrors: []anomaly{{kind: errlog.UntermComment, line: 1, col: 1}},
		},
		{
			name:   "unterminated string at end of input",
			source: `"abc`,
			wantTokens: []token.Token{
				{Text: `"abc`, Category: token.TextLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 5},
			},
			wantErrors: []anomaly{{kind: errlog.UntermString, line: 1, col: 1}},
		},
		{
			name:   "unterminated string at newline",
			source: "\"abc\nCount",
			wantTokens: []token.Token{
				{Text: `"abc`, Category: token.TextLiteral, Line: 1, Col: 1},
				{Text: "Count", Category: token.Identifier, Line: 2, Col: 1},
				{Category: token.EndOfFile, Line: 2, Col: 6},
			},
			wantErrors: []anomaly{{kind: errlog.UntermString, line: 1, col: 1}},
		},
		{
			name:   "bad escape inside string",
			source: `"a\x"`,
			wantTokens: []token.Token{
				{Text: `"a\"`, Category: token.TextLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 6},
			},
			wantErrors: []anomaly{{kind: errlog.BadEscape, line: 1, col: 4}},
		},
		{
			name:   "char literal with two characters",
			source: "'ab'",
			wantTokens: []token.Token{
				{Text: "'ab'", Category: token.CharLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 5},
			},
			wantErrors: []anomaly{{kind: errlog.UntermChar, line: 1, col: 1}},
		},
		{
			name:   "unterminated char literal",
			source: "'a",
			wantTokens: []token.Token{
				{Text: "'a", Category: token.CharLiteral, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 3},
			},
			wantErrors: []anomaly{{kind: errlog.UntermChar, line: 1, col: 1}},
		},
		{
			name:   "identifier over the length limit",
			source: "A" + strings.Repeat("a", 31),
			wantTokens: []token.Token{
				{Text: "A" + strings.Repeat("a", 31), Category: token.Identifier, Line: 1, Col: 1},
				{Category: token.EndOfFile, Line: 1, Col: 33},
			},
			wantErrors: []anomaly{{kind: errlog.BadIdentifier, line: 1, col: 1}},
		},
		{
			name:   "independent anomalies stay independent",
			source: "@ '\\q' \"oops\nCount",
			wantTokens: []token.Token{
				{Text: `'\'`, Category: token.CharLiteral, Line: 1, Col: 3},
				{Text: `"oops`, Category: token.TextLiteral, Line: 1, Col: 8},
				{Text: "Count", Category: token.Identifier, Line: 2, Col: 1},
				{Category: token.EndOfFile, Line: 2, Col: 6},
			},
			wantErrors: []anomaly{
				{kind: errlog.InvalidChar, line: 1, col: 1},
				{kind: errlog.BadEscape, line: 1, col: 5},
				{kind: errlog.UntermString, line: 1, col: 8},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotTokens, _, log := New(tt.source).Tokenize()
			if !reflect.DeepEqual(gotTokens, tt.wantTokens) {
				t.Errorf("Scanner.Tokenize() tokens = %v, want %v", gotTokens, tt.wantTokens)
			}
			if got := recorded(log); !reflect.DeepEqual(got, tt.wantErrors) {
				t.Errorf("Scanner.Tokenize() errors = %v, want %v", got, tt.wantErrors)
			}
		})
	}
}

func TestScanner_Reconstruction(t *testing.T) {
	sources := []string{
		"",
		"declare Count = 12;\noutput Count ## trailing note\n",
		"#* multi\nline *# condition { Count <= 1.5 }",
		"@ '\\q' \"oops\nCount",
		"start\t\r\n  finish",
		`"a\x" 'ab' 12. A` + strings.Repeat("a", 31),
	}

	for _, source := range sources {
		s := New(source)
		s.Tokenize()

		if got := strings.Join(s.Spans(), ""); got != source {
			t.Errorf("span concatenation = %q, want %q", got, source)
		}
	}
}

func TestScanner_StringRoundTrip(t *testing.T) {
	source := `declare Msg = "say \"hi\"\n";`

	tokens, _, _ := New(source).Tokenize()

	var lexeme string
	for index := range tokens {
		if tokens[index].Category == token.TextLiteral {
			lexeme = tokens[index].Text
			break
		}
	}
	if lexeme == "" {
		t.Fatal("no TEXT_LITERAL emitted")
	}

	again, _, log := New(lexeme).Tokenize()
	if log.HasErrors() {
		t.Errorf("re-lex errors = %v, want none", log.AllMessages())
	}
	want := []token.Token{
		{Text: lexeme, Category: token.TextLiteral, Line: 1, Col: 1},
		{Category: token.EndOfFile, Line: 1, Col: len([]rune(lexeme)) + 1},
	}
	if !reflect.DeepEqual(again, want) {
		t.Errorf("re-lex = %v, want %v", again, want)
	}
}

func TestScanner_SymbolTracking(t *testing.T) {
	source := "Count Total Count Count"

	_, symbols, _ := New(source).Tokenize()

	if got := symbols.OccurrenceCount("Count"); got != 3 {
		t.Errorf("OccurrenceCount(Count) = %d, want 3", got)
	}
	if got := symbols.UniqueCount(); got != 2 {
		t.Errorf("UniqueCount() = %d, want 2", got)
	}

	byFreq := symbols.ByFrequency()
	if byFreq[0].Name != "Count" || byFreq[1].Name != "Total" {
		t.Errorf("ByFrequency() order = %v, want Count before Total", byFreq)
	}
}

func TestScanner_Tokenize_Idempotent(t *testing.T) {
	s := New("start Count")

	first, _, _ := s.Tokenize()
	second, _, _ := s.Tokenize()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("second Tokenize() = %v, want %v", second, first)
	}
}

// The rule priority contract, rule by rule.
func TestScanRules_Priority(t *testing.T) {
	want := []string{
		"block-comment",
		"line-comment",
		"two-char-op",
		"keyword",
		"bool-literal",
		"identifier",
		"real-literal",
		"int-literal",
		"text-literal",
		"char-literal",
		"single-char-op",
		"delimiter",
		"whitespace",
	}

	if len(scanRules) != len(want) {
		t.Fatalf("len(scanRules) = %d, want %d", len(scanRules), len(want))
	}
	for index := range want {
		if scanRules[index].name != want[index] {
			t.Errorf("scanRules[%d] = %s, want %s", index, scanRules[index].name, want[index])
		}
	}
}

func BenchmarkScanner_Tokenize(b *testing.B) {
	source := "declare Count = 0;\nloop (Count <= 10) { Count += 1; output \"tick\\n\"; }\n"

	b.ReportAllocs()
	b.SetBytes(int64(len(source)))
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		s := New(source)
		s.Tokenize()
	}
}
