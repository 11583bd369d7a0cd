// Package testutil holds fixtures shared by the integration tests and
// benchmarks.
package testutil

import (
	"strings"
	"testing"

	"TinyCalc/internal/analysis"
	"TinyCalc/internal/expr"
)

// Sample is an expression with its expected tree and value.
type Sample struct {
	Name  string
	Input string
	Tree  string
	Value float64
}

// Samples returns a small set of expressions that evaluate cleanly.
func Samples() []Sample {
	return []Sample{
		{"number", "42", "42", 42},
		{"addition", "2 + 3", "Plus( 2, 3 )", 5},
		{"product first", "2 * 3 + 4", "Plus( Mul( 2, 3 ), 4 )", 10},
		{"product last", "2 + 3 * 4", "Plus( 2, Mul( 3, 4 ) )", 14},
		{"two products", "2 * 3 - 4 * 5", "Minus( Mul( 2, 3 ), Mul( 4, 5 ) )", -14},
		{"group", "(2 + 3) * 4", "Mul( GROUP( Plus( 2, 3 ) ), 4 )", 20},
		{"leading unary", "-5 + 2", "Plus( Minus( 5 ), 2 )", -3},
		{"negated group", "-(2 + 3)", "Minus( GROUP( Plus( 2, 3 ) ) )", -5},
		{"fraction", "10 / 4", "Div( 10, 4 )", 2.5},
		{"decimal", "0.5 * 4", "Mul( 0.5, 4 )", 2},
	}
}

// Failure is an expression that fails at a known pipeline stage.
type Failure struct {
	Input string
	Stage string
}

// Failures returns one failing expression per stage.
func Failures() []Failure {
	return []Failure{
		{"2 & 3", "tokenize"},
		{"1..2", "tokenize"},
		{"()", "parse"},
		{"-", "parse"},
		{"0 / 5", "evaluate"},
		{"2 +", "evaluate"},
	}
}

// LongSum returns "1 + 1 + ... + 1" with n terms.
func LongSum(n int) string {
	terms := make([]string, n)
	for i := range terms {
		terms[i] = "1"
	}
	return strings.Join(terms, " + ")
}

// MustTokenize tokenizes text or fails the test.
func MustTokenize(tb testing.TB, text string) []analysis.Token {
	tb.Helper()
	tokens, err := analysis.NewTokenizer().Tokenize(text)
	if err != nil {
		tb.Fatalf("Tokenize(%q): %v", text, err)
	}
	return tokens
}

// MustParse tokenizes and parses text or fails the test.
func MustParse(tb testing.TB, text string) expr.Expr {
	tb.Helper()
	tree, err := expr.Parse(MustTokenize(tb, text))
	if err != nil {
		tb.Fatalf("Parse(%q): %v", text, err)
	}
	return tree
}
