// Package calc runs one line of input through tokenizing, parsing and
// evaluation.
package calc

import (
	"log/slog"
	"strconv"

	"TinyCalc/internal/analysis"
	"TinyCalc/internal/eval"
	"TinyCalc/internal/expr"
)

// Stage names the pipeline step that produced an error.
type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
	StageEvaluate Stage = "evaluate"
)

// Error wraps a failure with the stage it happened in.
type Error struct {
	Stage Stage
	Input string
	Err   error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Result holds everything produced for one line.
type Result struct {
	Input  string
	Tokens []analysis.Token
	Tree   expr.Expr
	Value  float64
}

// FormatValue renders the value in Go's shortest native form ("5", "2.5", "+Inf").
func (r *Result) FormatValue() string {
	return FormatValue(r.Value)
}

// FormatValue renders v in Go's shortest native form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Calculator evaluates lines of arithmetic. It holds the only state shared
// across lines, the tokenizer, and is safe for concurrent use.
type Calculator struct {
	tokenizer *analysis.Tokenizer
	logger    *slog.Logger
}

// New creates a Calculator. A nil logger falls back to slog.Default().
func New(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{
		tokenizer: analysis.NewTokenizer(),
		logger:    logger,
	}
}

// Tokenize splits line into tokens.
func (c *Calculator) Tokenize(line string) ([]analysis.Token, error) {
	tokens, err := c.tokenizer.Tokenize(line)
	if err != nil {
		return nil, c.fail(StageTokenize, line, err)
	}
	return tokens, nil
}

// Parse tokenizes and parses line.
func (c *Calculator) Parse(line string) (*Result, error) {
	tokens, err := c.Tokenize(line)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("tokenized", "input", line, "tokens", len(tokens))

	tree, err := expr.Parse(tokens)
	if err != nil {
		return nil, c.fail(StageParse, line, err)
	}
	c.logger.Debug("parsed", "input", line, "tree", tree.String())

	return &Result{Input: line, Tokens: tokens, Tree: tree}, nil
}

// Evaluate runs the whole pipeline on line. When only evaluation fails, the
// returned Result still carries the tokens and tree for diagnostics.
func (c *Calculator) Evaluate(line string) (*Result, error) {
	res, err := c.Parse(line)
	if err != nil {
		return nil, err
	}

	v, err := eval.Evaluate(res.Tree)
	if err != nil {
		return res, c.fail(StageEvaluate, line, err)
	}
	res.Value = v

	c.logger.Debug("evaluated", "input", line, "value", v)
	return res, nil
}

func (c *Calculator) fail(stage Stage, line string, err error) *Error {
	c.logger.Debug("calculation failed",
		"stage", string(stage),
		"input", line,
		"error", err,
	)
	return &Error{Stage: stage, Input: line, Err: err}
}
