// Package eval computes the value of an expression tree.
package eval

import (
	"errors"
	"fmt"
	"strconv"

	"TinyCalc/internal/expr"
)

var (
	ErrInvalidNumber   = errors.New("failed to parse number")
	ErrZeroDividend    = errors.New("division with zero left operand")
	ErrInvalidOperator = errors.New("invalid operator")
	ErrUnevaluable     = errors.New("expression cannot be evaluated")
)

// Evaluate walks e and returns its value. The first failure anywhere in
// the tree aborts the walk.
//
// Division fails when the left operand is zero. A zero right operand is
// not checked and yields ±Inf or NaN.
func Evaluate(e expr.Expr) (float64, error) {
	switch v := e.(type) {
	case *expr.NumberExpr:
		n, err := strconv.ParseFloat(v.Text, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q: %v", ErrInvalidNumber, v.Text, err)
		}
		return n, nil
	case *expr.GroupExpr:
		return Evaluate(v.Child)
	case *expr.UnaryExpr:
		return evaluateUnary(v)
	case *expr.BinaryExpr:
		return evaluateBinary(v)
	case nil:
		return 0, fmt.Errorf("%w: nil expression", ErrUnevaluable)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnevaluable, e)
	}
}

func evaluateUnary(e *expr.UnaryExpr) (float64, error) {
	child, err := Evaluate(e.Child)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate unary expr %s: %w", e, err)
	}

	switch e.Op {
	case expr.OpMinus:
		return -child, nil
	case expr.OpPlus:
		return child, nil
	default:
		return 0, fmt.Errorf("%w %s in unary expr %s", ErrInvalidOperator, e.Op, e)
	}
}

func evaluateBinary(e *expr.BinaryExpr) (float64, error) {
	lhs, err := Evaluate(e.LHS)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate subexpr %s of expr %s: %w", e.LHS, e, err)
	}
	rhs, err := Evaluate(e.RHS)
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate subexpr %s of expr %s: %w", e.RHS, e, err)
	}

	switch e.Op {
	case expr.OpMul:
		return lhs * rhs, nil
	case expr.OpDiv:
		if lhs == 0 {
			return 0, fmt.Errorf("%w: left value of expr %s is zero", ErrZeroDividend, e)
		}
		return lhs / rhs, nil
	case expr.OpPlus:
		return lhs + rhs, nil
	case expr.OpMinus:
		return lhs - rhs, nil
	default:
		return 0, fmt.Errorf("%w %s at expr %s", ErrInvalidOperator, e.Op, e)
	}
}
