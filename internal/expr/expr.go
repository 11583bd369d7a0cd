// Package expr defines the arithmetic expression tree and its parser.
package expr

// ExprType identifies the kind of expression node.
type ExprType int

const (
	ExprTypeUndefined ExprType = iota
	ExprTypeFinished
	ExprTypeNumber
	ExprTypeUnary
	ExprTypeBinary
	ExprTypeGroup
)

// Expr is the interface for all expression tree nodes.
// Composite nodes own their children; trees are never shared.
type Expr interface {
	Type() ExprType

	// String renders the node for diagnostics, e.g. "Plus( 2, Mul( 3, 4 ) )".
	String() string
}

// Operator is an arithmetic operator.
type Operator int

const (
	OpUndefined Operator = iota
	OpMul
	OpDiv
	OpPlus
	OpMinus
)

func (op Operator) String() string {
	switch op {
	case OpMul:
		return "Mul"
	case OpDiv:
		return "Div"
	case OpPlus:
		return "Plus"
	case OpMinus:
		return "Minus"
	default:
		return "?"
	}
}

// IsMultiplicative reports whether op is Mul or Div.
func (op Operator) IsMultiplicative() bool {
	return op == OpMul || op == OpDiv
}

// IsAdditive reports whether op is Plus or Minus.
func (op Operator) IsAdditive() bool {
	return op == OpPlus || op == OpMinus
}
