package expr

import "fmt"

// UndefinedExpr is the empty accumulator: nothing has been parsed yet.
type UndefinedExpr struct{}

func (e *UndefinedExpr) Type() ExprType { return ExprTypeUndefined }
func (e *UndefinedExpr) String() string { return "???" }

// FinishedExpr signals that a closing parenthesis was just consumed.
type FinishedExpr struct{}

func (e *FinishedExpr) Type() ExprType { return ExprTypeFinished }
func (e *FinishedExpr) String() string { return "FF" }

// NumberExpr is a numeric literal, kept as source text until evaluation.
type NumberExpr struct {
	Text string
}

func (e *NumberExpr) Type() ExprType { return ExprTypeNumber }
func (e *NumberExpr) String() string { return e.Text }

// UnaryExpr applies a sign to its child.
type UnaryExpr struct {
	Op    Operator
	Child Expr
}

func (e *UnaryExpr) Type() ExprType { return ExprTypeUnary }
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("%s( %s )", e.Op, e.Child)
}

// BinaryExpr combines two operands.
type BinaryExpr struct {
	Op  Operator
	LHS Expr
	RHS Expr
}

func (e *BinaryExpr) Type() ExprType { return ExprTypeBinary }
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s( %s, %s )", e.Op, e.LHS, e.RHS)
}

// GroupExpr is a parenthesized subexpression.
type GroupExpr struct {
	Child Expr
}

func (e *GroupExpr) Type() ExprType { return ExprTypeGroup }
func (e *GroupExpr) String() string {
	return fmt.Sprintf("GROUP( %s )", e.Child)
}
