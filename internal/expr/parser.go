package expr

import (
	"errors"
	"fmt"

	"TinyCalc/internal/analysis"
)

var (
	ErrUnknownTokenKind = errors.New("no parsing rule for token")
	ErrUnknownOperator  = errors.New("operator not defined")
	ErrInvalidUnary     = errors.New("invalid unary expression")
	ErrEmptyGroup       = errors.New("undefined child of group node")
	ErrUnexpectedEnd    = errors.New("unexpected end of input")
	ErrUnexpectedNode   = errors.New("failed to parse node")
)

// Parser builds an expression tree from a token sequence by recursive
// descent. A binary operator parses its whole right-hand side eagerly, so
// the raw tree leans right; Rotate fixes one level of precedence afterwards.
//
// A Parser is single-use and not safe for concurrent use.
type Parser struct {
	tokens []analysis.Token
	pos    int

	// group is set when a ")" has been consumed and the enclosing parse
	// level has yet to return.
	group bool
}

// NewParser creates a Parser over tokens.
func NewParser(tokens []analysis.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses tokens into a tree. An empty sequence yields *UndefinedExpr.
func Parse(tokens []analysis.Token) (Expr, error) {
	return NewParser(tokens).Parse()
}

// Parse parses from the current position until the tokens run out or a
// closing parenthesis ends the current level.
func (p *Parser) Parse() (Expr, error) {
	var current Expr = &UndefinedExpr{}

loop:
	for p.pos < len(p.tokens) {
		if p.group {
			switch current.(type) {
			case *GroupExpr:
				p.group = false
				continue
			case *UndefinedExpr:
			default:
				// One ")" ends exactly one level. The rotation belongs to
				// the level that opened the group.
				return current, nil
			}
		}

		node, err := p.parseOne()
		if err != nil {
			return nil, err
		}

		switch n := node.(type) {
		case *NumberExpr, *UnaryExpr, *GroupExpr:
			// A value following a complete value replaces it.
			current = node
		case *BinaryExpr:
			current = &BinaryExpr{Op: n.Op, LHS: current, RHS: n.RHS}
		case *FinishedExpr:
			break loop
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnexpectedNode, node)
		}
	}

	return Rotate(current), nil
}

func (p *Parser) parseOne() (Expr, error) {
	tok := p.tokens[p.pos]

	switch tok.Kind {
	case analysis.KindNumber:
		p.pos++
		return &NumberExpr{Text: tok.Value}, nil
	case analysis.KindOperator:
		if p.followsOperand() {
			return p.parseBinary()
		}
		return p.parseUnary()
	case analysis.KindParenthesis:
		return p.parseParenthesis()
	default:
		return nil, fmt.Errorf("%w: kind %s", ErrUnknownTokenKind, tok.Kind)
	}
}

// followsOperand reports whether the token before the cursor is a number
// or ")". Operators there are binary; otherwise they are unary.
func (p *Parser) followsOperand() bool {
	if p.pos == 0 {
		return false
	}
	prev := p.tokens[p.pos-1]
	switch prev.Kind {
	case analysis.KindNumber:
		return true
	case analysis.KindParenthesis:
		return prev.Value == ")"
	default:
		return false
	}
}

func (p *Parser) parseBinary() (Expr, error) {
	var op Operator
	switch sym := p.tokens[p.pos].Value; sym {
	case "+":
		op = OpPlus
	case "-":
		op = OpMinus
	case "*":
		op = OpMul
	case "/":
		op = OpDiv
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownOperator, sym)
	}
	p.pos++

	rhs, err := p.Parse()
	if err != nil {
		return nil, err
	}
	// The caller supplies the left operand.
	return &BinaryExpr{Op: op, LHS: &UndefinedExpr{}, RHS: rhs}, nil
}

func (p *Parser) parseUnary() (Expr, error) {
	var op Operator
	switch sym := p.tokens[p.pos].Value; sym {
	case "+":
		op = OpPlus
	case "-":
		op = OpMinus
	default:
		return nil, fmt.Errorf("%w: %s cannot be unary operator", ErrInvalidUnary, sym)
	}
	p.pos++

	if p.pos >= len(p.tokens) {
		return nil, fmt.Errorf("%w: unary %s has no operand", ErrUnexpectedEnd, op)
	}

	child, err := p.parseOne()
	if err != nil {
		return nil, fmt.Errorf("parsing child of unary %s failed: %w", op, err)
	}

	switch child.(type) {
	case *NumberExpr:
	case *GroupExpr:
		p.group = false
	default:
		return nil, fmt.Errorf("%w: child %s cannot be child of unary operator", ErrInvalidUnary, child)
	}

	return &UnaryExpr{Op: op, Child: child}, nil
}

func (p *Parser) parseParenthesis() (Expr, error) {
	switch sym := p.tokens[p.pos].Value; sym {
	case "(":
		p.pos++
		child, err := p.Parse()
		if err != nil {
			return nil, err
		}
		if child.Type() == ExprTypeUndefined {
			return nil, ErrEmptyGroup
		}
		return &GroupExpr{Child: child}, nil
	case ")":
		p.pos++
		p.group = true
		return &FinishedExpr{}, nil
	default:
		return nil, fmt.Errorf("%w: parenthesis %s", ErrUnknownTokenKind, sym)
	}
}
