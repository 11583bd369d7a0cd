package analysis

import "fmt"

// Kind classifies a token.
type Kind int

const (
	KindUndefined Kind = iota
	KindNumber
	KindOperator
	KindParenthesis
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	case KindOperator:
		return "Operator"
	case KindParenthesis:
		return "Parenthesis"
	default:
		return "Undefined"
	}
}

// Token represents a single classified span of input text.
type Token struct {
	Kind  Kind
	Value string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)", t.Kind, t.Value)
}
