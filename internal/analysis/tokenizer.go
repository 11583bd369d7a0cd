package analysis

import (
	"errors"
	"fmt"
	"strings"

	"TinyCalc/internal/automaton"
)

// ErrUnknownChar is returned when a character cannot start any token.
var ErrUnknownChar = errors.New("char doesn't match any token")

type classMatcher struct {
	kind    Kind
	matcher automaton.Matcher
}

// Tokenizer splits a line into Number, Operator and Parenthesis tokens.
// A Tokenizer is immutable after NewTokenizer and safe for concurrent use.
type Tokenizer struct {
	matchers []classMatcher
}

// NewTokenizer creates a Tokenizer with its matchers in priority order
// Number, Operator, Parenthesis.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		matchers: []classMatcher{
			{KindNumber, NewNumberMatcher()},
			{KindOperator, NewOperatorMatcher()},
			{KindParenthesis, NewParenthesisMatcher()},
		},
	}
}

// classify returns the kind of the last matcher accepting text, or
// KindUndefined.
func (t *Tokenizer) classify(text string) Kind {
	kind := KindUndefined
	for _, cm := range t.matchers {
		if ok, _ := cm.matcher.Matches(text); ok {
			kind = cm.kind
		}
	}
	return kind
}

// Tokenize grows the current token one character at a time while some
// matcher still accepts it. The first character that breaks the match ends
// the token and is retried as the start of the next one. Spaces are
// skipped without ending a token.
func (t *Tokenizer) Tokenize(text string) ([]Token, error) {
	var tokens []Token
	var value strings.Builder
	current := KindUndefined

	runes := []rune(text)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == ' ' {
			i++
			continue
		}

		extended := value.String() + string(r)
		if kind := t.classify(extended); kind != KindUndefined {
			value.WriteRune(r)
			current = kind
			i++
			continue
		}

		if value.Len() == 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownChar, r)
		}

		// r is retried on the next iteration against an empty token.
		tokens = append(tokens, Token{Kind: current, Value: value.String()})
		value.Reset()
		current = KindUndefined
	}

	if current != KindUndefined {
		tokens = append(tokens, Token{Kind: current, Value: value.String()})
	}

	return tokens, nil
}
