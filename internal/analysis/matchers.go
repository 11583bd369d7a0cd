package analysis

import "TinyCalc/internal/automaton"

// Number matcher states. Every state except numStart accepts, so each
// prefix of a well-formed number is itself accepted while a token grows.
const (
	numStart    automaton.State = iota
	numLead                     // a single nonzero digit
	numInt                      // nonzero digit followed by more digits
	numZero                     // exactly "0"
	numPoint                    // integer part followed by "."
	numFraction                 // at least one digit after "."
)

const (
	symStart automaton.State = iota
	symDone
)

const digits = "0123456789"

// NewParenthesisMatcher accepts exactly one "(" or ")".
func NewParenthesisMatcher() *automaton.FSM {
	return newSymbolMatcher("()")
}

// NewOperatorMatcher accepts exactly one of "+", "-", "*", "/".
func NewOperatorMatcher() *automaton.FSM {
	return newSymbolMatcher("+-*/")
}

func newSymbolMatcher(symbols string) *automaton.FSM {
	f := automaton.New()
	f.SetInitialState(symStart)
	f.AddAcceptState(symDone)
	for _, r := range symbols {
		f.AddTransition(automaton.Rune(r), symStart, symDone)
	}
	return f
}

// NewNumberMatcher accepts ("0" | [1-9][0-9]*) ("." [0-9]*)?.
// A trailing "." with no fraction digits is accepted.
func NewNumberMatcher() *automaton.FSM {
	f := automaton.New()
	f.SetInitialState(numStart)
	for _, s := range []automaton.State{numLead, numInt, numZero, numPoint, numFraction} {
		f.AddAcceptState(s)
	}

	f.AddTransition(automaton.Rune('0'), numStart, numZero)
	for _, d := range digits[1:] {
		f.AddTransition(automaton.Rune(d), numStart, numLead)
	}

	for _, from := range []automaton.State{numLead, numInt, numZero} {
		f.AddTransition(automaton.Rune('.'), from, numPoint)
	}

	for _, d := range digits {
		f.AddTransition(automaton.Rune(d), numLead, numInt)
		f.AddTransition(automaton.Rune(d), numInt, numInt)
		f.AddTransition(automaton.Rune(d), numPoint, numFraction)
		f.AddTransition(automaton.Rune(d), numFraction, numFraction)
	}

	return f
}
