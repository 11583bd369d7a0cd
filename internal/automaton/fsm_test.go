package automaton

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// abStar accepts "a" followed by any number of "b".
func abStar() *FSM {
	f := New()
	f.SetInitialState(0)
	f.AddAcceptState(1)
	f.AddTransition(Rune('a'), 0, 1)
	f.AddTransition(Rune('b'), 1, 1)
	return f
}

func TestFSM_Matches(t *testing.T) {
	f := abStar()

	tests := []struct {
		input  string
		want   bool
		states []State
	}{
		{"a", true, []State{0, 1}},
		{"abbb", true, []State{0, 1, 1, 1, 1}},
		{"", false, []State{0}},
		{"b", false, []State{0}},
		{"aba", false, []State{0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, states := f.Matches(tt.input)
			if got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !reflect.DeepEqual(states, tt.states) {
				t.Errorf("Matches(%q) states = %v, want %v", tt.input, states, tt.states)
			}
		})
	}
}

func TestFSM_EmptyInputAcceptingStart(t *testing.T) {
	f := New()
	f.AddAcceptState(0)

	ok, states := f.Matches("")
	if !ok {
		t.Error("accepting start state should accept empty input")
	}
	if len(states) != 1 || states[0] != 0 {
		t.Errorf("states = %v, want [0]", states)
	}
}

func TestFSM_InitialState(t *testing.T) {
	f := New()
	f.SetInitialState(7)
	f.AddAcceptState(8)
	f.AddTransition(Rune('x'), 7, 8)

	if f.Start() != 7 {
		t.Fatalf("Start() = %d, want 7", f.Start())
	}
	if ok, _ := f.Matches("x"); !ok {
		t.Error("should accept \"x\" from state 7")
	}
	if ok, _ := f.Matches("xx"); ok {
		t.Error("should reject \"xx\"")
	}
}

func TestFSM_Fallback(t *testing.T) {
	// 0 --'q'--> 1, 0 --*--> 2; both accept.
	f := New()
	f.AddAcceptState(1)
	f.AddAcceptState(2)
	f.AddTransition(Rune('q'), 0, 1)
	f.AddTransition(Epsilon, 0, 2)

	if _, states := f.Matches("q"); states[1] != 1 {
		t.Errorf("exact transition should win over fallback, got states %v", states)
	}
	if ok, states := f.Matches("z"); !ok || states[1] != 2 {
		t.Errorf("fallback should consume unknown symbol, got ok=%v states=%v", ok, states)
	}
	// State 2 has no transitions at all.
	if ok, states := f.Matches("zz"); ok || len(states) != 2 {
		t.Errorf("Matches(zz) = %v, %v; want false after two states", ok, states)
	}
}

func TestFSM_Step(t *testing.T) {
	f := abStar()

	next, ok := f.Step(f.Start(), 'a')
	if !ok || next != 1 {
		t.Fatalf("Step(0, a) = %d, %v", next, ok)
	}
	if !f.IsAccept(next) {
		t.Error("state 1 should be accepting")
	}
	if _, ok := f.Step(next, 'a'); ok {
		t.Error("Step(1, a) should have no transition")
	}
}

func TestFSM_TransitionOverwrite(t *testing.T) {
	f := New()
	f.AddAcceptState(2)
	f.AddTransition(Rune('a'), 0, 1)
	f.AddTransition(Rune('a'), 0, 2)

	ok, states := f.Matches("a")
	if !ok {
		t.Error("later transition should replace earlier one")
	}
	if states[len(states)-1] != 2 {
		t.Errorf("final state = %d, want 2", states[len(states)-1])
	}
}

func TestFSM_Multibyte(t *testing.T) {
	f := New()
	f.AddAcceptState(1)
	f.AddTransition(Rune('é'), 0, 1)

	ok, states := f.Matches("é")
	if !ok {
		t.Error("should match on runes, not bytes")
	}
	if len(states) != 2 {
		t.Errorf("states = %v, want 2 states", states)
	}
}

func TestFSM_MatchesIsPure(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("identical inputs give identical results", prop.ForAll(
		func(input string) bool {
			f := abStar()
			before := len(f.transitions)

			ok1, states1 := f.Matches(input)
			ok2, states2 := f.Matches(input)

			return ok1 == ok2 &&
				reflect.DeepEqual(states1, states2) &&
				len(f.transitions) == before &&
				reflect.DeepEqual(f.transitions, abStar().transitions)
		},
		gen.AnyString(),
	))

	properties.Property("visited states never exceed input length plus one", prop.ForAll(
		func(input string) bool {
			_, states := abStar().Matches(input)
			return len(states) >= 1 && len(states) <= len([]rune(input))+1
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
