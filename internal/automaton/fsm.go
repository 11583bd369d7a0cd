package automaton

// State represents a state in a deterministic finite automaton.
type State uint32

// Input labels a transition: either an exact rune or the fallback.
type Input struct {
	r        rune
	fallback bool
}

// Rune returns the Input for an exact symbol.
func Rune(r rune) Input {
	return Input{r: r}
}

// Epsilon is the per-state fallback input. It is consulted only when no
// exact transition exists for the current symbol and consumes that symbol.
// It is not an ε-closure.
var Epsilon = Input{fallback: true}

// IsFallback reports whether in is the fallback input.
func (in Input) IsFallback() bool { return in.fallback }

// Matcher reports whether a whole text is accepted.
type Matcher interface {
	// Matches runs text from the start state and returns acceptance plus
	// every state visited, starting with the start state.
	Matches(text string) (bool, []State)
}

type transitionKey struct {
	from  State
	input Input
}

// FSM is a deterministic automaton with exact-symbol transitions and an
// optional single fallback transition per state.
//
// An FSM is built with SetInitialState, AddAcceptState and AddTransition and
// must not be modified afterwards. Matching never writes to the FSM, so a
// built FSM is safe for concurrent use.
type FSM struct {
	initial     State
	accept      map[State]bool
	transitions map[transitionKey]State
}

// New creates an empty FSM with initial state 0 and no accept states.
func New() *FSM {
	return &FSM{
		accept:      make(map[State]bool),
		transitions: make(map[transitionKey]State),
	}
}

// SetInitialState sets the state matching starts from.
func (f *FSM) SetInitialState(s State) {
	f.initial = s
}

// AddAcceptState marks s as accepting.
func (f *FSM) AddAcceptState(s State) {
	f.accept[s] = true
}

// AddTransition adds from --input--> to. A later call for the same
// (from, input) pair replaces the earlier target.
func (f *FSM) AddTransition(input Input, from, to State) {
	f.transitions[transitionKey{from: from, input: input}] = to
}

// Start returns the initial state.
func (f *FSM) Start() State {
	return f.initial
}

// IsAccept returns true if the state is an accepting state.
func (f *FSM) IsAccept(s State) bool {
	return f.accept[s]
}

// Step returns the next state for r. The exact transition wins over the
// fallback. ok is false when neither exists.
func (f *FSM) Step(s State, r rune) (next State, ok bool) {
	if next, ok = f.transitions[transitionKey{from: s, input: Rune(r)}]; ok {
		return next, true
	}
	next, ok = f.transitions[transitionKey{from: s, input: Epsilon}]
	return next, ok
}

// Matches implements Matcher. Matching stops at the first symbol without
// a transition and reports false.
func (f *FSM) Matches(text string) (bool, []State) {
	current := f.initial
	states := []State{current}

	for _, r := range text {
		next, ok := f.Step(current, r)
		if !ok {
			return false, states
		}
		current = next
		states = append(states, current)
	}

	return f.IsAccept(current), states
}
