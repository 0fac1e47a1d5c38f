package automaton

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Automaton Represents a finite automaton with its states and transitions. States are small
// non-negative integers; state 0, when present, is the start state. Create states with CreateState
// or AddState, mark accepting states with SetAccept and add transitions with AddTransition or
// AddEpsilon.
//
// Between any ordered pair of states there is at most one symbol-bearing transition and at most one
// epsilon transition; symbols added between the same pair are merged onto the existing transition.
type Automaton struct {
	// States currently in use.
	states *bitset.BitSet

	isAccept *bitset.BitSet

	// All transitions in insertion order.
	transitions []*Transition

	outgoing map[int][]*Transition
	incoming map[int][]*Transition

	labelled map[edge]*Transition
	epsilons map[edge]*Transition
}

type edge struct {
	source, dest int
}

func NewAutomaton() *Automaton {
	return NewAutomatonV1(2)
}

func NewAutomatonV1(numStates int) *Automaton {
	return &Automaton{
		states:   bitset.New(uint(numStates)),
		isAccept: bitset.New(uint(numStates)),
		outgoing: make(map[int][]*Transition),
		incoming: make(map[int][]*Transition),
		labelled: make(map[edge]*Transition),
		epsilons: make(map[edge]*Transition),
	}
}

// CreateState Create a new state using the lowest free index, so the first state created is the
// start state.
func (a *Automaton) CreateState() int {
	state := uint(0)
	for a.states.Test(state) {
		state++
	}
	a.states.Set(state)
	return int(state)
}

// AddState Create the state with the given index.
func (a *Automaton) AddState(state int) error {
	if state < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownState, state)
	}
	if a.HasState(state) {
		return fmt.Errorf("%w: %d", ErrStateExists, state)
	}
	a.states.Set(uint(state))
	return nil
}

// RemoveState Delete a state together with every transition touching it. Its index becomes free
// for reuse.
func (a *Automaton) RemoveState(state int) error {
	if !a.HasState(state) {
		return fmt.Errorf("%w: %d", ErrUnknownState, state)
	}
	a.states.Clear(uint(state))
	a.isAccept.Clear(uint(state))
	a.retainTransitions(func(t *Transition) bool {
		return t.Source != state && t.Dest != state
	})
	return nil
}

// HasState Returns true if the state exists.
func (a *Automaton) HasState(state int) bool {
	return state >= 0 && a.states.Test(uint(state))
}

// HasStart Returns true if the automaton has a start state.
func (a *Automaton) HasStart() bool {
	return a.HasState(0)
}

// IsStart Returns true if this state is the start state.
func (a *Automaton) IsStart(state int) bool {
	return state == 0 && a.HasState(0)
}

// SetAccept Set or clear this state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) error {
	if !a.HasState(state) {
		return fmt.Errorf("%w: %d", ErrUnknownState, state)
	}
	a.isAccept.SetTo(uint(state), accept)
	return nil
}

// IsAccept Returns true if this state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return state >= 0 && a.isAccept.Test(uint(state))
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return int(a.states.Count())
}

// GetNumTransitions How many transition records this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.transitions)
}

// States Returns the state indices in ascending order.
func (a *Automaton) States() []int {
	states := make([]int, 0, a.states.Count())
	for i, ok := a.states.NextSet(0); ok; i, ok = a.states.NextSet(i + 1) {
		states = append(states, int(i))
	}
	return states
}

// AcceptStates Returns the accepting state indices in ascending order.
func (a *Automaton) AcceptStates() []int {
	states := make([]int, 0, a.isAccept.Count())
	for i, ok := a.isAccept.NextSet(0); ok; i, ok = a.isAccept.NextSet(i + 1) {
		states = append(states, int(i))
	}
	return states
}

// AddTransition Add a transition from source to dest carrying the given symbols. Without symbols an
// epsilon transition is added. Symbols are merged into an existing transition between the same pair.
func (a *Automaton) AddTransition(source, dest int, symbols ...rune) error {
	if !a.HasState(source) {
		return fmt.Errorf("from state %d: %w", source, ErrUnknownState)
	}
	if !a.HasState(dest) {
		return fmt.Errorf("to state %d: %w", dest, ErrUnknownState)
	}

	normalized := make([]rune, len(symbols))
	for i, r := range symbols {
		n, err := NormalizeSymbol(r)
		if err != nil {
			return fmt.Errorf("transition %d -> %d: %w", source, dest, err)
		}
		normalized[i] = n
	}

	if len(normalized) == 0 {
		a.transition(a.epsilons, source, dest)
		return nil
	}

	t := a.transition(a.labelled, source, dest)
	for _, r := range normalized {
		t.symbols.Set(uint(r))
	}
	return nil
}

// AddTransitionLabel Add a transition whose symbols are the characters of label.
func (a *Automaton) AddTransitionLabel(source, dest int, label string) error {
	return a.AddTransition(source, dest, []rune(label)...)
}

// AddEpsilon Add an epsilon transition between source and dest.
func (a *Automaton) AddEpsilon(source, dest int) error {
	return a.AddTransition(source, dest)
}

// Returns the record for the pair in index, creating it when missing.
func (a *Automaton) transition(index map[edge]*Transition, source, dest int) *Transition {
	key := edge{source, dest}
	if t, ok := index[key]; ok {
		return t
	}
	t := newTransition(source, dest)
	index[key] = t
	a.transitions = append(a.transitions, t)
	a.outgoing[source] = append(a.outgoing[source], t)
	a.incoming[dest] = append(a.incoming[dest], t)
	return t
}

// RemoveTransition Delete both the epsilon and the symbol-bearing transition between source and
// dest. Returns false if there was none.
func (a *Automaton) RemoveTransition(source, dest int) bool {
	found := false
	a.retainTransitions(func(t *Transition) bool {
		if t.Source == source && t.Dest == dest {
			found = true
			return false
		}
		return true
	})
	return found
}

func (a *Automaton) retainTransitions(keep func(t *Transition) bool) {
	kept := a.transitions[:0]
	for _, t := range a.transitions {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	clear(a.transitions[len(kept):])
	a.transitions = kept

	clear(a.outgoing)
	clear(a.incoming)
	clear(a.labelled)
	clear(a.epsilons)
	for _, t := range a.transitions {
		a.outgoing[t.Source] = append(a.outgoing[t.Source], t)
		a.incoming[t.Dest] = append(a.incoming[t.Dest], t)
		if t.IsEpsilon() {
			a.epsilons[edge{t.Source, t.Dest}] = t
		} else {
			a.labelled[edge{t.Source, t.Dest}] = t
		}
	}
}

// Transitions Returns all transitions in insertion order.
func (a *Automaton) Transitions() []Transition {
	return values(a.transitions)
}

// TransitionsFrom Returns the transitions leaving state, in insertion order.
func (a *Automaton) TransitionsFrom(state int) []Transition {
	return values(a.outgoing[state])
}

// TransitionsTo Returns the transitions entering state, in insertion order.
func (a *Automaton) TransitionsTo(state int) []Transition {
	return values(a.incoming[state])
}

// GetTransition Returns the symbol-bearing transition between source and dest.
func (a *Automaton) GetTransition(source, dest int) (Transition, bool) {
	t, ok := a.labelled[edge{source, dest}]
	if !ok {
		return Transition{}, false
	}
	return t.snapshot(), true
}

// HasEpsilon Returns true if there is an epsilon transition from source to dest.
func (a *Automaton) HasEpsilon(source, dest int) bool {
	_, ok := a.epsilons[edge{source, dest}]
	return ok
}

func values(ts []*Transition) []Transition {
	result := make([]Transition, len(ts))
	for i, t := range ts {
		result[i] = t.snapshot()
	}
	return result
}

// Alphabet Returns the distinct symbols used by the transitions, in ascending order.
func (a *Automaton) Alphabet() []rune {
	union := bitset.New(maxSymbol)
	for _, t := range a.transitions {
		union.InPlaceUnion(t.symbols)
	}
	return Transition{symbols: union}.Symbols()
}

// Step Performs lookup in transitions, assuming determinism.
// Returns: destination state, -1 if no matching outgoing transition
func (a *Automaton) Step(state int, label rune) int {
	for _, t := range a.outgoing[state] {
		if t.Has(label) {
			return t.Dest
		}
	}
	return -1
}

// Copy Returns a deep copy of the automaton.
func (a *Automaton) Copy() *Automaton {
	result := NewAutomaton()
	result.states = a.states.Clone()
	result.isAccept = a.isAccept.Clone()
	for _, t := range a.transitions {
		index := result.labelled
		if t.IsEpsilon() {
			index = result.epsilons
		}
		result.transition(index, t.Source, t.Dest).symbols.InPlaceUnion(t.symbols)
	}
	return result
}

func (a *Automaton) String() string {
	b := new(strings.Builder)
	for _, s := range a.States() {
		fmt.Fprintf(b, "state %d", s)
		if a.IsStart(s) {
			b.WriteString(" [start]")
		}
		if a.IsAccept(s) {
			b.WriteString(" [accept]")
		}
		b.WriteByte('\n')
		for _, t := range a.outgoing[s] {
			fmt.Fprintf(b, "  %s\n", t)
		}
	}
	return b.String()
}
