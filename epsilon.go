package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// RemoveEpsilons Returns a new automaton accepting the same language without epsilon transitions.
// States keep their indices; a state becomes accepting when an accepting state is reachable from it
// through epsilon transitions alone. Every symbol-bearing transition (p, s) is copied to each state
// that reaches p through epsilon transitions. The argument is not modified.
func RemoveEpsilons(a *Automaton) (*Automaton, error) {
	if !a.HasStart() {
		return nil, fmt.Errorf("remove epsilons: %w", ErrNoStartState)
	}

	result := NewAutomatonV1(a.GetNumStates())
	result.states = a.states.Clone()
	result.isAccept = a.isAccept.Clone()

	closures := make(map[int]*bitset.BitSet)
	closure := func(state int) *bitset.BitSet {
		c, ok := closures[state]
		if !ok {
			c = epsilonPredecessors(a, state)
			closures[state] = c
		}
		return c
	}

	for _, s := range a.AcceptStates() {
		result.isAccept.InPlaceUnion(closure(s))
	}

	for _, s := range a.States() {
		for _, t := range a.incoming[s] {
			if t.IsEpsilon() {
				continue
			}
			c := closure(t.Source)
			for q, ok := c.NextSet(0); ok; q, ok = c.NextSet(q + 1) {
				result.transition(result.labelled, int(q), s).symbols.InPlaceUnion(t.symbols)
			}
		}
	}

	return result, nil
}

// epsilonPredecessors returns the states that reach state using epsilon transitions only,
// state included.
func epsilonPredecessors(a *Automaton, state int) *bitset.BitSet {
	visited := bitset.New(a.states.Len())
	markBackward(a, state, visited)
	return visited
}

func markBackward(a *Automaton, state int, visited *bitset.BitSet) {
	if visited.Test(uint(state)) {
		return
	}
	visited.Set(uint(state))
	for _, t := range a.incoming[state] {
		if t.IsEpsilon() {
			markBackward(a, t.Source, visited)
		}
	}
}
