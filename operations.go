package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// IsEmpty
// Returns true if the given automaton accepts no strings.
func IsEmpty(a *Automaton) bool {
	if !a.HasStart() {
		return true
	}
	if a.IsAccept(0) {
		return false
	}

	workList := make([]int, 0)
	seen := bitset.New(a.states.Len())
	workList = append(workList, 0)
	seen.Set(0)

	for len(workList) > 0 {
		state := workList[0]
		workList = workList[1:]

		if a.IsAccept(state) {
			return false
		}

		for _, t := range a.outgoing[state] {
			if !seen.Test(uint(t.Dest)) {
				workList = append(workList, t.Dest)
				seen.Set(uint(t.Dest))
			}
		}
	}
	return true
}

// Copies the states and transitions of other into a, shifted past the highest index of a.
// Returns the shift, which is also where the start state of other lands.
func (a *Automaton) appendCopy(other *Automaton) int {
	offset := 0
	if states := a.States(); len(states) > 0 {
		offset = states[len(states)-1] + 1
	}

	for _, s := range other.States() {
		a.states.Set(uint(offset + s))
		a.isAccept.SetTo(uint(offset+s), other.IsAccept(s))
	}
	for _, t := range other.transitions {
		index := a.labelled
		if t.IsEpsilon() {
			index = a.epsilons
		}
		a.transition(index, offset+t.Source, offset+t.Dest).symbols.InPlaceUnion(t.symbols)
	}
	return offset
}

func requireStart(op string, automatons ...*Automaton) error {
	for i, a := range automatons {
		if !a.HasStart() {
			return fmt.Errorf("%s: operand %d: %w", op, i, ErrNoStartState)
		}
	}
	return nil
}

// Union
// Returns an epsilon automaton accepting the union of the languages.
func Union(automatons ...*Automaton) (*Automaton, error) {
	if err := requireStart("union", automatons...); err != nil {
		return nil, err
	}

	result := NewAutomaton()
	start := result.CreateState()
	for _, a := range automatons {
		offset := result.appendCopy(a)
		if err := result.AddEpsilon(start, offset); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Concatenate
// Returns an epsilon automaton accepting the concatenation of the languages, in order.
func Concatenate(automatons ...*Automaton) (*Automaton, error) {
	if err := requireStart("concatenate", automatons...); err != nil {
		return nil, err
	}
	if len(automatons) == 0 {
		return defaultAutomata.MakeEmptyString(), nil
	}

	result := automatons[0].Copy()
	for _, a := range automatons[1:] {
		prevAccept := result.AcceptStates()
		offset := result.appendCopy(a)
		for _, s := range prevAccept {
			result.isAccept.Clear(uint(s))
			if err := result.AddEpsilon(s, offset); err != nil {
				return nil, err
			}
		}
	}
	return result, nil
}

// Repeat
// Returns an epsilon automaton accepting the Kleene star of the language.
func Repeat(a *Automaton) (*Automaton, error) {
	if err := requireStart("repeat", a); err != nil {
		return nil, err
	}

	result := defaultAutomata.MakeEmptyString()
	offset := result.appendCopy(a)
	if err := result.AddEpsilon(0, offset); err != nil {
		return nil, err
	}
	for _, s := range a.AcceptStates() {
		if err := result.AddEpsilon(offset+s, 0); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Optional
// Returns an epsilon automaton accepting the language plus the empty string.
func Optional(a *Automaton) (*Automaton, error) {
	if err := requireStart("optional", a); err != nil {
		return nil, err
	}

	result := defaultAutomata.MakeEmptyString()
	offset := result.appendCopy(a)
	if err := result.AddEpsilon(0, offset); err != nil {
		return nil, err
	}
	return result, nil
}

// Totalize
// Returns a copy of the deterministic automaton a in which every state has a transition for every
// symbol of the alphabet, adding a non accepting sink state when one is missing.
func Totalize(a *Automaton) (*Automaton, error) {
	if !IsDeterministic(a) {
		return nil, fmt.Errorf("totalize: %w", ErrNotDeterministic)
	}

	result := a.Copy()
	if IsComplete(a) {
		return result, nil
	}

	alphabet := a.Alphabet()
	deadState := result.CreateState()
	for _, s := range a.States() {
		for _, c := range alphabet {
			if a.Step(s, c) == -1 {
				if err := result.AddTransition(s, deadState, c); err != nil {
					return nil, err
				}
			}
		}
	}
	if err := result.AddTransition(deadState, deadState, alphabet...); err != nil {
		return nil, err
	}
	return result, nil
}
