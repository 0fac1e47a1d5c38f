package automaton

import "fmt"

// Automata builds small automata from which larger ones are composed.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language: a lone, non accepting start state.
func (*Automata) MakeEmpty() *Automaton {
	a := NewAutomaton()
	a.CreateState()
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString() *Automaton {
	a := NewAutomaton()
	s := a.CreateState()
	a.isAccept.Set(uint(s))
	return a
}

// MakeSymbol
// Returns a new (deterministic) automaton that accepts a single symbol.
func (*Automata) MakeSymbol(c rune) (*Automaton, error) {
	a := NewAutomaton()
	s1 := a.CreateState()
	s2 := a.CreateState()
	a.isAccept.Set(uint(s2))
	if err := a.AddTransition(s1, s2, c); err != nil {
		return nil, err
	}
	return a, nil
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly s.
func (*Automata) MakeString(s string) (*Automaton, error) {
	a := NewAutomaton()
	last := a.CreateState()
	for _, c := range s {
		state := a.CreateState()
		if err := a.AddTransition(last, state, c); err != nil {
			return nil, fmt.Errorf("make string %q: %w", s, err)
		}
		last = state
	}
	a.isAccept.Set(uint(last))
	return a, nil
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over the given symbols.
func (*Automata) MakeAnyString(symbols string) (*Automaton, error) {
	a := NewAutomaton()
	s := a.CreateState()
	a.isAccept.Set(uint(s))
	if symbols == "" {
		return a, nil
	}
	if err := a.AddTransitionLabel(s, s, symbols); err != nil {
		return nil, err
	}
	return a, nil
}
