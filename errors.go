package automaton

import "errors"

var (
	ErrNoStartState     = errors.New("automaton has no start state")
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrUnknownState     = errors.New("unknown state")
	ErrStateExists      = errors.New("state already exists")
	ErrNotEpsilonFree   = errors.New("automaton has epsilon transitions")
	ErrNotDeterministic = errors.New("automaton is not deterministic")
)
