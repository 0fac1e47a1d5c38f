package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Transition is a directed edge between two states. A transition with no
// symbols is an epsilon transition.
type Transition struct {
	Source  int
	Dest    int
	symbols *bitset.BitSet
}

func newTransition(source, dest int) *Transition {
	return &Transition{
		Source:  source,
		Dest:    dest,
		symbols: bitset.New(maxSymbol),
	}
}

// snapshot returns a copy that does not share symbol storage with t.
func (t *Transition) snapshot() Transition {
	c := Transition{Source: t.Source, Dest: t.Dest}
	if t.symbols != nil {
		c.symbols = t.symbols.Clone()
	}
	return c
}

// IsEpsilon returns true if the transition carries no symbol.
func (t Transition) IsEpsilon() bool {
	return t.symbols == nil || t.symbols.None()
}

// Has returns true if the transition carries symbol r.
func (t Transition) Has(r rune) bool {
	if t.symbols == nil || r < 0 || r >= maxSymbol {
		return false
	}
	return t.symbols.Test(uint(r))
}

// Symbols returns the symbols of the transition in ascending order.
func (t Transition) Symbols() []rune {
	if t.symbols == nil {
		return nil
	}
	symbols := make([]rune, 0, t.symbols.Count())
	for i, ok := t.symbols.NextSet(0); ok; i, ok = t.symbols.NextSet(i + 1) {
		symbols = append(symbols, rune(i))
	}
	return symbols
}

// Label returns the symbols as a string, empty for epsilon transitions.
func (t Transition) Label() string {
	return string(t.Symbols())
}

func (t Transition) String() string {
	label := "ε"
	if !t.IsEpsilon() {
		label = t.Label()
	}
	return fmt.Sprintf("%d -%s-> %d", t.Source, label, t.Dest)
}
