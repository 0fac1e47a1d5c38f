package automaton

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// SubsetRow is one row of the subset construction: the set of original states it stands for, the
// state it becomes in the DFA and, per alphabet symbol, the index of the row reached.
type SubsetRow struct {
	Set    *StateSet
	State  int
	Accept bool
	Next   []int
}

// SubsetTable holds the rows of a subset construction in discovery order.
type SubsetTable struct {
	Alphabet []rune
	Rows     []*SubsetRow
}

// BuildSubsetTable Runs the subset construction on an epsilon free automaton. Rows are processed
// first-registered, first-computed, so identical inputs always produce identical tables. The empty
// set is a regular row acting as the sink.
// Worst case complexity: exponential in number of states.
func BuildSubsetTable(a *Automaton) (*SubsetTable, error) {
	if !a.HasStart() {
		return nil, fmt.Errorf("determinize: %w", ErrNoStartState)
	}
	if !IsEpsilonFree(a) {
		return nil, fmt.Errorf("determinize: %w", ErrNotEpsilonFree)
	}

	table := &SubsetTable{Alphabet: a.Alphabet()}
	rows := NewHashMap[int](WithCapacity(4))

	register := func(set *StateSet) int {
		if i, ok := rows.Get(set); ok {
			return i
		}
		i := len(table.Rows)
		rows.Set(set, i)
		row := &SubsetRow{Set: set, State: i}
		for _, s := range a.AcceptStates() {
			if set.Contains(s) {
				row.Accept = true
				break
			}
		}
		table.Rows = append(table.Rows, row)
		return i
	}

	register(NewStateSet(0))

	for i := 0; i < len(table.Rows); i++ {
		row := table.Rows[i]
		row.Next = make([]int, len(table.Alphabet))
		for j, c := range table.Alphabet {
			row.Next[j] = register(reached(a, row.Set, c))
		}
	}

	return table, nil
}

// reached returns the states entered from any state of set on symbol c.
func reached(a *Automaton, set *StateSet, c rune) *StateSet {
	bits := bitset.New(a.states.Len())
	for _, s := range set.GetArray() {
		for _, t := range a.outgoing[s] {
			if t.Has(c) {
				bits.Set(uint(t.Dest))
			}
		}
	}
	return freeze(bits)
}

// Lookup Returns the row whose set equals set.
func (t *SubsetTable) Lookup(set *StateSet) (*SubsetRow, bool) {
	for _, row := range t.Rows {
		if row.Set.Equals(set) {
			return row, true
		}
	}
	return nil, false
}

// Automaton Builds the DFA described by the table; row i becomes state i.
func (t *SubsetTable) Automaton() *Automaton {
	result := NewAutomatonV1(len(t.Rows))
	for _, row := range t.Rows {
		result.states.Set(uint(row.State))
		result.isAccept.SetTo(uint(row.State), row.Accept)
	}
	for _, row := range t.Rows {
		for j, c := range t.Alphabet {
			dest := t.Rows[row.Next[j]].State
			result.transition(result.labelled, row.State, dest).symbols.Set(uint(c))
		}
	}
	return result
}

// Determinize Returns a new deterministic automaton accepting the same language as the epsilon
// free automaton a. Run RemoveEpsilons first when a has epsilon transitions.
func Determinize(a *Automaton) (*Automaton, error) {
	table, err := BuildSubsetTable(a)
	if err != nil {
		return nil, err
	}
	return table.Automaton(), nil
}

// ToDFA Returns a new deterministic automaton for a, removing epsilon transitions and running the
// subset construction only when the classification says they are needed.
func ToDFA(a *Automaton) (*Automaton, error) {
	if !a.HasStart() {
		return nil, fmt.Errorf("to dfa: %w", ErrNoStartState)
	}

	c := Classify(a)
	if c.IsDFA {
		return a.Copy(), nil
	}

	var err error
	if c.HasEpsilon {
		a, err = RemoveEpsilons(a)
		if err != nil {
			return nil, err
		}
		if IsDeterministic(a) {
			return a, nil
		}
	}
	return Determinize(a)
}
