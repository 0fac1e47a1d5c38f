package automaton

import (
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// ReadStep is one transition taken while reading a word. Symbol is the consumed symbol, or 0 for an
// epsilon step.
type ReadStep struct {
	Transition Transition
	Symbol     rune
}

func (s ReadStep) IsEpsilon() bool {
	return s.Symbol == 0
}

func (s ReadStep) String() string {
	if s.IsEpsilon() {
		return s.Transition.String()
	}
	return s.Transition.String() + " [" + string(s.Symbol) + "]"
}

// Trace is the ordered list of steps of one path through an automaton.
type Trace []ReadStep

// Consumed Returns the number of symbols read along the trace.
func (t Trace) Consumed() int {
	n := 0
	for _, s := range t {
		if !s.IsEpsilon() {
			n++
		}
	}
	return n
}

// End Returns the state the trace stops in; an empty trace stops in the start state.
func (t Trace) End() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Transition.Dest
}

func (t Trace) String() string {
	parts := make([]string, len(t))
	for i, s := range t {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

type searchNode struct {
	state  int
	pos    int
	parent int
	via    *Transition
	symbol rune
}

// Accepts Reports whether a accepts word. On success the trace is one accepting path; otherwise it
// is the path that consumed the most symbols, the first one found on ties. The search is a depth
// first search over (position, state) pairs, each pair expanded at most once, so epsilon cycles
// terminate. An automaton without a start state rejects every word with an empty trace.
func Accepts(a *Automaton, word string) (bool, Trace) {
	if !a.HasStart() {
		return false, nil
	}

	input := []rune(word)
	for i, r := range input {
		if n, err := NormalizeSymbol(r); err == nil {
			input[i] = n
		}
	}

	// Visited (position, state) pairs; a state is keyed by its rank in States().
	states := a.States()
	rank := make(map[int]uint, len(states))
	for i, s := range states {
		rank[s] = uint(i)
	}
	width := uint(len(states))
	visited := bitset.New(uint(len(input)+1) * width)
	key := func(n searchNode) uint {
		return uint(n.pos)*width + rank[n.state]
	}

	nodes := []searchNode{{state: 0, pos: 0, parent: -1}}
	stack := []int{0}
	best := 0

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := nodes[idx]
		if visited.Test(key(n)) {
			continue
		}
		visited.Set(key(n))

		if n.pos > nodes[best].pos {
			best = idx
		}
		if n.pos == len(input) && a.IsAccept(n.state) {
			return true, trace(nodes, idx)
		}

		out := a.outgoing[n.state]
		for i := len(out) - 1; i >= 0; i-- {
			t := out[i]
			child := searchNode{state: t.Dest, pos: n.pos, parent: idx, via: t}
			if !t.IsEpsilon() {
				if n.pos == len(input) || !t.Has(input[n.pos]) {
					continue
				}
				child.pos++
				child.symbol = input[n.pos]
			}
			if visited.Test(key(child)) {
				continue
			}
			nodes = append(nodes, child)
			stack = append(stack, len(nodes)-1)
		}
	}

	return false, trace(nodes, best)
}

func trace(nodes []searchNode, idx int) Trace {
	var steps Trace
	for ; nodes[idx].parent != -1; idx = nodes[idx].parent {
		n := nodes[idx]
		steps = append(steps, ReadStep{Transition: n.via.snapshot(), Symbol: n.symbol})
	}
	slices.Reverse(steps)
	return steps
}

// Run Returns true if the deterministic automaton a accepts s, stepping one symbol at a time.
func Run(a *Automaton, s string) bool {
	if !a.HasStart() {
		return false
	}
	state := 0
	for _, v := range s {
		if n, err := NormalizeSymbol(v); err == nil {
			v = n
		}
		nextState := a.Step(state, v)
		if nextState == -1 {
			return false
		}
		state = nextState
	}
	return a.IsAccept(state)
}
