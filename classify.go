package automaton

// Kind is the class of an automaton.
type Kind int

const (
	EpsilonNFA = Kind(iota) // Has at least one epsilon transition
	NFA                     // Epsilon free but not deterministic
	DFA                     // Deterministic
)

func (k Kind) String() string {
	switch k {
	case EpsilonNFA:
		return "ε-NFA"
	case NFA:
		return "NFA"
	case DFA:
		return "DFA"
	}
	return "unknown"
}

// Classification tells a caller which transformations an automaton still needs.
type Classification struct {
	HasEpsilon bool
	IsDFA      bool
}

func (c Classification) Kind() Kind {
	switch {
	case c.HasEpsilon:
		return EpsilonNFA
	case c.IsDFA:
		return DFA
	}
	return NFA
}

// Classify Classifies the automaton. It never fails.
func Classify(a *Automaton) Classification {
	epsilonFree := IsEpsilonFree(a)
	return Classification{
		HasEpsilon: !epsilonFree,
		IsDFA:      epsilonFree && isDeterministic(a),
	}
}

// IsEpsilonFree Returns true if no transition is an epsilon transition.
func IsEpsilonFree(a *Automaton) bool {
	for _, t := range a.transitions {
		if t.IsEpsilon() {
			return false
		}
	}
	return true
}

// IsDeterministic Returns true if the automaton is epsilon free and no state has more than one
// transition carrying the same symbol. A state without a transition for some symbol does not
// make the automaton nondeterministic; use IsComplete for that.
func IsDeterministic(a *Automaton) bool {
	return IsEpsilonFree(a) && isDeterministic(a)
}

func isDeterministic(a *Automaton) bool {
	alphabet := a.Alphabet()
	for _, s := range a.States() {
		for _, c := range alphabet {
			if countCarrying(a, s, c) > 1 {
				return false
			}
		}
	}
	return true
}

// IsComplete Returns true if every state has exactly one transition for every symbol of the
// alphabet.
func IsComplete(a *Automaton) bool {
	if !IsEpsilonFree(a) {
		return false
	}
	alphabet := a.Alphabet()
	for _, s := range a.States() {
		for _, c := range alphabet {
			if countCarrying(a, s, c) != 1 {
				return false
			}
		}
	}
	return true
}

func countCarrying(a *Automaton, state int, c rune) int {
	count := 0
	for _, t := range a.outgoing[state] {
		if t.Has(c) {
			count++
		}
	}
	return count
}
