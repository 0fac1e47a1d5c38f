package automaton

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

var _ Hashable = &StateSet{}

// StateSet is an immutable set of state indices, used as the identity of a
// subset-construction row. Two sets are equal iff they hold the same indices.
type StateSet struct {
	bits     *bitset.BitSet
	hashCode uint64
}

func NewStateSet(states ...int) *StateSet {
	bits := bitset.New(uint(len(states)))
	for _, s := range states {
		bits.Set(uint(s))
	}
	return freeze(bits)
}

func freeze(bits *bitset.BitSet) *StateSet {
	s := &StateSet{bits: bits}
	s.hashCode = uint64(bits.Count())
	for i, ok := bits.NextSet(0); ok; i, ok = bits.NextSet(i + 1) {
		s.hashCode += uint64(uint32(mix32(int(i))))
	}
	return s
}

func (s *StateSet) Hash() uint64 {
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	o, ok := other.(*StateSet)
	if !ok || s == nil || o == nil {
		return ok && s == o
	}
	return s.hashCode == o.hashCode && s.bits.SymmetricDifferenceCardinality(o.bits) == 0
}

// GetArray Returns the indices in ascending order.
func (s *StateSet) GetArray() []int {
	values := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		values = append(values, int(i))
	}
	return values
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) Contains(state int) bool {
	return state >= 0 && s.bits.Test(uint(state))
}

func (s *StateSet) String() string {
	values := s.GetArray()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ",") + "}"
}
