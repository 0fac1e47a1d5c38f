package automaton

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccepts(t *testing.T) {
	t.Run("empty word through epsilon", func(t *testing.T) {
		a := build(t, 2, []int{1}, tr{0, 1, ""})
		ok, trace := Accepts(a, "")
		assert.True(t, ok)
		require.Len(t, trace, 1)
		assert.True(t, trace[0].IsEpsilon())
		assert.Equal(t, 0, trace[0].Transition.Source)
		assert.Equal(t, 1, trace[0].Transition.Dest)
		assert.Equal(t, 0, trace.Consumed())
	})

	t.Run("accepted word", func(t *testing.T) {
		a := build(t, 3, []int{2}, tr{0, 1, "a"}, tr{1, 2, "b"})
		ok, trace := Accepts(a, "ab")
		assert.True(t, ok)
		require.Len(t, trace, 2)
		assert.Equal(t, 'a', trace[0].Symbol)
		assert.Equal(t, 'b', trace[1].Symbol)
		assert.Equal(t, 2, trace.End())
		assert.Equal(t, "0 -a-> 1 [a], 1 -b-> 2 [b]", trace.String())
	})

	t.Run("rejected prefix stops in the middle", func(t *testing.T) {
		a := build(t, 3, []int{2}, tr{0, 1, "a"}, tr{1, 2, "b"})
		ok, trace := Accepts(a, "a")
		assert.False(t, ok)
		require.Len(t, trace, 1)
		assert.Equal(t, 1, trace.End())
	})

	t.Run("longest attempt reported", func(t *testing.T) {
		a := build(t, 5, []int{4}, tr{0, 3, "a"}, tr{0, 1, "a"}, tr{1, 2, "b"})
		ok, trace := Accepts(a, "abc")
		assert.False(t, ok)
		assert.Equal(t, 2, trace.Consumed())
		assert.Equal(t, 2, trace.End())
	})

	t.Run("first longest attempt wins ties", func(t *testing.T) {
		a := build(t, 3, nil, tr{0, 2, "a"}, tr{0, 1, "a"})
		ok, trace := Accepts(a, "ab")
		assert.False(t, ok)
		require.Len(t, trace, 1)
		assert.Equal(t, 2, trace.End())
	})

	t.Run("nondeterministic choice backtracks", func(t *testing.T) {
		a := build(t, 4, []int{3}, tr{0, 1, "a"}, tr{0, 2, "a"}, tr{2, 3, "b"})
		ok, trace := Accepts(a, "ab")
		assert.True(t, ok)
		assert.Equal(t, 3, trace.End())
		assert.Equal(t, 2, trace[0].Transition.Dest)
	})

	t.Run("epsilon cycle terminates", func(t *testing.T) {
		a := build(t, 3, []int{2}, tr{0, 1, ""}, tr{1, 0, ""}, tr{1, 2, "a"}, tr{2, 2, ""})
		ok, _ := Accepts(a, "a")
		assert.True(t, ok)
		ok, trace := Accepts(a, "b")
		assert.False(t, ok)
		assert.Empty(t, trace)
		ok, _ = Accepts(a, "aa")
		assert.False(t, ok)
	})

	t.Run("epsilon and symbols between the same pair", func(t *testing.T) {
		a := build(t, 2, []int{1}, tr{0, 1, "a"}, tr{0, 1, ""})
		ok, trace := Accepts(a, "")
		assert.True(t, ok)
		assert.True(t, trace[0].IsEpsilon())
		ok, trace = Accepts(a, "a")
		assert.True(t, ok)
		assert.Equal(t, 1, trace.Consumed())
	})

	t.Run("epsilon steps interleaved", func(t *testing.T) {
		a := build(t, 4, []int{3}, tr{0, 1, ""}, tr{1, 2, "a"}, tr{2, 3, ""})
		ok, trace := Accepts(a, "a")
		assert.True(t, ok)
		require.Len(t, trace, 3)
		assert.True(t, trace[0].IsEpsilon())
		assert.False(t, trace[1].IsEpsilon())
		assert.True(t, trace[2].IsEpsilon())
	})

	t.Run("upper case word folded", func(t *testing.T) {
		a := build(t, 2, []int{1}, tr{0, 1, "x"})
		ok, _ := Accepts(a, "X")
		assert.True(t, ok)
		ok, _ = Accepts(a, "#")
		assert.False(t, ok)
	})

	t.Run("trace unaffected by later edits", func(t *testing.T) {
		a := build(t, 2, []int{1}, tr{0, 1, "a"})
		ok, trace := Accepts(a, "a")
		require.True(t, ok)
		before := trace.String()

		require.NoError(t, a.AddTransition(0, 1, 'z'))
		require.NoError(t, a.RemoveState(1))

		assert.Equal(t, before, trace.String())
		assert.Equal(t, "0 -a-> 1 [a]", trace.String())
	})

	t.Run("sparse state indices", func(t *testing.T) {
		a := build(t, 1, nil)
		require.NoError(t, a.AddState(1<<20))
		require.NoError(t, a.SetAccept(1<<20, true))
		require.NoError(t, a.AddTransition(0, 1<<20, 'a'))
		require.NoError(t, a.AddTransition(1<<20, 1<<20, 'a'))
		require.NoError(t, a.AddEpsilon(1<<20, 0))

		word := strings.Repeat("a", 4096)
		ok, trace := Accepts(a, word)
		assert.True(t, ok)
		assert.Equal(t, 4096, trace.Consumed())
		assert.Equal(t, 1<<20, trace.End())

		ok, trace = Accepts(a, word+"b")
		assert.False(t, ok)
		assert.Equal(t, 4096, trace.Consumed())
	})

	t.Run("no start state", func(t *testing.T) {
		a := NewAutomaton()
		require.NoError(t, a.AddState(1))
		require.NoError(t, a.SetAccept(1, true))
		ok, trace := Accepts(a, "")
		assert.False(t, ok)
		assert.Empty(t, trace)
	})

	t.Run("empty word needs accepting start", func(t *testing.T) {
		ok, trace := Accepts(build(t, 1, nil), "")
		assert.False(t, ok)
		assert.Empty(t, trace)
		ok, _ = Accepts(build(t, 1, []int{0}), "")
		assert.True(t, ok)
	})
}

func TestRun(t *testing.T) {
	a := build(t, 3, []int{2}, tr{0, 1, "a"}, tr{1, 2, "b"}, tr{2, 2, "b"})
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty", "", false},
		{"prefix", "a", false},
		{"exact", "ab", true},
		{"loop", "abbb", true},
		{"upper case", "AB", true},
		{"unknown symbol", "ac", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, Run(a, tt.s), "Run(%v)", tt.s)
		})
	}

	assert.False(t, Run(NewAutomaton(), ""))
}
