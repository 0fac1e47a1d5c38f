package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type TestKey struct {
	part1 int
	part2 string
}

func (k TestKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k TestKey) Equals(other Hashable) bool {
	o, ok := other.(TestKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

type AnotherKey int

func (k AnotherKey) Hash() uint64 {
	return uint64(k)
}

func (k AnotherKey) Equals(other Hashable) bool {
	o, ok := other.(AnotherKey)
	return ok && k == o
}

func TestHashMapBasic(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := TestKey{1, "a"}
		hm.Set(key, "value1")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(TestKey{2, "b"})
		assert.False(t, exists)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := TestKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})
}

func TestHashCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(16))

	key1 := TestKey{1, "a"}  // Hash: 1+1=2
	key2 := TestKey{0, "bb"} // Hash: 0+2=2
	key3 := TestKey{2, "a"}  // Hash: 2+1=3

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")
	hm.Set(key3, "value3")

	assert.Equal(t, 3, hm.Size())

	val, exists := hm.Get(key1)
	assert.True(t, exists)
	assert.Equal(t, "value1", val)

	val, exists = hm.Get(key2)
	assert.True(t, exists)
	assert.Equal(t, "value2", val)
}

func TestAutoResize(t *testing.T) {
	initialCap := 16
	hm := NewHashMap[int](WithCapacity(initialCap))

	// 16 * 0.75 = 12
	for i := 0; i < 13; i++ {
		hm.Set(TestKey{i, ""}, i)
	}

	assert.Greater(t, len(hm.buckets), initialCap)

	for i := 0; i < 13; i++ {
		val, exists := hm.Get(TestKey{i, ""})
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
}

func TestTypeSafety(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(8))

	key1 := TestKey{1, "a"} // Hash = 2
	key2 := AnotherKey(2)   // Hash = 2

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")

	val, exists := hm.Get(key1)
	assert.True(t, exists)
	assert.Equal(t, "value1", val)

	val, exists = hm.Get(key2)
	assert.True(t, exists)
	assert.Equal(t, "value2", val)
}

func TestStateSetKeys(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(1))
	for i := 0; i < 32; i++ {
		hm.Set(NewStateSet(i, i+1), i)
	}
	assert.Equal(t, 32, hm.Size())
	for i := 0; i < 32; i++ {
		val, exists := hm.Get(NewStateSet(i+1, i))
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
	_, exists := hm.Get(NewStateSet())
	assert.False(t, exists)
}

func TestEdgeCases(t *testing.T) {
	t.Run("ZeroCapacity", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(0))
		assert.Equal(t, 1, len(hm.buckets))
	})

	t.Run("DuplicateInsert", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := TestKey{1, "a"}
		hm.Set(key, "v1")
		hm.Set(key, "v2")
		assert.Equal(t, 1, hm.Size())
	})
}
