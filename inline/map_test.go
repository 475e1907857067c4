package inline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMap_InlineUntilCapacity(t *testing.T) {
	var m Map[string, int]

	require.Equal(t, 0, m.Len())
	require.False(t, m.IsHeapAllocated())

	m.Set("a", 1)
	m.Set("b", 2)

	require.Equal(t, 2, m.Len())
	require.False(t, m.IsHeapAllocated())

	got, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, got)
}

func TestMap_SetReplacesInPlace(t *testing.T) {
	var m Map[string, int]

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("a", 3)

	// replacing does not count as an insert, so no promotion
	require.False(t, m.IsHeapAllocated())
	require.Equal(t, 2, m.Len())

	got, _ := m.Get("a")
	require.Equal(t, 3, got)
}

func TestMap_PromotesOnOverflow(t *testing.T) {
	var m Map[string, int]

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	require.True(t, m.IsHeapAllocated())
	require.Equal(t, 3, m.Len())

	for key, expected := range map[string]int{"a": 1, "b": 2, "c": 3} {
		got, ok := m.Get(key)
		require.True(t, ok, "missing key %q after promotion", key)
		require.Equal(t, expected, got)
	}
}

func TestMap_GetMissing(t *testing.T) {
	var m Map[string, int]
	m.Set("a", 1)

	_, ok := m.Get("nope")
	require.False(t, ok)
	require.False(t, m.Contains("nope"))
	require.True(t, m.Contains("a"))
}

func TestMap_DeleteInlineSwapsLast(t *testing.T) {
	var m Map[string, int]
	m.Set("a", 1)
	m.Set("b", 2)

	removed, ok := m.Delete("a")
	require.True(t, ok)
	require.Equal(t, 1, removed)
	require.Equal(t, 1, m.Len())

	// the surviving entry is still reachable
	got, ok := m.Get("b")
	require.True(t, ok)
	require.Equal(t, 2, got)

	_, ok = m.Delete("a")
	require.False(t, ok)
}

func TestMap_DeleteHeap(t *testing.T) {
	var m Map[string, int]
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)
	require.True(t, m.IsHeapAllocated())

	removed, ok := m.Delete("b")
	require.True(t, ok)
	require.Equal(t, 2, removed)
	require.Equal(t, 2, m.Len())
	require.True(t, m.IsHeapAllocated())
}

func TestMap_Range(t *testing.T) {
	var m Map[string, int]
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	seen := make(map[string]int)
	m.Range(func(key string, value int) bool {
		seen[key] = value
		return true
	})

	require.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, seen)
}

func TestMap_RangeEarlyStop(t *testing.T) {
	var m Map[string, int]
	m.Set("a", 1)
	m.Set("b", 2)

	count := 0
	m.Range(func(string, int) bool {
		count++
		return false
	})

	require.Equal(t, 1, count)
}
