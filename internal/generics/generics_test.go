package generics

import (
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceMap(t *testing.T) {
	got := SliceMap([]int{3, 1, 2}, strconv.Itoa)
	assert.Equal(t, []string{"3", "1", "2"}, got)
	assert.Empty(t, SliceMap([]int(nil), strconv.Itoa))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"max_depth": 1, "ab": 2, "w_tempi": 3}
	// Since the builtin map iterator in Go is deliberately non-deterministic, we
	// run it a bunch of times to show it is stably sorted.
	want := []string{"ab", "max_depth", "w_tempi"}
	for range 100 {
		got := slices.Collect(SortedKeys(m))
		if !slices.Equal(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSet(t *testing.T) {
	// Sets are created empty.
	s := MakeSet[int](10)
	assert.Len(t, s, 0)

	// Check inserting and recovery.
	s.Insert(3, 7)
	assert.Len(t, s, 2)
	assert.True(t, s.Has(3))
	assert.True(t, s.Has(7))
	assert.False(t, s.Has(5))

	s2 := SetWith(7, 3)
	assert.True(t, s.Equal(s2))
	s2.Insert(5)
	assert.False(t, s.Equal(s2))
	delete(s2, 7)
	assert.False(t, s.Equal(s2))
}
