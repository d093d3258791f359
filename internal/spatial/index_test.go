package spatial

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexRegister(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		ix := NewIndex(1)
		ix.Register(7, Cell{0, 0})
		ix.Register(7, Cell{0, 0})

		assert.Equal(t, 1, ix.Len())
		assert.Equal(t, 1, ix.Cells())
		assert.Equal(t, []uint32{7}, ix.Neighbors(Cell{0, 0}).ToArray())
	})

	t.Run("MovesExisting", func(t *testing.T) {
		ix := NewIndex(1)
		ix.Register(7, Cell{0, 0})
		ix.Register(7, Cell{5, 5})

		cell, ok := ix.Lookup(7)
		require.True(t, ok)
		assert.Equal(t, Cell{5, 5}, cell)
		assert.Equal(t, 1, ix.Cells())
		assert.True(t, ix.Neighbors(Cell{0, 0}).IsEmpty())
	})
}

func TestIndexUnregister(t *testing.T) {
	ix := NewIndex(1)
	ix.Register(1, Cell{0, 0})
	ix.Register(2, Cell{0, 0})

	// Wrong cell and unknown id are no-ops.
	ix.Unregister(1, Cell{3, 3})
	ix.Unregister(9, Cell{0, 0})
	assert.Equal(t, 2, ix.Len())

	ix.Unregister(1, Cell{0, 0})
	assert.Equal(t, []uint32{2}, ix.Neighbors(Cell{0, 0}).ToArray())

	ix.Unregister(2, Cell{0, 0})
	assert.Equal(t, 0, ix.Len())
	assert.Equal(t, 0, ix.Cells(), "empty buckets are dropped")
}

func TestIndexMove(t *testing.T) {
	ix := NewIndex(1)
	ix.Register(3, Cell{0, 0})

	ix.Move(3, Cell{0, 0}, Cell{0, 0})
	cell, _ := ix.Lookup(3)
	assert.Equal(t, Cell{0, 0}, cell)

	ix.Move(3, Cell{0, 0}, Cell{-1, 4})
	cell, _ = ix.Lookup(3)
	assert.Equal(t, Cell{-1, 4}, cell)
	assert.Equal(t, 1, ix.Len())
	assert.Equal(t, 1, ix.Cells())
}

func TestIndexNeighbors(t *testing.T) {
	ix := NewIndex(1)
	ix.Register(0, Cell{0, 0})
	ix.Register(1, Cell{1, 1})
	ix.Register(2, Cell{-1, 0})
	ix.Register(3, Cell{2, 0})
	ix.Register(4, Cell{0, -2})
	ix.Register(5, Cell{1, 1})

	got := ix.Neighbors(Cell{0, 0}).ToArray()
	assert.Equal(t, []uint32{0, 1, 2, 5}, got)

	got = ix.Within(Cell{0, 0}, 0).ToArray()
	assert.Equal(t, []uint32{0}, got)

	got = ix.Within(Cell{0, 0}, 2).ToArray()
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, got)

	assert.True(t, ix.Within(Cell{0, 0}, -1).IsEmpty())
}

func TestIndexWithinResultIsDetached(t *testing.T) {
	ix := NewIndex(1)
	ix.Register(1, Cell{0, 0})

	bm := ix.Within(Cell{0, 0}, 0)
	bm.Add(99)

	assert.Equal(t, []uint32{1}, ix.Within(Cell{0, 0}, 0).ToArray())
}

func TestIndexWithinStrategiesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(4711))
	ix := NewIndex(1)
	for id := uint32(0); id < 200; id++ {
		ix.Register(id, Cell{X: int64(rng.Intn(40) - 20), Y: int64(rng.Intn(40) - 20)})
	}

	brute := func(center Cell, r int64) []uint32 {
		var out []uint32
		for id := uint32(0); id < 200; id++ {
			cell, _ := ix.Lookup(id)
			if cell.Chebyshev(center) <= r {
				out = append(out, id)
			}
		}
		return out
	}

	// Small radii enumerate cells, large radii walk buckets.
	for _, r := range []int{0, 1, 2, 5, 30, maxScanRadius + 1} {
		center := Cell{X: int64(rng.Intn(10)), Y: int64(rng.Intn(10))}
		got := ix.Within(center, r).ToArray()
		want := brute(center, int64(r))
		if len(want) == 0 {
			assert.Empty(t, got)
			continue
		}
		assert.Equal(t, want, got, "radius %d", r)
	}
}
