package spatial

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// maxScanRadius caps the radius for which Within enumerates cells one by one.
// Larger neighbourhoods walk the occupied buckets instead.
const maxScanRadius = 1 << 10

// Index maps grid cells to the set of cluster handles registered there.
type Index struct {
	grid    Grid
	buckets map[Cell]*roaring.Bitmap
	where   map[uint32]Cell
}

// NewIndex creates an empty index over cells of the given size.
func NewIndex(size float64) *Index {
	return &Index{
		grid:    Grid{Size: size},
		buckets: make(map[Cell]*roaring.Bitmap),
		where:   make(map[uint32]Cell),
	}
}

// Grid returns the quantizer used by the index.
func (ix *Index) Grid() Grid {
	return ix.grid
}

// CellOf returns the cell containing (x, y), or false if the index grid is disabled.
func (ix *Index) CellOf(x, y float64) (Cell, bool) {
	return ix.grid.CellOf(x, y)
}

// Register adds id to the bucket for cell. Registering an id that already
// lives in cell is a no-op; an id registered elsewhere is moved.
func (ix *Index) Register(id uint32, cell Cell) {
	if cur, ok := ix.where[id]; ok {
		if cur == cell {
			return
		}
		ix.remove(id, cur)
	}
	ix.add(id, cell)
}

// Unregister removes id from the bucket for cell.
// It is a no-op if id is not registered in cell.
func (ix *Index) Unregister(id uint32, cell Cell) {
	if cur, ok := ix.where[id]; !ok || cur != cell {
		return
	}
	ix.remove(id, cell)
}

// Move re-keys id from one cell to another in a single step.
// It is a no-op when both cells are equal.
func (ix *Index) Move(id uint32, from, to Cell) {
	if from == to {
		return
	}
	ix.Unregister(id, from)
	ix.Register(id, to)
}

// Lookup returns the cell id is registered in.
func (ix *Index) Lookup(id uint32) (Cell, bool) {
	cell, ok := ix.where[id]
	return cell, ok
}

// Neighbors returns the ids registered in cell and its 8 adjacent cells.
func (ix *Index) Neighbors(cell Cell) *roaring.Bitmap {
	return ix.Within(cell, 1)
}

// Within returns the ids registered in any cell whose Chebyshev distance to
// cell is at most radius. The result is a fresh bitmap owned by the caller.
func (ix *Index) Within(cell Cell, radius int) *roaring.Bitmap {
	if radius < 0 {
		return roaring.New()
	}

	r := int64(radius)
	span := 2*r + 1

	var hits []*roaring.Bitmap
	if radius > maxScanRadius || span*span > int64(len(ix.buckets)) {
		for c, bm := range ix.buckets {
			if c.Chebyshev(cell) <= r {
				hits = append(hits, bm)
			}
		}
	} else {
		for x := max(cell.X-r, -maxCoord); x <= min(cell.X+r, maxCoord); x++ {
			for y := max(cell.Y-r, -maxCoord); y <= min(cell.Y+r, maxCoord); y++ {
				if bm, ok := ix.buckets[Cell{X: x, Y: y}]; ok {
					hits = append(hits, bm)
				}
			}
		}
	}

	switch len(hits) {
	case 0:
		return roaring.New()
	case 1:
		return hits[0].Clone()
	}
	return roaring.FastOr(hits...)
}

// Len returns the number of registered ids.
func (ix *Index) Len() int {
	return len(ix.where)
}

// Cells returns the number of occupied cells.
func (ix *Index) Cells() int {
	return len(ix.buckets)
}

func (ix *Index) add(id uint32, cell Cell) {
	bm, ok := ix.buckets[cell]
	if !ok {
		bm = roaring.New()
		ix.buckets[cell] = bm
	}
	bm.Add(id)
	ix.where[id] = cell
}

func (ix *Index) remove(id uint32, cell Cell) {
	delete(ix.where, id)
	bm, ok := ix.buckets[cell]
	if !ok {
		return
	}
	bm.Remove(id)
	if bm.IsEmpty() {
		delete(ix.buckets, cell)
	}
}
