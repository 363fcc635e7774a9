package boardgeo

import (
	"fmt"

	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/hexerr"
)

// Geometry is the fixed adjacency structure of a W x H hex board: for every
// cell (edges and interior) it pre-computes the neighbour set.
//
// The six interior-cell neighbour directions generalise
// config/config.go's DeviceBuilder.connectTiles, which wires each CGRA tile
// to its East, West, North, South, North-East and South-West neighbours
// (four cardinal directions plus one diagonal pair) -- exactly hex
// adjacency once the unused North-West/South-East diagonal pair is
// dropped.
type Geometry struct {
	Width, Height int

	neighbors [bitset.Capacity]bitset.Set
}

// direction offsets for the six hex neighbours, each followed by its mirror:
// East, West, North, South, North-East, South-West.
var hexOffsets = [6][2]int{
	{1, 0},  // East
	{-1, 0}, // West
	{0, -1}, // North
	{0, 1},  // South
	{1, -1}, // North-East
	{-1, 1}, // South-West
}

// NewGeometry builds the adjacency structure for a width x height board.
// Returns a hexerr ResourceLimit error if the board exceeds MaxDim in
// either dimension, or a bitset capacity.
func NewGeometry(width, height int) (*Geometry, error) {
	if width <= 0 || height <= 0 {
		return nil, hexerr.BadInputf("boardgeo: width and height must be positive, got %dx%d", width, height)
	}
	if width > MaxDim || height > MaxDim {
		return nil, hexerr.ResourceLimitf("boardgeo: board %dx%d exceeds maximum supported dimension %d", width, height, MaxDim)
	}
	if int(CellAt(width-1, height-1)) >= bitset.Capacity {
		return nil, hexerr.ResourceLimitf("boardgeo: board %dx%d exceeds bitset capacity %d", width, height, bitset.Capacity)
	}

	g := &Geometry{Width: width, Height: height}
	g.buildInteriorAdjacency()
	g.buildEdgeAdjacency()
	return g, nil
}

func (g *Geometry) buildInteriorAdjacency() {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := CellAt(col, row)
			var nbs bitset.Set
			for _, off := range hexOffsets {
				nc, nr := col+off[0], row+off[1]
				if nc >= 0 && nc < g.Width && nr >= 0 && nr < g.Height {
					nbs.Set(int(CellAt(nc, nr)))
				}
			}
			if row == 0 {
				nbs.Set(int(North))
			}
			if row == g.Height-1 {
				nbs.Set(int(South))
			}
			if col == 0 {
				nbs.Set(int(West))
			}
			if col == g.Width-1 {
				nbs.Set(int(East))
			}
			g.neighbors[c] = nbs
		}
	}
}

func (g *Geometry) buildEdgeAdjacency() {
	var n, e, s, w bitset.Set
	for col := 0; col < g.Width; col++ {
		n.Set(int(CellAt(col, 0)))
		s.Set(int(CellAt(col, g.Height-1)))
	}
	for row := 0; row < g.Height; row++ {
		w.Set(int(CellAt(0, row)))
		e.Set(int(CellAt(g.Width-1, row)))
	}

	// Edges touch at corners: North is adjacent to East and West, etc.
	n.Set(int(East))
	n.Set(int(West))
	s.Set(int(East))
	s.Set(int(West))
	e.Set(int(North))
	e.Set(int(South))
	w.Set(int(North))
	w.Set(int(South))

	g.neighbors[North] = n
	g.neighbors[South] = s
	g.neighbors[East] = e
	g.neighbors[West] = w
}

// Neighbors returns the precomputed neighbour bitset for c. Panics if c is
// out of range for this geometry (a programmer error -- callers must
// validate cells against the board before querying).
func (g *Geometry) Neighbors(c Cell) bitset.Set {
	if c.IsInterior() {
		col, row := c.ColRow()
		if col >= g.Width || row >= g.Height {
			panic(fmt.Sprintf("boardgeo: cell %v out of bounds for %dx%d geometry", c, g.Width, g.Height))
		}
	}
	return g.neighbors[c]
}

// AllCells returns every edge and interior cell of the board, in ascending
// enum order (edges first, then interior cells).
func (g *Geometry) AllCells() []Cell {
	out := make([]Cell, 0, 4+g.Width*g.Height)
	out = append(out, North, East, South, West)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			out = append(out, CellAt(col, row))
		}
	}
	return out
}

// InteriorCells returns every interior cell, in ascending enum order.
func (g *Geometry) InteriorCells() []Cell {
	out := make([]Cell, 0, g.Width*g.Height)
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			out = append(out, CellAt(col, row))
		}
	}
	return out
}

// Rotate180 returns the 180-degree-rotated cell: (col,row) ->
// (W-1-col, H-1-row), North<->South, East<->West. Interior cells and edges
// both round-trip, used for transposition handling.
func (g *Geometry) Rotate180(c Cell) Cell {
	switch c {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	if !c.IsInterior() {
		return c
	}
	col, row := c.ColRow()
	return CellAt(g.Width-1-col, g.Height-1-row)
}

// Rotate180Set rotates every cell in s.
func (g *Geometry) Rotate180Set(s bitset.Set) bitset.Set {
	var out bitset.Set
	s.ForEach(func(bit int) bool {
		out.Set(int(g.Rotate180(Cell(bit))))
		return true
	})
	return out
}

// MirrorDiagonal reflects a cell across the main diagonal: (col,row) ->
// (row,col), swapping the roles of North/South with East/West. Only
// meaningful on a square board (Width == Height); it is the other half of
// the transposition-handling toolkit.
func (g *Geometry) MirrorDiagonal(c Cell) Cell {
	switch c {
	case North:
		return West
	case West:
		return North
	case South:
		return East
	case East:
		return South
	}
	if !c.IsInterior() {
		return c
	}
	col, row := c.ColRow()
	return CellAt(row, col)
}

// MirrorDiagonalSet mirrors every cell in s.
func (g *Geometry) MirrorDiagonalSet(s bitset.Set) bitset.Set {
	var out bitset.Set
	s.ForEach(func(bit int) bool {
		out.Set(int(g.MirrorDiagonal(Cell(bit))))
		return true
	})
	return out
}
