package group

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
)

// Groups is the full flood-fill decomposition of a position into maximal
// same-colour groups, one per captain cell, indexed for O(1) cell lookup.
type Groups struct {
	pos     *boardgeo.Position
	byCell  [bitset.Capacity]*Group
	ordered []*Group
}

// Build flood-fills pos into its constituent groups. Edges report their
// owner colour via Position.ColorAt regardless of whether a stone sits
// there, so a flood fill that starts at North (always "Black") absorbs
// every Black stone connected to it into North's group, with North as
// captain since it is enum-smaller than any interior cell; an edge with no
// connected friendly stones ends up a singleton group of its own colour.
// Cells are visited in enum order (edges first) so edges always win the
// captaincy race, matching original_source's convention.
func Build(pos *boardgeo.Position) *Groups {
	gs := &Groups{pos: pos}
	geo := pos.Geo

	visited := bitset.Set{}
	for _, c := range geo.AllCells() {
		if visited.Test(int(c)) {
			continue
		}
		col := pos.ColorAt(c)
		members := gs.floodFill(c, col, &visited)
		g := &Group{
			color:   col,
			captain: captainOf(members),
			members: members,
		}
		for _, m := range members.Bits() {
			gs.byCell[m] = g
		}
		gs.ordered = append(gs.ordered, g)
	}

	for _, g := range gs.ordered {
		g.nbs = gs.computeNbs(g)
	}

	return gs
}

func (gs *Groups) floodFill(start boardgeo.Cell, col boardgeo.Color, visited *bitset.Set) bitset.Set {
	members := bitset.Set{}
	stack := []boardgeo.Cell{start}
	visited.Set(int(start))
	members.Set(int(start))

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		gs.pos.Geo.Neighbors(cur).ForEach(func(bit int) bool {
			n := boardgeo.Cell(bit)
			if visited.Test(bit) {
				return true
			}
			if col == boardgeo.Empty || gs.pos.ColorAt(n) != col {
				return true
			}
			visited.Set(bit)
			members.Set(bit)
			stack = append(stack, n)
			return true
		})
	}
	return members
}

// captainOf picks the smallest enum-valued member as the group's captain,
// matching Groups::ComputeGroups's convention in original_source.
func captainOf(members bitset.Set) boardgeo.Cell {
	return boardgeo.Cell(members.FirstSetBit())
}

func (gs *Groups) computeNbs(g *Group) bitset.Set {
	var nbs bitset.Set
	g.members.ForEach(func(bit int) bool {
		cellNbs := gs.pos.Geo.Neighbors(boardgeo.Cell(bit))
		nbs = bitset.Or(nbs, cellNbs)
		return true
	})
	return bitset.Sub(nbs, g.members)
}

// GetGroup returns the group containing c.
func (gs *Groups) GetGroup(c boardgeo.Cell) *Group {
	return gs.byCell[c]
}

// Captain returns the captain of the group containing c, the canonical
// representative used as a carrier endpoint.
func (gs *Groups) Captain(c boardgeo.Cell) boardgeo.Cell {
	return gs.GetGroup(c).Captain()
}

// AreConnected reports whether a and b belong to the same group.
func (gs *Groups) AreConnected(a, b boardgeo.Cell) bool {
	return gs.GetGroup(a) == gs.GetGroup(b)
}

// All returns every group, in build order (edges first).
func (gs *Groups) All() []*Group {
	return gs.ordered
}

// Of returns every group of the given colour.
func (gs *Groups) Of(col boardgeo.Color) []*Group {
	var out []*Group
	for _, g := range gs.ordered {
		if g.color == col {
			out = append(out, g)
		}
	}
	return out
}
