// Package group implements the group builder: flood-filling
// stones of the same colour into maximal groups, with each group's captain,
// members, and colour-classified neighbour set.
//
// Grounded on original_source/src/hex/Groups.{hpp,cpp}; the flood-fill scan
// itself is shaped like core/emu.go's per-tile state scans
// (loop over every board position, dispatch on what is found there).
package group

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
)

// Group is a maximal set of same-colour cells under hex adjacency.
type Group struct {
	color   boardgeo.Color
	captain boardgeo.Cell
	members bitset.Set
	nbs     bitset.Set

	colorsetComputed bool
	colorsetNbs      [8]bitset.Set // indexed by boardgeo.ColorSet
}

// Color returns the group's colour.
func (g *Group) Color() boardgeo.Color { return g.color }

// Captain returns the group's representative cell: its smallest member by
// enum order (edges always win).
func (g *Group) Captain() boardgeo.Cell { return g.captain }

// Members returns the group's member cells.
func (g *Group) Members() bitset.Set { return g.members }

// Size returns the number of cells in the group.
func (g *Group) Size() int { return g.members.Count() }

// IsMember reports whether c belongs to this group.
func (g *Group) IsMember(c boardgeo.Cell) bool { return g.members.Test(int(c)) }

// Nbs returns the full neighbour set: every cell of a different colour (or
// Empty) adjacent to some member of this group.
func (g *Group) Nbs() bitset.Set { return g.nbs }

// NbsColorSet returns the subset of Nbs whose colour belongs to cs,
// caching the per-colourset split the first time any colourset is
// requested, matching Group::Nbs(HexColorSet)'s lazy computation in
// original_source.
func (g *Group) NbsColorSet(groups *Groups, cs boardgeo.ColorSet) bitset.Set {
	if !g.colorsetComputed {
		g.computeColorsetNbs(groups)
	}
	return g.colorsetNbs[cs]
}

func (g *Group) computeColorsetNbs(groups *Groups) {
	var byColor [3]bitset.Set
	g.nbs.ForEach(func(bit int) bool {
		c := boardgeo.Cell(bit)
		col := groups.GetGroup(c).Color()
		byColor[col].Set(bit)
		return true
	})
	for cs := boardgeo.ColorSet(1); cs <= boardgeo.ColorSetAll; cs++ {
		var acc bitset.Set
		for col := boardgeo.Color(0); col <= boardgeo.White; col++ {
			if cs.Contains(col) {
				acc = bitset.Or(acc, byColor[col])
			}
		}
		g.colorsetNbs[cs] = acc
	}
	g.colorsetComputed = true
}
