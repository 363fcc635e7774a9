package pattern

import "github.com/sarchlab/benzene/boardgeo"

// OppMiaiCatalogue detects a miai connection between two stones of opposite
// colour through a single shared empty escape cell, satisfying the
// ConnectsViaMiai interface ice and decomp each declare independently.
//
// Grounded on original_source/src/hex/Decompositions.cpp's
// ComputeAdjacentByMiai: a hard-coded ring pattern matched centred on every
// stone, whose single auxiliary move resolves to the opposing stone it
// miai-connects to. That function precomputes the adjacency for the whole
// board once; ConnectsViaMiai instead answers one (a, b) query at a time,
// checking only the two cells actually in question rather than every stone.
type OppMiaiCatalogue struct {
	Catalogue Catalogue
}

// DefaultOppMiai returns the single hard-coded miai pattern
// ComputeAdjacentByMiai loads: a marked cell two rings out with a shared
// empty escape one ring out, matched from the perspective of the stone at
// the centre.
func DefaultOppMiai() Catalogue {
	return Catalogue{
		Patterns: []Pattern{
			{
				Name: "oppmiai",
				Kind: Miai,
				Slots: [30]Slot{
					0: SlotEmpty, 1: SlotOpponent,
				},
				Moves: [][2]int{ringOffsets[1]},
			},
		},
	}
}

// ConnectsViaMiai reports whether a and b are linked by a miai: a hit
// centred on one of them whose auxiliary move resolves to the other.
func (c *OppMiaiCatalogue) ConnectsViaMiai(geo *boardgeo.Geometry, pos *boardgeo.Position, a, b boardgeo.Cell) bool {
	return c.hitsOn(geo, pos, a, b) || c.hitsOn(geo, pos, b, a)
}

func (c *OppMiaiCatalogue) hitsOn(geo *boardgeo.Geometry, pos *boardgeo.Position, centre, target boardgeo.Cell) bool {
	friend := pos.ColorAt(centre)
	if friend == boardgeo.Empty || !centre.IsInterior() {
		return false
	}
	for _, hit := range MatchOnCell(&c.Catalogue, geo, pos, centre, friend, MatchAll) {
		for _, m := range hit.Moves {
			if m == target {
				return true
			}
		}
	}
	return false
}
