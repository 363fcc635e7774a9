package boardgeo

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/hexerr"
)

// Position is a playable board state: disjoint black/white stone sets plus
// whose turn it is.
//
//	Invariant: played = black ∪ white; black ∩ white = ∅.
type Position struct {
	Geo *Geometry

	black  bitset.Set
	white  bitset.Set
	played bitset.Set
	toPlay Color
}

// NewPosition creates an empty position on geo, Black to play (Black moves
// first in Hex).
func NewPosition(geo *Geometry) *Position {
	return &Position{Geo: geo, toPlay: Black}
}

// Black returns the set of black stones.
func (p *Position) Black() bitset.Set { return p.black }

// White returns the set of white stones.
func (p *Position) White() bitset.Set { return p.white }

// Played returns black ∪ white.
func (p *Position) Played() bitset.Set { return p.played }

// ToPlay returns whose turn it is.
func (p *Position) ToPlay() Color { return p.toPlay }

// IsOccupied reports whether c already has a stone.
func (p *Position) IsOccupied(c Cell) bool { return p.played.Test(int(c)) }

// ColorAt returns the colour at c (Empty if unplayed). Edge atoms always
// report their owner's colour, matching Groups treating edges as
// permanently-coloured captains.
func (p *Position) ColorAt(c Cell) Color {
	if c.IsEdge() {
		return c.OwnerColor()
	}
	if p.black.Test(int(c)) {
		return Black
	}
	if p.white.Test(int(c)) {
		return White
	}
	return Empty
}

// Play places a stone of colour on cell.
// Returns BadInput if cell is already occupied, out of range, or colour is
// Empty.
func (p *Position) Play(colour Color, c Cell) error {
	if colour != Black && colour != White {
		return hexerr.BadInputf("boardgeo: Play requires Black or White, got %v", colour)
	}
	if !c.IsInterior() {
		return hexerr.BadInputf("boardgeo: Play requires an interior cell, got %v", c)
	}
	col, row := c.ColRow()
	if col >= p.Geo.Width || row >= p.Geo.Height {
		return hexerr.BadInputf("boardgeo: cell %v out of bounds for %dx%d board", c, p.Geo.Width, p.Geo.Height)
	}
	if p.IsOccupied(c) {
		return hexerr.BadInputf("boardgeo: cell %v already occupied", c)
	}

	switch colour {
	case Black:
		p.black.Set(int(c))
	case White:
		p.white.Set(int(c))
	}
	p.played.Set(int(c))
	p.toPlay = colour.Opponent()
	return nil
}

// Undo removes the stone at cell.
// Returns BadInput if the cell is unoccupied.
func (p *Position) Undo(c Cell) error {
	if !p.IsOccupied(c) {
		return hexerr.BadInputf("boardgeo: Undo called on unoccupied cell %v", c)
	}
	colour := p.ColorAt(c)
	p.black.Reset(int(c))
	p.white.Reset(int(c))
	p.played.Reset(int(c))
	p.toPlay = colour
	return nil
}

// SetPosition bulk-replaces the position's stones. Returns BadInput if
// black and white overlap, or either set contains an out-of-range cell.
func (p *Position) SetPosition(black, white bitset.Set, toPlay Color) error {
	if black.Intersects(white) {
		return hexerr.BadInputf("boardgeo: black and white stone sets overlap")
	}
	valid := bitset.Of()
	for _, c := range p.Geo.InteriorCells() {
		valid.Set(int(c))
	}
	if !black.IsSubsetOf(valid) || !white.IsSubsetOf(valid) {
		return hexerr.BadInputf("boardgeo: stone set contains a cell outside the %dx%d board", p.Geo.Width, p.Geo.Height)
	}
	if toPlay != Black && toPlay != White {
		return hexerr.BadInputf("boardgeo: toPlay must be Black or White")
	}

	p.black = black
	p.white = white
	p.played = bitset.Or(black, white)
	p.toPlay = toPlay
	return nil
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	return &Position{
		Geo:    p.Geo,
		black:  p.black,
		white:  p.white,
		played: p.played,
		toPlay: p.toPlay,
	}
}
