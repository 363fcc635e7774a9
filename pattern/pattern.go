// Package pattern implements two catalogue-driven matchers: a generic
// ring pattern matcher (used for the opp-miai and
// captured-set catalogues) and the VC pattern file consumed by the builder's
// "Pattern VCs" step.
//
// Grounded on original_source/src/hex/VCPattern.hpp (endpoint + must-have/
// not-opponent bit-set shape) and src/jingyang/JYPattern.hpp (record-based
// catalogue loading); the generic ring catalogue's loader follows the same
// line-oriented, type-tagged record style as core/program.go's YAML
// instruction-group parser, adapted to a flat text grammar used for
// pattern files instead of YAML.
package pattern

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
)

// Kind distinguishes the two record types a ring pattern file may contain.
type Kind int

const (
	// Variation is a single fixed colour assignment over the ring.
	Variation Kind = iota
	// Miai is a pattern that matches when either of two symmetric colour
	// assignments holds (used for opp-miai detection).
	Miai
)

// Slot is the required content of one ring offset, relative to the colour
// the pattern is matched for.
type Slot int8

const (
	// SlotAny matches any content, including off-board.
	SlotAny Slot = iota
	// SlotEmpty requires the offset to be empty and on-board.
	SlotEmpty
	// SlotFriend requires a stone of the matching colour.
	SlotFriend
	// SlotOpponent requires a stone of the opposing colour.
	SlotOpponent
)

func slotFromInt(v int) Slot {
	switch v {
	case -1:
		return SlotAny
	case 0:
		return SlotEmpty
	case 1:
		return SlotFriend
	case 2:
		return SlotOpponent
	default:
		return SlotAny
	}
}

// Pattern is one ring record: a required slot per ring offset, 0-2
// auxiliary "move" offsets relative to the centre, and an optional name and
// weight.
type Pattern struct {
	Name   string
	Kind   Kind
	Slots  [30]Slot
	Moves  [][2]int // auxiliary move offsets, 0-2 entries
	Weight int
}

// Catalogue is an ordered, loaded set of Patterns. Iteration and matching
// both follow the load order, giving deterministic results.
type Catalogue struct {
	Patterns []Pattern
}

// MatchMode controls how many hits MatchOnCell collects.
type MatchMode int

const (
	// MatchAll collects every matching pattern.
	MatchAll MatchMode = iota
	// StopAtFirst stops after the first match.
	StopAtFirst
)

// Hit records a single pattern match: the pattern itself and its resolved
// auxiliary move cells, translated from the pattern's relative offsets to
// absolute cells by CellAt. Moves that fall off the board are omitted.
type Hit struct {
	Pattern *Pattern
	Moves   []boardgeo.Cell
}

// position is the minimal read-only view MatchOnCell needs; boardgeo.Position
// satisfies it directly.
type position interface {
	ColorAt(c boardgeo.Cell) boardgeo.Color
}

// MatchOnCell reports every pattern in cat that matches centred on cell,
// from the perspective of friend (the colour whose patterns are being
// matched). geo resolves ring offsets to board cells; a SlotAny offset may
// land off the board, but any other slot whose offset lands off the board
// makes the pattern fail to match.
func MatchOnCell(cat *Catalogue, geo *boardgeo.Geometry, pos position, cell boardgeo.Cell, friend boardgeo.Color, mode MatchMode) []Hit {
	if !cell.IsInterior() {
		return nil
	}
	col, row := cell.ColRow()

	var hits []Hit
	for i := range cat.Patterns {
		p := &cat.Patterns[i]
		if !matches(p, geo, pos, col, row, friend) {
			continue
		}
		hits = append(hits, Hit{Pattern: p, Moves: resolveMoves(p, geo, col, row)})
		if mode == StopAtFirst {
			break
		}
	}
	return hits
}

func matches(p *Pattern, geo *boardgeo.Geometry, pos position, col, row int, friend boardgeo.Color) bool {
	switch p.Kind {
	case Miai:
		return matchesSlots(p, geo, pos, col, row, friend) ||
			matchesSlots(p, geo, pos, col, row, friend.Opponent())
	default:
		return matchesSlots(p, geo, pos, col, row, friend)
	}
}

func matchesSlots(p *Pattern, geo *boardgeo.Geometry, pos position, col, row int, friend boardgeo.Color) bool {
	for i, off := range ringOffsets {
		slot := p.Slots[i]
		if slot == SlotAny {
			continue
		}
		c, onBoard := offsetCell(geo, col, row, off)
		if !onBoard {
			return false
		}
		colAt := pos.ColorAt(c)
		switch slot {
		case SlotEmpty:
			if colAt != boardgeo.Empty {
				return false
			}
		case SlotFriend:
			if colAt != friend {
				return false
			}
		case SlotOpponent:
			if colAt != friend.Opponent() {
				return false
			}
		}
	}
	return true
}

func resolveMoves(p *Pattern, geo *boardgeo.Geometry, col, row int) []boardgeo.Cell {
	var out []boardgeo.Cell
	for _, off := range p.Moves {
		c, onBoard := offsetCell(geo, col, row, off)
		if onBoard {
			out = append(out, c)
		}
	}
	return out
}

func offsetCell(geo *boardgeo.Geometry, col, row int, off [2]int) (boardgeo.Cell, bool) {
	nc, nr := col+off[0], row+off[1]
	if nc < 0 || nr < 0 || nc >= geo.Width || nr >= geo.Height {
		return 0, false
	}
	return boardgeo.CellAt(nc, nr), true
}

// CapturedSets builds the per-empty-cell captured-set map: for every empty
// cell c, the first captured-set pattern to hit at c (in catalogue order)
// contributes its auxiliary moves to captured[c].
func CapturedSets(cat *Catalogue, geo *boardgeo.Geometry, pos position, friend boardgeo.Color) map[boardgeo.Cell]bitset.Set {
	out := make(map[boardgeo.Cell]bitset.Set)
	for _, c := range geo.InteriorCells() {
		if pos.ColorAt(c) != boardgeo.Empty {
			continue
		}
		hits := MatchOnCell(cat, geo, pos, c, friend, StopAtFirst)
		if len(hits) == 0 {
			continue
		}
		var set bitset.Set
		for _, m := range hits[0].Moves {
			set.Set(int(m))
		}
		out[c] = set
	}
	return out
}
