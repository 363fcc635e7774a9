package pattern

import (
	"bufio"
	"io"
	"strings"

	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/hexerr"
)

// VCPattern is a precomputed pattern specifying a virtual connection,
// modeled on original_source's VCPattern.hpp: endpoints plus the cells that
// must be occupied by the matching colour (MustHave) and the cells that
// must not be the opponent's (NotOpponent).
type VCPattern struct {
	End1, End2  boardgeo.Cell
	MustHave    bitset.Set
	NotOpponent bitset.Set
}

// Matches reports whether this pattern fires on pos for colour: MustHave
// cells must all be occupied by colour, and NotOpponent cells must all be
// either empty or occupied by colour.
func (p VCPattern) Matches(pos position, friend boardgeo.Color) bool {
	ok := true
	p.MustHave.ForEach(func(bit int) bool {
		if pos.ColorAt(boardgeo.Cell(bit)) != friend {
			ok = false
			return false
		}
		return true
	})
	if !ok {
		return false
	}
	p.NotOpponent.ForEach(func(bit int) bool {
		if pos.ColorAt(boardgeo.Cell(bit)) == friend.Opponent() {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// Carrier returns the carrier this pattern contributes when it matches: its
// NotOpponent cells, minus any friendly stones and minus the two endpoints.
func (p VCPattern) Carrier(pos position, friend boardgeo.Color) bitset.Set {
	c := p.NotOpponent
	var strip bitset.Set
	c.ForEach(func(bit int) bool {
		cell := boardgeo.Cell(bit)
		if pos.ColorAt(cell) == friend {
			strip.Set(bit)
		}
		return true
	})
	strip.Set(int(p.End1))
	strip.Set(int(p.End2))
	return bitset.Sub(c, strip)
}

// VCPatternSet is the VC pattern catalogue for one (width, height, colour)
// triple.
type VCPatternSet struct {
	Patterns []VCPattern
}

// LoadVCPatterns parses a VC pattern file: one record per line, each giving
// the two endpoint cell names followed by the must-have and not-opponent
// cell lists (comma-separated cell names, `-` for an empty list), all
// resolved against geo.
func LoadVCPatterns(r io.Reader, geo *boardgeo.Geometry) (*VCPatternSet, error) {
	set := &VCPatternSet{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 4 {
			return nil, hexerr.FileFormatf(
				"vcpattern: line %d: expected end1 end2 must-have not-opponent, got %d fields",
				lineNo, len(fields))
		}
		end1, err := boardgeo.ParseCell(fields[0], geo)
		if err != nil {
			return nil, hexerr.FileFormatf("vcpattern: line %d: %v", lineNo, err)
		}
		end2, err := boardgeo.ParseCell(fields[1], geo)
		if err != nil {
			return nil, hexerr.FileFormatf("vcpattern: line %d: %v", lineNo, err)
		}
		mustHave, err := parseCellList(fields[2], geo, lineNo)
		if err != nil {
			return nil, err
		}
		notOppt, err := parseCellList(fields[3], geo, lineNo)
		if err != nil {
			return nil, err
		}
		set.Patterns = append(set.Patterns, VCPattern{
			End1: end1, End2: end2, MustHave: mustHave, NotOpponent: notOppt,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func parseCellList(field string, geo *boardgeo.Geometry, lineNo int) (bitset.Set, error) {
	var set bitset.Set
	if field == "-" {
		return set, nil
	}
	for _, name := range strings.Split(field, ",") {
		c, err := boardgeo.ParseCell(name, geo)
		if err != nil {
			return bitset.Set{}, hexerr.FileFormatf("vcpattern: line %d: %v", lineNo, err)
		}
		set.Set(int(c))
	}
	return set, nil
}
