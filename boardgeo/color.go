package boardgeo

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Color is the colour of a stone, or the absence of one.
//
// Black owns the North/South edges, White owns the East/West edges.
type Color int

const (
	Empty Color = iota
	Black
	White
)

var titleCaser = cases.Title(language.English)

// Opponent returns the other playing colour. Calling it on Empty panics;
// Empty has no opponent.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic("boardgeo: Empty has no opponent")
	}
}

// String renders the colour using Title case.
func (c Color) String() string {
	switch c {
	case Black:
		return titleCaser.String(strings.ToLower("BLACK"))
	case White:
		return titleCaser.String(strings.ToLower("WHITE"))
	default:
		return titleCaser.String(strings.ToLower("EMPTY"))
	}
}

// ColorSet is a small bitmask of Colors, used to classify neighbour sets by
// colour the way Groups::Nbs(HexColorSet) does in original_source.
type ColorSet int

const (
	ColorSetBlack ColorSet = 1 << Black
	ColorSetWhite ColorSet = 1 << White
	ColorSetEmpty ColorSet = 1 << Empty

	ColorSetBlackWhite = ColorSetBlack | ColorSetWhite
	ColorSetBlackEmpty = ColorSetBlack | ColorSetEmpty
	ColorSetWhiteEmpty = ColorSetWhite | ColorSetEmpty
	ColorSetAll        = ColorSetBlack | ColorSetWhite | ColorSetEmpty
)

// Only returns the ColorSet containing exactly c.
func Only(c Color) ColorSet {
	return ColorSet(1 << c)
}

// Contains reports whether the set includes c.
func (s ColorSet) Contains(c Color) bool {
	return s&Only(c) != 0
}
