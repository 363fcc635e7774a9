package pattern

// ringOffsets is the canonical 30-offset layout a pattern record's six
// comma-separated groups of five integers are read into. Offsets are
// grouped by the six hex directions (East, NorthEast, North, West,
// SouthWest, South in enumeration order); each direction's group of five
// walks outward from the direction's own distance-1 cell to its distance-2
// cell, then to the distance-2 cell between it and the next direction, then
// two distance-3 cells flanking that gap. This keeps every cell within
// hex-distance 2 of
// the centre reachable from exactly one canonical slot, the same coverage
// original_source's ring iterates, just renumbered to a single flat Go
// array instead of six hand-unrolled C++ loops.
var ringOffsets = buildRingOffsets()

// direction unit vectors in (dCol, dRow), enumerated going round the hex:
// East, NorthEast, North, West, SouthWest, South. This is not the order of
// boardgeo's hexOffsets.
var ringDirections = [6][2]int{
	{1, 0},   // East
	{1, -1},  // NorthEast
	{0, -1},  // North
	{-1, 0},  // West
	{-1, 1},  // SouthWest
	{0, 1},   // South
}

func buildRingOffsets() [30][2]int {
	var out [30][2]int
	idx := 0
	for d := 0; d < 6; d++ {
		dir := ringDirections[d]
		next := ringDirections[(d+1)%6]
		group := [5][2]int{
			{dir[0], dir[1]},                 // distance-1 along dir
			{dir[0] * 2, dir[1] * 2},         // distance-2 along dir
			{dir[0] + next[0], dir[1] + next[1]},     // distance-2, between dir and next
			{dir[0]*2 + next[0], dir[1]*2 + next[1]}, // distance-3 flank, near dir
			{dir[0] + next[0]*2, dir[1] + next[1]*2}, // distance-3 flank, towards next
		}
		for _, off := range group {
			out[idx] = off
			idx++
		}
	}
	return out
}
