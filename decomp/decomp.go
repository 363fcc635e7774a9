// Package decomp implements a combinatorial-decomposition detector: it
// partitions the remaining empty region into independent sub-games by
// finding pairs of friendly groups that enclose a region reachable only
// through a stored FULL connection, plus an optional splitting
// decomposition.
//
// Grounded on original_source/src/hex/Decompositions.{hpp,cpp}.
package decomp

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/group"
	"github.com/sarchlab/benzene/vcstore"
)

// Decomposition is one reported captured region between two friendly
// groups: the VC carrier confining the separation is itself the set of
// cells to fold in for the friendly side.
type Decomposition struct {
	G1, G2  boardgeo.Cell // captains of the two separating groups
	Carrier bitset.Set
}

// OppMiaiChecker mirrors ice.OppMiaiChecker: a narrow view of the opp-miai
// catalogue, avoiding a dependency on the pattern package's concrete types.
type OppMiaiChecker interface {
	ConnectsViaMiai(geo *boardgeo.Geometry, pos *boardgeo.Position, a, b boardgeo.Cell) bool
}

// FindDecompositions scans every pair of friendly groups adjacent to at
// least two common opponent groups for friend, returning every qualifying
// (g1, g2, carrier) triple. It does not mutate pos or store.
func FindDecompositions(pos *boardgeo.Position, gs *group.Groups, store *vcstore.Store, friend boardgeo.Color, miai OppMiaiChecker) []Decomposition {
	edge1, edge2 := friendEdges(friend)
	if isDecided(pos, gs, store, edge1, edge2) {
		return nil
	}

	candidates := opponentAdjacentGroups(pos, gs, friend, miai)
	if len(candidates) < 2 {
		return nil
	}

	var out []Decomposition
	for i := 0; i < len(candidates); i++ {
		for j := i + 1; j < len(candidates); j++ {
			g1, g2 := candidates[i], candidates[j]
			if commonOpponentNeighbors(pos, gs, g1, g2, miai) < 2 {
				continue
			}
			full := store.GetFull(int(g1.Captain()), int(g2.Captain()))
			if full == nil || full.Len() == 0 {
				continue
			}
			enclosed := enclosedRegion(pos, gs, friend, edge1, edge2, g1, g2)
			for _, e := range full.Entries() {
				if e.Carrier.IsSubsetOf(enclosed) {
					out = append(out, Decomposition{G1: g1.Captain(), G2: g2.Captain(), Carrier: e.Carrier})
					break
				}
			}
		}
	}
	return out
}

// SplittingDecomposition implements step 4: a friendly group adjacent to
// both opposing edges (directly or via miai) splits the game in two. It
// returns the splitter's captain and whether one was found.
func SplittingDecomposition(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color, miai OppMiaiChecker) (boardgeo.Cell, bool) {
	oppEdge1, oppEdge2 := friendEdges(friend.Opponent())
	for _, g := range gs.Of(friend) {
		if g.Captain().IsEdge() {
			continue
		}
		if adjacentOrMiai(pos, gs, g, oppEdge1, miai) && adjacentOrMiai(pos, gs, g, oppEdge2, miai) {
			return g.Captain(), true
		}
	}
	return 0, false
}

func friendEdges(colour boardgeo.Color) (boardgeo.Cell, boardgeo.Cell) {
	if colour == boardgeo.Black {
		return boardgeo.North, boardgeo.South
	}
	return boardgeo.East, boardgeo.West
}

func isDecided(pos *boardgeo.Position, gs *group.Groups, store *vcstore.Store, edge1, edge2 boardgeo.Cell) bool {
	if gs.AreConnected(edge1, edge2) {
		return true
	}
	full := store.GetFull(int(gs.Captain(edge1)), int(gs.Captain(edge2)))
	return full != nil && full.Len() > 0
}

func opponentAdjacentGroups(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color, miai OppMiaiChecker) []*group.Group {
	edge1, edge2 := friendEdges(friend)
	var out []*group.Group
	for _, g := range gs.Of(friend) {
		if g.Captain() == edge1 || g.Captain() == edge2 {
			out = append(out, g)
			continue
		}
		if len(opponentNeighborSet(pos, gs, g, miai)) >= 2 {
			out = append(out, g)
		}
	}
	return out
}

func opponentNeighborSet(pos *boardgeo.Position, gs *group.Groups, g *group.Group, miai OppMiaiChecker) map[*group.Group]bool {
	friend := g.Color()
	opponent := friend.Opponent()
	seen := map[*group.Group]bool{}
	g.Nbs().ForEach(func(bit int) bool {
		n := boardgeo.Cell(bit)
		if pos.ColorAt(n) == opponent {
			seen[gs.GetGroup(n)] = true
		}
		return true
	})
	if miai != nil {
		for _, oc := range gs.Of(opponent) {
			if seen[oc] {
				continue
			}
			if miai.ConnectsViaMiai(pos.Geo, pos, g.Captain(), oc.Captain()) {
				seen[oc] = true
			}
		}
	}
	return seen
}

func commonOpponentNeighbors(pos *boardgeo.Position, gs *group.Groups, g1, g2 *group.Group, miai OppMiaiChecker) int {
	a := opponentNeighborSet(pos, gs, g1, miai)
	b := opponentNeighborSet(pos, gs, g2, miai)
	n := 0
	for og := range a {
		if b[og] {
			n++
		}
	}
	return n
}

func adjacentOrMiai(pos *boardgeo.Position, gs *group.Groups, g *group.Group, target boardgeo.Cell, miai OppMiaiChecker) bool {
	if g.Nbs().Test(int(target)) {
		return true
	}
	return miai != nil && miai.ConnectsViaMiai(pos.Geo, pos, g.Captain(), target)
}

// enclosedRegion runs a BFS on the friendly-perspective digraph from the
// friendly edges, stopping at cells neighbouring g1 or g2. The enclosed
// region is empty cells not reached by the BFS.
func enclosedRegion(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color, edge1, edge2 boardgeo.Cell, g1, g2 *group.Group) bitset.Set {
	boundary := bitset.Or(g1.Members(), g2.Members())

	visited := bitset.Set{}
	queue := []boardgeo.Cell{edge1, edge2}
	visited.Set(int(edge1))
	visited.Set(int(edge2))

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		pos.Geo.Neighbors(cur).ForEach(func(bit int) bool {
			n := boardgeo.Cell(bit)
			if visited.Test(bit) {
				return true
			}
			if boundary.Test(bit) {
				visited.Set(bit) // reached the boundary; stop, don't expand past it
				return true
			}
			col := pos.ColorAt(n)
			if col != friend && col != boardgeo.Empty {
				return true // opponent stones block the friendly-perspective walk
			}
			visited.Set(bit)
			queue = append(queue, n)
			return true
		})
	}

	var empties bitset.Set
	for _, c := range pos.Geo.InteriorCells() {
		if pos.ColorAt(c) == boardgeo.Empty {
			empties.Set(int(c))
		}
	}
	return bitset.Sub(empties, visited)
}
