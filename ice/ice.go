// Package ice implements an inferior-cell / fill-in analyser: dead,
// captured, vulnerable, and dominated cell detection over a
// Groups instance, plus presimplicial-pair detection and reversible Unfold
// of the dead and captured cells.
//
// Grounded on original_source/src/hex/InferiorCells.{hpp,cpp}; the
// accumulate-then-report shape (four independent subset scans folded into
// one record) mirrors verify/lint.go's RunLint accumulating structural
// issues into a single report.
package ice

import (
	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/group"
)

// Killer is one way to kill a Vulnerable cell: playing killer leaves the
// vulnerable cell worthless, via the given carrier.
type Killer struct {
	Cell    boardgeo.Cell
	Carrier bitset.Set
}

// Result is the outcome of one ICE pass: four (almost) disjoint subsets of
// empty cells, classified dead, captured, vulnerable, and dominated.
type Result struct {
	Dead        bitset.Set
	Captured    [3]bitset.Set // indexed by boardgeo.Color; Empty unused
	Vulnerable  map[boardgeo.Cell][]Killer
	Dominated   bitset.Set
	Presimplicial []PresimplicialPair
}

// PresimplicialPair is two mutually vulnerable cells with disjoint
// carriers, and the union of those carriers. Pairs are recorded only;
// Unfold does not fill them in.
type PresimplicialPair struct {
	A, B    boardgeo.Cell
	Carrier bitset.Set
}

// OppMiaiChecker is the narrow view the analyser needs of the
// pattern matcher's opp-miai catalogue: whether a and b are connected by a
// single-cell miai.
type OppMiaiChecker interface {
	ConnectsViaMiai(geo *boardgeo.Geometry, pos *boardgeo.Position, a, b boardgeo.Cell) bool
}

// Analyze runs the ICE pass for the side to move (friend), consuming gs and
// an optional opp-miai checker (nil means vulnerable-cell detection counts
// only opposing groups adjacent to the cell, not miai-connected ones).
func Analyze(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color, miai OppMiaiChecker) Result {
	res := Result{Vulnerable: make(map[boardgeo.Cell][]Killer)}
	opponent := friend.Opponent()

	for _, c := range pos.Geo.InteriorCells() {
		if pos.ColorAt(c) != boardgeo.Empty {
			continue
		}
		nbs := pos.Geo.Neighbors(c)
		friendNbs, oppNbs := 0, 0
		nbs.ForEach(func(bit int) bool {
			switch pos.ColorAt(boardgeo.Cell(bit)) {
			case friend:
				friendNbs++
			case opponent:
				oppNbs++
			}
			return true
		})

		switch {
		case friendNbs == 0 && oppNbs == 0:
			// isolated empty cell: neither side benefits from it alone; not
			// classified as dead by this pass since it may still carry VCs.
		case oppNbs == nbs.Count():
			// fully surrounded by the opponent: dead for both sides.
			res.Dead.Set(int(c))
		case friendNbs == nbs.Count():
			// fully surrounded by friend: captured by friend.
			res.Captured[friend].Set(int(c))
		}
	}

	res.findVulnerable(pos, gs, friend, miai)
	res.findPresimplicial()
	res.findDominated(pos, gs, friend)

	return res
}

// findVulnerable flags an empty cell vulnerable when playing it there would
// immediately hand the opponent a zero-or-small-carrier kill: an empty cell
// entirely enclosed by a single opposing group's neighbourhood except for
// one escape, with that escape as the killer.
func (r *Result) findVulnerable(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color, miai OppMiaiChecker) {
	opponent := friend.Opponent()
	for _, c := range pos.Geo.InteriorCells() {
		if pos.ColorAt(c) != boardgeo.Empty || r.Dead.Test(int(c)) || r.Captured[friend].Test(int(c)) {
			continue
		}
		nbs := pos.Geo.Neighbors(c)
		var emptyNbs []boardgeo.Cell
		oppGroupSeen := map[*group.Group]bool{}
		friendSeen := false
		nbs.ForEach(func(bit int) bool {
			n := boardgeo.Cell(bit)
			switch pos.ColorAt(n) {
			case boardgeo.Empty:
				emptyNbs = append(emptyNbs, n)
			case friend:
				friendSeen = true
			case opponent:
				oppGroupSeen[gs.GetGroup(n)] = true
			}
			return true
		})
		if miai != nil {
			for _, oc := range gs.Of(opponent) {
				if oppGroupSeen[oc] {
					continue
				}
				if miai.ConnectsViaMiai(pos.Geo, pos, c, oc.Captain()) {
					oppGroupSeen[oc] = true
				}
			}
		}
		if len(oppGroupSeen) == 0 || len(emptyNbs) == 0 {
			continue
		}
		// A single remaining empty neighbour, with the rest of the ring
		// held by one opposing group, makes that neighbour the killer: play
		// there and c is immediately surrounded.
		if len(emptyNbs) == 1 && len(oppGroupSeen) == 1 && !friendSeen {
			r.Vulnerable[c] = append(r.Vulnerable[c], Killer{Cell: emptyNbs[0]})
		}
	}
}

// findPresimplicial pairs up mutually vulnerable cells whose killer
// carriers are disjoint.
func (r *Result) findPresimplicial() {
	for a, killersA := range r.Vulnerable {
		for b, killersB := range r.Vulnerable {
			if b <= a {
				continue
			}
			mutual := false
			for _, ka := range killersA {
				for _, kb := range killersB {
					if ka.Cell == b && kb.Cell == a {
						mutual = true
					}
				}
			}
			if !mutual {
				continue
			}
			var carrierA, carrierB bitset.Set
			for _, k := range killersA {
				carrierA = bitset.Or(carrierA, k.Carrier)
			}
			for _, k := range killersB {
				carrierB = bitset.Or(carrierB, k.Carrier)
			}
			if carrierA.Intersects(carrierB) {
				continue
			}
			r.Presimplicial = append(r.Presimplicial, PresimplicialPair{
				A: a, B: b, Carrier: bitset.Or(carrierA, carrierB),
			})
		}
	}
}

// findDominated builds a simple domination relation: empty cell d is
// dominated by empty cell s if every friendly-group neighbour of d is also
// a neighbour of s, and s has at least one friendly-group neighbour that d
// lacks, making s never worse to play than d. Dominated is the set of
// candidates that have such a dominator among the other candidates;
// dead, captured and Vulnerable cells are not candidates.
func (r *Result) findDominated(pos *boardgeo.Position, gs *group.Groups, friend boardgeo.Color) {
	var candidates []boardgeo.Cell
	for _, c := range pos.Geo.InteriorCells() {
		if pos.ColorAt(c) != boardgeo.Empty {
			continue
		}
		if r.Dead.Test(int(c)) || r.Captured[friend].Test(int(c)) {
			continue
		}
		if _, vulnerable := r.Vulnerable[c]; vulnerable {
			continue
		}
		candidates = append(candidates, c)
	}

	friendNbsOf := func(c boardgeo.Cell) bitset.Set {
		var s bitset.Set
		pos.Geo.Neighbors(c).ForEach(func(bit int) bool {
			n := boardgeo.Cell(bit)
			if pos.ColorAt(n) == friend {
				s.Set(int(gs.Captain(n)))
			}
			return true
		})
		return s
	}

	for _, d := range candidates {
		dNbs := friendNbsOf(d)
		for _, s := range candidates {
			if s == d {
				continue
			}
			sNbs := friendNbsOf(s)
			if dNbs.IsSubsetOf(sNbs) && !sNbs.IsSubsetOf(dNbs) {
				r.Dominated.Set(int(d))
				break
			}
		}
	}
}

// Unfold applies this result's dead cells (as Black) and captured cells (in
// their capturing colour) onto pos, returning a reversible record of the
// cells it filled in so the caller can undo them afterwards in reverse
// order. Presimplicial pairs are not filled in.
func (r Result) Unfold(pos *boardgeo.Position) []boardgeo.Cell {
	var filled []boardgeo.Cell
	fill := func(c boardgeo.Cell, colour boardgeo.Color) {
		if pos.ColorAt(c) != boardgeo.Empty {
			return
		}
		if err := pos.Play(colour, c); err == nil {
			filled = append(filled, c)
		}
	}

	r.Dead.ForEach(func(bit int) bool {
		fill(boardgeo.Cell(bit), boardgeo.Black)
		return true
	})
	for colour := boardgeo.Black; colour <= boardgeo.White; colour++ {
		r.Captured[colour].ForEach(func(bit int) bool {
			fill(boardgeo.Cell(bit), colour)
			return true
		})
	}
	return filled
}
