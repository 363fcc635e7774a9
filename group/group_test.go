package group_test

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/group"
)

// snapshot captures everything group equality should care about for a
// single cell: its group's captain, member set, and neighbour set. Two
// Groups built from the same stones should produce identical snapshots for
// every cell, regardless of how the position was reached.
type snapshot struct {
	Captain boardgeo.Cell
	Members bitset.Set
	Nbs     bitset.Set
}

func snapshotOf(gs *group.Groups, cells []boardgeo.Cell) map[boardgeo.Cell]snapshot {
	out := make(map[boardgeo.Cell]snapshot, len(cells))
	for _, c := range cells {
		g := gs.GetGroup(c)
		out[c] = snapshot{Captain: g.Captain(), Members: g.Members(), Nbs: g.Nbs()}
	}
	return out
}

var _ = Describe("Groups", func() {
	var geo *boardgeo.Geometry

	BeforeEach(func() {
		var err error
		geo, err = boardgeo.NewGeometry(5, 5)
		Expect(err).NotTo(HaveOccurred())
	})

	It("puts every empty cell in its own singleton group", func() {
		pos := boardgeo.NewPosition(geo)
		gs := group.Build(pos)

		// All four edges start as their own single-cell groups.
		for _, e := range geo.Edges() {
			g := gs.GetGroup(e)
			Expect(g.Size()).To(Equal(1))
			Expect(g.Captain()).To(Equal(e))
		}

		// Every interior cell is empty and unconnected to its neighbours,
		// even though they are all adjacent to one another.
		interior := geo.InteriorCells()
		for _, c := range interior {
			g := gs.GetGroup(c)
			Expect(g.Size()).To(Equal(1))
			Expect(g.Captain()).To(Equal(c))
		}
		Expect(gs.AreConnected(interior[0], interior[1])).To(BeFalse())
	})

	It("splits a colour into separate groups when stones don't touch", func() {
		pos := boardgeo.NewPosition(geo)
		// (1,1) and (3,3) are both one cell away from the board edge, so
		// neither stone's group absorbs an edge atom.
		a := boardgeo.CellAt(1, 1)
		b := boardgeo.CellAt(3, 3)
		Expect(pos.Play(boardgeo.Black, a)).To(Succeed())
		Expect(pos.Play(boardgeo.Black, b)).To(Succeed())

		gs := group.Build(pos)
		Expect(gs.AreConnected(a, b)).To(BeFalse())
		Expect(gs.GetGroup(a).Color()).To(Equal(boardgeo.Black))
		Expect(gs.GetGroup(a).Size()).To(Equal(1))
	})

	It("merges an edge into a connected friendly stone's group, with the edge as captain", func() {
		pos := boardgeo.NewPosition(geo)
		a := boardgeo.CellAt(0, 2) // touches West, which is White-owned
		Expect(pos.Play(boardgeo.White, a)).To(Succeed())

		gs := group.Build(pos)
		g := gs.GetGroup(a)
		Expect(g.Captain()).To(Equal(boardgeo.West))
		Expect(g.Size()).To(Equal(2))
	})

	It("merges two adjacent same-colour stones into one group", func() {
		pos := boardgeo.NewPosition(geo)
		a := boardgeo.CellAt(2, 2)
		b := boardgeo.CellAt(3, 2) // East of a
		Expect(pos.Play(boardgeo.Black, a)).To(Succeed())
		Expect(pos.Play(boardgeo.Black, b)).To(Succeed())

		gs := group.Build(pos)
		Expect(gs.AreConnected(a, b)).To(BeTrue())
		Expect(gs.GetGroup(a).Size()).To(Equal(2))
	})

	It("reports a group's captain as its lowest-numbered member", func() {
		pos := boardgeo.NewPosition(geo)
		a := boardgeo.CellAt(2, 2)
		b := boardgeo.CellAt(3, 2)
		Expect(pos.Play(boardgeo.Black, a)).To(Succeed())
		Expect(pos.Play(boardgeo.Black, b)).To(Succeed())

		gs := group.Build(pos)
		Expect(gs.Captain(a)).To(Equal(gs.Captain(b)))
	})

	It("classifies a group's neighbours by colour via NbsColorSet", func() {
		pos := boardgeo.NewPosition(geo)
		black := boardgeo.CellAt(2, 2)
		Expect(pos.Play(boardgeo.Black, black)).To(Succeed())

		gs := group.Build(pos)
		g := gs.GetGroup(black)
		empties := g.NbsColorSet(gs, boardgeo.ColorSetEmpty)
		Expect(empties.Count()).To(Equal(g.Nbs().Count()))
	})

	It("rebuilds identical groups after a play/undo sequence returns to the same position", func() {
		pos := boardgeo.NewPosition(geo)
		before := group.Build(pos)
		beforeSnap := snapshotOf(before, geo.AllCells())

		a := boardgeo.CellAt(1, 1)
		b := boardgeo.CellAt(2, 1)
		Expect(pos.Play(boardgeo.Black, a)).To(Succeed())
		Expect(pos.Play(boardgeo.White, b)).To(Succeed())
		Expect(pos.Undo(b)).To(Succeed())
		Expect(pos.Undo(a)).To(Succeed())

		after := group.Build(pos)
		afterSnap := snapshotOf(after, geo.AllCells())

		setEqual := cmp.Comparer(func(x, y bitset.Set) bool { return x == y })
		Expect(cmp.Diff(beforeSnap, afterSnap, setEqual)).To(BeEmpty())
	})

	It("lists groups of a given colour", func() {
		pos := boardgeo.NewPosition(geo)
		Expect(pos.Play(boardgeo.Black, boardgeo.CellAt(1, 1))).To(Succeed())
		Expect(pos.Play(boardgeo.Black, boardgeo.CellAt(3, 3))).To(Succeed())

		gs := group.Build(pos)
		// North and South are also Black, so the full Black group count
		// includes those two edge-captained groups alongside the pair of
		// isolated interior stones.
		Expect(gs.Of(boardgeo.Black)).To(HaveLen(4))
	})
})
