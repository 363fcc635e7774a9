package vcbuilder_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/engineconfig"
	"github.com/sarchlab/benzene/group"
	"github.com/sarchlab/benzene/vcbuilder"
)

var _ = Describe("BuildFromScratch", func() {
	var geo *boardgeo.Geometry

	BeforeEach(func() {
		var err error
		geo, err = boardgeo.NewGeometry(3, 3)
		Expect(err).NotTo(HaveOccurred())
	})

	It("adds an empty-carrier base FULL from North to every top-row cell", func() {
		pos := boardgeo.NewPosition(geo)
		gs := group.Build(pos)

		store, stats := vcbuilder.BuildFromScratch(pos, gs, boardgeo.Black, engineconfig.Default(), vcbuilder.Catalogues{})

		for col := 0; col < 3; col++ {
			cell := boardgeo.CellAt(col, 0)
			full := store.GetFull(int(boardgeo.North), int(cell))
			Expect(full).NotTo(BeNil())
			Expect(full.Len()).To(Equal(1))
			Expect(full.Entries()[0].Carrier.None()).To(BeTrue())
		}
		Expect(stats.BaseVCs).To(BeNumerically(">=", 3))
	})

	It("AND-combines two base FULLs sharing a friendly middle stone into a longer FULL", func() {
		pos := boardgeo.NewPosition(geo)
		mid := boardgeo.CellAt(1, 0)
		Expect(pos.Play(boardgeo.Black, mid)).To(Succeed())
		gs := group.Build(pos)

		store, stats := vcbuilder.BuildFromScratch(pos, gs, boardgeo.Black, engineconfig.Default(), vcbuilder.Catalogues{})

		below := boardgeo.CellAt(1, 1)
		full := store.GetFull(int(boardgeo.North), int(below))
		Expect(full).NotTo(BeNil())
		Expect(full.Len()).To(BeNumerically(">=", 1))
		Expect(stats.ANDCombines).To(BeNumerically(">=", 1))
	})

	It("stops early once the two friendly edges are already connected", func() {
		pos := boardgeo.NewPosition(geo)
		for row := 0; row < 3; row++ {
			Expect(pos.Play(boardgeo.Black, boardgeo.CellAt(1, row))).To(Succeed())
		}
		gs := group.Build(pos)
		Expect(gs.AreConnected(boardgeo.North, boardgeo.South)).To(BeTrue())

		cfg := engineconfig.NewBuilder().WithAbortOnWinningConnection(true).Build()
		_, stats := vcbuilder.BuildFromScratch(pos, gs, boardgeo.Black, cfg, vcbuilder.Catalogues{})

		Expect(stats.Aborted).To(BeTrue())
	})
})

var _ = Describe("BuildIncremental", func() {
	var geo *boardgeo.Geometry

	BeforeEach(func() {
		var err error
		geo, err = boardgeo.NewGeometry(3, 3)
		Expect(err).NotTo(HaveOccurred())
	})

	It("kills carriers through a cell the opponent just played", func() {
		pos := boardgeo.NewPosition(geo)
		oldGroups := group.Build(pos)
		cfg := engineconfig.Default()

		store, _ := vcbuilder.BuildFromScratch(pos, oldGroups, boardgeo.Black, cfg, vcbuilder.Catalogues{})

		contested := boardgeo.CellAt(1, 0)
		Expect(pos.Play(boardgeo.White, contested)).To(Succeed())
		newGroups := group.Build(pos)

		var added [3]bitset.Set
		added[boardgeo.White].Set(int(contested))

		stats := vcbuilder.BuildIncremental(store, pos, oldGroups, newGroups, boardgeo.Black, added, cfg, vcbuilder.Catalogues{})

		full := store.GetFull(int(boardgeo.North), int(contested))
		if full != nil {
			for _, e := range full.Entries() {
				Expect(e.Carrier.Test(int(contested))).To(BeFalse())
			}
		}
		Expect(stats.QueuePops).To(BeNumerically(">=", 0))
	})

	It("falls back to a from-scratch rebuild when incremental builds are disabled", func() {
		pos := boardgeo.NewPosition(geo)
		oldGroups := group.Build(pos)
		cfg := engineconfig.NewBuilder().WithIncrementalBuilds(false).Build()

		store, _ := vcbuilder.BuildFromScratch(pos, oldGroups, boardgeo.Black, cfg, vcbuilder.Catalogues{})

		played := boardgeo.CellAt(0, 1)
		Expect(pos.Play(boardgeo.Black, played)).To(Succeed())
		newGroups := group.Build(pos)

		var added [3]bitset.Set
		added[boardgeo.Black].Set(int(played))

		stats := vcbuilder.BuildIncremental(store, pos, oldGroups, newGroups, boardgeo.Black, added, cfg, vcbuilder.Catalogues{})

		full := store.GetFull(int(boardgeo.North), int(boardgeo.CellAt(0, 0)))
		Expect(full).NotTo(BeNil())
		Expect(stats.BaseVCs).To(BeNumerically(">", 0))
	})

	It("agrees with a from-scratch build at the resulting position", func() {
		pos := boardgeo.NewPosition(geo)
		oldGroups := group.Build(pos)
		cfg := engineconfig.Default()

		store, _ := vcbuilder.BuildFromScratch(pos, oldGroups, boardgeo.Black, cfg, vcbuilder.Catalogues{})

		played := boardgeo.CellAt(1, 1)
		Expect(pos.Play(boardgeo.Black, played)).To(Succeed())
		newGroups := group.Build(pos)

		var added [3]bitset.Set
		added[boardgeo.Black].Set(int(played))
		vcbuilder.BuildIncremental(store, pos, oldGroups, newGroups, boardgeo.Black, added, cfg, vcbuilder.Catalogues{})

		fresh, _ := vcbuilder.BuildFromScratch(pos, newGroups, boardgeo.Black, cfg, vcbuilder.Catalogues{})

		for col := 0; col < 3; col++ {
			cell := boardgeo.CellAt(col, 0)
			wantFull := fresh.GetFull(int(boardgeo.North), int(cell))
			gotFull := store.GetFull(int(boardgeo.North), int(cell))
			Expect(gotFull != nil && gotFull.Len() > 0).To(Equal(wantFull != nil && wantFull.Len() > 0))
		}
	})
})
