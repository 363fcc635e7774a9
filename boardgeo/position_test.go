package boardgeo_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
)

var _ = Describe("Position", func() {
	var geo *boardgeo.Geometry

	BeforeEach(func() {
		var err error
		geo, err = boardgeo.NewGeometry(5, 5)
		Expect(err).NotTo(HaveOccurred())
	})

	It("starts empty with Black to play", func() {
		pos := boardgeo.NewPosition(geo)
		Expect(pos.ToPlay()).To(Equal(boardgeo.Black))
		Expect(pos.Played().None()).To(BeTrue())
	})

	It("plays and undoes stones, maintaining played = black ∪ white", func() {
		pos := boardgeo.NewPosition(geo)
		c := boardgeo.CellAt(2, 2)

		Expect(pos.Play(boardgeo.Black, c)).To(Succeed())
		Expect(pos.ColorAt(c)).To(Equal(boardgeo.Black))
		Expect(pos.ToPlay()).To(Equal(boardgeo.White))
		Expect(pos.Played().Equal(pos.Black())).To(BeTrue())

		Expect(pos.Undo(c)).To(Succeed())
		Expect(pos.ColorAt(c)).To(Equal(boardgeo.Empty))
		Expect(pos.ToPlay()).To(Equal(boardgeo.Black))
		Expect(pos.Played().None()).To(BeTrue())
	})

	It("rejects playing on an occupied cell", func() {
		pos := boardgeo.NewPosition(geo)
		c := boardgeo.CellAt(0, 0)
		Expect(pos.Play(boardgeo.Black, c)).To(Succeed())
		Expect(pos.Play(boardgeo.White, c)).To(HaveOccurred())
	})

	It("rejects Undo on an empty cell", func() {
		pos := boardgeo.NewPosition(geo)
		Expect(pos.Undo(boardgeo.CellAt(0, 0))).To(HaveOccurred())
	})

	It("rejects overlapping stone sets in SetPosition", func() {
		pos := boardgeo.NewPosition(geo)
		c := boardgeo.CellAt(1, 1)
		both := bitset.Of(int(c))
		Expect(pos.SetPosition(both, both, boardgeo.Black)).To(HaveOccurred())
	})

	It("bulk replaces via SetPosition", func() {
		pos := boardgeo.NewPosition(geo)
		black := bitset.Of(int(boardgeo.CellAt(0, 0)), int(boardgeo.CellAt(1, 1)))
		white := bitset.Of(int(boardgeo.CellAt(2, 2)))
		Expect(pos.SetPosition(black, white, boardgeo.White)).To(Succeed())
		Expect(pos.Black().Equal(black)).To(BeTrue())
		Expect(pos.White().Equal(white)).To(BeTrue())
		Expect(pos.ToPlay()).To(Equal(boardgeo.White))
	})

	It("produces a stable hash for equal contents", func() {
		pos1 := boardgeo.NewPosition(geo)
		pos2 := boardgeo.NewPosition(geo)
		c := boardgeo.CellAt(0, 0)
		Expect(pos1.Play(boardgeo.Black, c)).To(Succeed())
		Expect(pos2.Play(boardgeo.Black, c)).To(Succeed())
		Expect(pos1.Hash()).To(Equal(pos2.Hash()))
	})

	It("produces different hashes for different contents", func() {
		pos1 := boardgeo.NewPosition(geo)
		pos2 := boardgeo.NewPosition(geo)
		Expect(pos1.Play(boardgeo.Black, boardgeo.CellAt(0, 0))).To(Succeed())
		Expect(pos2.Play(boardgeo.Black, boardgeo.CellAt(1, 1))).To(Succeed())
		Expect(pos1.Hash()).NotTo(Equal(pos2.Hash()))
	})

	It("clones independently", func() {
		pos := boardgeo.NewPosition(geo)
		clone := pos.Clone()
		Expect(pos.Play(boardgeo.Black, boardgeo.CellAt(0, 0))).To(Succeed())
		Expect(clone.Played().None()).To(BeTrue())
	})
})
