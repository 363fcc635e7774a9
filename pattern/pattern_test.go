package pattern_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/boardgeo"
	"github.com/sarchlab/benzene/pattern"
)

var _ = Describe("Load", func() {
	It("parses a named variation record", func() {
		src := "edge-block:\nv: -1,-1,-1,-1,-1 -1,-1,-1,-1,-1 0,-1,-1,-1,-1 -1,-1,-1,-1,-1 -1,-1,-1,-1,-1 -1,-1,-1,-1,-1 5\n"
		cat, err := pattern.Load(strings.NewReader(src))
		Expect(err).NotTo(HaveOccurred())
		Expect(cat.Patterns).To(HaveLen(1))
		Expect(cat.Patterns[0].Name).To(Equal("edge-block"))
		Expect(cat.Patterns[0].Kind).To(Equal(pattern.Variation))
		Expect(cat.Patterns[0].Weight).To(Equal(5))
		Expect(cat.Patterns[0].Slots[10]).To(Equal(pattern.SlotEmpty))
	})

	It("rejects an unrecognised record", func() {
		_, err := pattern.Load(strings.NewReader("garbage line\n"))
		Expect(err).To(HaveOccurred())
	})

	It("rejects a record with the wrong number of offset groups", func() {
		_, err := pattern.Load(strings.NewReader("v: -1,-1,-1,-1,-1\n"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("MatchOnCell", func() {
	var geo *boardgeo.Geometry

	BeforeEach(func() {
		var err error
		geo, err = boardgeo.NewGeometry(7, 7)
		Expect(err).NotTo(HaveOccurred())
	})

	It("matches a pattern whose only constraint is an empty East neighbour", func() {
		cat := &pattern.Catalogue{Patterns: []pattern.Pattern{{Kind: pattern.Variation}}}
		cat.Patterns[0].Slots[0] = pattern.SlotEmpty // ring offset 0 = East distance-1

		pos := boardgeo.NewPosition(geo)
		centre := boardgeo.CellAt(3, 3)
		hits := pattern.MatchOnCell(cat, geo, pos, centre, boardgeo.Black, pattern.MatchAll)
		Expect(hits).To(HaveLen(1))
	})

	It("does not match once the constrained neighbour is occupied by the opponent", func() {
		cat := &pattern.Catalogue{Patterns: []pattern.Pattern{{Kind: pattern.Variation}}}
		cat.Patterns[0].Slots[0] = pattern.SlotEmpty

		pos := boardgeo.NewPosition(geo)
		centre := boardgeo.CellAt(3, 3)
		east := boardgeo.CellAt(4, 3)
		Expect(pos.Play(boardgeo.White, east)).To(Succeed())

		hits := pattern.MatchOnCell(cat, geo, pos, centre, boardgeo.Black, pattern.MatchAll)
		Expect(hits).To(BeEmpty())
	})

	It("stops at the first match when mode is StopAtFirst", func() {
		cat := &pattern.Catalogue{Patterns: []pattern.Pattern{{Kind: pattern.Variation}, {Kind: pattern.Variation}}}
		pos := boardgeo.NewPosition(geo)
		centre := boardgeo.CellAt(3, 3)
		hits := pattern.MatchOnCell(cat, geo, pos, centre, boardgeo.Black, pattern.StopAtFirst)
		Expect(hits).To(HaveLen(1))
	})
})

var _ = Describe("VCPattern", func() {
	var geo *boardgeo.Geometry

	BeforeEach(func() {
		var err error
		geo, err = boardgeo.NewGeometry(7, 7)
		Expect(err).NotTo(HaveOccurred())
	})

	It("matches when must-have cells are friendly and not-opponent cells are not enemy", func() {
		a := boardgeo.CellAt(2, 2)
		b := boardgeo.CellAt(3, 3)
		mid := boardgeo.CellAt(2, 3)

		pos := boardgeo.NewPosition(geo)
		Expect(pos.Play(boardgeo.Black, a)).To(Succeed())

		p := pattern.VCPattern{
			End1:        a,
			End2:        b,
			MustHave:    bitsetOf(a),
			NotOpponent: bitsetOf(mid),
		}
		Expect(p.Matches(pos, boardgeo.Black)).To(BeTrue())

		Expect(pos.Play(boardgeo.White, mid)).To(Succeed())
		Expect(p.Matches(pos, boardgeo.Black)).To(BeFalse())
	})

	It("derives a carrier stripping friendly stones and endpoints from not-opponent", func() {
		a := boardgeo.CellAt(2, 2)
		b := boardgeo.CellAt(3, 3)
		mid := boardgeo.CellAt(2, 3)
		friendStone := boardgeo.CellAt(4, 4)

		pos := boardgeo.NewPosition(geo)
		Expect(pos.Play(boardgeo.Black, friendStone)).To(Succeed())

		p := pattern.VCPattern{
			End1:        a,
			End2:        b,
			NotOpponent: bitsetOf(a, b, mid, friendStone),
		}
		carrier := p.Carrier(pos, boardgeo.Black)
		Expect(carrier.Test(int(mid))).To(BeTrue())
		Expect(carrier.Test(int(a))).To(BeFalse())
		Expect(carrier.Test(int(b))).To(BeFalse())
		Expect(carrier.Test(int(friendStone))).To(BeFalse())
	})

	It("loads a VC pattern file", func() {
		src := "c3 d4 c3 c4\n"
		set, err := pattern.LoadVCPatterns(strings.NewReader(src), geo)
		Expect(err).NotTo(HaveOccurred())
		Expect(set.Patterns).To(HaveLen(1))
		Expect(set.Patterns[0].End1.String()).To(Equal("c3"))
	})

	It("rejects a malformed VC pattern line", func() {
		_, err := pattern.LoadVCPatterns(strings.NewReader("c3 d4\n"), geo)
		Expect(err).To(HaveOccurred())
	})
})

func bitsetOf(cells ...boardgeo.Cell) bitset.Set {
	var s bitset.Set
	for _, c := range cells {
		s.Set(int(c))
	}
	return s
}
