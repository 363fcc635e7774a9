package bitset_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/bitset"
)

var _ = Describe("Set", func() {
	It("starts empty", func() {
		var s bitset.Set
		Expect(s.None()).To(BeTrue())
		Expect(s.Count()).To(Equal(0))
	})

	It("sets, tests, and resets bits", func() {
		var s bitset.Set
		s.Set(5)
		s.Set(200)
		Expect(s.Test(5)).To(BeTrue())
		Expect(s.Test(200)).To(BeTrue())
		Expect(s.Test(6)).To(BeFalse())
		Expect(s.Count()).To(Equal(2))

		s.Reset(5)
		Expect(s.Test(5)).To(BeFalse())
		Expect(s.Count()).To(Equal(1))
	})

	It("flips bits", func() {
		var s bitset.Set
		s.Flip(10)
		Expect(s.Test(10)).To(BeTrue())
		s.Flip(10)
		Expect(s.Test(10)).To(BeFalse())
	})

	DescribeTable("satisfies the basic bitset algebra laws",
		func(aBits, bBits []int) {
			a := bitset.Of(aBits...)
			b := bitset.Of(bBits...)

			// (a & b) | (a & ~b) == a
			lhs := bitset.Or(bitset.And(a, b), bitset.And(a, bitset.Not(b)))
			Expect(lhs.Equal(a)).To(BeTrue())

			// a ⊆ b <-> (a & b) == a
			Expect(a.IsSubsetOf(b)).To(Equal(bitset.And(a, b).Equal(a)))

			// iteration in ascending index returns count(a) elements
			indices := a.Bits()
			Expect(indices).To(HaveLen(a.Count()))
			for i := 1; i < len(indices); i++ {
				Expect(indices[i]).To(BeNumerically(">", indices[i-1]))
			}
		},
		Entry("disjoint", []int{1, 2, 3}, []int{10, 20}),
		Entry("overlapping", []int{1, 2, 3, 64, 65}, []int{2, 3, 4, 65}),
		Entry("subset", []int{5, 6}, []int{5, 6, 7, 8}),
		Entry("empty a", []int{}, []int{1, 2, 3}),
		Entry("empty b", []int{1, 2, 3}, []int{}),
		Entry("spans multiple words", []int{0, 63, 64, 127, 128, 383}, []int{64, 128, 200}))

	It("computes subset relations", func() {
		small := bitset.Of(1, 2)
		big := bitset.Of(1, 2, 3, 4)
		Expect(small.IsSubsetOf(big)).To(BeTrue())
		Expect(big.IsSubsetOf(small)).To(BeFalse())
	})

	It("detects intersection without computing the full AND", func() {
		a := bitset.Of(1, 2, 3)
		b := bitset.Of(3, 4, 5)
		c := bitset.Of(10, 11)
		Expect(a.Intersects(b)).To(BeTrue())
		Expect(a.Intersects(c)).To(BeFalse())
	})

	It("subtracts with Sub instead of a dedicated operator", func() {
		a := bitset.Of(1, 2, 3)
		b := bitset.Of(2)
		Expect(bitset.Sub(a, b).Equal(bitset.Of(1, 3))).To(BeTrue())
	})

	It("round-trips through hex", func() {
		a := bitset.Of(1, 64, 128, 383)
		hex := a.String()
		b, err := bitset.FromHex(hex)
		Expect(err).NotTo(HaveOccurred())
		Expect(b.Equal(a)).To(BeTrue())
	})

	It("round-trips through bytes", func() {
		a := bitset.Of(0, 7, 8, 100, 383)
		b := bitset.FromBytes(a.Bytes())
		Expect(b.Equal(a)).To(BeTrue())
	})

	It("provides a deterministic total order", func() {
		a := bitset.Of(1)
		b := bitset.Of(2)
		Expect(a.Less(b) != b.Less(a)).To(BeTrue())
		Expect(a.Less(a)).To(BeFalse())
	})

	It("FindSetBit panics on non-singleton sets", func() {
		s := bitset.Of(1, 2)
		Expect(func() { s.FindSetBit() }).To(Panic())
	})

	It("FindSetBit returns the only set bit", func() {
		s := bitset.Of(42)
		Expect(s.FindSetBit()).To(Equal(42))
	})

	It("FirstSetBit returns -1 on empty set", func() {
		var s bitset.Set
		Expect(s.FirstSetBit()).To(Equal(-1))
	})
})
