package vcstore_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/bitset"
	"github.com/sarchlab/benzene/carrier"
	"github.com/sarchlab/benzene/vcstore"
)

var _ = Describe("Store", func() {
	It("canonicalises pairs regardless of argument order", func() {
		Expect(vcstore.MakePair(3, 7)).To(Equal(vcstore.MakePair(7, 3)))
	})

	It("returns nil for an untouched pair", func() {
		s := vcstore.New()
		Expect(s.GetFull(1, 2)).To(BeNil())
	})

	It("stores and retrieves FULL and SEMI lists independently", func() {
		s := vcstore.New()
		s.PutFull(1, 2, carrier.Entry{Carrier: bitset.Of(5)})
		s.PutSemi(1, 2, carrier.Entry{Carrier: bitset.Of(6), Key: 6, HasKey: true})

		Expect(s.GetFull(1, 2).Len()).To(Equal(1))
		Expect(s.GetSemi(1, 2).Len()).To(Equal(1))
		Expect(s.GetFull(2, 1)).To(BeIdenticalTo(s.GetFull(1, 2)))
	})

	It("deletes both lists for a pair", func() {
		s := vcstore.New()
		s.PutFull(1, 2, carrier.Entry{Carrier: bitset.Of(5)})
		s.Delete(1, 2)
		Expect(s.GetFull(1, 2)).To(BeNil())
	})

	It("reverts a TryPutFull back to empty at a marker", func() {
		s := vcstore.New()
		s.PushMarker()
		Expect(s.TryPutFull(1, 2, carrier.Entry{Carrier: bitset.Of(5)})).To(BeTrue())
		Expect(s.GetFull(1, 2).Len()).To(Equal(1))

		s.Revert()
		Expect(s.GetFull(1, 2).Len()).To(Equal(0))
	})

	It("replays a dominated-carrier removal when reverting past a TryPut that absorbed it", func() {
		s := vcstore.New()
		Expect(s.TryPutFull(1, 2, carrier.Entry{Carrier: bitset.Of(1, 2, 3)})).To(BeTrue())

		s.PushMarker()
		Expect(s.TryPutFull(1, 2, carrier.Entry{Carrier: bitset.Of(1, 2)})).To(BeTrue())
		Expect(s.GetFull(1, 2).Len()).To(Equal(1))

		s.Revert()
		Expect(s.GetFull(1, 2).Len()).To(Equal(1))
		Expect(s.GetFull(1, 2).Entries()[0].Carrier.Equal(bitset.Of(1, 2, 3))).To(BeTrue())
	})

	It("skips journaling entirely when tracking is disabled", func() {
		s := vcstore.New()
		s.SetTracking(false)
		s.PutFull(1, 2, carrier.Entry{Carrier: bitset.Of(5)})
		Expect(s.GetFull(1, 2).Len()).To(Equal(1))
	})
})
