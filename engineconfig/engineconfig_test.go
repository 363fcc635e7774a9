package engineconfig_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/benzene/engineconfig"
)

var _ = Describe("Parameters", func() {
	It("defaults max_ors to 4", func() {
		Expect(engineconfig.Default().MaxOrs).To(Equal(4))
	})

	It("chains With* methods without aliasing a shared builder", func() {
		base := engineconfig.NewBuilder()
		a := base.WithMaxOrs(2).Build()
		b := base.WithMaxOrs(7).Build()

		Expect(a.MaxOrs).To(Equal(2))
		Expect(b.MaxOrs).To(Equal(7))
	})

	It("loads YAML, keeping defaults for omitted fields", func() {
		doc := strings.NewReader("max_ors: 6\nthreats: true\n")
		p, err := engineconfig.Load(doc)
		Expect(err).NotTo(HaveOccurred())

		Expect(p.MaxOrs).To(Equal(6))
		Expect(p.Threats).To(BeTrue())
		Expect(p.UsePatterns).To(BeTrue()) // default preserved
	})
})
