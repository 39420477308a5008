package posit_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adonairc/posit/posit"
)

var _ = Describe("FromBits", func() {
	Describe("special patterns", func() {
		It("decodes the all-zero pattern as zero", func() {
			p, err := posit.FromBits(0x00, 8, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.IsSpecial()).To(BeTrue())
			Expect(p.Sign).To(Equal(uint8(0)))
			Expect(p.Eval()).To(Equal(0.0))
		})

		It("decodes the sign-only pattern as NaR/infinity", func() {
			p, err := posit.FromBits(0x80, 8, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.IsSpecial()).To(BeTrue())
			Expect(p.Sign).To(Equal(uint8(1)))
			Expect(p.Eval()).To(Equal(math.Inf(1)))
		})
	})

	Describe("round-trip", func() {
		It("re-encodes every non-special P<8,0> bit pattern to itself", func() {
			for bits := uint64(1); bits <= 0xFF; bits++ {
				p, err := posit.FromBits(bits, 8, 0)
				Expect(err).NotTo(HaveOccurred())
				got, err := p.BitRepr()
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(bits))
			}
		})

		It("re-encodes every non-special P<16,1> bit pattern to itself", func() {
			for bits := uint64(1); bits <= 0xFFFF; bits++ {
				p, err := posit.FromBits(bits, 16, 1)
				Expect(err).NotTo(HaveOccurred())
				got, err := p.BitRepr()
				Expect(err).NotTo(HaveOccurred())
				Expect(got).To(Equal(bits))
			}
		})
	})

	Describe("the spec example", func() {
		It("decodes 0x3000 as 16,1 to 0.5", func() {
			p, err := posit.FromBits(0x3000, 16, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Eval()).To(Equal(0.5))
		})
	})

	Describe("argument errors", func() {
		It("rejects es wider than size-1", func() {
			_, err := posit.FromBits(0, 8, 8)
			Expect(err).To(HaveOccurred())
		})

		It("rejects bits that don't fit in size bits", func() {
			_, err := posit.FromBits(0x100, 8, 0)
			Expect(err).To(HaveOccurred())
		})
	})
})
