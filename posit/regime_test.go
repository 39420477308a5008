package posit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adonairc/posit/posit"
)

var _ = Describe("Regime", func() {
	Describe("RegLen", func() {
		It("grows with k for non-negative k", func() {
			Expect(posit.NewRegime(16, 0).RegLen()).To(Equal(2))
			Expect(posit.NewRegime(16, 3).RegLen()).To(Equal(5))
		})

		It("grows with |k| for negative k", func() {
			Expect(posit.NewRegime(16, -1).RegLen()).To(Equal(2))
			Expect(posit.NewRegime(16, -4).RegLen()).To(Equal(5))
		})

		It("is zero for a special regime", func() {
			Expect(posit.NewSpecialRegime(16).RegLen()).To(Equal(0))
		})
	})

	Describe("saturation", func() {
		It("clamps k above the positive boundary", func() {
			r := posit.NewRegime(8, 100)
			Expect(r.OutOfRange).To(BeTrue())
			Expect(r.K).To(Equal(8 - 2))
		})

		It("clamps k below the negative boundary", func() {
			r := posit.NewRegime(8, -100)
			Expect(r.OutOfRange).To(BeTrue())
			Expect(r.K).To(Equal(-(8 - 2)))
		})

		It("leaves an in-range k untouched", func() {
			r := posit.NewRegime(8, 2)
			Expect(r.OutOfRange).To(BeFalse())
			Expect(r.K).To(Equal(2))
		})
	})

	Describe("Bits", func() {
		It("encodes a non-negative k as a run of ones terminated by a zero", func() {
			bits, err := posit.NewRegime(16, 2).Bits()
			Expect(err).NotTo(HaveOccurred())
			Expect(bits).To(Equal(uint64(0b1110)))
		})

		It("encodes a negative k as a run of zeros terminated by a one", func() {
			bits, err := posit.NewRegime(16, -2).Bits()
			Expect(err).NotTo(HaveOccurred())
			Expect(bits).To(Equal(uint64(0b001)))
		})

		It("refuses a negative regime that fills the word with no room for a terminator", func() {
			_, err := posit.Regime{Size: 8, K: -7}.Bits()
			Expect(err).To(HaveOccurred())
		})
	})
})
