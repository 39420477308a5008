package wire_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/adonairc/posit/posit"
	"github.com/adonairc/posit/wire"
)

var _ = Describe("ExchangeWidth", func() {
	It("rounds up to the nearest byte", func() {
		Expect(wire.ExchangeWidth(8)).To(Equal(1))
		Expect(wire.ExchangeWidth(16)).To(Equal(2))
		Expect(wire.ExchangeWidth(32)).To(Equal(4))
	})
})

var _ = Describe("Encode/Decode", func() {
	It("round-trips a P<8,0> posit through one byte", func() {
		p, err := posit.FromDouble(1.5, 8, 0)
		Expect(err).NotTo(HaveOccurred())

		b, err := wire.Encode(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(HaveLen(1))

		got, err := wire.Decode(b, 8, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(p))
	})

	It("round-trips a P<16,1> posit through two bytes", func() {
		p, err := posit.FromDouble(0.5, 16, 1)
		Expect(err).NotTo(HaveOccurred())

		b, err := wire.Encode(p)
		Expect(err).NotTo(HaveOccurred())
		Expect(b).To(HaveLen(2))

		got, err := wire.Decode(b, 16, 1)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(p))
	})

	It("ignores extra leading bytes on decode", func() {
		p, err := posit.FromDouble(1.5, 8, 0)
		Expect(err).NotTo(HaveOccurred())
		b, err := wire.Encode(p)
		Expect(err).NotTo(HaveOccurred())

		padded := append([]byte{0xAA, 0xBB, 0xCC}, b...)
		got, err := wire.Decode(padded, 8, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(got).To(Equal(p))
	})

	It("errors when there are too few bytes", func() {
		_, err := wire.Decode([]byte{0x01}, 16, 1)
		Expect(err).To(HaveOccurred())
	})
})
