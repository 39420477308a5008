package posit

// P8 converts x to a posit in the P<8,0> configuration, the smallest
// convenience profile this package exposes.
func P8(x float64) (Posit, error) { return FromDouble(x, 8, 0) }

// P8Bits decodes bits as a P<8,0> posit.
func P8Bits(bits uint64) (Posit, error) { return FromBits(bits, 8, 0) }

// P16 converts x to a posit in the P<16,1> configuration — the profile
// exchanged with the Van-der-Pol oscillator hardware this package was
// built to validate.
func P16(x float64) (Posit, error) { return FromDouble(x, 16, 1) }

// P16Bits decodes bits as a P<16,1> posit.
func P16Bits(bits uint64) (Posit, error) { return FromBits(bits, 16, 1) }

// P32 converts x to a posit in the P<32,2> configuration.
func P32(x float64) (Posit, error) { return FromDouble(x, 32, 2) }

// P32Bits decodes bits as a P<32,2> posit.
func P32Bits(bits uint64) (Posit, error) { return FromBits(bits, 32, 2) }
