package posit

import "fmt"

// FromBits decodes an N-bit word into a Posit, splitting it into sign,
// regime run, exponent, and mantissa fields.
//
// It fails if es is too wide for the posit (es > size-1) or if bits does
// not fit in size bits. Both are argument-domain errors per spec §7: the
// caller passed something that cannot be interpreted, not a value this
// package can round or saturate its way out of.
func FromBits(bits uint64, size, es uint) (Posit, error) {
	if es > size-1 {
		return Posit{}, argErrorf("posit: es=%d can't be larger than size-1=%d", es, size-1)
	}
	if bits > mask(size) {
		return Posit{}, argErrorf("posit: bits=%#x does not fit in %d bits", bits, size)
	}

	sign := uint8(bits >> (size - 1))

	if (bits<<1)&mask(size) == 0 {
		return New(size, es, sign, NewSpecialRegime(size), 0, 0)
	}

	u := bits
	if sign == 1 {
		u = c2(bits, size)
	}

	regMSB := uint64(1) << (size - 2)
	var k int
	if u&regMSB != 0 {
		k = cls(shl(u, 1, size), size, 1) - 1
	} else {
		k = -cls(shl(u, 1, size), size, 0)
	}

	r := NewRegime(size, k)
	regLen := r.RegLen()

	exp := shr((shl(u, 1+regLen, size)), int(size-es), size)
	mant := shr(shl(u, 1+regLen+int(es), size), 1+regLen+int(es), size)

	p, err := New(size, es, sign, r, exp, mant)
	if err != nil {
		return Posit{}, err
	}

	// Round-trip check: the decoded posit must re-encode to bits exactly.
	// A mismatch here is an implementation bug, not a caller error.
	got, err := p.BitRepr()
	if err != nil {
		return Posit{}, err
	}
	if got != bits {
		return Posit{}, fmt.Errorf("posit: internal decode/encode mismatch: decoded %#x re-encodes to %#x", bits, got)
	}

	return p, nil
}
