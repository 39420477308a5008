package posit

import "math"

// FromDouble converts a binary64 value into a Posit of the given (size, es),
// splitting the unbiased binary64 exponent into a regime run-length k and a
// residual exponent p_exp, then rounding the truncated mantissa to nearest
// with the sign-asymmetric tie rule the source uses: on an exact tie a
// positive value keeps its truncated magnitude, while a negative value has
// its magnitude rounded up, so both round toward negative infinity on ties.
//
// No rollover carry from the rounded mantissa propagates into exp/regime
// here; see DESIGN.md for why this matches the source rather than SoftPosit
// in every case.
func FromDouble(x float64, size, es uint) (Posit, error) {
	if x == 0 {
		return FromBits(0, size, es)
	}
	if x == math.Inf(1) {
		return FromBits(msb(size), size, es)
	}

	f := newF64View(x)
	sign := uint8(f.sign)

	unbiased := int64(f.exp) - f64ExpBias

	k := unbiased >> es // arithmetic shift: floor(unbiased / 2^es)
	pExp := uint64(unbiased - (k << es))

	r := NewRegime(size, int(k))
	mantLen := int(size) - 1 - int(es) - r.RegLen()

	diff := f64MantBits - mantLen
	pMant := f.mant >> uint(diff)

	discarded := f.mant & (uint64(1)<<uint(diff) - 1)
	threshold := uint64(1) << uint(diff-1)

	if sign == 0 {
		if discarded > threshold {
			pMant++
		}
	} else {
		if discarded >= threshold {
			pMant++
		}
	}

	return New(size, es, sign, r, pExp, pMant)
}
