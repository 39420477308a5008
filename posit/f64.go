package posit

import "math"

// f64ExpBias is the IEEE-754 binary64 exponent bias.
const f64ExpBias = 1023

// f64MantBits is the width of the binary64 mantissa field.
const f64MantBits = 52

// f64View decomposes a binary64 into its sign, biased exponent, and
// mantissa fields by reinterpreting its bit pattern. Subnormals, infinities,
// and NaN are not special-cased here; FromDouble only guards x == 0 and
// x == +Inf before reaching this view.
type f64View struct {
	sign uint64
	exp  uint64
	mant uint64
}

func newF64View(x float64) f64View {
	bits := math.Float64bits(x)
	return f64View{
		sign: bits >> 63,
		exp:  (bits >> f64MantBits) & 0x7FF,
		mant: bits & ((uint64(1) << f64MantBits) - 1),
	}
}

// eval reconstructs the real value (-1)^sign * 2^(exp-bias) * (1 + mant/2^52).
func (f f64View) eval() float64 {
	sign := 1.0
	if f.sign == 1 {
		sign = -1.0
	}
	return sign * math.Pow(2, float64(int(f.exp)-f64ExpBias)) * (1 + float64(f.mant)/float64(uint64(1)<<f64MantBits))
}
