package posit

import "math"

// Posit is the immutable value type at the center of this package: a
// (size, es, sign, regime, exp, mant) record. Values are produced by
// FromBits, FromDouble, or Mul and never mutated afterward; Inc/Dec
// produce new records rather than modifying the receiver.
type Posit struct {
	Size   uint
	ES     uint
	Sign   uint8
	Regime Regime
	Exp    uint64
	Mant   uint64
}

// New builds a Posit from its logical fields, validating that Exp fits in
// ES bits. Callers that already hold a Regime (from FromBits, FromDouble,
// or the Mul rounding step) should use this rather than constructing the
// struct literal directly, so the invariant stays checked in one place.
func New(size, es uint, sign uint8, regime Regime, exp, mant uint64) (Posit, error) {
	if exp > (uint64(1)<<es)-1 {
		return Posit{}, argErrorf("posit: exponent %d does not fit in %d bits", exp, es)
	}
	return Posit{Size: size, ES: es, Sign: sign, Regime: regime, Exp: exp, Mant: mant}, nil
}

// IsSpecial reports whether p is the zero or infinity/NaR posit.
func (p Posit) IsSpecial() bool {
	return p.Regime.Special
}

// MantLen returns the number of bits actually available to the mantissa
// field, after the sign, the regime run, and the (possibly truncated)
// exponent field. It is 0, not meaningful, for special posits.
func (p Posit) MantLen() int {
	if p.IsSpecial() {
		return 0
	}
	return int(p.Size) - 1 - p.Regime.RegLen() - int(p.ES)
}

// BitRepr composes the logical fields into the canonical N-bit word,
// applying two's-complement wrap when Sign is set.
func (p Posit) BitRepr() (uint64, error) {
	if p.IsSpecial() {
		if p.Sign == 0 {
			return 0, nil
		}
		return msb(p.Size), nil
	}

	signShift := int(p.Size) - 1
	regimeShift := signShift - p.Regime.RegLen()
	expShift := regimeShift - int(p.ES)

	regimeBits, err := p.Regime.Bits()
	if err != nil {
		return 0, err
	}

	bits := shl(uint64(p.Sign), signShift, p.Size) |
		shl(regimeBits, regimeShift, p.Size) |
		shl(p.Exp, expShift, p.Size) |
		p.Mant

	if p.Sign == 0 {
		return bits, nil
	}
	return c2(bits&^msb(p.Size), p.Size), nil
}

// Eval returns the real value of p. Specials evaluate to 0 (sign 0) or
// +Inf (sign 1, covering both infinity and NaR). Non-specials that
// overflow the host float range evaluate to ±0 or ±Inf depending on the
// sign of the aggregate scale exponent, matching a saturating hardware
// evaluator rather than panicking.
func (p Posit) Eval() float64 {
	signMult := 1.0
	if p.Sign == 1 {
		signMult = -1.0
	}

	if p.IsSpecial() {
		if p.Sign == 0 {
			return 0
		}
		return math.Inf(1)
	}

	f := p.MantLen()
	aggregate := (int64(1) << p.ES) * int64(p.Regime.K) + int64(p.Exp)
	frac := 1 + float64(p.Mant)/math.Pow(2, float64(f))

	return signMult * math.Ldexp(frac, int(aggregate))
}

// Less, LessOrEqual, Greater, GreaterOrEqual compare posits by their
// evaluated real value.
func (p Posit) Less(other Posit) bool           { return p.Eval() < other.Eval() }
func (p Posit) LessOrEqual(other Posit) bool    { return p.Eval() <= other.Eval() }
func (p Posit) Greater(other Posit) bool        { return p.Eval() > other.Eval() }
func (p Posit) GreaterOrEqual(other Posit) bool { return p.Eval() >= other.Eval() }

// IncBits adds n to p's bit-space representation, wrapping mod 2^size,
// and redecodes the result. This is the only well-defined increment
// semantics this package exposes — the source's `__add__` is a bug (it
// doubles the increment before adding) and is deliberately not ported;
// see DESIGN.md.
func (p Posit) IncBits(n int64) (Posit, error) {
	bits, err := p.BitRepr()
	if err != nil {
		return Posit{}, err
	}
	newBits := uint64(int64(bits)+n) & mask(p.Size)
	return FromBits(newBits, p.Size, p.ES)
}

// DecBits subtracts n from p's bit-space representation. See IncBits.
func (p Posit) DecBits(n int64) (Posit, error) {
	return p.IncBits(-n)
}

// BitAbs returns the unsigned bit-space distance between two posits of
// the same configuration: |p1.BitRepr() - p2.BitRepr()|.
func BitAbs(p1, p2 Posit) (uint64, error) {
	b1, err := p1.BitRepr()
	if err != nil {
		return 0, err
	}
	b2, err := p2.BitRepr()
	if err != nil {
		return 0, err
	}
	if b1 > b2 {
		return b1 - b2, nil
	}
	return b2 - b1, nil
}
