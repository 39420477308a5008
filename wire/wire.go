// Package wire implements the byte-level exchange format for posits: a
// posit word serialized big-endian into the smallest whole number of
// bytes that holds it, mirroring how the hardware reference pads a posit
// onto a byte-aligned bus.
package wire

import (
	"fmt"

	"github.com/adonairc/posit/posit"
)

// ExchangeWidth returns the number of bytes one posit word of the given
// size occupies on the wire: ceil(size/8).
func ExchangeWidth(size uint) int {
	return int((size + 7) / 8)
}

// Encode serializes p into its wire form: BitRepr(), big-endian, padded
// on the left to ExchangeWidth(p.Size) bytes.
func Encode(p posit.Posit) ([]byte, error) {
	bits, err := p.BitRepr()
	if err != nil {
		return nil, err
	}

	width := ExchangeWidth(p.Size)
	out := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		out[i] = byte(bits)
		bits >>= 8
	}
	return out, nil
}

// Decode reads a posit of the given (size, es) from the low
// ExchangeWidth(size) bytes of b, masked to size bits. Extra leading bytes (a receiver
// reading a wider bus word than the posit needs) are ignored, mirroring
// the source's habit of padding a posit into a 4-byte host word and
// discarding the unused high bytes on decode.
func Decode(b []byte, size, es uint) (posit.Posit, error) {
	width := ExchangeWidth(size)
	if len(b) < width {
		return posit.Posit{}, fmt.Errorf("wire: need at least %d bytes for a %d-bit posit, got %d", width, size, len(b))
	}

	tail := b[len(b)-width:]
	var bits uint64
	for _, byt := range tail {
		bits = (bits << 8) | uint64(byt)
	}

	return posit.FromBits(bits&(uint64(1)<<size-1), size, es)
}
