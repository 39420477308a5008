// Package fixtures describes named posit configurations and golden
// bit-pattern/value vectors in TOML, the way arm-emulator's config
// package gives its emulator settings a declarative, file-backed form.
package fixtures

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/adonairc/posit/posit"
)

// Profile names a (Size, ES) posit configuration.
type Profile struct {
	Name string `toml:"name"`
	Size uint   `toml:"size"`
	ES   uint   `toml:"es"`
}

// Vector is one golden bit-pattern/value pair within a profile.
type Vector struct {
	Bits  uint64  `toml:"bits"`
	Value float64 `toml:"value"`
}

// Set is the top-level TOML document: one entry per profile, each
// carrying its own golden vectors.
type Set struct {
	Profiles []ProfileVectors `toml:"profile"`
}

// ProfileVectors pairs a Profile with the vectors checked against it.
type ProfileVectors struct {
	Profile
	Vectors []Vector `toml:"vector"`
}

// DefaultSet returns the built-in p8/p16/p32 profiles (matching the
// source's posit8()/posit16()/posit32() convenience constructors) along
// with the spec's known golden vectors.
func DefaultSet() Set {
	return Set{
		Profiles: []ProfileVectors{
			{
				Profile: Profile{Name: "p8", Size: 8, ES: 0},
				Vectors: []Vector{
					{Bits: 0x00, Value: 0},
					{Bits: 0x40, Value: 1},
					{Bits: 0x80, Value: math.Inf(1)},
				},
			},
			{
				Profile: Profile{Name: "p16", Size: 16, ES: 1},
				Vectors: []Vector{
					{Bits: 0x0000, Value: 0},
					{Bits: 0x4000, Value: 1},
					{Bits: 0x3000, Value: 0.5},
					{Bits: 0x8000, Value: math.Inf(1)},
				},
			},
			{
				Profile: Profile{Name: "p32", Size: 32, ES: 2},
				Vectors: []Vector{
					{Bits: 0x00000000, Value: 0},
					{Bits: 0x40000000, Value: 1},
					{Bits: 0x80000000, Value: math.Inf(1)},
				},
			},
		},
	}
}

// Load reads a vector Set from a TOML file at path.
func Load(path string) (Set, error) {
	var s Set
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Set{}, fmt.Errorf("fixtures: failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Save writes s to path as TOML.
func (s Set) Save(path string) error {
	f, err := os.Create(path) // #nosec G304 -- operator-supplied fixture path
	if err != nil {
		return fmt.Errorf("fixtures: failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("fixtures: failed to encode %s: %w", path, err)
	}
	return nil
}

// Verify decodes every vector in pv.Vectors at pv.Profile's (Size, ES)
// and reports the first vector, if any, that fails to decode or whose
// evaluated value differs from the expected value.
func (pv ProfileVectors) Verify() error {
	for _, v := range pv.Vectors {
		p, err := posit.FromBits(v.Bits, pv.Size, pv.ES)
		if err != nil {
			return fmt.Errorf("fixtures: profile %s: decode %#x: %w", pv.Name, v.Bits, err)
		}

		got := p.Eval()
		if got != v.Value && !(math.IsInf(got, 1) && math.IsInf(v.Value, 1)) {
			return fmt.Errorf("fixtures: profile %s: bits %#x evaluated to %v, want %v", pv.Name, v.Bits, got, v.Value)
		}
	}
	return nil
}
