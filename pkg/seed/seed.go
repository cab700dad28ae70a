// Package seed turns arbitrary input strings into reproducible streams of
// pseudo-random values.
//
// The pipeline is a 32-bit FNV-1a hash of the normalized input feeding a
// Mulberry32 generator. Both algorithms are fixed down to the bit level:
// the same normalized string always yields the same stream, on every
// platform, forever. Nothing in this package may consult the clock, the
// OS entropy pool, or anything else non-deterministic.
package seed

import "strings"

// FNV-1a parameters (32-bit variant).
const (
	offsetBasis uint32 = 0x811c9dc5
	prime       uint32 = 0x01000193
)

// mulberryIncrement is the odd constant added to the Mulberry32 state
// before each output is mixed.
const mulberryIncrement uint32 = 0x6d2b79f5

// Normalize canonicalizes an input string before hashing: surrounding
// whitespace is trimmed and the result is lowercased, so " Vitalik.ETH "
// and "vitalik.eth" seed the same stream.
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Hash returns the 32-bit FNV-1a hash of the normalized input.
func Hash(input string) uint32 {
	h := offsetBasis
	for _, r := range Normalize(input) {
		h ^= uint32(r)
		h *= prime
	}
	return h
}

// Stream is a deterministic Mulberry32 generator. The zero value is a
// valid stream seeded with zero; use New to seed one from a string.
type Stream struct {
	state uint32
}

// New returns a stream seeded from the FNV-1a hash of input.
func New(input string) *Stream {
	return &Stream{state: Hash(input)}
}

// NewFromHash returns a stream seeded directly with a 32-bit value.
func NewFromHash(h uint32) *Stream {
	return &Stream{state: h}
}

// Next advances the stream and returns the next value in [0,1).
func (s *Stream) Next() float64 {
	s.state += mulberryIncrement
	z := s.state
	z = (z ^ (z >> 15)) * (z | 1)
	z ^= z + (z^(z>>7))*(z|61)
	return float64(z^(z>>14)) / (1 << 32)
}

// Values returns count values drawn in order from a fresh stream seeded
// with input. Each value lies in [0,1). A non-positive count yields an
// empty slice.
func Values(input string, count int) []float64 {
	if count <= 0 {
		return nil
	}
	s := New(input)
	out := make([]float64, count)
	for i := range out {
		out[i] = s.Next()
	}
	return out
}
