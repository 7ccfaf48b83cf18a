// Package random provides the pseudorandom streams that drive world generation.
//
// A Stream is a value: drawing from it returns the face and a new Stream, and
// the old value is never advanced in place. Threading the stream explicitly
// through every throw keeps generation reproducible from a seed and free of
// any shared generator.
package random

import (
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Stream yields uniform die faces.
type Stream interface {
	// Next returns a face in [1, sides] and the stream positioned after it.
	Next(sides int) (int, Stream)
}

// Knuth MMIX linear congruential constants.
const (
	lcgMultiplier = 6364136223846793005
	lcgIncrement  = 1442695040888963407
)

type lcg struct {
	state uint64
}

// New returns the stream for seed. Equal seeds yield equal sequences.
func New(seed uint64) Stream {
	return lcg{state: seed}
}

func (s lcg) Next(sides int) (int, Stream) {
	mustHaveSides(sides)

	next := s.state*lcgMultiplier + lcgIncrement
	// the high 32 bits are the well-mixed part of an LCG word
	high := next >> 32
	face := int((high*uint64(sides))>>32) + 1
	return face, lcg{state: next}
}

func mustHaveSides(sides int) {
	if sides <= 0 {
		panic(errors.OutOfRangef("die must have at least one side, got %d", sides))
	}
}
