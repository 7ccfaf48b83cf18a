package random

import (
	crand "crypto/rand"
	"encoding/binary"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

// NewSeed draws a seed from crypto/rand. Zero is never returned so callers
// can keep using zero to mean "no seed supplied".
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, errors.Wrap(err, "failed to read random seed")
	}

	seed := binary.LittleEndian.Uint64(b[:])
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
