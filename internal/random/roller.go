package random

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Roller adapts a Stream to the rpg-toolkit dice.Roller interface for code
// written against the toolkit. It is the one stateful wrapper in this
// package: each roll replaces the held stream, and Stream hands the advanced
// value back so the caller can keep threading it.
//
// A Roller must not be shared between goroutines.
type Roller struct {
	stream Stream
}

// Verify that Roller implements dice.Roller
var _ dice.Roller = (*Roller)(nil)

// NewRoller returns a Roller drawing from s.
func NewRoller(s Stream) *Roller {
	return &Roller{stream: s}
}

// Roll returns a face in [1, size].
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}

	face, next := r.stream.Next(size)
	r.stream = next
	return face, nil
}

// RollN rolls count dice of the given size in order.
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}

	faces := make([]int, count)
	for i := range faces {
		face, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		faces[i] = face
	}
	return faces, nil
}

// Stream returns the stream positioned after every roll made so far.
func (r *Roller) Stream() Stream {
	return r.stream
}

// Reset replaces the held stream, typically with one advanced elsewhere.
func (r *Roller) Reset(s Stream) {
	r.stream = s
}
