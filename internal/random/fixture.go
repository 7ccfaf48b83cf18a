package random

import (
	"github.com/KirkDiggler/starjumper/internal/errors"
)

type fixed struct {
	face int
}

// Fixed returns a stream that yields face on every draw.
func Fixed(face int) Stream {
	return fixed{face: face}
}

func (s fixed) Next(sides int) (int, Stream) {
	mustHaveSides(sides)
	if s.face < 1 || s.face > sides {
		panic(errors.OutOfRangef("fixed face %d cannot come up on a d%d", s.face, sides))
	}
	return s.face, s
}

// Sequence yields a scripted list of faces in order.
type Sequence struct {
	faces    []int
	position int
}

// Script returns a Sequence over faces. Drawing past the last face panics,
// so a script also asserts how many draws a caller makes.
func Script(faces ...int) Sequence {
	copied := make([]int, len(faces))
	copy(copied, faces)
	return Sequence{faces: copied}
}

// Next implements Stream
func (s Sequence) Next(sides int) (int, Stream) {
	mustHaveSides(sides)
	if s.position >= len(s.faces) {
		panic(errors.OutOfRangef("scripted stream exhausted after %d draws", len(s.faces)))
	}
	face := s.faces[s.position]
	if face < 1 || face > sides {
		panic(errors.OutOfRangef("scripted face %d at draw %d cannot come up on a d%d", face, s.position, sides))
	}
	return face, Sequence{faces: s.faces, position: s.position + 1}
}

// Position reports how many faces have been drawn.
func (s Sequence) Position() int {
	return s.position
}

// Remaining reports how many scripted faces are left.
func (s Sequence) Remaining() int {
	return len(s.faces) - s.position
}
