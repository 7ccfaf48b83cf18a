package entities

import (
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Starport is the letter grade of a world's starport, A best through X none.
type Starport byte

// Starport classes
const (
	StarportA Starport = 'A'
	StarportB Starport = 'B'
	StarportC Starport = 'C'
	StarportD Starport = 'D'
	StarportE Starport = 'E'
	StarportX Starport = 'X'
)

// Starports lists every class from best to none.
var Starports = []Starport{StarportA, StarportB, StarportC, StarportD, StarportE, StarportX}

// String returns the class letter
func (s Starport) String() string {
	return string(rune(s))
}

// Valid reports whether s is one of the defined classes.
func (s Starport) Valid() bool {
	switch s {
	case StarportA, StarportB, StarportC, StarportD, StarportE, StarportX:
		return true
	default:
		return false
	}
}

// SupportsNavalBase reports whether a naval base may be present (A or B).
func (s Starport) SupportsNavalBase() bool {
	return s == StarportA || s == StarportB
}

// SupportsScoutBase reports whether a scout base may be present (not E or X).
func (s Starport) SupportsScoutBase() bool {
	return s != StarportE && s != StarportX
}

// MarshalText renders the class letter so JSON and YAML stay readable
func (s Starport) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, errors.InvalidArgumentf("invalid starport class %q", byte(s))
	}
	return []byte{byte(s)}, nil
}

// UnmarshalText parses a class letter
func (s *Starport) UnmarshalText(text []byte) error {
	if len(text) != 1 || !Starport(text[0]).Valid() {
		return errors.InvalidArgumentf("invalid starport class %q", string(text))
	}
	*s = Starport(text[0])
	return nil
}
