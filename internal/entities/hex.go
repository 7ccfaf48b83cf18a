package entities

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Each axis of a hex coordinate renders as two digits.
const maxHexAxis = 99

// HexCoordinate locates a world on a subsector map by column and row.
type HexCoordinate struct {
	Horizontal int `json:"horizontal" yaml:"horizontal"`
	Vertical   int `json:"vertical" yaml:"vertical"`
}

// String renders the canonical 4-character code, column then row,
// each zero-padded: {19, 10} is "1910".
func (h HexCoordinate) String() string {
	return fmt.Sprintf("%02d%02d", h.Horizontal, h.Vertical)
}

// Validate checks both axes fit the 4-character code.
func (h HexCoordinate) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("horizontal", h.Horizontal, 0, maxHexAxis, vb)
	errors.ValidateRange("vertical", h.Vertical, 0, maxHexAxis, vb)
	return vb.Build()
}

// ParseHexCoordinate parses a 4-digit code such as "0101".
func ParseHexCoordinate(code string) (HexCoordinate, error) {
	if len(code) != 4 {
		return HexCoordinate{}, errors.InvalidArgumentf("hex coordinate %q must be 4 digits", code)
	}

	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return HexCoordinate{}, errors.InvalidArgumentf("hex coordinate %q must be 4 digits", code)
		}
	}

	horizontal, _ := strconv.Atoi(code[:2])
	vertical, _ := strconv.Atoi(code[2:])
	return HexCoordinate{Horizontal: horizontal, Vertical: vertical}, nil
}
