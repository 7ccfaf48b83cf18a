package dice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

var (
	// Simple dice notation with an optional flat modifier: "2d6", "1d6+3", "2d6-7"
	notationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)
)

// Spec is parsed dice notation.
type Spec struct {
	Count     int
	Sides     int
	Modifiers Modifiers
}

// ParseNotation parses notation like "2d6" or "2d6-2".
func ParseNotation(notation string) (Spec, error) {
	matches := notationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if matches == nil {
		return Spec{}, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err := strconv.Atoi(matches[1])
	if err != nil {
		return Spec{}, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return Spec{}, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if count <= 0 || sides <= 0 {
		return Spec{}, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}

	spec := Spec{Count: count, Sides: sides}
	if matches[3] != "" {
		modifier, err := strconv.Atoi(matches[3])
		if err != nil {
			return Spec{}, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
		spec.Modifiers = NewModifiers(modifier)
	}

	return spec, nil
}
