package entities

import (
	"strings"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Density controls how many subsector hexes hold a world.
type Density string

// Subsector densities
const (
	DensityRift     Density = "rift"
	DensitySparse   Density = "sparse"
	DensityStandard Density = "standard"
	DensityDense    Density = "dense"
)

// Densities lists every density from emptiest to fullest.
var Densities = []Density{DensityRift, DensitySparse, DensityStandard, DensityDense}

// Threshold is the lowest 1d6 face that places a world in a hex.
func (d Density) Threshold() int {
	switch d {
	case DensityRift:
		return 6
	case DensitySparse:
		return 5
	case DensityDense:
		return 3
	default:
		return 4
	}
}

// ParseDensity accepts a density name in any case. Empty means standard.
func ParseDensity(s string) (Density, error) {
	if s == "" {
		return DensityStandard, nil
	}
	d := Density(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Densities {
		if d == known {
			return d, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown density %q", s).
		WithMeta("valid", Densities)
}
