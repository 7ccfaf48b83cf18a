package tables

import (
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Starport is keyed by an unmodified 2d6 throw.
var Starport = New("starport", 2,
	entities.StarportA, // 2
	entities.StarportA, // 3
	entities.StarportA, // 4
	entities.StarportB, // 5
	entities.StarportB, // 6
	entities.StarportC, // 7
	entities.StarportC, // 8
	entities.StarportD, // 9
	entities.StarportE, // 10
	entities.StarportE, // 11
	entities.StarportX, // 12
)

// NavalBase is keyed by an unmodified 2d6 throw.
var NavalBase = New("naval base", 2,
	false, // 2
	false, // 3
	false, // 4
	false, // 5
	false, // 6
	false, // 7
	true,  // 8
	true,  // 9
	true,  // 10
	true,  // 11
	true,  // 12
)

// ScoutBase is keyed by 2d6 plus the starport modifier, which reaches -1 at
// class A.
var ScoutBase = New("scout base", -1,
	false, // -1
	false, // 0
	false, // 1
	false, // 2
	false, // 3
	false, // 4
	false, // 5
	false, // 6
	true,  // 7
	true,  // 8
	true,  // 9
	true,  // 10
	true,  // 11
	true,  // 12
)

// GasGiant is keyed by an unmodified 2d6 throw.
var GasGiant = New("gas giant", 2,
	true,  // 2
	true,  // 3
	true,  // 4
	true,  // 5
	true,  // 6
	true,  // 7
	true,  // 8
	true,  // 9
	false, // 10
	false, // 11
	false, // 12
)

// TechSize is the tech level modifier keyed by size.
var TechSize = New("tech level size", 0,
	+2, // 0
	+2, // 1
	+1, // 2
	+1, // 3
	+1, // 4
	0,  // 5
	0,  // 6
	0,  // 7
	0,  // 8
	0,  // 9
	0,  // 10
)

// TechAtmosphere is the tech level modifier keyed by atmosphere.
var TechAtmosphere = New("tech level atmosphere", 0,
	+1, // 0
	+1, // 1
	+1, // 2
	+1, // 3
	0,  // 4
	0,  // 5
	0,  // 6
	0,  // 7
	0,  // 8
	0,  // 9
	+1, // 10
	+1, // 11
	+1, // 12
	+1, // 13
	+1, // 14
	+1, // 15
)

// TechHydrographics is the tech level modifier keyed by hydrographics.
var TechHydrographics = New("tech level hydrographics", 0,
	0,  // 0
	0,  // 1
	0,  // 2
	0,  // 3
	0,  // 4
	0,  // 5
	0,  // 6
	0,  // 7
	0,  // 8
	+1, // 9
	+2, // 10
)

// TechPopulation is the tech level modifier keyed by population.
var TechPopulation = New("tech level population", 0,
	0,  // 0
	+1, // 1
	+1, // 2
	+1, // 3
	+1, // 4
	+1, // 5
	0,  // 6
	0,  // 7
	0,  // 8
	+2, // 9
	+4, // 10
)

// TechGovernment is the tech level modifier keyed by government.
var TechGovernment = New("tech level government", 0,
	+1, // 0
	0,  // 1
	0,  // 2
	0,  // 3
	0,  // 4
	+1, // 5
	0,  // 6
	0,  // 7
	0,  // 8
	0,  // 9
	0,  // 10
	0,  // 11
	0,  // 12
	-2, // 13
	0,  // 14
	0,  // 15
)

// StarportTechBonus returns the tech level modifier for a starport class.
func StarportTechBonus(s entities.Starport) int {
	switch mustBeStarport(s) {
	case entities.StarportA:
		return +6
	case entities.StarportB:
		return +4
	case entities.StarportC:
		return +2
	case entities.StarportX:
		return -4
	default:
		return 0
	}
}

// ScoutBaseModifier returns the scout base throw modifier for a starport
// class. Better ports host fewer scout bases.
func ScoutBaseModifier(s entities.Starport) int {
	switch mustBeStarport(s) {
	case entities.StarportA:
		return -3
	case entities.StarportB:
		return -2
	case entities.StarportC:
		return -1
	default:
		return 0
	}
}

func mustBeStarport(s entities.Starport) entities.Starport {
	if !s.Valid() {
		panic(errors.OutOfRangef("invalid starport class %q", byte(s)))
	}
	return s
}
