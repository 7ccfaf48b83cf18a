package testutils

import (
	"time"

	"github.com/KirkDiggler/starjumper/internal/classification"
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/repositories/worlds"
)

// Fixture defaults
const (
	TestWorldName   = "Regina"
	TestSubsectorID = "subsector_1"
	TestSeed        = uint64(1105)
)

// TestCreatedAt is the creation time stamped on fixture data.
var TestCreatedAt = time.Date(1105, time.January, 1, 0, 0, 0, 0, time.UTC)

// CreateTestWorld creates a world with a fixed, fully populated profile.
func CreateTestWorld(id string) *entities.World {
	return &entities.World{
		ID:   id,
		Name: TestWorldName,
		Hex:  entities.HexCoordinate{Horizontal: 19, Vertical: 10},
		Profile: entities.Profile{
			Starport:      entities.StarportA,
			Size:          7,
			Atmosphere:    8,
			Hydrographics: 8,
			Population:    8,
			Government:    9,
			LawLevel:      9,
			TechLevel:     12,
		},
		NavalBase: true,
		ScoutBase: true,
		GasGiant:  true,
		TradeClassifications: []*entities.TradeClassification{
			TradeClassification("Ri"),
		},
	}
}

// CreateTestWorldAt creates a fixture world at the given hex.
func CreateTestWorldAt(id string, horizontal, vertical int) *entities.World {
	w := CreateTestWorld(id)
	w.Hex = entities.HexCoordinate{Horizontal: horizontal, Vertical: vertical}
	return w
}

// CreateTestWorldData wraps a fixture world in its stored form.
func CreateTestWorldData(id, subsectorID string) *worlds.WorldData {
	return &worlds.WorldData{
		World:       CreateTestWorld(id),
		SubsectorID: subsectorID,
		Seed:        TestSeed,
		CreatedAt:   TestCreatedAt,
	}
}

// CreateTestSubsector creates subsector metadata with fixture defaults.
func CreateTestSubsector(id string) *entities.Subsector {
	return &entities.Subsector{
		ID:      id,
		Name:    "Regina",
		Seed:    TestSeed,
		Density: "standard",
	}
}

// TradeClassification returns the shared classification for abbreviation
// and panics when there is none.
func TradeClassification(abbreviation string) *entities.TradeClassification {
	tc, err := classification.ByAbbreviation(abbreviation)
	if err != nil {
		panic(err)
	}
	return tc
}
