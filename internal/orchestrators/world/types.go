package world

import (
	"github.com/KirkDiggler/starjumper/internal/description"
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// MaxSubsectorNameLength bounds subsector names.
const MaxSubsectorNameLength = 40

// GenerateWorldInput defines the request for generating a single world
type GenerateWorldInput struct {
	// Name of the world; a name is drawn from the seed when empty
	Name string
	Hex  entities.HexCoordinate
	// Seed for the dice; 0 draws a fresh seed
	Seed uint64
}

// Validate checks the hex and that the name fits the description's name
// column.
func (i *GenerateWorldInput) Validate() error {
	if err := i.Hex.Validate(); err != nil {
		return err
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", i.Name, description.NameWidth, vb)
	return vb.Build()
}

// GenerateWorldOutput defines the response for generating a single world
type GenerateWorldOutput struct {
	World       *entities.World
	Description string
	Seed        uint64
}

// GenerateSubsectorInput defines the request for generating a subsector
type GenerateSubsectorInput struct {
	Name    string
	Seed    uint64
	Density entities.Density
}

// Validate checks the name length. Density is checked when parsed.
func (i *GenerateSubsectorInput) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMaxLength("name", i.Name, MaxSubsectorNameLength, vb)
	return vb.Build()
}

// GenerateSubsectorOutput defines the response for generating a subsector
type GenerateSubsectorOutput struct {
	Subsector    *entities.Subsector
	Worlds       []*entities.World
	Descriptions []string
}

// GetWorldInput defines the request for loading a stored world
type GetWorldInput struct {
	ID string
}

// GetWorldOutput defines the response for loading a stored world
type GetWorldOutput struct {
	World       *entities.World
	Description string
	SubsectorID string
	Seed        uint64
}

// ListWorldsInput defines the request for listing a subsector's worlds
type ListWorldsInput struct {
	SubsectorID string
}

// ListWorldsOutput defines the response for listing a subsector's worlds
type ListWorldsOutput struct {
	Subsector    *entities.Subsector
	Worlds       []*entities.World
	Descriptions []string
}
