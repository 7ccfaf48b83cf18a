// Package world implements the world catalog: it generates worlds and
// subsectors from seeds and stores them.
package world

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/starjumper/internal/description"
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/pkg/clock"
	"github.com/KirkDiggler/starjumper/internal/pkg/idgen"
	"github.com/KirkDiggler/starjumper/internal/random"
	"github.com/KirkDiggler/starjumper/internal/repositories/worlds"
	"github.com/KirkDiggler/starjumper/internal/worldgen"
)

// Service defines the interface for world catalog operations
type Service interface {
	GenerateWorld(ctx context.Context, input *GenerateWorldInput) (*GenerateWorldOutput, error)
	GenerateSubsector(ctx context.Context, input *GenerateSubsectorInput) (*GenerateSubsectorOutput, error)
	GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error)
	ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error)
}

// SeedSource supplies a seed when the caller asks for a random one.
type SeedSource func() (uint64, error)

// Config holds the dependencies for the world orchestrator
type Config struct {
	Generator   *worldgen.Generator
	Repository  worlds.Repository
	IDGenerator idgen.Generator

	// Optional; default to the system clock and random.NewSeed
	Clock      clock.Clock
	SeedSource SeedSource
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Generator == nil {
		vb.RequiredField("Generator")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	generator *worldgen.Generator
	repo      worlds.Repository
	idGen     idgen.Generator
	clock     clock.Clock
	newSeed   SeedSource
}

// NewOrchestrator creates a new world orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	newSeed := cfg.SeedSource
	if newSeed == nil {
		newSeed = random.NewSeed
	}

	return &orchestrator{
		generator: cfg.Generator,
		repo:      cfg.Repository,
		idGen:     cfg.IDGenerator,
		clock:     c,
		newSeed:   newSeed,
	}, nil
}

func (o *orchestrator) resolveSeed(seed uint64) (uint64, error) {
	if seed != 0 {
		return seed, nil
	}
	seed, err := o.newSeed()
	if err != nil {
		return 0, errors.Wrap(err, "failed to draw seed")
	}
	return seed, nil
}

// GenerateWorld generates one world from a seed and stores it
func (o *orchestrator) GenerateWorld(ctx context.Context, input *GenerateWorldInput) (*GenerateWorldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	seed, err := o.resolveSeed(input.Seed)
	if err != nil {
		return nil, err
	}

	s := random.New(seed)
	name := input.Name
	if name == "" {
		name, _ = worldgen.Name(random.New(^seed))
	}

	w, _ := o.generator.Generate(worldgen.Input{
		ID:   o.idGen.Generate(),
		Name: name,
		Hex:  input.Hex,
	}, s)

	_, err = o.repo.Create(ctx, worlds.CreateInput{
		Data: &worlds.WorldData{
			World:     w,
			Seed:      seed,
			CreatedAt: o.clock.Now(),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store world")
	}

	slog.Info("World generated",
		"world_id", w.ID,
		"name", w.Name,
		"hex", w.Hex.String(),
		"uwp", w.UWP(),
		"seed", seed)

	return &GenerateWorldOutput{
		World:       w,
		Description: description.Render(w),
		Seed:        seed,
	}, nil
}

// GenerateSubsector fills an 8 by 10 grid of hexes from one seed. Each hex
// is checked for a world with 1d6 against the density threshold; occupied
// hexes get a name and a world drawn from the same stream.
func (o *orchestrator) GenerateSubsector(ctx context.Context, input *GenerateSubsectorInput) (*GenerateSubsectorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	density, err := entities.ParseDensity(string(input.Density))
	if err != nil {
		return nil, err
	}

	seed, err := o.resolveSeed(input.Seed)
	if err != nil {
		return nil, err
	}

	subsector := &entities.Subsector{
		ID:      o.idGen.Generate(),
		Name:    input.Name,
		Seed:    seed,
		Density: density,
	}
	if subsector.Name == "" {
		subsector.Name = fmt.Sprintf("Subsector %d", seed%10000)
	}

	roller := random.NewRoller(random.New(seed))
	generated, err := o.fillGrid(roller, density)
	if err != nil {
		return nil, err
	}

	// Worlds go in before the subsector record, so a subsector that can be
	// loaded always has its full index. A failure part way leaves only
	// unlisted worlds behind.
	now := o.clock.Now()
	descriptions := make([]string, len(generated))
	for i, w := range generated {
		_, err := o.repo.Create(ctx, worlds.CreateInput{
			Data: &worlds.WorldData{
				World:       w,
				SubsectorID: subsector.ID,
				Seed:        seed,
				CreatedAt:   now,
			},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to store world %s", w.Hex.String()).
				WithMeta("subsector_id", subsector.ID)
		}
		descriptions[i] = description.Render(w)
	}

	if _, err := o.repo.CreateSubsector(ctx, worlds.CreateSubsectorInput{Subsector: subsector}); err != nil {
		return nil, errors.Wrap(err, "failed to store subsector")
	}

	slog.Info("Subsector generated",
		"subsector_id", subsector.ID,
		"name", subsector.Name,
		"density", string(density),
		"worlds", len(generated),
		"seed", seed)

	return &GenerateSubsectorOutput{
		Subsector:    subsector,
		Worlds:       generated,
		Descriptions: descriptions,
	}, nil
}

// fillGrid walks the hexes column by column. Occupancy goes through the
// toolkit roller; names and worlds continue from the roller's stream.
func (o *orchestrator) fillGrid(roller *random.Roller, density entities.Density) ([]*entities.World, error) {
	var occupancy dice.Roller = roller

	var generated []*entities.World
	for h := 1; h <= entities.SubsectorColumns; h++ {
		for v := 1; v <= entities.SubsectorRows; v++ {
			face, err := occupancy.Roll(6)
			if err != nil {
				return nil, errors.Wrap(err, "failed to roll hex occupancy")
			}
			if face < density.Threshold() {
				continue
			}

			name, s := worldgen.Name(roller.Stream())
			w, s := o.generator.Generate(worldgen.Input{
				ID:   o.idGen.Generate(),
				Name: name,
				Hex:  entities.HexCoordinate{Horizontal: h, Vertical: v},
			}, s)
			roller.Reset(s)

			slog.Debug("Hex occupied", "hex", w.Hex.String(), "name", w.Name, "uwp", w.UWP())
			generated = append(generated, w)
		}
	}
	return generated, nil
}

// GetWorld loads a stored world
func (o *orchestrator) GetWorld(ctx context.Context, input *GetWorldInput) (*GetWorldOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ID == "" {
		return nil, errors.InvalidArgument("world ID is required")
	}

	out, err := o.repo.Get(ctx, worlds.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get world %s", input.ID)
	}

	return &GetWorldOutput{
		World:       out.Data.World,
		Description: description.Render(out.Data.World),
		SubsectorID: out.Data.SubsectorID,
		Seed:        out.Data.Seed,
	}, nil
}

// ListWorlds loads a stored subsector and its worlds in hex order
func (o *orchestrator) ListWorlds(ctx context.Context, input *ListWorldsInput) (*ListWorldsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SubsectorID == "" {
		return nil, errors.InvalidArgument("subsector ID is required")
	}

	sub, err := o.repo.GetSubsector(ctx, worlds.GetSubsectorInput{ID: input.SubsectorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get subsector %s", input.SubsectorID)
	}

	list, err := o.repo.ListBySubsector(ctx, worlds.ListBySubsectorInput{SubsectorID: input.SubsectorID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list worlds for subsector %s", input.SubsectorID)
	}

	out := &ListWorldsOutput{
		Subsector:    sub.Subsector,
		Worlds:       make([]*entities.World, len(list.Worlds)),
		Descriptions: make([]string, len(list.Worlds)),
	}
	for i, data := range list.Worlds {
		out.Worlds[i] = data.World
		out.Descriptions[i] = description.Render(data.World)
	}

	return out, nil
}
