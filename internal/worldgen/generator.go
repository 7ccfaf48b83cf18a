// Package worldgen generates worlds from an explicit pseudorandom stream.
//
// Generation is a fixed sequence of stages. Each stage throws dice against
// the stream left by the previous stage, so the same stream always yields
// the same world. Stages guarded by size or population take no dice at all
// when their guard holds.
package worldgen

import (
	"github.com/KirkDiggler/starjumper/internal/classification"
	"github.com/KirkDiggler/starjumper/internal/dice"
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/random"
	"github.com/KirkDiggler/starjumper/internal/tables"
)

// Attribute bounds after clamping.
const (
	MaxSize          = 10
	MaxAtmosphere    = 15
	MaxHydrographics = 10
	MaxPopulation    = 10
	MaxGovernment    = 15
)

// Config holds the dependencies for the generator
type Config struct {
	Classifier classification.Classifier
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Classifier == nil {
		vb.RequiredField("Classifier")
	}

	return vb.Build()
}

// Input identifies the world being generated. Nothing in it affects the dice.
type Input struct {
	ID   string
	Name string
	Hex  entities.HexCoordinate
}

// Generator runs the world generation stages.
type Generator struct {
	classifier classification.Classifier
}

// NewGenerator creates a generator with the provided dependencies
func NewGenerator(cfg *Config) (*Generator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Generator{classifier: cfg.Classifier}, nil
}

// Generate builds a world from s and returns it with the stream positioned
// after the last die thrown.
//
// The starport is not downgraded when the population comes out 0.
func (g *Generator) Generate(input Input, s random.Stream) (*entities.World, random.Stream) {
	w := &entities.World{
		ID:   input.ID,
		Name: input.Name,
		Hex:  input.Hex,
	}

	s = g.starport(w, s)
	s = g.navalBase(w, s)
	s = g.scoutBase(w, s)
	s = g.gasGiant(w, s)
	s = g.size(w, s)
	s = g.atmosphere(w, s)
	s = g.hydrographics(w, s)
	s = g.population(w, s)
	s = g.government(w, s)
	s = g.lawLevel(w, s)
	s = g.techLevel(w, s)

	w.TradeClassifications = g.classifier.Classify(w.Profile)

	return w, s
}

func (g *Generator) starport(w *entities.World, s random.Stream) random.Stream {
	r, s := dice.Throw(2, 6, nil, s)
	w.Starport = tables.Starport.At(r.Total)
	return s
}

func (g *Generator) navalBase(w *entities.World, s random.Stream) random.Stream {
	if !w.Starport.SupportsNavalBase() {
		return s
	}
	r, s := dice.Throw(2, 6, nil, s)
	w.NavalBase = tables.NavalBase.At(r.Total)
	return s
}

func (g *Generator) scoutBase(w *entities.World, s random.Stream) random.Stream {
	if !w.Starport.SupportsScoutBase() {
		return s
	}
	r, s := dice.Throw(2, 6, dice.NewModifiers(tables.ScoutBaseModifier(w.Starport)), s)
	w.ScoutBase = tables.ScoutBase.At(r.Total)
	return s
}

func (g *Generator) gasGiant(w *entities.World, s random.Stream) random.Stream {
	r, s := dice.Throw(2, 6, nil, s)
	w.GasGiant = tables.GasGiant.At(r.Total)
	return s
}

func (g *Generator) size(w *entities.World, s random.Stream) random.Stream {
	r, s := dice.Throw(2, 6, dice.NewModifiers(-2), s)
	w.Size = r.Total
	return s
}

func (g *Generator) atmosphere(w *entities.World, s random.Stream) random.Stream {
	if w.Size == 0 {
		w.Atmosphere = 0
		return s
	}
	r, s := dice.Throw(2, 6, dice.NewModifiers(-7, w.Size), s)
	w.Atmosphere = clamp(r.Total, 0, MaxAtmosphere)
	return s
}

func (g *Generator) hydrographics(w *entities.World, s random.Stream) random.Stream {
	if w.Size == 0 {
		w.Hydrographics = 0
		return s
	}
	chain := dice.NewModifiers(-7, w.Atmosphere)
	if w.Atmosphere <= 1 || w.Atmosphere >= 10 {
		chain = chain.Prepend(-4)
	}
	r, s := dice.Throw(2, 6, chain, s)
	w.Hydrographics = clamp(r.Total, 0, MaxHydrographics)
	return s
}

func (g *Generator) population(w *entities.World, s random.Stream) random.Stream {
	r, s := dice.Throw(2, 6, dice.NewModifiers(-2), s)
	w.Population = r.Total
	return s
}

func (g *Generator) government(w *entities.World, s random.Stream) random.Stream {
	if w.Population == 0 {
		w.Government = 0
		return s
	}
	r, s := dice.Throw(2, 6, dice.NewModifiers(-7, w.Population), s)
	w.Government = clamp(r.Total, 0, MaxGovernment)
	return s
}

func (g *Generator) lawLevel(w *entities.World, s random.Stream) random.Stream {
	if w.Population == 0 {
		w.LawLevel = 0
		return s
	}
	r, s := dice.Throw(2, 6, dice.NewModifiers(-7, w.Government), s)
	w.LawLevel = clamp(r.Total, 0, entities.MaxDigit)
	return s
}

func (g *Generator) techLevel(w *entities.World, s random.Stream) random.Stream {
	if w.Population == 0 {
		w.TechLevel = 0
		return s
	}
	r, s := dice.Throw(1, 6, TechLevelModifiers(w.Profile), s)
	w.TechLevel = clamp(r.Total, 0, entities.MaxDigit)
	return s
}

// TechLevelModifiers builds the tech level chain for p. The starport bonus is
// the innermost entry and each table lookup is prepended in turn, so the
// chain reads government first.
func TechLevelModifiers(p entities.Profile) dice.Modifiers {
	return dice.NewModifiers(tables.StarportTechBonus(p.Starport)).
		Prepend(tables.TechSize.At(p.Size)).
		Prepend(tables.TechAtmosphere.At(p.Atmosphere)).
		Prepend(tables.TechHydrographics.At(p.Hydrographics)).
		Prepend(tables.TechPopulation.At(p.Population)).
		Prepend(tables.TechGovernment.At(p.Government))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
