// Package entities provides the core data structures for starjumper.
package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

// EntityTypeWorld is the rpg-toolkit entity type reported by worlds.
const EntityTypeWorld = "world"

// Profile holds the numeric attributes of a world, the input the trade
// classification engine works from.
type Profile struct {
	Starport      Starport `json:"starport" yaml:"starport"`
	Size          int      `json:"size" yaml:"size"`
	Atmosphere    int      `json:"atmosphere" yaml:"atmosphere"`
	Hydrographics int      `json:"hydrographics" yaml:"hydrographics"`
	Population    int      `json:"population" yaml:"population"`
	Government    int      `json:"government" yaml:"government"`
	LawLevel      int      `json:"law_level" yaml:"law_level"`
	TechLevel     int      `json:"tech_level" yaml:"tech_level"`
}

// Validate checks every attribute is inside the range generation produces.
func (p Profile) Validate() error {
	vb := errors.NewValidationBuilder()

	if !p.Starport.Valid() {
		vb.InvalidField("starport", "must be one of A, B, C, D, E, X")
	}
	errors.ValidateRange("size", p.Size, 0, 10, vb)
	errors.ValidateRange("atmosphere", p.Atmosphere, 0, 15, vb)
	errors.ValidateRange("hydrographics", p.Hydrographics, 0, 10, vb)
	errors.ValidateRange("population", p.Population, 0, 10, vb)
	errors.ValidateRange("government", p.Government, 0, 15, vb)
	errors.ValidateRange("law_level", p.LawLevel, 0, MaxDigit, vb)
	errors.ValidateRange("tech_level", p.TechLevel, 0, MaxDigit, vb)

	return vb.Build()
}

// TradeClassification is a tag assigned from a finished profile. The values
// are shared between worlds and must not be modified.
type TradeClassification struct {
	Name         string `json:"name" yaml:"name"`
	ShortName    string `json:"short_name" yaml:"short_name"`
	Abbreviation string `json:"abbreviation" yaml:"abbreviation"`
}

// World describes one generated star-system body. A World is not modified
// after generation; it owns its name and its classification list, but not the
// classifications the list points at.
type World struct {
	ID        string        `json:"id" yaml:"id"`
	Name      string        `json:"name" yaml:"name"`
	Hex       HexCoordinate `json:"hex" yaml:"hex"`
	Profile   `yaml:",inline"`
	NavalBase bool `json:"naval_base" yaml:"naval_base"`
	ScoutBase bool `json:"scout_base" yaml:"scout_base"`
	GasGiant  bool `json:"gas_giant" yaml:"gas_giant"`

	TradeClassifications []*TradeClassification `json:"trade_classifications" yaml:"trade_classifications"`
}

// Verify that World implements core.Entity
var _ core.Entity = (*World)(nil)

// GetID returns the world's ID
func (w *World) GetID() string {
	return w.ID
}

// GetType returns the entity type for rpg-toolkit
func (w *World) GetType() string {
	return EntityTypeWorld
}

// BaseCode summarises the bases: 'A' for naval and scout, 'N' naval only,
// 'S' scout only, space for none.
func (w *World) BaseCode() byte {
	switch {
	case w.NavalBase && w.ScoutBase:
		return 'A'
	case w.NavalBase:
		return 'N'
	case w.ScoutBase:
		return 'S'
	default:
		return ' '
	}
}

// HasTradeClassification reports whether the world carries the tag with the
// given abbreviation.
func (w *World) HasTradeClassification(abbreviation string) bool {
	for _, tc := range w.TradeClassifications {
		if strings.EqualFold(tc.Abbreviation, abbreviation) {
			return true
		}
	}
	return false
}

// Subsector grid size in hexes.
const (
	SubsectorColumns = 8
	SubsectorRows    = 10
)

// Subsector is an 8 by 10 block of hexes generated from one seed.
type Subsector struct {
	ID      string  `json:"id" yaml:"id"`
	Name    string  `json:"name" yaml:"name"`
	Seed    uint64  `json:"seed" yaml:"seed"`
	Density Density `json:"density" yaml:"density"`
}
