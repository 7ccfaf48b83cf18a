// Package classification assigns trade classifications to finished world
// profiles.
package classification

//go:generate mockgen -destination=mock/mock_classifier.go -package=classificationmock github.com/KirkDiggler/starjumper/internal/classification Classifier

import (
	"strings"

	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Classifier derives the ordered trade classifications of a profile.
type Classifier interface {
	Classify(profile entities.Profile) []*entities.TradeClassification
}

// Shared classification values. Worlds point at these; other packages reach
// them through All and ByAbbreviation.
var (
	agricultural    = &entities.TradeClassification{Name: "Agricultural", ShortName: "Agri", Abbreviation: "Ag"}
	nonAgricultural = &entities.TradeClassification{Name: "Non-Agricultural", ShortName: "Non-Agri", Abbreviation: "Na"}
	industrial      = &entities.TradeClassification{Name: "Industrial", ShortName: "Indus", Abbreviation: "In"}
	nonIndustrial   = &entities.TradeClassification{Name: "Non-Industrial", ShortName: "Non-Indus", Abbreviation: "Ni"}
	rich            = &entities.TradeClassification{Name: "Rich", ShortName: "Rich", Abbreviation: "Ri"}
	poor            = &entities.TradeClassification{Name: "Poor", ShortName: "Poor", Abbreviation: "Po"}
	waterWorld      = &entities.TradeClassification{Name: "Water World", ShortName: "Water", Abbreviation: "Wa"}
	desertWorld     = &entities.TradeClassification{Name: "Desert World", ShortName: "Desert", Abbreviation: "De"}
	vacuumWorld     = &entities.TradeClassification{Name: "Vacuum World", ShortName: "Vacuum", Abbreviation: "Va"}
	asteroidBelt    = &entities.TradeClassification{Name: "Asteroid Belt", ShortName: "Asteroid", Abbreviation: "As"}
	iceCapped       = &entities.TradeClassification{Name: "Ice-Capped", ShortName: "Ice", Abbreviation: "Ic"}
	fluidOceans     = &entities.TradeClassification{Name: "Fluid Oceans", ShortName: "Fluid", Abbreviation: "Fl"}
	highPopulation  = &entities.TradeClassification{Name: "High Population", ShortName: "High Pop", Abbreviation: "Hi"}
	lowPopulation   = &entities.TradeClassification{Name: "Low Population", ShortName: "Low Pop", Abbreviation: "Lo"}
	barrenWorld     = &entities.TradeClassification{Name: "Barren World", ShortName: "Barren", Abbreviation: "Ba"}
)

type rule struct {
	classification *entities.TradeClassification
	applies        func(p entities.Profile) bool
}

// rules is evaluated in order; the order is the order classifications are
// listed on a world.
var rules = []rule{
	{agricultural, func(p entities.Profile) bool {
		return between(p.Atmosphere, 4, 9) && between(p.Hydrographics, 4, 8) && between(p.Population, 5, 7)
	}},
	{nonAgricultural, func(p entities.Profile) bool {
		return between(p.Atmosphere, 0, 3) && between(p.Hydrographics, 0, 3) && p.Population >= 6
	}},
	{industrial, func(p entities.Profile) bool {
		return oneOf(p.Atmosphere, 0, 1, 2, 4, 7, 9) && p.Population >= 9
	}},
	{nonIndustrial, func(p entities.Profile) bool {
		return between(p.Population, 1, 6)
	}},
	{rich, func(p entities.Profile) bool {
		return oneOf(p.Atmosphere, 6, 8) && between(p.Population, 6, 8) && between(p.Government, 4, 9)
	}},
	{poor, func(p entities.Profile) bool {
		return between(p.Atmosphere, 2, 5) && between(p.Hydrographics, 0, 3)
	}},
	{waterWorld, func(p entities.Profile) bool {
		return p.Hydrographics == 10
	}},
	{desertWorld, func(p entities.Profile) bool {
		return p.Atmosphere >= 2 && p.Hydrographics == 0
	}},
	{vacuumWorld, func(p entities.Profile) bool {
		return p.Size > 0 && p.Atmosphere == 0
	}},
	{asteroidBelt, func(p entities.Profile) bool {
		return p.Size == 0
	}},
	{iceCapped, func(p entities.Profile) bool {
		return between(p.Atmosphere, 0, 1) && p.Hydrographics >= 1
	}},
	{fluidOceans, func(p entities.Profile) bool {
		return p.Atmosphere >= 10 && p.Hydrographics >= 1
	}},
	{highPopulation, func(p entities.Profile) bool {
		return p.Population >= 9
	}},
	{lowPopulation, func(p entities.Profile) bool {
		return between(p.Population, 1, 3)
	}},
	{barrenWorld, func(p entities.Profile) bool {
		return p.Population == 0
	}},
}

// Ruleset classifies profiles with the standard trade classification table.
type Ruleset struct{}

// Verify that Ruleset implements Classifier
var _ Classifier = (*Ruleset)(nil)

// NewRuleset returns the standard classifier.
func NewRuleset() *Ruleset {
	return &Ruleset{}
}

// Classify returns every classification whose rule matches, in table order.
// A profile matching no rule gets an empty, non-nil list.
func (r *Ruleset) Classify(profile entities.Profile) []*entities.TradeClassification {
	matched := make([]*entities.TradeClassification, 0, 4)
	for _, rl := range rules {
		if rl.applies(profile) {
			matched = append(matched, rl.classification)
		}
	}
	return matched
}

// All lists every classification in table order.
func All() []*entities.TradeClassification {
	all := make([]*entities.TradeClassification, len(rules))
	for i, rl := range rules {
		all[i] = rl.classification
	}
	return all
}

// ByAbbreviation returns the classification with the given two-letter
// abbreviation, ignoring case.
func ByAbbreviation(abbreviation string) (*entities.TradeClassification, error) {
	for _, rl := range rules {
		if strings.EqualFold(rl.classification.Abbreviation, abbreviation) {
			return rl.classification, nil
		}
	}
	return nil, errors.NotFoundf("no trade classification %q", abbreviation)
}

func between(v, lo, hi int) bool {
	return v >= lo && v <= hi
}

func oneOf(v int, values ...int) bool {
	for _, candidate := range values {
		if v == candidate {
			return true
		}
	}
	return false
}
