package description_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/starjumper/internal/classification"
	"github.com/KirkDiggler/starjumper/internal/description"
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/testutils"
)

const lineWidth = 79

func regina() *entities.World {
	return &entities.World{
		Name: "Regina",
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
			testutils.TradeClassification("Ag"),
			testutils.TradeClassification("Ri"),
		},
	}
}

func TestRender(t *testing.T) {
	line := description.Render(regina())

	assert.Equal(t, "Regina             1910 A788899-C A Agricultural. Rich.                       G", line)
	assert.Len(t, line, lineWidth)
}

func TestRender_NoBasesNoGasGiant(t *testing.T) {
	w := &entities.World{
		Name: "Walston",
		Hex:  entities.HexCoordinate{Horizontal: 12, Vertical: 32},
		Profile: entities.Profile{
			Starport:      entities.StarportC,
			Size:          5,
			Atmosphere:    4,
			Hydrographics: 4,
			Population:    3,
			Government:    3,
			LawLevel:      8,
			TechLevel:     8,
		},
		TradeClassifications: []*entities.TradeClassification{
			testutils.TradeClassification("Ni"),
			testutils.TradeClassification("Po"),
		},
	}

	assert.Equal(t, "Walston            1232 C544338-8   Non-Industrial. Poor.                      ", description.Render(w))
}

func TestRender_EmptyClassifications(t *testing.T) {
	w := regina()
	w.TradeClassifications = nil

	line := description.Render(w)
	assert.Len(t, line, lineWidth)
	assert.True(t, strings.HasSuffix(line, strings.Repeat(" ", 43)+"G"))
}

func TestRender_LongNameWidensLine(t *testing.T) {
	w := regina()
	w.Name = "Twenty Character Nm"

	line := description.Render(w)
	assert.True(t, strings.HasPrefix(line, "Twenty Character Nm 1910 "))
}

func TestRender_OverflowIsAccepted(t *testing.T) {
	w := regina()
	w.TradeClassifications = classification.All()

	line := description.Render(w)
	assert.Greater(t, len(line), lineWidth)
	assert.Contains(t, line, "Ag. Na. In. Ni. Ri. Po. Wa. De. Va. As. Ic. Fl. Hi. Lo. Ba. G")
}

func TestClassifications_Ladder(t *testing.T) {
	testCases := []struct {
		name     string
		list     []*entities.TradeClassification
		expected string
	}{
		{
			name:     "empty",
			list:     nil,
			expected: "",
		},
		{
			name:     "full names fit",
			list:     []*entities.TradeClassification{testutils.TradeClassification("Ag"), testutils.TradeClassification("Ni")},
			expected: "Agricultural. Non-Industrial. ",
		},
		{
			name: "short names when full names overflow",
			list: []*entities.TradeClassification{
				testutils.TradeClassification("Na"),
				testutils.TradeClassification("Ni"),
				testutils.TradeClassification("Hi"),
			},
			expected: "Non-Agri. Non-Indus. High Pop. ",
		},
		{
			name: "abbreviations when short names overflow",
			list: []*entities.TradeClassification{
				testutils.TradeClassification("Ag"),
				testutils.TradeClassification("Na"),
				testutils.TradeClassification("In"),
				testutils.TradeClassification("Ni"),
				testutils.TradeClassification("Ri"),
				testutils.TradeClassification("Po"),
			},
			expected: "Ag. Na. In. Ni. Ri. Po. ",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := description.Classifications(tc.list)
			assert.Equal(t, tc.expected, got)
			assert.LessOrEqual(t, len(got), description.ClassificationBudget)
		})
	}
}

func TestClassifications_ExactBudgetKeepsFullNames(t *testing.T) {
	// 40 characters of name plus the separator is exactly the budget
	tc := &entities.TradeClassification{
		Name:         strings.Repeat("n", 40),
		ShortName:    "short",
		Abbreviation: "Ab",
	}

	assert.Equal(t, strings.Repeat("n", 40)+". ", description.Classifications([]*entities.TradeClassification{tc}))
}

func TestJoinWithSuffix(t *testing.T) {
	assert.Equal(t, "", description.JoinWithSuffix(nil, ". "))
	assert.Equal(t, "a. ", description.JoinWithSuffix([]string{"a"}, ". "))
	assert.Equal(t, "a, b, ", description.JoinWithSuffix([]string{"a", "b"}, ", "))
}

func TestHexDigit(t *testing.T) {
	assert.Equal(t, byte('0'), description.HexDigit(0))
	assert.Equal(t, byte('9'), description.HexDigit(9))
	assert.Equal(t, byte('A'), description.HexDigit(10))
	assert.Equal(t, byte('Y'), description.HexDigit(34))
	assert.Panics(t, func() { description.HexDigit(35) })
	assert.Panics(t, func() { description.HexDigit(-1) })
}

func TestHeader(t *testing.T) {
	header := description.Header()
	assert.Len(t, header, lineWidth)
	assert.True(t, strings.HasPrefix(header, "Name"))
	assert.True(t, strings.HasSuffix(header, "G"))
}
