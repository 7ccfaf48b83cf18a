package dice_test

import (
	"testing"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/starjumper/internal/dice"
	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/random"
)

func TestThrow(t *testing.T) {
	testCases := []struct {
		name      string
		count     int
		sides     int
		modifiers dice.Modifiers
		faces     []int
		natural   int
		total     int
		notation  string
	}{
		{
			name:     "two dice no modifiers",
			count:    2,
			sides:    6,
			faces:    []int{3, 4},
			natural:  7,
			total:    7,
			notation: "2d6",
		},
		{
			name:      "size throw",
			count:     2,
			sides:     6,
			modifiers: dice.NewModifiers(-2),
			faces:     []int{1, 1},
			natural:   2,
			total:     0,
			notation:  "2d6-2",
		},
		{
			name:      "negative total is not clamped",
			count:     2,
			sides:     6,
			modifiers: dice.NewModifiers(-7, 0).Prepend(-4),
			faces:     []int{1, 1},
			natural:   2,
			total:     -9,
			notation:  "2d6-11",
		},
		{
			name:      "single die with bonus",
			count:     1,
			sides:     6,
			modifiers: dice.NewModifiers(6, 1, 2),
			faces:     []int{6},
			natural:   6,
			total:     15,
			notation:  "1d6+9",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, next := dice.Throw(tc.count, tc.sides, tc.modifiers, random.Script(tc.faces...))

			assert.Equal(t, tc.count, result.Count)
			assert.Equal(t, tc.sides, result.Sides)
			assert.Equal(t, tc.faces, result.Dice)
			assert.Equal(t, tc.natural, result.Natural)
			assert.Equal(t, tc.total, result.Total)
			assert.Equal(t, tc.notation, result.Notation())

			seq := next.(random.Sequence)
			assert.Equal(t, tc.count, seq.Position(), "one draw per die")
		})
	}
}

func TestThrow_TotalIsNaturalPlusModifiers(t *testing.T) {
	s := random.New(2024)
	for i := 0; i < 500; i++ {
		count := i%4 + 1
		sides := []int{4, 6, 8, 20}[i%4]
		modifiers := dice.NewModifiers(i%11-5, -(i % 3))

		var result dice.Result
		result, s = dice.Throw(count, sides, modifiers, s)

		sum := 0
		for _, face := range result.Dice {
			require.GreaterOrEqual(t, face, 1)
			require.LessOrEqual(t, face, sides)
			sum += face
		}
		require.Len(t, result.Dice, count)
		require.Equal(t, sum, result.Natural)
		require.Equal(t, sum+modifiers.Sum(), result.Total)
	}
}

func TestThrow_Reproducible(t *testing.T) {
	a, _ := dice.Throw(3, 6, nil, random.New(5))
	b, _ := dice.Throw(3, 6, nil, random.New(5))
	assert.Equal(t, a, b)
}

func TestThrow_ContractBreach(t *testing.T) {
	var err error
	func() {
		defer errors.Recover(&err)
		dice.Throw(0, 6, nil, random.Fixed(1))
	}()
	assert.True(t, errors.IsOutOfRange(err))

	assert.Panics(t, func() { dice.Throw(1, 0, nil, random.Fixed(1)) })
}

func TestThrow_AgreesWithToolkitRoll(t *testing.T) {
	modifiers := dice.NewModifiers(-7, 4)
	thrown := random.New(42)
	rolled := random.New(42)

	for i := 0; i < 500; i++ {
		var result dice.Result
		result, thrown = dice.Throw(2, 6, modifiers, thrown)

		roller := random.NewRoller(rolled)
		roll, err := toolkitdice.NewRollWithRoller(2, 6, roller)
		require.NoError(t, err)
		require.Equal(t, int(roll.GetValue())+modifiers.Sum(), result.Total)
		require.NoError(t, roll.Err())
		rolled = roller.Stream()

		require.Equal(t, rolled, thrown, "throw %d left the stream elsewhere", i)
	}
}

func TestThrow_ReportsEveryFace(t *testing.T) {
	result, next := dice.Throw(3, 6, nil, random.Script(6, 1, 4))
	assert.Equal(t, []int{6, 1, 4}, result.Dice)
	assert.Equal(t, 11, result.Natural)
	assert.Equal(t, 0, next.(random.Sequence).Remaining())
}
