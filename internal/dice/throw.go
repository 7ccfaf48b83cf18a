// Package dice implements dice throws against an explicit pseudorandom stream
package dice

import (
	"fmt"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/random"
)

// Result is the outcome of one throw. It is a transient value used to derive
// a single attribute.
type Result struct {
	// Number of dice thrown
	Count int

	// Sides on each die
	Sides int

	// Individual faces in draw order
	Dice []int

	// Sum of the faces before modifiers
	Natural int

	// Modifier chain applied to the throw
	Modifiers Modifiers

	// Natural plus the modifier sum, unclamped
	Total int
}

// Throw draws count dice of the given sides from s, left to right, and
// applies the modifier chain. The dice are rolled by the rpg-toolkit roll
// over a roller reading s. The total is never clamped; callers clamp per
// attribute. Throw returns the stream positioned after the last die.
//
// A non-positive count or sides value is a contract breach and panics.
func Throw(count, sides int, modifiers Modifiers, s random.Stream) (Result, random.Stream) {
	if count <= 0 {
		panic(errors.OutOfRangef("dice count must be positive, got %d", count))
	}
	if sides <= 0 {
		panic(errors.OutOfRangef("die sides must be positive, got %d", sides))
	}

	roller := &recordingRoller{roller: random.NewRoller(s)}
	roll, err := toolkitdice.NewRollWithRoller(count, sides, roller)
	if err != nil {
		panic(errors.WrapWithCodef(err, errors.CodeOutOfRange, "cannot roll %dd%d", count, sides))
	}
	natural := int(roll.GetValue())
	if err := roll.Err(); err != nil {
		panic(errors.WrapWithCodef(err, errors.CodeOutOfRange, "roll %dd%d failed", count, sides))
	}

	return Result{
		Count:     count,
		Sides:     sides,
		Dice:      roller.faces,
		Natural:   natural,
		Modifiers: modifiers,
		Total:     natural + modifiers.Sum(),
	}, roller.roller.Stream()
}

// recordingRoller keeps the faces the toolkit roll draws so a Result can
// report them.
type recordingRoller struct {
	roller *random.Roller
	faces  []int
}

// Verify that recordingRoller implements the toolkit roller
var _ toolkitdice.Roller = (*recordingRoller)(nil)

func (r *recordingRoller) Roll(size int) (int, error) {
	face, err := r.roller.Roll(size)
	if err != nil {
		return 0, err
	}
	r.faces = append(r.faces, face)
	return face, nil
}

func (r *recordingRoller) RollN(count, size int) ([]int, error) {
	faces, err := r.roller.RollN(count, size)
	if err != nil {
		return nil, err
	}
	r.faces = append(r.faces, faces...)
	return faces, nil
}

// Notation renders the throw as dice notation with its net modifier,
// e.g. "2d6-2".
func (r Result) Notation() string {
	sum := r.Modifiers.Sum()
	switch {
	case sum > 0:
		return fmt.Sprintf("%dd%d+%d", r.Count, r.Sides, sum)
	case sum < 0:
		return fmt.Sprintf("%dd%d%d", r.Count, r.Sides, sum)
	default:
		return fmt.Sprintf("%dd%d", r.Count, r.Sides)
	}
}
