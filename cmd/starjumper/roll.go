package main

import (
	"fmt"
	"io"

	toolkitdice "github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/starjumper/internal/dice"
	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/random"
)

func newRollCmd(_ *globalOptions) *cobra.Command {
	var (
		seed  uint64
		times int
	)

	cmd := &cobra.Command{
		Use:   "roll NOTATION",
		Short: "Roll dice such as 2d6-2",
		Long: `Roll dice written as XdY with an optional flat modifier. With --seed the
throws come from the same stream world generation uses and repeat exactly.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := dice.ParseNotation(args[0])
			if err != nil {
				return err
			}
			if times < 1 {
				return errors.InvalidArgumentf("times must be at least 1, got %d", times)
			}

			if seed != 0 {
				return rollSeeded(cmd.OutOrStdout(), spec, seed, times)
			}
			return rollUnseeded(cmd.OutOrStdout(), spec, times)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a repeatable stream (0 uses the toolkit roller)")
	cmd.Flags().IntVar(&times, "times", 1, "Number of throws")

	return cmd
}

func rollSeeded(w io.Writer, spec dice.Spec, seed uint64, times int) error {
	s := random.New(seed)
	for i := 0; i < times; i++ {
		var result dice.Result
		result, s = dice.Throw(spec.Count, spec.Sides, spec.Modifiers, s)
		if _, err := fmt.Fprintf(w, "%s %v = %d\n", result.Notation(), result.Dice, result.Total); err != nil {
			return err
		}
	}
	return nil
}

func rollUnseeded(w io.Writer, spec dice.Spec, times int) error {
	for i := 0; i < times; i++ {
		roll, err := toolkitdice.NewRoll(spec.Count, spec.Sides)
		if err != nil {
			return errors.Wrap(err, "failed to create dice roll")
		}
		total := int(roll.GetValue()) + spec.Modifiers.Sum()
		if _, err := fmt.Fprintf(w, "%s%s = %d\n", roll.GetDescription(), spec.Modifiers, total); err != nil {
			return err
		}
	}
	return nil
}
