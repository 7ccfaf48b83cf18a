package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/orchestrators/world"
)

func newSubsectorCmd(opts *globalOptions) *cobra.Command {
	var (
		name    string
		seed    uint64
		density string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "subsector",
		Short: "Generate an 8x10 subsector of worlds",
		Long: `Generate a subsector: every hex of an 8 by 10 grid is checked for a world
against the density, and each world found is printed as one summary line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if density == "" {
				density = string(opts.cfg.Subsector.Density)
			}
			d, err := entities.ParseDensity(density)
			if err != nil {
				return err
			}

			ctx, cancel := opts.storageContext(cmd)
			defer cancel()

			svc, cleanup, err := opts.newService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := svc.GenerateSubsector(ctx, &world.GenerateSubsectorInput{
				Name:    name,
				Seed:    seed,
				Density: d,
			})
			if err != nil {
				return err
			}

			return writeSubsector(cmd.OutOrStdout(), format, out.Subsector, out.Worlds)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Subsector name")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the dice (0 draws a fresh seed)")
	cmd.Flags().StringVar(&density, "density", "", "World density: rift, sparse, standard, dense")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, yaml")

	return cmd
}
