package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/orchestrators/world"
)

func newWorldCmd(opts *globalOptions) *cobra.Command {
	var (
		name   string
		hex    string
		seed   uint64
		format string
	)

	cmd := &cobra.Command{
		Use:   "world",
		Short: "Generate one world",
		Long: `Generate one world and print its summary line. The same seed always
produces the same world; without --seed a fresh seed is drawn and logged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			coordinate, err := entities.ParseHexCoordinate(hex)
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

			out, err := svc.GenerateWorld(ctx, &world.GenerateWorldInput{
				Name: name,
				Hex:  coordinate,
				Seed: seed,
			})
			if err != nil {
				return err
			}

			return writeWorlds(cmd.OutOrStdout(), format, false,
				[]worldDocument{newDocument(out.World, out.Seed, "")})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "World name (drawn from the seed when empty)")
	cmd.Flags().StringVar(&hex, "hex", "0101", "Hex coordinate as four digits")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for the dice (0 draws a fresh seed)")
	cmd.Flags().StringVar(&format, "format", formatText, "Output format: text, json, yaml")

	return cmd
}
