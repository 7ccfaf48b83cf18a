package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/starjumper/internal/orchestrators/world"
)

func newGetCmd(opts *globalOptions) *cobra.Command {
	var format string

	getCmd := &cobra.Command{
		Use:   "get",
		Short: "Show stored worlds and subsectors",
		Long:  `Show worlds and subsectors kept in Redis by earlier runs (requires --redis or a config file endpoint).`,
	}
	getCmd.PersistentFlags().StringVar(&format, "format", formatText, "Output format: text, json, yaml")

	getCmd.AddCommand(&cobra.Command{
		Use:   "world ID",
		Short: "Show a stored world",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if err := opts.requireRedis(); err != nil {
				return err
			}

			ctx, cancel := opts.storageContext(cmd)
			defer cancel()

			svc, cleanup, err := opts.newService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := svc.GetWorld(ctx, &world.GetWorldInput{ID: args[0]})
			if err != nil {
				return err
			}

			return writeWorlds(cmd.OutOrStdout(), format, false,
				[]worldDocument{newDocument(out.World, out.Seed, out.SubsectorID)})
		},
	})

	getCmd.AddCommand(&cobra.Command{
		Use:   "subsector ID",
		Short: "Show a stored subsector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if err := opts.requireRedis(); err != nil {
				return err
			}

			ctx, cancel := opts.storageContext(cmd)
			defer cancel()

			svc, cleanup, err := opts.newService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := svc.ListWorlds(ctx, &world.ListWorldsInput{SubsectorID: args[0]})
			if err != nil {
				return err
			}

			return writeSubsector(cmd.OutOrStdout(), format, out.Subsector, out.Worlds)
		},
	})

	return getCmd
}
