package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/repositories/worlds"
)

func newCheckCmd(opts *globalOptions) *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check stored worlds for corrupt records",
		Long: `Scan the worlds kept in Redis for records that do not decode or hold an
impossible world profile, and for subsector entries naming worlds that are gone.
With --fix the bad records and entries are removed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.storageContext(cmd)
			defer cancel()

			client, cleanup, err := opts.newRedisClient(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			report, err := worlds.CheckRedis(ctx, client, fix)
			if err != nil {
				return err
			}

			writeReport(cmd.OutOrStdout(), report)

			if report.HasProblems() && !report.Repaired {
				return errors.FailedPrecondition("stored world data has problems; rerun with --fix to remove them")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fix, "fix", false, "Remove corrupt worlds and dangling subsector entries")

	return cmd
}

func writeReport(w io.Writer, report *worlds.CheckReport) {
	fmt.Fprintf(w, "Checked %d worlds\n", report.Checked)
	for _, key := range report.Corrupt {
		fmt.Fprintf(w, "corrupt   %s\n", key)
	}

	indexKeys := make([]string, 0, len(report.Dangling))
	for key := range report.Dangling {
		indexKeys = append(indexKeys, key)
	}
	sort.Strings(indexKeys)
	for _, key := range indexKeys {
		for _, id := range report.Dangling[key] {
			fmt.Fprintf(w, "dangling  %s -> %s\n", key, id)
		}
	}

	if report.Repaired {
		fmt.Fprintln(w, "Repaired")
	}
}
