// Package main is the entry point for the starjumper command line tool
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KirkDiggler/starjumper/internal/errors"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if meta := errors.GetMeta(err); len(meta) > 0 {
			slog.Debug("Command failed", "code", errors.GetCode(err).String(), "meta", meta)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(errors.GetCode(err).ExitCode())
	}
}

// run executes the command tree. A contract-breach panic anywhere below is
// reported as an error instead of a stack trace.
func run(args []string) (err error) {
	defer errors.Recover(&err)

	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}
