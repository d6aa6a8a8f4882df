package main

import (
	"errors"
	"fmt"
	"os"

	"lexpr.dev/lexpr/internal/cli"
	lexerrors "lexpr.dev/lexpr/internal/errors"
)

var version = "dev"

func main() {
	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.Execute(); err != nil {
		// Plan/dependency/cycle outcomes already printed their own
		// message; everything else surfaces here.
		if !errors.Is(err, lexerrors.ErrInvalidPlan) &&
			!errors.Is(err, lexerrors.ErrUnknownDependency) &&
			!errors.Is(err, lexerrors.ErrCycle) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
