// Package cli wires the lexpr commands. The commands are thin callers
// of the plan validator and the mergeorder engine; outcome-to-exit-code
// mapping lives in ExitCode.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"lexpr.dev/lexpr/internal/config"
	"lexpr.dev/lexpr/internal/output"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "lexpr",
		Short:   "PR runner & merge pyramid CLI",
		Long:    `Lexpr computes a deterministic, cycle-free merge order for a set of interdependent branches described by a plan file.`,
		Version: version,

		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug output")

	// Add subcommands
	rootCmd.AddCommand(newSchemaCmd())
	rootCmd.AddCommand(newMergeOrderCmd())
	rootCmd.AddCommand(newGateCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// newSplog creates the output logger for a command invocation
func newSplog(cmd *cobra.Command) *output.Splog {
	splog := output.NewSplog(cmd.OutOrStdout())
	if verbose, err := cmd.Flags().GetBool("verbose"); err == nil && verbose {
		splog.SetVerbose(true)
	}
	if path := os.Getenv("LEXPR_DEBUG_LOG"); path != "" {
		splog.EnableDebugFile(path)
	}
	return splog
}

// planPath resolves the plan file path from the command arguments,
// falling back to the workspace config (default "plan.json")
func planPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return config.GetDefaultPlanPath(".")
}
