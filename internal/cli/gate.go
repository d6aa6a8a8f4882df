package cli

import (
	"github.com/spf13/cobra"
)

// newGateCmd creates the gate command. Gate execution is not part of
// v1; the command exists so plan authors can already reference it.
func newGateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gate",
		Short: "Gate runner (stub for v1)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			newSplog(cmd).Info("not implemented (v1)")
			return nil
		},
	}
}
