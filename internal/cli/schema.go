package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"lexpr.dev/lexpr/internal/plan"
)

// newSchemaCmd creates the schema command group
func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Schema-related commands (v1 supports: validate)",
	}

	cmd.AddCommand(newSchemaValidateCmd())

	return cmd
}

// newSchemaValidateCmd creates the schema validate command
func newSchemaValidateCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "validate [plan-file]",
		Short: "Validate a plan file against the plan schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog(cmd)

			path, err := planPath(args)
			if err != nil {
				return err
			}
			splog.Debug("validating plan file %s", path)

			doc, err := plan.LoadFile(path)
			if err != nil {
				return err
			}

			verr := plan.Validate(doc)
			if jsonOut {
				result := map[string]any{"ok": verr == nil}
				if verr != nil {
					result["error"] = verr.Error()
				}
				encoded, err := json.Marshal(result)
				if err != nil {
					return err
				}
				splog.Info("%s", encoded)
			} else if verr == nil {
				splog.Info("OK")
			} else {
				splog.Info("Invalid: %v", verr)
			}

			return verr
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON result")

	return cmd
}
