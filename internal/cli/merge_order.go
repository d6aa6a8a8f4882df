package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	lexerrors "lexpr.dev/lexpr/internal/errors"
	"lexpr.dev/lexpr/internal/mergeorder"
	"lexpr.dev/lexpr/internal/output"
	"lexpr.dev/lexpr/internal/plan"
)

// newMergeOrderCmd creates the merge-order command
func newMergeOrderCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "merge-order [plan-file]",
		Short: "Compute the deterministic merge order of a plan, grouped by levels",
		Long: `Compute the deterministic merge order of a plan, grouped by levels.

Every item in a level has all of its dependencies satisfied by earlier
levels, so the items of one level can be merged together as a batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			splog := newSplog(cmd)

			path, err := planPath(args)
			if err != nil {
				return err
			}
			splog.Debug("computing merge order for plan file %s", path)

			doc, err := plan.LoadFile(path)
			if err != nil {
				return err
			}

			if verr := plan.Validate(doc); verr != nil {
				splog.Info("Invalid plan: %v", verr)
				return verr
			}

			p, err := plan.Decode(doc)
			if err != nil {
				return err
			}

			levels, err := mergeorder.Levels(p.Items)
			if err != nil {
				switch {
				case errors.Is(err, lexerrors.ErrUnknownDependency):
					splog.Info("Invalid deps: %v", err)
				case errors.Is(err, lexerrors.ErrCycle):
					splog.Info("%v", err)
				}
				return err
			}

			if jsonOut {
				if levels == nil {
					levels = [][]string{}
				}
				encoded, err := json.Marshal(levels)
				if err != nil {
					return err
				}
				splog.Info("%s", encoded)
				return nil
			}

			colored := output.ColorsEnabled()
			splog.Page(output.RenderLevels(levels, output.LevelRenderOptions{
				Colored: colored,
			}))

			summary := fmt.Sprintf("%d levels, %d items", len(levels), len(p.Items))
			if colored {
				summary = output.ColorDim(summary)
			}
			splog.Newline()
			splog.Info("%s", summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", true, "Emit JSON levels (use --json=false for human-readable output)")

	return cmd
}
