package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"lexpr.dev/lexpr/internal/config"
	"lexpr.dev/lexpr/internal/git"
	"lexpr.dev/lexpr/internal/plan"
)

// newInitCmd creates the init command
func newInitCmd() *cobra.Command {
	var (
		target string
		out    string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Scaffold a plan file from the local repository's branches",
		Long: `Scaffold a plan file from the local repository's branches.

Every local branch except the merge target becomes a plan item with no
dependencies; edit the generated file to declare dependencies between
items before computing a merge order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			splog := newSplog(cmd)

			repo, err := git.OpenRepository(".")
			if err != nil {
				return err
			}

			if target == "" {
				target, err = config.GetTarget(".")
				if err != nil {
					return err
				}
			}

			if out == "" {
				out, err = config.GetDefaultPlanPath(".")
				if err != nil {
					return err
				}
			}
			if _, err := os.Stat(out); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", out)
			}

			if cmd.Flags().Changed("target") {
				if err := config.SetTarget(".", target); err != nil {
					return err
				}
				splog.Debug("persisted target %s to %s", target, config.ConfigFileName)
			}

			// Detached HEAD has no current branch; skip the hint then.
			if current, err := repo.GetCurrentBranch(); err == nil && current == target {
				splog.Warn("The merge target %s is currently checked out; plan items were derived from the other branches", target)
			}

			branches, err := repo.GetBranchNames()
			if err != nil {
				return err
			}
			sort.Strings(branches)

			slug := git.RepoSlugOrDir(repo.GetOriginURL(), repo.GetRepoRoot())
			splog.Debug("scaffolding plan for %s (target %s)", slug, target)

			items := make([]plan.Item, 0, len(branches))
			for _, branch := range branches {
				if branch == target {
					continue
				}
				items = append(items, plan.Item{Repo: slug, Branch: branch})
			}

			data, err := plan.Encode(&plan.Plan{Target: target, Items: items})
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}

			splog.Info("Wrote %s (%d items, target %s)", out, len(items), target)
			return nil
		},
	}

	cmd.Flags().StringVar(&target, "target", "", "Merge target branch (persisted to the workspace config; defaults to the configured target, then 'main')")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output plan file (defaults to the configured plan path, then 'plan.json')")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing plan file")

	return cmd
}
