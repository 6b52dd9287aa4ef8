package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/git"
	"github.com/claude-workflow/claude-workflow/internal/output"
	"github.com/claude-workflow/claude-workflow/internal/scaffold"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create the planning directory for the current git branch",
	Long: `Create a planning directory for the branch checked out in the current
repository and populate it with the per-branch templates (feature.md,
tasks.md, to-do.md).

The branch name maps directly onto the directory layout: feature/login
becomes planning/feature/login/. Re-running on the same branch is safe;
existing files are never overwritten.

Run this from inside an initialized project, on the branch you want to
plan. The project must have been set up with 'claude-workflow init' first.

Examples:
  git checkout -b feature/login
  claude-workflow new`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	newCmd.GroupID = GroupWorkflows
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "determining working directory")
	}

	// Check the planning root before asking git anything so an uninitialized
	// project fails with the init remediation, not a git error.
	if _, err := scaffold.PlanningRoot(cwd, cfg.PlanningDir); err != nil {
		return err
	}

	branch, err := git.CurrentBranch(cwd)
	if err != nil {
		return errors.BranchUndeterminable(err.Error())
	}
	if branch == "" {
		return errors.BranchUndeterminable("detached HEAD")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Current branch: %s\n", branch)

	result, err := scaffold.ScaffoldBranch(cwd, branch, cfg.PlanningDir)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created directory structure: %s\n", result.BranchDir)
	for _, r := range result.Copies {
		name := filepath.Base(r.Path)
		switch r.Action {
		case scaffold.ActionCreated:
			fmt.Fprintf(out, "Created %s from template\n", name)
		case scaffold.ActionMissing:
			output.PrintWarning(out, fmt.Sprintf("Template file %s not found", name))
		}
	}

	fmt.Fprintf(out, "\nProject structure created successfully at: %s\n", result.BranchDir)
	fmt.Fprintln(out, "\nThe following files were created or copied:")
	entries, err := os.ReadDir(result.BranchDir)
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "listing branch directory")
	}
	for _, entry := range entries {
		fmt.Fprintf(out, " - %s\n", entry.Name())
	}
	return nil
}
