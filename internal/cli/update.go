package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/output"
	"github.com/claude-workflow/claude-workflow/internal/progress"
	"github.com/claude-workflow/claude-workflow/internal/project"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Refresh templates and the helper script in an initialized project",
	Long: `Bring an initialized project up to date with the templates packaged in
this release.

Templates added since the project was initialized are distributed; files
that already exist are never overwritten. The planning/new_project.sh
helper script is replaced with the latest packaged copy, and migration
instructions are written to MIGRATION_INSTRUCTIONS.md at the project root.

The current directory must contain an agent instructions file (CLAUDE.md
or AmazonQ.md) from a prior init.`,
	Args: cobra.NoArgs,
	RunE: runUpdate,
}

func init() {
	updateCmd.GroupID = GroupWorkflows
	rootCmd.AddCommand(updateCmd)
}

func runUpdate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "determining working directory")
	}

	result, err := project.Update(project.UpdateOptions{
		Root:        cwd,
		PlanningDir: cfg.PlanningDir,
		DocsDir:     cfg.DocsDir,
		Progress:    progress.NewDisplay(progress.DetectTerminalCapabilities()),
	})
	if err != nil {
		return err
	}

	templatesDir := filepath.Join(cwd, cfg.PlanningDir, project.TemplatesDirName)
	docsDir := filepath.Join(cwd, cfg.DocsDir)
	printUpdateSummary(cmd.OutOrStdout(), cwd, templatesDir, docsDir, result)
	return nil
}

func printUpdateSummary(out io.Writer, root, templatesDir, docsDir string, result *project.UpdateResult) {
	fmt.Fprintf(out, "Updating project (%s detected)\n\n", result.Agent.OutputFile)

	printDistribution(out, root, "Branch templates", result.BranchTemplates, templatesDir)
	printDistribution(out, root, "Project docs", result.ProjectDocs, docsDir)

	output.PrintInstalled(out, "Helper script", relToRoot(root, result.HelperScript))
	output.PrintInstalled(out, "Migration instructions", relToRoot(root, result.MigrationDoc))

	fmt.Fprintln(out)
	output.PrintDocSeparator(out, filepath.Base(result.MigrationDoc))
	fmt.Fprint(out, string(result.MigrationBody))
}
