package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/claude-workflow/claude-workflow/internal/agent"
	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/output"
	"github.com/claude-workflow/claude-workflow/internal/progress"
	"github.com/claude-workflow/claude-workflow/internal/project"
	"github.com/claude-workflow/claude-workflow/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Initialize the docs and planning structure in a project",
	Long: `Initialize a project for agent-assisted development.

This command:
  1. Creates docs/ and planning/templates/ in the target directory
  2. Writes the agent instructions file (CLAUDE.md, or AmazonQ.md with --amazonq)
  3. Distributes the packaged documentation templates
  4. Installs the planning/new_project.sh helper script

Files that already exist are left untouched, so re-running init on an
initialized project is safe. The agent instructions file is the one
exception: it is rewritten on every run.

Examples:
  claude-workflow init .               # initialize the current directory
  claude-workflow init ~/proj          # initialize another project
  claude-workflow init . --amazonq     # write Amazon Q instructions instead`,
	Args: cobra.ExactArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.GroupID = GroupGettingStarted
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("amazonq", false, "Write Amazon Q instructions (AmazonQ.md) instead of Claude (CLAUDE.md)")
}

func runInit(cmd *cobra.Command, args []string) error {
	alternate, _ := cmd.Flags().GetBool("amazonq")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	configured, err := cfg.GetAgent()
	if err != nil {
		return errors.UnknownAgent(cfg.DefaultAgent)
	}
	chosen := agent.FromFlag(alternate, configured)

	root, err := filepath.Abs(args[0])
	if err != nil {
		return errors.WrapWithMessage(err, errors.Argument, "resolving target path")
	}

	result, err := project.Init(project.InitOptions{
		Root:        root,
		Agent:       chosen,
		PlanningDir: cfg.PlanningDir,
		DocsDir:     cfg.DocsDir,
		SkipConfirm: cfg.SkipConfirmations,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Progress:    progress.NewDisplay(progress.DetectTerminalCapabilities()),
	})
	if err != nil {
		return err
	}

	printInitSummary(cmd.OutOrStdout(), root, result)
	return nil
}

func printInitSummary(out io.Writer, root string, result *project.InitResult) {
	output.PrintInstalled(out, "Agent instructions", relToRoot(root, result.AgentFile))

	printDistribution(out, root, "Branch templates", result.BranchTemplates, filepath.Join(result.PlanningRoot, project.TemplatesDirName))
	printDistribution(out, root, "Project docs", result.ProjectDocs, result.DocsRoot)

	output.PrintInstalled(out, "Helper script", relToRoot(root, result.HelperScript))

	fmt.Fprintf(out, "\nClaude Workflow initialized in %s\n", root)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "1. Edit %s with your specific project details\n", result.AgentFile)
	fmt.Fprintln(out, "2. Create a feature branch: git checkout -b feature/your-feature")
	fmt.Fprintln(out, "3. Run claude-workflow new to create documentation for the new feature")
	fmt.Fprintf(out, "4. Tell %s to read the planning documents to understand your project\n", result.Agent.DisplayName)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "For more information, see the documentation.")
}

// printDistribution prints the summary line for one template batch followed
// by a per-file line for each template in it.
func printDistribution(out io.Writer, root, label string, results []scaffold.CopyResult, dest string) {
	created, skipped, _ := scaffold.Summarize(results)
	output.PrintDistribution(out, label, created, skipped, relToRoot(root, dest))
	for _, r := range results {
		name := filepath.Base(r.Path)
		switch r.Action {
		case scaffold.ActionCreated:
			fmt.Fprintf(out, "  + %s (created)\n", name)
		case scaffold.ActionSkipped:
			fmt.Fprintf(out, "  = %s (existing)\n", name)
		case scaffold.ActionMissing:
			output.PrintWarning(out, fmt.Sprintf("%s missing from package", name))
		}
	}
}

// relToRoot renders path relative to the project root for compact output,
// falling back to the absolute path when it does not share the root.
func relToRoot(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
