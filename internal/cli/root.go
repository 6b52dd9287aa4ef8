// Package cli implements the claude-workflow command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/claude-workflow/claude-workflow/internal/config"
	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/git"
)

// Command group IDs used to organize help output.
const (
	GroupGettingStarted = "getting-started"
	GroupWorkflows      = "workflows"
	GroupUtility        = "utility"
)

// Persistent flag values shared by all commands.
var (
	cfgFile     string
	skipConfirm bool
	debugMode   bool
)

var rootCmd = &cobra.Command{
	Use:   "claude-workflow",
	Short: "Branch-keyed planning and docs scaffolding for agent-assisted development",
	Long: `claude-workflow sets up a documentation and planning structure that coding
agents can navigate: project-level docs in docs/, blank planning templates in
planning/templates/, and one planning directory per feature branch.

Branch names map directly onto the planning layout, so feature/login gets
planning/feature/login/. Existing files are never overwritten; only the
agent instructions file and the helper script are refreshed in place.`,
	Example: `  # Set up a project (once)
  claude-workflow init .

  # Scaffold planning docs for the branch you are on
  git checkout -b feature/login
  claude-workflow new

  # Distribute templates added by a new release
  claude-workflow update`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugMode {
			git.SetDebugLogger(func(format string, a ...any) {
				fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", a...)
			})
		}
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupGettingStarted, Title: "Getting Started:"},
		&cobra.Group{ID: GroupWorkflows, Title: "Workflows:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility:"},
	)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to project config file (default .claude-workflow/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompts")
	rootCmd.PersistentFlags().BoolVarP(&debugMode, "debug", "d", false, "Enable debug logging")
}

// Execute runs the root command and prints any resulting error to stderr.
// Structured errors render with their category and remediation steps; plain
// errors get a bare "Error:" prefix.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		if cliErr := errors.AsCLIError(err); cliErr != nil {
			errors.PrintError(cliErr)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	}
	return err
}

// loadConfig loads the layered configuration, honoring the persistent
// --config and --yes flags.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		if cfgFile != "" {
			return nil, errors.ConfigParseError(cfgFile, err)
		}
		return nil, errors.WrapWithMessage(err, errors.Configuration, "loading configuration")
	}
	if skipConfirm {
		cfg.SkipConfirmations = true
	}
	return cfg, nil
}
