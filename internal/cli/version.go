package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/claude-workflow/claude-workflow/internal/build"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Aliases: []string{"v"},
	Short:   "Display version information (v)",
	Long:    "Display version, commit, build date, and Go version information for claude-workflow",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		version := build.Version
		if build.IsDevBuild() {
			version += " (source build)"
		}
		fmt.Fprintf(out, "claude-workflow %s\n", version)
		fmt.Fprintf(out, "commit: %s\n", truncateCommit(build.Commit))
		fmt.Fprintf(out, "built: %s\n", build.BuildDate)
		fmt.Fprintf(out, "go: %s\n", runtime.Version())
		fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.GroupID = GroupUtility
	rootCmd.AddCommand(versionCmd)
}

// truncateCommit shortens commit hash if it's too long
func truncateCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
