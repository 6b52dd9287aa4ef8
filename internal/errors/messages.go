package errors

import "fmt"

// Common error messages for the claude-workflow CLI.
// These templates ensure consistent, actionable error messages.

// TargetNotFound creates an error for an init target directory that does not exist.
func TargetNotFound(path string) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("target directory not found: %s", path),
		"claude-workflow init <project-path>",
		"Create the directory first: mkdir -p "+path,
		"Or pass the path to an existing project",
	)
}

// UserDeclined creates an error for a user aborting at a confirmation prompt.
func UserDeclined() *CLIError {
	return NewRuntimeError(
		"initialization aborted",
		"Run the command again and confirm with 'y'",
		"Or initialize the directory as a git repository first: git init",
	)
}

// NotInitialized creates an error for running update in a project that was
// never initialized (no agent instructions file at the project root).
func NotInitialized(root string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("no agent instructions file (CLAUDE.md or AmazonQ.md) found in %s", root),
		"Run 'claude-workflow init .' to initialize this project first",
	)
}

// BranchUndeterminable creates an error for when the current git branch
// cannot be resolved (not a repository, or detached HEAD).
func BranchUndeterminable(reason string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("could not determine the current git branch: %s", reason),
		"Check out a branch: git checkout -b <area>/<project-name>",
		"Run this command from inside a git repository",
	)
}

// InvalidBranch creates an error for a branch name that cannot be mapped to
// a planning directory path.
func InvalidBranch(branch, reason string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("branch %q cannot be scaffolded: %s", branch, reason),
		"Rename the branch: git branch -m <area>/<project-name>",
	)
}

// PlanningRootMissing creates an error for a missing planning directory.
func PlanningRootMissing(path string) *CLIError {
	return NewPrerequisiteError(
		fmt.Sprintf("planning directory not found: %s", path),
		"Run 'claude-workflow init .' to set up the project structure",
		"Or run this command from the project root",
	)
}

// ConfigParseError creates an error for an invalid config file.
func ConfigParseError(path string, err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		fmt.Sprintf("failed to parse config file: %s", path),
		"Check the file for YAML syntax errors",
		"Or remove it to fall back to defaults",
	)
}

// UnknownAgent creates an error for an unrecognized agent name in config.
func UnknownAgent(name string) *CLIError {
	return NewConfigError(
		fmt.Sprintf("unknown agent: %q", name),
		"Valid agents: claude, amazonq",
		"Fix default_agent in .claude-workflow/config.yml",
	)
}

// FileWriteError creates an error for a file that could not be written.
func FileWriteError(path string, err error) *CLIError {
	return WrapWithMessage(err, Runtime,
		fmt.Sprintf("cannot write %s", path),
		"Check permissions on the parent directory: ls -la "+path,
	)
}
