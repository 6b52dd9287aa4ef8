package cli

// Exit codes for the claude-workflow CLI
// The tool is terminal-facing and callers only branch on success vs failure,
// so every failure maps to the same non-zero code.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates any command failure: missing target, declined
	// confirmation, undeterminable branch, missing planning root, or a
	// filesystem write error
	ExitFailure = 1
)
