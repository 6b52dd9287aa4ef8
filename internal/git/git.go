// Package git provides the git repository queries claude-workflow needs:
// branch detection and repository validation. It uses the go-git library so
// no git CLI installation is required. All functions take explicit paths
// rather than reading the working directory themselves.
package git

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// debugLogger is a function that logs debug messages when debug mode is enabled.
// By default, it's a no-op. Set it via SetDebugLogger to enable debug output.
var debugLogger func(format string, args ...any)

// SetDebugLogger configures the debug logger for git operations.
// Pass nil to disable debug logging. The logger function should format
// and output the message (similar to log.Printf signature).
func SetDebugLogger(logger func(format string, args ...any)) {
	debugLogger = logger
}

// logDebug logs a debug message if the debug logger is set.
func logDebug(format string, args ...any) {
	if debugLogger != nil {
		debugLogger(format, args...)
	}
}

// openRepo opens the git repository containing path. It uses go-git's
// PlainOpenWithOptions with DetectDotGit enabled to traverse up the
// directory tree to find the repository root.
func openRepo(path string) (*git.Repository, error) {
	logDebug("[git] opening repository at %s", path)

	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}

	logDebug("[git] repository opened successfully")
	return repo, nil
}

// CurrentBranch returns the name of the branch checked out in the repository
// containing path. Returns empty string if in detached HEAD state.
func CurrentBranch(path string) (string, error) {
	repo, err := openRepo(path)
	if err != nil {
		return "", err
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		logDebug("[git] CurrentBranch: detached HEAD state")
		return "", nil
	}

	branch := head.Name().Short()
	logDebug("[git] CurrentBranch: %s", branch)
	return branch, nil
}

// IsRepository reports whether path is inside a git repository.
func IsRepository(path string) bool {
	_, err := openRepo(path)
	result := err == nil
	logDebug("[git] IsRepository(%s): %v", path, result)
	return result
}

// IsRepositoryRoot reports whether path itself carries version-control
// metadata (a .git entry). Unlike IsRepository it does not traverse up, so
// a project directory nested inside some unrelated repository still counts
// as uninitialized.
func IsRepositoryRoot(path string) bool {
	_, err := os.Stat(filepath.Join(path, git.GitDirName))
	result := err == nil
	logDebug("[git] IsRepositoryRoot(%s): %v", path, result)
	return result
}
