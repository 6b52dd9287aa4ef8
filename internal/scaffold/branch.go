// Package scaffold derives planning directories from branch names and
// populates them with template files, skipping anything that already exists.
package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/claude-workflow/claude-workflow/internal/errors"
)

// BranchSegments splits a branch name on "/" into ordered path segments.
// A branch like "feature/auth/oauth" maps to the nested directory
// feature/auth/oauth under the planning root.
//
// Segment order is preserved. Names that cannot be mapped to a safe relative
// path are rejected: empty names, empty segments (leading slash, doubled
// slash), and "." or ".." segments. Git refuses such names too, so nothing
// that can actually be checked out is turned away.
func BranchSegments(branch string) ([]string, error) {
	if strings.TrimSpace(branch) == "" {
		return nil, errors.InvalidBranch(branch, "branch name is empty")
	}

	segments := strings.Split(branch, "/")
	for _, seg := range segments {
		switch seg {
		case "":
			return nil, errors.InvalidBranch(branch, "contains an empty path segment")
		case ".", "..":
			return nil, errors.InvalidBranch(branch, "contains a path traversal segment")
		}
	}
	return segments, nil
}

// BranchDir joins the branch's segments under the planning root.
func BranchDir(planningRoot, branch string) (string, error) {
	segments, err := BranchSegments(branch)
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{planningRoot}, segments...)...), nil
}
