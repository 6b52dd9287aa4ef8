package scaffold

import (
	"os"
	"path/filepath"

	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/templates"
)

// Result describes a completed branch scaffold.
type Result struct {
	Branch    string       // branch the directory was derived from
	BranchDir string       // created directory under the planning root
	Copies    []CopyResult // per-template outcomes
}

// PlanningRoot returns the planning directory under root, verifying that it
// exists. A missing root means the project was never initialized, so the
// error carries that remediation.
func PlanningRoot(root, planningDir string) (string, error) {
	planningRoot := filepath.Join(root, planningDir)
	if info, err := os.Stat(planningRoot); err != nil || !info.IsDir() {
		return "", errors.PlanningRootMissing(planningRoot)
	}
	return planningRoot, nil
}

// ScaffoldBranch creates the planning directory for branch under
// root/planningDir and populates it with the per-branch templates.
//
// The planning root must already exist (a prior init creates it); that
// precondition is checked before any branch work so a missing root fails
// fast with no filesystem mutation. Re-running for the same branch is safe:
// existing files are left untouched.
func ScaffoldBranch(root, branch, planningDir string) (*Result, error) {
	planningRoot, err := PlanningRoot(root, planningDir)
	if err != nil {
		return nil, err
	}

	branchDir, err := BranchDir(planningRoot, branch)
	if err != nil {
		return nil, err
	}

	copies, err := CopyTemplates(branchDir, templates.PerBranchSet())
	if err != nil {
		return nil, err
	}

	return &Result{Branch: branch, BranchDir: branchDir, Copies: copies}, nil
}
