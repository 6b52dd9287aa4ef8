package scaffold

import (
	"os"
	"path/filepath"

	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/templates"
)

// Copy actions recorded per template.
const (
	// ActionCreated means the destination did not exist and was written.
	ActionCreated = "created"
	// ActionSkipped means the destination already existed and was left untouched.
	ActionSkipped = "skipped"
	// ActionMissing means the packaged source could not be located. This is
	// reported as a per-file warning, never a fatal abort.
	ActionMissing = "missing"
)

// CopyResult records what happened to one template during distribution.
type CopyResult struct {
	Name   string // logical template name
	Path   string // destination path
	Action string // "created", "skipped", or "missing"
}

// ShouldWrite is the copy/skip policy: write only when the destination does
// not already exist. Kept as its own function so the policy is testable
// without touching the filesystem.
func ShouldWrite(destinationExists bool) bool {
	return !destinationExists
}

// CopyTemplates distributes the given templates into destDir, creating the
// directory if needed. Existing destination files are never overwritten.
// A template whose packaged source is missing is recorded and skipped so the
// rest of the set still lands; only unrecoverable filesystem errors abort.
func CopyTemplates(destDir string, set []templates.Template) ([]CopyResult, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, errors.FileWriteError(destDir, err)
	}

	results := make([]CopyResult, 0, len(set))
	for _, tmpl := range set {
		destPath := filepath.Join(destDir, tmpl.Filename)

		content, err := templates.Content(tmpl.Filename)
		if err != nil {
			results = append(results, CopyResult{Name: tmpl.Name, Path: destPath, Action: ActionMissing})
			continue
		}

		if !ShouldWrite(fileExists(destPath)) {
			results = append(results, CopyResult{Name: tmpl.Name, Path: destPath, Action: ActionSkipped})
			continue
		}

		if err := os.WriteFile(destPath, content, 0o644); err != nil {
			return results, errors.FileWriteError(destPath, err)
		}
		results = append(results, CopyResult{Name: tmpl.Name, Path: destPath, Action: ActionCreated})
	}
	return results, nil
}

// Summarize counts results by action.
func Summarize(results []CopyResult) (created, skipped, missing int) {
	for _, r := range results {
		switch r.Action {
		case ActionCreated:
			created++
		case ActionSkipped:
			skipped++
		case ActionMissing:
			missing++
		}
	}
	return
}

// fileExists returns true if path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
