package project

import (
	"os"
	"path/filepath"

	"github.com/claude-workflow/claude-workflow/internal/agent"
	"github.com/claude-workflow/claude-workflow/internal/build"
	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/progress"
	"github.com/claude-workflow/claude-workflow/internal/scaffold"
	"github.com/claude-workflow/claude-workflow/internal/templates"
)

// UpdateOptions configures Update. Root is required; the directory names
// default to "planning" and "docs" when empty.
type UpdateOptions struct {
	// Root is the project directory. It must contain an agent instructions
	// file from a prior init.
	Root string

	// PlanningDir and DocsDir are the layout directory names, relative to
	// Root.
	PlanningDir string
	DocsDir     string

	// Progress is an optional spinner shown while templates are
	// distributed. May be nil.
	Progress *progress.Display
}

// UpdateResult reports what Update wrote, per file.
type UpdateResult struct {
	Agent           agent.Agent           // detected from the existing instructions file
	BranchTemplates []scaffold.CopyResult // distributed into <planning>/templates/
	ProjectDocs     []scaffold.CopyResult // distributed into <docs>/
	HelperScript    string                // always rewritten
	MigrationDoc    string                // migration instructions at the project root, always rewritten
	MigrationBody   []byte                // content of the migration document, for printing
}

// Update refreshes an initialized project: templates added in newer releases
// are distributed without touching existing files, the helper script is
// replaced with the latest packaged copy, and migration instructions are
// written at the project root.
//
// The project must already carry an agent instructions file; without one the
// update aborts before any filesystem mutation.
func Update(opts UpdateOptions) (*UpdateResult, error) {
	opts = opts.withDefaults()

	detected, ok := agent.Detect(opts.Root)
	if !ok {
		return nil, errors.NotInitialized(opts.Root)
	}

	opts.Progress.Start("Distributing templates...")
	defer opts.Progress.Stop()

	result := &UpdateResult{Agent: detected}
	planningRoot := filepath.Join(opts.Root, opts.PlanningDir)
	docsRoot := filepath.Join(opts.Root, opts.DocsDir)
	templatesDir := filepath.Join(planningRoot, TemplatesDirName)

	for _, dir := range []string{docsRoot, templatesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.FileWriteError(dir, err)
		}
	}

	var err error
	if result.BranchTemplates, err = scaffold.CopyTemplates(templatesDir, templates.PerBranchSet()); err != nil {
		return nil, err
	}
	if result.ProjectDocs, err = scaffold.CopyTemplates(docsRoot, templates.PerProjectSet()); err != nil {
		return nil, err
	}

	if result.HelperScript, err = installHelperScript(planningRoot); err != nil {
		return nil, err
	}

	if result.MigrationDoc, result.MigrationBody, err = writeMigrationInstructions(opts.Root); err != nil {
		return nil, err
	}

	// The snapshot is informational; a failed write must not fail an update
	// that already landed.
	_ = touchSettings(opts.Root, build.Version, detected.Name)

	return result, nil
}

func (o UpdateOptions) withDefaults() UpdateOptions {
	if o.PlanningDir == "" {
		o.PlanningDir = "planning"
	}
	if o.DocsDir == "" {
		o.DocsDir = "docs"
	}
	return o
}

// writeMigrationInstructions places the packaged migration document at the
// project root, replacing any previous copy, and returns its content so the
// caller can print it.
func writeMigrationInstructions(root string) (string, []byte, error) {
	body, err := templates.MigrationInstructions()
	if err != nil {
		return "", nil, errors.WrapWithMessage(err, errors.Runtime, "loading packaged migration instructions")
	}

	path := filepath.Join(root, templates.MigrationDocName)
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", nil, errors.FileWriteError(path, err)
	}
	return path, body, nil
}
