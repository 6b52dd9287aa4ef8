package project

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/claude-workflow/claude-workflow/internal/agent"
	"github.com/claude-workflow/claude-workflow/internal/build"
	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/git"
	"github.com/claude-workflow/claude-workflow/internal/progress"
	"github.com/claude-workflow/claude-workflow/internal/scaffold"
	"github.com/claude-workflow/claude-workflow/internal/templates"
)

// TemplatesDirName is the subdirectory of the planning root that holds the
// distributed template masters.
const TemplatesDirName = "templates"

// InitOptions configures Init. Root and Agent are required; the directory
// names default to "planning" and "docs" when empty.
type InitOptions struct {
	// Root is the target project directory. It must already exist.
	Root string

	// Agent selects the instructions file written at the project root.
	Agent agent.Agent

	// PlanningDir and DocsDir are the layout directory names, relative to
	// Root.
	PlanningDir string
	DocsDir     string

	// SkipConfirm proceeds without prompting when Root is not a git
	// repository.
	SkipConfirm bool

	// In and Out carry the confirmation prompt. They default to os.Stdin
	// and os.Stdout.
	In  io.Reader
	Out io.Writer

	// Progress is an optional spinner shown while templates are
	// distributed. May be nil.
	Progress *progress.Display
}

// InitResult reports what Init wrote, per file.
type InitResult struct {
	Agent           agent.Agent
	AgentFile       string                // instructions file at the project root, always rewritten
	BranchTemplates []scaffold.CopyResult // distributed into <planning>/templates/
	ProjectDocs     []scaffold.CopyResult // distributed into <docs>/
	HelperScript    string                // script installed into <planning>/, always rewritten
	PlanningRoot    string
	DocsRoot        string
}

// Init performs the one-time project setup: layout directories, the agent
// instructions file, the packaged templates, the helper script, and the
// settings snapshot.
//
// Nothing is written before the target directory and git-repository checks
// pass; a declined confirmation aborts with no filesystem mutation. Existing
// template files are never overwritten. The agent instructions file and the
// helper script are the two exceptions: both are rewritten on every run.
func Init(opts InitOptions) (*InitResult, error) {
	opts = opts.withDefaults()

	info, err := os.Stat(opts.Root)
	if err != nil || !info.IsDir() {
		return nil, errors.TargetNotFound(opts.Root)
	}

	if !git.IsRepositoryRoot(opts.Root) {
		fmt.Fprintln(opts.Out, "Warning: Target directory does not appear to be a git repository.")
		if opts.SkipConfirm {
			fmt.Fprintln(opts.Out, "Proceeding (skip_confirmations enabled)...")
		} else if !promptYesNo(opts.In, opts.Out, "Continue anyway?") {
			return nil, errors.UserDeclined()
		}
	}

	opts.Progress.Start("Distributing templates...")
	defer opts.Progress.Stop()

	result := &InitResult{
		Agent:        opts.Agent,
		PlanningRoot: filepath.Join(opts.Root, opts.PlanningDir),
		DocsRoot:     filepath.Join(opts.Root, opts.DocsDir),
	}
	templatesDir := filepath.Join(result.PlanningRoot, TemplatesDirName)

	for _, dir := range []string{result.DocsRoot, templatesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.FileWriteError(dir, err)
		}
	}

	agentFile, err := writeAgentInstructions(opts.Root, opts.Agent)
	if err != nil {
		return nil, err
	}
	result.AgentFile = agentFile

	if result.BranchTemplates, err = scaffold.CopyTemplates(templatesDir, templates.PerBranchSet()); err != nil {
		return nil, err
	}
	if result.ProjectDocs, err = scaffold.CopyTemplates(result.DocsRoot, templates.PerProjectSet()); err != nil {
		return nil, err
	}

	if result.HelperScript, err = installHelperScript(result.PlanningRoot); err != nil {
		return nil, err
	}

	if err := NewSettings(build.Version, opts.Agent.Name).Save(opts.Root); err != nil {
		return nil, errors.FileWriteError(SettingsPath(opts.Root), err)
	}

	return result, nil
}

func (o InitOptions) withDefaults() InitOptions {
	if o.PlanningDir == "" {
		o.PlanningDir = "planning"
	}
	if o.DocsDir == "" {
		o.DocsDir = "docs"
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	return o
}

// writeAgentInstructions renders the instructions template for the agent,
// strips its title heading, and writes it at the project root. The file is
// replaced if it already exists.
func writeAgentInstructions(root string, a agent.Agent) (string, error) {
	content, err := templates.RenderAgentInstructions(a)
	if err != nil {
		return "", errors.WrapWithMessage(err, errors.Runtime, "rendering agent instructions")
	}

	path := filepath.Join(root, a.OutputFile)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", errors.FileWriteError(path, err)
	}
	return path, nil
}

// installHelperScript writes the packaged helper script into the planning
// root and marks it executable. The script is refreshed on every run so
// projects pick up fixes without manual copying.
func installHelperScript(planningRoot string) (string, error) {
	content, err := templates.HelperScript()
	if err != nil {
		return "", errors.WrapWithMessage(err, errors.Runtime, "loading packaged helper script")
	}

	path := filepath.Join(planningRoot, templates.HelperScriptName)
	if err := os.WriteFile(path, content, 0o755); err != nil {
		return "", errors.FileWriteError(path, err)
	}
	// WriteFile only applies the mode on create; an existing script keeps
	// its old bits unless chmodded.
	if err := os.Chmod(path, 0o755); err != nil {
		return "", errors.FileWriteError(path, err)
	}
	return path, nil
}

// promptYesNo asks a yes/no question and reads a single line answer.
// Only "y" and "yes" (case-insensitive) count as confirmation.
func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	reader := bufio.NewReader(in)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}
