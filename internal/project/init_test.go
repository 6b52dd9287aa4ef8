// Package project tests the one-time initialization flow.
// Related: internal/project/init.go
// Tags: project, init, templates, idempotence
package project

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude-workflow/claude-workflow/internal/agent"
	"github.com/claude-workflow/claude-workflow/internal/errors"
	"github.com/claude-workflow/claude-workflow/internal/scaffold"
)

// gitRoot creates a project directory carrying a .git marker so Init never
// prompts.
func gitRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	return root
}

// runInit initializes root for the default agent and fails the test on error.
func runInit(t *testing.T, root string) *InitResult {
	t.Helper()
	result, err := Init(InitOptions{Root: root, Agent: agent.Default(), Out: &bytes.Buffer{}})
	require.NoError(t, err)
	return result
}

func TestInitTargetMustExist(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "does-not-exist")
	_, err := Init(InitOptions{Root: missing, Agent: agent.Default(), Out: &bytes.Buffer{}})
	require.Error(t, err)

	cliErr := errors.AsCLIError(err)
	require.NotNil(t, cliErr)
	assert.Equal(t, errors.Argument, cliErr.Category)
}

func TestInitPromptsWhenNotRepository(t *testing.T) {
	tests := map[string]struct {
		answer      string
		skipConfirm bool
		wantErr     bool
	}{
		"decline with n":         {answer: "n\n", wantErr: true},
		"decline with enter":     {answer: "\n", wantErr: true},
		"confirm with y":         {answer: "y\n", wantErr: false},
		"confirm with yes":       {answer: "yes\n", wantErr: false},
		"confirm uppercase":      {answer: "Y\n", wantErr: false},
		"skip confirmations set": {answer: "", skipConfirm: true, wantErr: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir() // no .git marker

			var out bytes.Buffer
			_, err := Init(InitOptions{
				Root:        root,
				Agent:       agent.Default(),
				SkipConfirm: tc.skipConfirm,
				In:          strings.NewReader(tc.answer),
				Out:         &out,
			})

			assert.Contains(t, out.String(), "does not appear to be a git repository")

			if tc.wantErr {
				require.Error(t, err)
				cliErr := errors.AsCLIError(err)
				require.NotNil(t, cliErr)
				assert.Equal(t, errors.Runtime, cliErr.Category)

				// Declining must leave the target untouched.
				entries, readErr := os.ReadDir(root)
				require.NoError(t, readErr)
				assert.Empty(t, entries)
				return
			}
			require.NoError(t, err)
			assert.DirExists(t, filepath.Join(root, "docs"))
		})
	}
}

func TestInitSkipsPromptInsideRepository(t *testing.T) {
	t.Parallel()
	root := gitRoot(t)

	var out bytes.Buffer
	// In is empty: a prompt would read EOF and decline, so success proves
	// no prompt happened.
	_, err := Init(InitOptions{Root: root, Agent: agent.Default(), In: strings.NewReader(""), Out: &out})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "git repository")
}

func TestInitCreatesLayout(t *testing.T) {
	t.Parallel()
	root := gitRoot(t)

	result := runInit(t, root)

	assert.DirExists(t, filepath.Join(root, "docs"))
	assert.DirExists(t, filepath.Join(root, "planning", "templates"))

	// Agent instructions at the root, with the title heading stripped.
	content, err := os.ReadFile(filepath.Join(root, "CLAUDE.md"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("## Build and Test Commands")),
		"content must start at the body, with the title heading and blank lines stripped")
	assert.Contains(t, string(content), "Claude")

	created, skipped, missing := scaffold.Summarize(result.BranchTemplates)
	assert.Equal(t, 3, created)
	assert.Zero(t, skipped)
	assert.Zero(t, missing)

	created, skipped, missing = scaffold.Summarize(result.ProjectDocs)
	assert.Equal(t, 6, created)
	assert.Zero(t, skipped)
	assert.Zero(t, missing)

	// Helper script installed executable.
	info, err := os.Stat(filepath.Join(root, "planning", "new_project.sh"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	assert.True(t, SettingsExist(root))
}

func TestInitPopulatesEmptyDocsExactly(t *testing.T) {
	t.Parallel()
	root := gitRoot(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "docs"), 0o755))

	runInit(t, root)

	entries, err := os.ReadDir(filepath.Join(root, "docs"))
	require.NoError(t, err)
	require.Len(t, entries, 6)
	for _, e := range entries {
		content, err := os.ReadFile(filepath.Join(root, "docs", e.Name()))
		require.NoError(t, err)
		assert.NotEmpty(t, content, "%s must not be empty", e.Name())
	}
}

func TestInitAgentVariant(t *testing.T) {
	tests := map[string]struct {
		agentName    string
		wantFile     string
		wantPhrase   string
		absentFile   string
		absentPhrase string
	}{
		"default claude": {
			agentName:    "claude",
			wantFile:     "CLAUDE.md",
			wantPhrase:   "Claude",
			absentFile:   "AmazonQ.md",
			absentPhrase: "Amazon Q",
		},
		"alternate amazonq": {
			agentName:    "amazonq",
			wantFile:     "AmazonQ.md",
			wantPhrase:   "Amazon Q",
			absentFile:   "CLAUDE.md",
			absentPhrase: "Claude",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			root := gitRoot(t)

			a, ok := agent.Get(tc.agentName)
			require.True(t, ok)

			result, err := Init(InitOptions{Root: root, Agent: a, Out: &bytes.Buffer{}})
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(root, tc.wantFile), result.AgentFile)

			content, err := os.ReadFile(filepath.Join(root, tc.wantFile))
			require.NoError(t, err)
			assert.Contains(t, string(content), tc.wantPhrase)
			assert.NotContains(t, string(content), tc.absentPhrase)

			assert.NoFileExists(t, filepath.Join(root, tc.absentFile))
		})
	}
}

func TestInitIsIdempotent(t *testing.T) {
	t.Parallel()
	root := gitRoot(t)

	runInit(t, root)

	// Simulate a project that has filled in its docs and instructions.
	domainPath := filepath.Join(root, "docs", "domain.md")
	domainEdited := []byte("# Payments Domain\n\nEdited by hand.\n")
	require.NoError(t, os.WriteFile(domainPath, domainEdited, 0o644))

	agentPath := filepath.Join(root, "CLAUDE.md")
	require.NoError(t, os.WriteFile(agentPath, []byte("customized\n"), 0o644))

	second := runInit(t, root)

	// Pre-existing docs keep their bytes.
	content, err := os.ReadFile(domainPath)
	require.NoError(t, err)
	assert.Equal(t, domainEdited, content)

	created, skipped, _ := scaffold.Summarize(second.ProjectDocs)
	assert.Zero(t, created)
	assert.Equal(t, 6, skipped)

	// The agent instructions file is the exception: always replaced.
	content, err = os.ReadFile(agentPath)
	require.NoError(t, err)
	assert.NotEqual(t, []byte("customized\n"), content)
	assert.Contains(t, string(content), "Claude")
}

func TestInitSettingsSnapshot(t *testing.T) {
	t.Parallel()
	root := gitRoot(t)

	runInit(t, root)

	settings, err := LoadSettings(root)
	require.NoError(t, err)
	assert.Equal(t, SettingsSchemaVersion, settings.Version)
	assert.Equal(t, "claude", settings.Agent)
	assert.False(t, settings.CreatedAt.IsZero())
	assert.False(t, settings.UpdatedAt.IsZero())
}

func TestInitCustomDirectoryNames(t *testing.T) {
	t.Parallel()
	root := gitRoot(t)

	result, err := Init(InitOptions{
		Root:        root,
		Agent:       agent.Default(),
		PlanningDir: "plans",
		DocsDir:     "documentation",
		Out:         &bytes.Buffer{},
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "plans"), result.PlanningRoot)
	assert.DirExists(t, filepath.Join(root, "plans", "templates"))
	assert.DirExists(t, filepath.Join(root, "documentation"))
	assert.NoDirExists(t, filepath.Join(root, "planning"))
	assert.NoDirExists(t, filepath.Join(root, "docs"))
}
