//go:build e2e

package e2e

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/claude-workflow/claude-workflow/internal/testutil"
)

// TestE2E_GlobalFlags verifies flag and configuration behavior across
// commands:
// - --yes skips the non-repository confirmation prompt
// - --amazonq selects the alternate agent file
// - --config points at a custom config file
// - CLAUDE_WORKFLOW_* environment variables override file config
func TestE2E_GlobalFlags(t *testing.T) {
	tests := map[string]struct {
		description string
		setupFunc   func(t *testing.T, env *testutil.E2EEnv)
		command     []string
		verifyFunc  func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult)
	}{
		"--yes skips the non-repository prompt": {
			description: "no repository, no stdin, still succeeds with --yes",
			command:     []string{"init", ".", "--yes"},
			verifyFunc: func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult) {
				t.Helper()
				require.Equal(t, 0, result.ExitCode,
					"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
				require.Contains(t, result.Stdout, "Proceeding (skip_confirmations enabled)...")
				require.True(t, env.ProjectFileExists("CLAUDE.md"))
			},
		},
		"--amazonq writes the alternate agent file": {
			description: "alternate agent flag produces AmazonQ.md, not CLAUDE.md",
			setupFunc: func(t *testing.T, env *testutil.E2EEnv) {
				t.Helper()
				env.InitGitRepo()
			},
			command: []string{"init", ".", "--amazonq"},
			verifyFunc: func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult) {
				t.Helper()
				require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
				require.True(t, env.ProjectFileExists("AmazonQ.md"))
				require.False(t, env.ProjectFileExists("CLAUDE.md"))
			},
		},
		"--config uses a custom config file": {
			description: "planning_dir from the custom config decides the layout",
			setupFunc: func(t *testing.T, env *testutil.E2EEnv) {
				t.Helper()
				env.InitGitRepo()
				env.WriteProjectFile("custom.yml", []byte("planning_dir: plans\ndocs_dir: documentation\n"))
			},
			command: []string{"init", ".", "--config", "custom.yml"},
			verifyFunc: func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult) {
				t.Helper()
				require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
				require.True(t, env.ProjectFileExists("plans", "templates", "feature.md"))
				require.True(t, env.ProjectFileExists("documentation", "domain.md"))
				require.False(t, env.ProjectFileExists("planning"))
			},
		},
		"project config file is picked up automatically": {
			description: ".claude-workflow/config.yml needs no flag",
			setupFunc: func(t *testing.T, env *testutil.E2EEnv) {
				t.Helper()
				env.InitGitRepo()
				env.WriteProjectFile(".claude-workflow/config.yml", []byte("default_agent: amazonq\n"))
			},
			command: []string{"init", "."},
			verifyFunc: func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult) {
				t.Helper()
				require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
				require.True(t, env.ProjectFileExists("AmazonQ.md"))
			},
		},
		"environment variables override config": {
			description: "CLAUDE_WORKFLOW_PLANNING_DIR beats the default",
			setupFunc: func(t *testing.T, env *testutil.E2EEnv) {
				t.Helper()
				env.InitGitRepo()
				env.SetEnv("CLAUDE_WORKFLOW_PLANNING_DIR", "blueprints")
			},
			command: []string{"init", "."},
			verifyFunc: func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult) {
				t.Helper()
				require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
				require.True(t, env.ProjectFileExists("blueprints", "templates", "feature.md"))
			},
		},
		"CLAUDE_WORKFLOW_YES skips confirmation": {
			description: "the env variable behaves like --yes",
			setupFunc: func(t *testing.T, env *testutil.E2EEnv) {
				t.Helper()
				env.SetEnv("CLAUDE_WORKFLOW_YES", "1")
			},
			command: []string{"init", "."},
			verifyFunc: func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult) {
				t.Helper()
				require.Equal(t, 0, result.ExitCode,
					"stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
				require.True(t, env.ProjectFileExists("CLAUDE.md"))
			},
		},
		"legacy JSON config warns but still works": {
			description: "deprecated .claude-workflow/config.json is honored with a warning",
			setupFunc: func(t *testing.T, env *testutil.E2EEnv) {
				t.Helper()
				env.InitGitRepo()
				env.WriteProjectFile(".claude-workflow/config.json", []byte(`{"default_agent": "amazonq"}`))
			},
			command: []string{"init", "."},
			verifyFunc: func(t *testing.T, env *testutil.E2EEnv, result testutil.CommandResult) {
				t.Helper()
				require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
				require.True(t, env.ProjectFileExists("AmazonQ.md"))
				require.Contains(t, result.Stderr, "deprecated JSON config")
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := testutil.NewE2EEnv(t)

			if tt.setupFunc != nil {
				tt.setupFunc(t, env)
			}

			result := env.Run(tt.command...)

			if tt.verifyFunc != nil {
				tt.verifyFunc(t, env, result)
			}
		})
	}
}

// TestE2E_NewMirrorsBranchLayout runs new against a custom planning
// directory configured through the environment.
func TestE2E_NewMirrorsBranchLayout(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	env.InitGitRepo()
	env.CreateBranch("bugfix/crash-on-save")
	env.SetEnv("CLAUDE_WORKFLOW_PLANNING_DIR", "plans")

	result := env.Run("init", ".")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)

	result = env.Run("new")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	require.Contains(t, result.Stdout, "Current branch: bugfix/crash-on-save")

	info, err := os.Stat(env.ProjectPath("plans", "bugfix", "crash-on-save"))
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
