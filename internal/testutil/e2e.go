// Package testutil carries the end-to-end test harness: an isolated
// environment that builds the CLI once per session and runs it against
// scratch project directories.
package testutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// workflowBinaryPath caches the built claude-workflow binary path.
	workflowBinaryPath string
	workflowBuildOnce  sync.Once
	workflowBuildErr   error
)

// E2EEnv is an isolated environment for end-to-end tests. Subprocesses get
// a scratch HOME, XDG_CONFIG_HOME and PATH, so tests never see the
// developer's real config files or ambient CLAUDE_WORKFLOW_* variables.
type E2EEnv struct {
	t          *testing.T
	tempDir    string
	binDir     string
	projectDir string
	extraEnv   []string
	cleanedUp  bool
}

// CommandResult captures the result of running a claude-workflow command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new E2E test environment with PATH and HOME isolation.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{t: t}
	env.setup()
	t.Cleanup(env.Cleanup)

	return env
}

func (e *E2EEnv) setup() {
	e.t.Helper()

	tempDir, err := os.MkdirTemp("", "e2e-test-*")
	if err != nil {
		e.t.Fatalf("creating temp directory: %v", err)
	}
	e.tempDir = tempDir
	e.binDir = e.mkdir("bin")
	e.projectDir = e.mkdir("project")

	e.installBinary()
}

// mkdir creates a directory under the temp root and returns its path.
func (e *E2EEnv) mkdir(name string) string {
	e.t.Helper()

	path := filepath.Join(e.tempDir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		e.t.Fatalf("creating %s directory: %v", name, err)
	}
	return path
}

// installBinary copies the session-wide test binary into this environment's
// bin directory. The binary itself is compiled at most once per `go test`
// invocation.
func (e *E2EEnv) installBinary() {
	e.t.Helper()

	workflowBuildOnce.Do(func() {
		workflowBinaryPath, workflowBuildErr = buildBinary()
	})
	if workflowBuildErr != nil {
		e.t.Fatalf("building claude-workflow: %v", workflowBuildErr)
	}

	content, err := os.ReadFile(workflowBinaryPath)
	if err != nil {
		e.t.Fatalf("reading claude-workflow binary: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.binDir, "claude-workflow"), content, 0o755); err != nil {
		e.t.Fatalf("installing claude-workflow binary: %v", err)
	}
}

// buildBinary compiles cmd/claude-workflow into a session-scoped temp
// directory and returns the binary path.
func buildBinary() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "claude-workflow-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "claude-workflow")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/claude-workflow")
	cmd.Dir = repoRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("building claude-workflow: %w\nOutput: %s", err, output)
	}
	return binaryPath, nil
}

// Run executes a claude-workflow command in the project directory.
func (e *E2EEnv) Run(args ...string) CommandResult {
	return e.run(e.projectDir, "", args...)
}

// RunWithStdin executes a claude-workflow command with the given stdin, for
// exercising the interactive confirmation prompt.
func (e *E2EEnv) RunWithStdin(stdin string, args ...string) CommandResult {
	return e.run(e.projectDir, stdin, args...)
}

// RunInDir executes a claude-workflow command in the given working directory.
func (e *E2EEnv) RunInDir(dir string, args ...string) CommandResult {
	return e.run(dir, "", args...)
}

func (e *E2EEnv) run(dir, stdin string, args ...string) CommandResult {
	e.t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(filepath.Join(e.binDir, "claude-workflow"), args...)
	cmd.Dir = dir
	cmd.Env = e.isolatedEnv()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != "" {
		cmd.Stdin = bytes.NewBufferString(stdin)
	}

	start := time.Now()
	err := cmd.Run()

	exitCode := 0
	if err != nil {
		exitCode = 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
}

// isolatedEnv builds the subprocess environment from scratch. PATH has the
// bin directory first, HOME and XDG_CONFIG_HOME point into the temp
// directory, and only explicitly safe variables are carried over.
func (e *E2EEnv) isolatedEnv() []string {
	path := e.binDir
	if systemPath := os.Getenv("PATH"); systemPath != "" {
		path += ":" + systemPath
	}

	env := []string{
		"PATH=" + path,
		"HOME=" + e.tempDir,
		"XDG_CONFIG_HOME=" + filepath.Join(e.tempDir, ".config"),
	}
	for _, key := range []string{"TERM", "LANG", "LC_ALL", "TMPDIR", "TMP", "TEMP"} {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	return append(env, e.extraEnv...)
}

// SetEnv adds an environment variable to subsequent Run calls.
func (e *E2EEnv) SetEnv(key, value string) {
	e.t.Helper()
	e.extraEnv = append(e.extraEnv, key+"="+value)
}

// TempDir returns the root temp directory for this test environment.
func (e *E2EEnv) TempDir() string {
	return e.tempDir
}

// ProjectDir returns the project directory commands operate on.
func (e *E2EEnv) ProjectDir() string {
	return e.projectDir
}

// BinDir returns the bin directory containing the claude-workflow binary.
func (e *E2EEnv) BinDir() string {
	return e.binDir
}

// ProjectPath joins path elements onto the project directory.
func (e *E2EEnv) ProjectPath(elem ...string) string {
	return filepath.Join(append([]string{e.projectDir}, elem...)...)
}

// ProjectFileExists checks whether a path exists under the project directory.
func (e *E2EEnv) ProjectFileExists(elem ...string) bool {
	_, err := os.Stat(e.ProjectPath(elem...))
	return err == nil
}

// WriteProjectFile writes a file under the project directory, creating parent
// directories as needed.
func (e *E2EEnv) WriteProjectFile(rel string, content []byte) {
	e.t.Helper()

	path := e.ProjectPath(rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating parent directory: %v", err)
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		e.t.Fatalf("writing project file: %v", err)
	}
}

// Cleanup removes the environment's temp directory. NewE2EEnv registers it
// automatically; calling it twice is safe.
func (e *E2EEnv) Cleanup() {
	if e.cleanedUp || e.tempDir == "" {
		return
	}
	e.cleanedUp = true

	if err := os.RemoveAll(e.tempDir); err != nil {
		e.t.Logf("note: could not remove temp directory: %v", err)
	}
}

// InitGitRepo initializes a git repository in the project directory.
func (e *E2EEnv) InitGitRepo() {
	e.t.Helper()

	e.git("init")
	e.git("config", "user.email", "test@test.com")
	e.git("config", "user.name", "Test")
}

// CreateBranch creates and checks out a new branch in the test git repo,
// committing a README first so the repository has a HEAD to branch from.
func (e *E2EEnv) CreateBranch(name string) {
	e.t.Helper()

	readme := filepath.Join(e.projectDir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test"), 0o644); err != nil {
		e.t.Fatalf("writing README: %v", err)
	}

	e.git("add", ".")
	e.git("commit", "--no-gpg-sign", "-m", "Initial commit")
	e.git("checkout", "-b", name)
}

// DetachHead checks out the current commit directly, leaving the repository
// in detached HEAD state.
func (e *E2EEnv) DetachHead() {
	e.t.Helper()

	out := e.git("rev-parse", "HEAD")
	e.git("checkout", "--detach", string(bytes.TrimSpace(out)))
}

func (e *E2EEnv) git(args ...string) []byte {
	e.t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = e.projectDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		e.t.Fatalf("git %v failed: %v\nOutput: %s", args, err, output)
	}
	return output
}
