// Package config provides hierarchical configuration management for
// claude-workflow using koanf. Configuration is loaded with priority:
// environment variables > project config (.claude-workflow/config.yml)
// > user config (~/.config/claude-workflow/config.yml) > defaults.
// Legacy JSON config files are still read, with a deprecation warning.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/claude-workflow/claude-workflow/internal/agent"
)

// Configuration represents the claude-workflow CLI tool configuration.
type Configuration struct {
	// PlanningDir is the directory holding per-branch project plans,
	// relative to the project root.
	PlanningDir string `koanf:"planning_dir" validate:"required"`

	// DocsDir is the directory holding project-level documentation,
	// relative to the project root.
	DocsDir string `koanf:"docs_dir" validate:"required"`

	// DefaultAgent selects the agent used by init when no flag is given.
	// Valid values: "claude", "amazonq".
	// Can be set via the CLAUDE_WORKFLOW_DEFAULT_AGENT env var.
	DefaultAgent string `koanf:"default_agent" validate:"required"`

	// SkipConfirmations skips interactive confirmation prompts.
	// Can also be set via the CLAUDE_WORKFLOW_YES env var.
	SkipConfirmations bool `koanf:"skip_confirmations"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .claude-workflow/config.yml)
	ProjectConfigPath string
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
	// SkipWarnings suppresses deprecation warnings
	SkipWarnings bool
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults
//
// YAML config paths:
//   - User config: ~/.config/claude-workflow/config.yml (XDG compliant)
//   - Project config: .claude-workflow/config.yml
//
// Legacy JSON config paths (deprecated, triggers a warning):
//   - User config: ~/.claude-workflow/config.json
//   - Project config: .claude-workflow/config.json
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := opts.WarningWriter
	if warningWriter == nil {
		warningWriter = os.Stderr
	}

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	for _, sc := range []scope{userScope(), projectScope(opts.ProjectConfigPath)} {
		if err := sc.merge(k, warningWriter, opts.SkipWarnings); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider("CLAUDE_WORKFLOW_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	return finalizeConfig(k)
}

// scope is one config layer on disk: the preferred YAML file and the legacy
// JSON file it replaced.
type scope struct {
	name       string
	yamlPath   string
	legacyPath string
}

func userScope() scope {
	yamlPath, _ := UserConfigPath()
	legacyPath, _ := LegacyUserConfigPath()
	return scope{name: "user", yamlPath: yamlPath, legacyPath: legacyPath}
}

// projectScope builds the project layer. customPath overrides the YAML
// location (used by --config and in tests).
func projectScope(customPath string) scope {
	yamlPath := ProjectConfigPath()
	if customPath != "" {
		yamlPath = customPath
	}
	return scope{name: "project", yamlPath: yamlPath, legacyPath: LegacyProjectConfigPath()}
}

// merge loads this layer into k. YAML wins when both formats exist; legacy
// JSON is read only when it is the sole copy. Either legacy situation prints
// a deprecation warning unless warnings are suppressed.
func (s scope) merge(k *koanf.Koanf, warningWriter io.Writer, skipWarnings bool) error {
	yamlExists := fileExists(s.yamlPath)
	legacyExists := fileExists(s.legacyPath)

	switch {
	case yamlExists:
		if err := ValidateYAMLSyntax(s.yamlPath); err != nil {
			return fmt.Errorf("validating YAML syntax for %s config: %w", s.name, err)
		}
		if err := k.Load(file.Provider(s.yamlPath), yaml.Parser()); err != nil {
			return fmt.Errorf("failed to load %s config %s: %w", s.name, s.yamlPath, err)
		}
		if legacyExists && !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Legacy JSON config found at %s (ignored, using %s)\n", s.legacyPath, s.yamlPath)
			fmt.Fprintf(warningWriter, "  Remove the legacy file to silence this warning.\n\n")
		}
	case legacyExists:
		if err := k.Load(file.Provider(s.legacyPath), json.Parser()); err != nil {
			return fmt.Errorf("failed to load legacy %s config %s: %w", s.name, s.legacyPath, err)
		}
		if !skipWarnings {
			fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", s.legacyPath)
			fmt.Fprintf(warningWriter, "  Convert it to YAML and move it to %s.\n\n", strings.TrimSuffix(s.legacyPath, ".json")+".yml")
		}
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration.
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if os.Getenv("CLAUDE_WORKFLOW_YES") != "" {
		cfg.SkipConfirmations = true
	}

	return &cfg, nil
}

// GetAgent resolves the configured default agent from the registry.
func (c *Configuration) GetAgent() (agent.Agent, error) {
	a, ok := agent.Get(c.DefaultAgent)
	if !ok {
		return agent.Agent{}, fmt.Errorf("unknown agent %q; available: %v", c.DefaultAgent, agent.Names())
	}
	return a, nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: CLAUDE_WORKFLOW_PLANNING_DIR -> planning_dir
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "CLAUDE_WORKFLOW_"))
}
