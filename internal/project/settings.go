package project

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SettingsSchemaVersion is the current version of the init.yml schema.
// Increment this when making breaking changes to the schema.
const SettingsSchemaVersion = "1.0.0"

// SettingsFileName is the name of the init settings file.
const SettingsFileName = "init.yml"

// SettingsDirName is the project-local directory holding tool state and
// configuration.
const SettingsDirName = ".claude-workflow"

// Settings represents the contents of .claude-workflow/init.yml.
// This file tracks how claude-workflow was initialized in a project.
type Settings struct {
	// Version is the schema version for future compatibility.
	Version string `yaml:"version"`

	// ToolVersion is the version of claude-workflow that ran init.
	ToolVersion string `yaml:"claude_workflow_version"`

	// Agent is the name of the agent the project was initialized for.
	Agent string `yaml:"agent"`

	// CreatedAt is when init.yml was first created.
	CreatedAt time.Time `yaml:"created_at"`

	// UpdatedAt is when init.yml was last modified.
	UpdatedAt time.Time `yaml:"updated_at"`
}

// SettingsPath returns the settings file path under the given project root.
func SettingsPath(root string) string {
	return filepath.Join(root, SettingsDirName, SettingsFileName)
}

// SettingsExist checks if init.yml exists under the given project root.
func SettingsExist(root string) bool {
	_, err := os.Stat(SettingsPath(root))
	return err == nil
}

// LoadSettings reads and parses init.yml from the given project root.
// Returns an error if the file doesn't exist or is invalid YAML.
func LoadSettings(root string) (*Settings, error) {
	data, err := os.ReadFile(SettingsPath(root))
	if err != nil {
		return nil, fmt.Errorf("reading init settings file: %w", err)
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parsing init settings YAML: %w", err)
	}

	return &settings, nil
}

// Save writes the Settings under the given project root.
// Creates the parent directory if it doesn't exist.
func (s *Settings) Save(root string) error {
	path := SettingsPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating init settings directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling init settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing init settings file: %w", err)
	}

	return nil
}

// NewSettings creates a new Settings with the given tool version and agent.
func NewSettings(toolVersion, agentName string) *Settings {
	now := time.Now()
	return &Settings{
		Version:     SettingsSchemaVersion,
		ToolVersion: toolVersion,
		Agent:       agentName,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// touchSettings refreshes the settings snapshot after an update run. A
// project initialized before settings existed gets a fresh snapshot. Returns
// any write error so the caller can decide whether it matters.
func touchSettings(root, toolVersion, agentName string) error {
	settings, err := LoadSettings(root)
	if err != nil {
		settings = NewSettings(toolVersion, agentName)
	} else {
		settings.ToolVersion = toolVersion
		settings.Agent = agentName
		settings.UpdatedAt = time.Now()
	}
	return settings.Save(root)
}
