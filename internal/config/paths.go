package config

import (
	"os"
	"path/filepath"
)

const (
	// userDirName is the directory under the OS config root holding the
	// user-level config (XDG on Linux, Application Support on macOS,
	// %APPDATA% on Windows).
	userDirName = "claude-workflow"
	// projectDirName is the hidden per-project directory.
	projectDirName = ".claude-workflow"

	configFileName = "config.yml"
	legacyFileName = "config.json"
)

// UserConfigPath returns the user-level config file path, honoring
// XDG_CONFIG_HOME on Linux.
func UserConfigPath() (string, error) {
	dir, err := UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// UserConfigDir returns the user-level config directory.
func UserConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, userDirName), nil
}

// ProjectConfigPath returns the project-level config file path, relative to
// the current directory.
func ProjectConfigPath() string {
	return filepath.Join(projectDirName, configFileName)
}

// ProjectConfigDir returns the project-level config directory.
func ProjectConfigDir() string {
	return projectDirName
}

// LegacyUserConfigPath returns the pre-YAML user config location
// (~/.claude-workflow/config.json).
func LegacyUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, projectDirName, legacyFileName), nil
}

// LegacyProjectConfigPath returns the pre-YAML project config location
// (.claude-workflow/config.json).
func LegacyProjectConfigPath() string {
	return filepath.Join(projectDirName, legacyFileName)
}
