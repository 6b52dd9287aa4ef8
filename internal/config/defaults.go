package config

// GetDefaultConfigTemplate returns a fully commented config template
// that helps users understand all available options.
func GetDefaultConfigTemplate() string {
	return `# claude-workflow Configuration
# Project config: .claude-workflow/config.yml
# User config:    ~/.config/claude-workflow/config.yml
# Every key can be overridden with a CLAUDE_WORKFLOW_* environment variable.

planning_dir: planning                # Per-branch project plans, relative to the project root
docs_dir: docs                        # Project-level documentation, relative to the project root
default_agent: claude                 # Agent used by init when no flag is given: claude | amazonq
skip_confirmations: false             # Skip confirmation prompts (also CLAUDE_WORKFLOW_YES)
`
}

// GetDefaults returns the default configuration values.
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"planning_dir": "planning",
		"docs_dir":     "docs",
		// default_agent: Agent used when neither a flag nor config selects one.
		"default_agent": "claude",
		// skip_confirmations: Confirmation prompts enabled by default.
		"skip_confirmations": false,
	}
}
