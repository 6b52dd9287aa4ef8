package templates

import (
	"embed"
	"fmt"
)

// Well-known embedded files that are not part of the distributable Set.
const (
	// AgentTemplateName is the agent-instructions template rendered at init.
	AgentTemplateName = "AGENT.md.tmpl"
	// HelperScriptName is the helper script installed into planning/.
	HelperScriptName = "new_project.sh"
	// MigrationDocName is the migration guide written by update.
	MigrationDocName = "MIGRATION_INSTRUCTIONS.md"
)

// templateFS embeds all distributable files from the templates/ package
// directory: the markdown templates, the agent-instructions template, and
// the helper script.
//
//go:embed all:*.md AGENT.md.tmpl new_project.sh
var templateFS embed.FS

// Content resolves an embedded file by filename. A not-found error here is
// what callers surface as a per-file "missing template" warning.
func Content(filename string) ([]byte, error) {
	data, err := templateFS.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", filename, err)
	}
	return data, nil
}

// HelperScript returns the packaged helper script content.
func HelperScript() ([]byte, error) {
	return Content(HelperScriptName)
}

// MigrationInstructions returns the packaged migration guide content.
func MigrationInstructions() ([]byte, error) {
	return Content(MigrationDocName)
}
