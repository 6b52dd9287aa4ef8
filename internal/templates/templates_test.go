// Package templates tests the embedded template set and its classification.
// Related: internal/templates/templates.go, internal/templates/embed.go
// Tags: templates, embed, classification
package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetClassification(t *testing.T) {
	t.Parallel()

	perBranch := PerBranchSet()
	require.Len(t, perBranch, 3, "three templates are copied into each branch directory")

	branchNames := make([]string, len(perBranch))
	for i, tmpl := range perBranch {
		branchNames[i] = tmpl.Name
	}
	assert.Equal(t, []string{"feature", "tasks", "to-do"}, branchNames)

	perProject := PerProjectSet()
	require.Len(t, perProject, 6, "six templates are copied into docs/")

	projectNames := make([]string, len(perProject))
	for i, tmpl := range perProject {
		projectNames[i] = tmpl.Name
	}
	assert.Equal(t, []string{"api-docs", "architecture", "codebase", "domain", "setup", "testing"}, projectNames)
}

func TestLookup(t *testing.T) {
	tests := map[string]struct {
		name      string
		wantFound bool
		wantFile  string
	}{
		"feature":        {name: "feature", wantFound: true, wantFile: "feature.md"},
		"testing":        {name: "testing", wantFound: true, wantFile: "testing.md"},
		"unknown":        {name: "roadmap", wantFound: false},
		"filename given": {name: "feature.md", wantFound: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			tmpl, ok := Lookup(tt.name)
			assert.Equal(t, tt.wantFound, ok)
			if tt.wantFound {
				assert.Equal(t, tt.wantFile, tmpl.Filename)
			}
		})
	}
}

func TestNames(t *testing.T) {
	t.Parallel()
	names := Names()
	assert.Len(t, names, len(Set))
	assert.Contains(t, names, "feature")
	assert.Contains(t, names, "domain")
}

func TestContentForAllSetEntries(t *testing.T) {
	t.Parallel()
	for _, tmpl := range Set {
		content, err := Content(tmpl.Filename)
		require.NoError(t, err, "embedded template %s must exist", tmpl.Filename)
		assert.NotEmpty(t, content, "template %s should have content", tmpl.Filename)
		assert.True(t, content[0] == '#', "template %s starts with a markdown heading", tmpl.Filename)
	}
}

func TestContentNotFound(t *testing.T) {
	t.Parallel()
	_, err := Content("nonexistent.md")
	assert.Error(t, err, "should error on non-existent file")
}

func TestHelperScript(t *testing.T) {
	t.Parallel()
	script, err := HelperScript()
	require.NoError(t, err)
	assert.Contains(t, string(script), "#!/bin/sh", "helper script has a shebang")
	assert.Contains(t, string(script), "claude-workflow new", "helper script delegates to the new command")
}

func TestMigrationInstructions(t *testing.T) {
	t.Parallel()
	doc, err := MigrationInstructions()
	require.NoError(t, err)
	assert.Contains(t, string(doc), "Migration Instructions")
	assert.Contains(t, string(doc), "never overwrites")
}
