// Package templates tests agent-instructions rendering and title stripping.
// Related: internal/templates/render.go
// Tags: templates, render, title-strip
package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/claude-workflow/claude-workflow/internal/agent"
)

func TestRenderAgentInstructions(t *testing.T) {
	tests := map[string]struct {
		agentName    string
		wantFile     string
		wantPhrase   string
		rejectPhrase string
	}{
		"claude variant": {
			agentName:    "claude",
			wantFile:     "CLAUDE.md",
			wantPhrase:   "Claude",
			rejectPhrase: "Amazon Q",
		},
		"amazonq variant": {
			agentName:    "amazonq",
			wantFile:     "AmazonQ.md",
			wantPhrase:   "Amazon Q",
			rejectPhrase: "CLAUDE.md",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			a, ok := agent.Get(tt.agentName)
			require.True(t, ok)

			content, err := RenderAgentInstructions(a)
			require.NoError(t, err)

			text := string(content)
			assert.Contains(t, text, tt.wantFile, "rendered content names its own file")
			assert.Contains(t, text, tt.wantPhrase, "rendered content uses the agent's display name")
			assert.NotContains(t, text, tt.rejectPhrase, "no other variant's phrasing leaks in")
			assert.NotContains(t, text, "{{", "all placeholders are substituted")
		})
	}
}

func TestRenderAgentInstructionsStripsTitle(t *testing.T) {
	t.Parallel()
	content, err := RenderAgentInstructions(agent.Default())
	require.NoError(t, err)

	text := string(content)
	assert.False(t, strings.HasPrefix(text, "# "), "title heading is stripped")
	assert.False(t, strings.HasPrefix(text, "\n"), "no leading blank line remains")
	assert.True(t, strings.HasPrefix(text, "## "), "body starts at the first section")
}

func TestStripTitle(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"title then body": {
			in:   "# Title\nbody\n",
			want: "body\n",
		},
		"title then blank lines then body": {
			in:   "# Title\n\n\nbody text\nmore\n",
			want: "body text\nmore\n",
		},
		"no title": {
			in:   "plain text\nsecond line\n",
			want: "plain text\nsecond line\n",
		},
		"subsection heading is not a title": {
			in:   "## Section\nbody\n",
			want: "## Section\nbody\n",
		},
		"title only": {
			in:   "# Title",
			want: "",
		},
		"title and blank lines only": {
			in:   "# Title\n\n\n",
			want: "",
		},
		"hash without space is not a title": {
			in:   "#!/bin/sh\necho hi\n",
			want: "#!/bin/sh\necho hi\n",
		},
		"empty content": {
			in:   "",
			want: "",
		},
		"blank line survives inside body": {
			in:   "# Title\n\nfirst\n\nsecond\n",
			want: "first\n\nsecond\n",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := StripTitle([]byte(tt.in))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
