package templates

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/claude-workflow/claude-workflow/internal/agent"
)

// agentContext carries the two substitutions the agent-instructions template
// supports: the agent's display name and its output filename.
type agentContext struct {
	AgentName string
	AgentFile string
}

// RenderAgentInstructions materializes the agent-instructions file content
// for the given agent. The template uses Go text/template syntax with
// {{.AgentName}} and {{.AgentFile}} placeholders. The title heading is
// stripped after rendering: the written file starts at the body so projects
// can put their own heading on top.
func RenderAgentInstructions(a agent.Agent) ([]byte, error) {
	content, err := Content(AgentTemplateName)
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New("agent-instructions").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parsing agent template: %w", err)
	}

	var buf bytes.Buffer
	ctx := agentContext{AgentName: a.DisplayName, AgentFile: a.OutputFile}
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("executing agent template: %w", err)
	}

	return StripTitle(buf.Bytes()), nil
}

// StripTitle removes the first line when it is a markdown title heading
// ("# ..."), along with any blank lines immediately following it, so the
// remaining body starts at its first real line. Content without a leading
// title is returned unchanged.
func StripTitle(content []byte) []byte {
	if !bytes.HasPrefix(content, []byte("# ")) {
		return content
	}

	idx := bytes.IndexByte(content, '\n')
	if idx < 0 {
		// The whole content is a single title line.
		return nil
	}
	rest := content[idx+1:]

	for len(rest) > 0 {
		lineEnd := bytes.IndexByte(rest, '\n')
		if lineEnd < 0 {
			if len(bytes.TrimSpace(rest)) == 0 {
				return nil
			}
			break
		}
		if len(bytes.TrimSpace(rest[:lineEnd])) > 0 {
			break
		}
		rest = rest[lineEnd+1:]
	}

	return rest
}
