// Package agent defines the coding agents a project can be initialized for
// and resolves which one an existing project uses.
package agent

import (
	"os"
	"path/filepath"
)

// Agent describes a supported coding agent. The variant decides the name of
// the instructions file written at the project root and how the agent is
// referred to in generated content.
type Agent struct {
	Name        string // registry key (e.g., "claude")
	DisplayName string // human-readable name used in rendered templates
	OutputFile  string // instructions filename at the project root
}

// Supported lists the agents a project can be initialized for. Ordering
// matters: Detect checks files in this order, so the first match wins when
// a project somehow carries more than one instructions file.
var Supported = []Agent{
	{Name: "claude", DisplayName: "Claude", OutputFile: "CLAUDE.md"},
	{Name: "amazonq", DisplayName: "Amazon Q", OutputFile: "AmazonQ.md"},
}

// Default returns the agent used when no flag or configuration selects one.
func Default() Agent {
	return Supported[0]
}

// Get looks up an agent by its registry name.
func Get(name string) (Agent, bool) {
	for _, a := range Supported {
		if a.Name == name {
			return a, true
		}
	}
	return Agent{}, false
}

// FromFlag resolves the agent selected on the command line. The --amazonq
// flag picks the Amazon Q variant; without it the fallback (normally the
// configured default) stands.
func FromFlag(alternate bool, fallback Agent) Agent {
	if !alternate {
		return fallback
	}
	a, _ := Get("amazonq")
	return a
}

// Names returns the registry names of all supported agents.
func Names() []string {
	names := make([]string, len(Supported))
	for i, a := range Supported {
		names[i] = a.Name
	}
	return names
}

// Detect reports which agent an initialized project uses by probing for its
// instructions file at the project root. Returns false if none exists.
func Detect(root string) (Agent, bool) {
	for _, a := range Supported {
		if _, err := os.Stat(filepath.Join(root, a.OutputFile)); err == nil {
			return a, true
		}
	}
	return Agent{}, false
}
