// Package templates provides the embedded template files claude-workflow
// distributes and the static classification deciding where each one lands.
package templates

// Category decides where a template is distributed.
type Category string

const (
	// PerBranch templates are copied into every new branch directory and
	// into planning/templates/ at init time.
	PerBranch Category = "per-branch"
	// PerProject templates are copied once into the project docs/ directory.
	PerProject Category = "per-project"
)

// Template is one distributable template file.
type Template struct {
	Name     string   // logical name (e.g., "feature")
	Filename string   // embedded source and destination filename
	Category Category // where the file is distributed
}

// Set is the full template classification. It is configuration, not derived
// data: the copier and the scaffolder both consult it, and it does not change
// across runs.
var Set = []Template{
	{Name: "feature", Filename: "feature.md", Category: PerBranch},
	{Name: "tasks", Filename: "tasks.md", Category: PerBranch},
	{Name: "to-do", Filename: "to-do.md", Category: PerBranch},
	{Name: "api-docs", Filename: "api-docs.md", Category: PerProject},
	{Name: "architecture", Filename: "architecture.md", Category: PerProject},
	{Name: "codebase", Filename: "codebase.md", Category: PerProject},
	{Name: "domain", Filename: "domain.md", Category: PerProject},
	{Name: "setup", Filename: "setup.md", Category: PerProject},
	{Name: "testing", Filename: "testing.md", Category: PerProject},
}

// PerBranchSet returns the templates copied into each branch directory.
func PerBranchSet() []Template {
	return byCategory(PerBranch)
}

// PerProjectSet returns the templates copied into the docs directory.
func PerProjectSet() []Template {
	return byCategory(PerProject)
}

func byCategory(c Category) []Template {
	var out []Template
	for _, t := range Set {
		if t.Category == c {
			out = append(out, t)
		}
	}
	return out
}

// Lookup finds a template by its logical name.
func Lookup(name string) (Template, bool) {
	for _, t := range Set {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// Names returns the logical names of all templates, per-branch first.
func Names() []string {
	names := make([]string, 0, len(Set))
	for _, t := range Set {
		names = append(names, t.Name)
	}
	return names
}
