// Package build identifies the binary. It must stay free of internal
// imports so any package can report version information.
package build

// Release builds inject all three via -ldflags; a plain `go build` reports
// the source-build defaults.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild reports whether the binary was built from source without
// release metadata.
func IsDevBuild() bool {
	return Version == "dev"
}
