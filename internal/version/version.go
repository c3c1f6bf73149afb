// Package version holds build-time metadata, overridden via -ldflags at
// release build time.
package version

import "fmt"

var (
	// Version is the semantic version of this build, set via -ldflags.
	Version = "dev"
	// Commit is the git commit this build was produced from.
	Commit = "unknown"
	// BuildDate is the RFC3339 timestamp of the build.
	BuildDate = "unknown"
)

// String renders a single human-readable line for --version output.
func String() string {
	return fmt.Sprintf("reflow %s (commit %s, built %s)", Version, Commit, BuildDate)
}
