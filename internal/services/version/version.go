// Package version exposes build version information for the tool, used in
// export metadata and the CLI banner.
package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// Current returns the bare version string.
func Current() string {
	return Version
}

// Full returns the version with commit and build time, for banners.
func Full() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
