// Package version carries build metadata injected with -ldflags.
package version

import "fmt"

// These variables are set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns the version with an abbreviated commit and the build date.
func String() string {
	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (commit: %s, date: %s)", Version, commit, BuildDate)
}
