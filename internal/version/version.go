// Package version reports which build of propgen produced a piece of output.
package version

import "fmt"

// Set with -ldflags "-X github.com/example/propgen/internal/version.Version=..." and friends.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the line printed by propgen --version.
func String() string {
	return fmt.Sprintf("propgen %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
