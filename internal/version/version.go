package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/midir/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/midir/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/midir/internal/version.Date={{.Date}}
)

// Info renders the build information as printed by `midir version`
func Info() string {
	return fmt.Sprintf("midir version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
