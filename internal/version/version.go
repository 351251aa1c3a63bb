// Package version holds build metadata, overridden at link time via
// -ldflags "-X github.com/deskpilot/deskpilot/internal/version.Version=...".
package version

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
