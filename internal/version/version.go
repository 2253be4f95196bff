// Package version carries build-time version metadata for outgrep.
package version

// Version is the current semantic version of outgrep.
const Version = "0.1.0"

// BuildDate and GitCommit are overridden at build time via -ldflags,
// e.g. -X github.com/tomwhiting/outgrep/internal/version.GitCommit=abc123.
var (
	BuildDate = "development"
	GitCommit = "unknown"
)

// FullInfo returns a one-line human-readable version string.
func FullInfo() string {
	return "outgrep " + Version + " (commit: " + GitCommit + ", built: " + BuildDate + ")"
}
