// Package version carries build metadata for the vizdata binary.
// Values are overwritten with -ldflags "-X" at release time.
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String formats the build metadata for startup logs and the SDK user agent.
func String() string {
	return Version + " (" + Commit + ", " + Date + ")"
}
