// Package version provides version information for the larapath CLI.
package version

import "fmt"

// Version and Commit are set via ldflags during build.
var (
	Version = "dev"
	Commit  = ""
)

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}

// String returns the version with the short commit hash when known.
func String() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 7 {
		short = short[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, short)
}
