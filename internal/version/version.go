// Package version reports the roadpath build version.
package version

import "runtime/debug"

// Version is overridden via -ldflags on release builds. When empty, the
// version recorded in build info is used instead.
var Version = ""

// GetVersionString returns the version of the running binary.
func GetVersionString() string {
	if Version != "" {
		return Version
	}

	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		return bi.Main.Version
	}

	return "(devel)"
}
