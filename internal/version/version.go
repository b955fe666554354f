// Package version reports build information. The variables are set with
// -ldflags "-X" by the magefile; plain `go install` builds fall back to the
// module version recorded by the toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String formats the build information for `rtheme version`.
func String() string {
	v := Version
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
			v = info.Main.Version
		}
	}
	return fmt.Sprintf("rtheme %s (commit %s, built %s)", v, CommitHash, BuildDate)
}
