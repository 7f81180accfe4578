// Package version reports build information for the cargo-readme binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// Version is the release version, set via ldflags. When empty, the main
	// module version from the build info is used.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the VCS revision, with a "-dirty" suffix for modified
	// trees.
	Revision = revision(readBuildInfo())
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
)

func readBuildInfo() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	return info
}

// String returns a one-line description for `--version` output.
func String() string {
	return format(Version, Revision, BuildDate, GoVersion, readBuildInfo())
}

func format(ver, rev, date, goVersion string, info *debug.BuildInfo) string {
	if ver == "" && info != nil {
		ver = info.Main.Version
	}

	if ver == "" || ver == "(devel)" {
		ver = "dev"
	}

	s := fmt.Sprintf("%s (revision %s", ver, rev)
	if date != "" {
		s += ", built " + date
	}

	return s + ", " + goVersion + ")"
}

func revision(info *debug.BuildInfo) string {
	rev := "unknown"

	if info == nil {
		return rev
	}

	modified := false

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
