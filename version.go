package id3tag

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of the id3tag library.
const Version = "0.2.0"

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// Set with -ldflags at build time, for example:
//
//	go build -ldflags="-X github.com/simonhull/id3tag.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/id3tag.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	gitCommit = ""
	buildTime = ""
)

// GetVersionInfo returns build information. Values not set through
// -ldflags are taken from the VCS stamp embedded by the go command, and
// are "unknown" when that is missing too.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch {
			case s.Key == "vcs.revision" && info.GitCommit == "":
				info.GitCommit = s.Value
			case s.Key == "vcs.time" && info.BuildTime == "":
				info.BuildTime = s.Value
			}
		}
	}

	if info.GitCommit == "" {
		info.GitCommit = "unknown"
	}
	if info.BuildTime == "" {
		info.BuildTime = "unknown"
	}
	return info
}
