package version

import (
	"flag"
	"runtime"
)

// Set at build time with -ldflags "-X .../internal/version.Version=...".
var (
	Version   = "develop"
	GitCommit = ""
	BuildDate = ""
)

type BuildInfo struct {
	Version   string `json:"version,omitempty"`
	GitCommit string `json:"gitCommit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
}

func Get() BuildInfo {
	v := BuildInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
	}

	if flag.Lookup("test.v") != nil {
		v.GoVersion = ""
	}
	return v
}

// String returns the version, followed by the short commit when known.
func (b BuildInfo) String() string {
	if b.GitCommit == "" {
		return b.Version
	}
	commit := b.GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return b.Version + " (" + commit + ")"
}
