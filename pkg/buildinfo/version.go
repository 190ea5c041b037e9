// Package buildinfo holds the version stamped into tipkit binaries.
//
// Set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/tipkit/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/tipkit/pkg/buildinfo.Commit=$(git rev-parse --short HEAD)" ./cmd/tipkit
//
// Without ldflags the values come from the module build info when available.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git revision.
	Commit = "none"
)

// Info is the version information reported by the CLI and the HTTP service.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Go      string `json:"go"`
}

// Get returns the current build information. Unset ldflags fall back to the
// module version and vcs.revision recorded by the Go toolchain.
func Get() Info {
	info := Info{Version: Version, Commit: Commit}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.Go = bi.GoVersion
	if info.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	if info.Commit == "none" {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				info.Commit = s.Value
			}
		}
	}
	return info
}

// Template returns the cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} %s (commit %s)\n", i.Version, i.Commit)
}
