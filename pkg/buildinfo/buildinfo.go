// Package buildinfo contains build information.
//
// Build information should be set during compilation by passing
// -ldflags "-X src.repoman.dev/pkg/buildinfo.Var=value" to "go build".
package buildinfo

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"src.repoman.dev/pkg/prog"
)

// VersionBase is the version of repoman without any suffix. On development
// commits, it identifies the next release.
const VersionBase = "0.1.0"

// VCSOverride may be set to "<commit timestamp>-<commit hash>" at link time
// when the build has no VCS information of its own, for example when building
// from a source tarball.
var VCSOverride string

// Type contains all the build information fields.
type Type struct {
	Version   string
	GoVersion string
}

// Value contains all the build information.
var Value = Type{
	Version:   devVersion(VersionBase, VCSOverride, debug.ReadBuildInfo),
	GoVersion: runtime.Version(),
}

// devVersion builds a pseudo-version in the format used by the Go module
// system for commits after the last release.
func devVersion(next, vcsOverride string, readBuildInfo func() (*debug.BuildInfo, bool)) string {
	if vcsOverride != "" {
		return next + "-dev.0." + vcsOverride
	}
	fallback := next + "-dev.unknown"
	bi, ok := readBuildInfo()
	if !ok {
		return fallback
	}
	if v := bi.Main.Version; v != "" && v != "(devel)" {
		return strings.TrimPrefix(v, "v")
	}

	var revision, vcsTime string
	modified := false
	for _, setting := range bi.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			vcsTime = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if revision == "" {
		return fallback
	}
	t, err := time.Parse(time.RFC3339, vcsTime)
	if err != nil {
		return fallback
	}
	v := fmt.Sprintf("%s-dev.0.%s-%s",
		next, t.UTC().Format("20060102150405"), revision[:min(12, len(revision))])
	if modified {
		v += "-dirty"
	}
	return v
}

// Program is the buildinfo program. It runs when -version or -buildinfo is
// given.
type Program struct{}

func (Program) Run(fds [3]*os.File, f *prog.Flags, _ []string) error {
	switch {
	case f.BuildInfo:
		fmt.Fprintln(fds[1], "Version:", Value.Version)
		fmt.Fprintln(fds[1], "Go version:", Value.GoVersion)
	case f.Version:
		fmt.Fprintln(fds[1], Value.Version)
	default:
		return prog.ErrNotSuitable
	}
	return nil
}
