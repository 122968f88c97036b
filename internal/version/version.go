// Package version reports the build information of liftoff binaries.
package version

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
)

// Info holds version information for a binary.
// Fields left at their defaults are filled from the Go build info, which is
// available for binaries built with `go install` or from a VCS checkout.
type Info struct {
	// Name is the name of the binary
	Name string `json:"name"`
	// Version is set via ldflags, defaults to "dev"
	Version string `json:"version"`
	// CommitSHA is set via ldflags, defaults to "unknown"
	CommitSHA string `json:"commit"`
	// BuildTimestamp is set via ldflags, defaults to "unknown"
	BuildTimestamp string `json:"built"`
}

// New returns an Info for name. Empty values fall back to the defaults.
func New(name, version, commitSHA, buildTimestamp string) *Info {
	return &Info{
		Name:           name,
		Version:        orDefault(version, "dev"),
		CommitSHA:      orDefault(commitSHA, "unknown"),
		BuildTimestamp: orDefault(buildTimestamp, "unknown"),
	}
}

// Resolved returns a copy of i completed with the Go build info.
func (i *Info) Resolved() Info {
	out := *i

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	if out.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		out.Version = info.Main.Version
	}

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if out.CommitSHA == "unknown" && len(setting.Value) >= 7 {
				out.CommitSHA = setting.Value[:7]
			}
		case "vcs.time":
			if out.BuildTimestamp == "unknown" {
				out.BuildTimestamp = setting.Value
			}
		}
	}

	return out
}

// Fprint writes the multi-line version report to w.
func (i *Info) Fprint(w io.Writer) {
	r := i.Resolved()
	_, _ = fmt.Fprintf(w, "%s version %s\n", r.Name, r.Version)
	_, _ = fmt.Fprintf(w, "  commit:    %s\n", r.CommitSHA)
	_, _ = fmt.Fprintf(w, "  built:     %s\n", r.BuildTimestamp)
	_, _ = fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
	_, _ = fmt.Fprintf(w, "  platform:  %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

// String returns a one-line version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s", i.Name, i.Resolved().Version)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}

	return s
}
