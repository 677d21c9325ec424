package framing

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"winescope/pkg/dataset"
)

// Module is one dependency pinned by the build.
type Module struct {
	Path    string
	Version string
}

// Runtime is the environment snapshot printed alongside results, the
// analysis equivalent of a notebook's version cell.
type Runtime struct {
	GoVersion string
	OS        string
	Arch      string
	Seed      int64
	Deps      []Module
}

// Snapshot captures the current toolchain, platform, seed, and dependency
// versions.
func Snapshot() Runtime {
	r := Runtime{
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Seed:      dataset.DefaultSeed,
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range bi.Deps {
			r.Deps = append(r.Deps, Module{Path: dep.Path, Version: dep.Version})
		}
	}
	return r
}

// Render writes the snapshot as indented text.
func (r Runtime) Render() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "go:   %s (%s/%s)\n", r.GoVersion, r.OS, r.Arch)
	fmt.Fprintf(&sb, "seed: %d\n", r.Seed)
	for _, d := range r.Deps {
		fmt.Fprintf(&sb, "dep:  %s %s\n", d.Path, d.Version)
	}
	return sb.String()
}
