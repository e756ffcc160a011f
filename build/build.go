// Package build reports which binary is running: the version stamped in at
// link time plus the module and VCS details the Go toolchain embeds.
package build

import (
	"runtime"
	"runtime/debug"
)

// Version is injected with
//
//	go build -ldflags "-X github.com/amp-labs/amp-ordered/build.Version=v1.2.3"
var Version string //nolint:gochecknoglobals

const develVersion = "devel"

// Info contains build metadata.
type Info struct {
	Version      string            `yaml:"version"`
	GitCommit    string            `yaml:"git_commit,omitempty"` //nolint:tagliatelle
	GitDate      string            `yaml:"git_date,omitempty"`   //nolint:tagliatelle
	Modified     bool              `yaml:"modified,omitempty"`
	GoVersion    string            `yaml:"go_version"` //nolint:tagliatelle
	Dependencies map[string]string `yaml:"dependencies,omitempty"`
}

// Current describes the running binary.
func Current() Info {
	bi, _ := debug.ReadBuildInfo()

	return fromBuildInfo(Version, bi)
}

func fromBuildInfo(version string, bi *debug.BuildInfo) Info {
	info := Info{
		Version:   version,
		GoVersion: runtime.Version(),
	}

	if bi != nil {
		info.GoVersion = bi.GoVersion

		if info.Version == "" && bi.Main.Version != "(devel)" {
			info.Version = bi.Main.Version
		}

		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				info.GitCommit = s.Value
			case "vcs.time":
				info.GitDate = s.Value
			case "vcs.modified":
				info.Modified = s.Value == "true"
			}
		}

		if len(bi.Deps) > 0 {
			info.Dependencies = make(map[string]string, len(bi.Deps))

			for _, dep := range bi.Deps {
				v := dep.Version
				if dep.Replace != nil {
					v = dep.Replace.Path + "@" + dep.Replace.Version
				}

				info.Dependencies[dep.Path] = v
			}
		}
	}

	if info.Version == "" {
		info.Version = develVersion
	}

	return info
}
