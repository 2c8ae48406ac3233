package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// These variables are set at build time using -ldflags.
var (
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents resolved version information.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date"`
	IsDirty   bool      `json:"is_dirty"`
}

// Get resolves the version information, combining the -ldflags values
// with the VCS metadata embedded by the Go toolchain.
func Get() *Info {
	info := &Info{
		Version:   Version,
		GitCommit: GitCommit,
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = buildInfo.GoVersion
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if info.GitCommit == "" {
					info.GitCommit = shortCommit(setting.Value)
				}
			case "vcs.modified":
				info.IsDirty = setting.Value == "true"
			case "vcs.time":
				if info.BuildDate.IsZero() {
					if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
						info.BuildDate = t
					}
				}
			}
		}
	}
	return info
}

// String returns a single version line, e.g. "1.0.0-abc1234".
func (i *Info) String() string {
	result := i.Version
	if i.GitCommit != "" {
		result += "-" + shortCommit(i.GitCommit)
	}
	if i.IsDirty {
		result += "-dirty"
	}
	return result
}

// Full returns a detailed version line including build date and Go
// version.
func (i *Info) Full() string {
	result := i.String()
	if !i.BuildDate.IsZero() {
		result += fmt.Sprintf(" (built %s)", i.BuildDate.UTC().Format("2006-01-02T15:04:05Z"))
	}
	if i.GoVersion != "" {
		result += " " + i.GoVersion
	}
	return result
}

func shortCommit(commit string) string {
	if len(commit) > 7 {
		return commit[:7]
	}
	return commit
}
