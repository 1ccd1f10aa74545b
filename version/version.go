package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Product is the client name reported in the User-Agent header.
const Product = "late-go"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
	BuildTime = ""
)

// Info represents version information.
type Info struct {
	Version   string    `json:"version"`
	GitCommit string    `json:"git_commit,omitempty"`
	GoVersion string    `json:"go_version"`
	BuildDate time.Time `json:"build_date,omitzero"`
	IsDirty   bool      `json:"is_dirty,omitempty"`
}

// Get returns version information, filling gaps from the module's
// embedded VCS data.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
	}
	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = buildInfo.GoVersion
	if info.Version == "dev" && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		info.Version = buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = setting.Value
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
	if len(info.GitCommit) > 7 {
		info.GitCommit = info.GitCommit[:7]
	}
	return info
}

// String renders the info for humans, e.g. "1.2.0 (abc1234, built 2025-01-15)".
func (i Info) String() string {
	var extras []string
	if i.GitCommit != "" {
		commit := i.GitCommit
		if i.IsDirty {
			commit += "-dirty"
		}
		extras = append(extras, commit)
	}
	if !i.BuildDate.IsZero() {
		extras = append(extras, "built "+i.BuildDate.UTC().Format(time.DateOnly))
	}
	if i.GoVersion != "" {
		extras = append(extras, i.GoVersion)
	}
	if len(extras) == 0 {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, strings.Join(extras, ", "))
}

// UserAgent returns the User-Agent header value sent with every request,
// e.g. "late-go/1.2.0".
func UserAgent() string {
	v := strings.TrimPrefix(Version, "v")
	if v == "" {
		v = "dev"
	}
	return Product + "/" + v
}
