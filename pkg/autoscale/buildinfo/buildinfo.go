// Package buildinfo reports the client version for the User-Agent header
// and the CLI version command.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
)

const defaultVersion = "devel"

// Version can be set at link time with:
//
//	-ldflags "-X github.com/cloudpeer/autoscale/pkg/autoscale/buildinfo.Version=vX.Y.Z"
var Version = defaultVersion

type Info struct {
	Version   string
	Commit    string
	GoVersion string
}

var (
	current     Info
	currentOnce sync.Once
	readBuild   = debug.ReadBuildInfo
)

func Current() Info {
	currentOnce.Do(func() {
		current = detect()
	})
	return current
}

// UserAgent returns the User-Agent value sent with every API request.
func UserAgent() string {
	info := Current()
	if info.GoVersion == "" {
		return fmt.Sprintf("autoscale/%s", info.Version)
	}
	return fmt.Sprintf("autoscale/%s %s", info.Version, info.GoVersion)
}

func detect() Info {
	info := Info{Version: strings.TrimSpace(Version)}
	if info.Version == "" {
		info.Version = defaultVersion
	}
	buildInfo, ok := readBuild()
	if !ok || buildInfo == nil {
		return info
	}
	if buildInfo.GoVersion != "" {
		info.GoVersion = buildInfo.GoVersion
	}
	if info.Version == defaultVersion && buildInfo.Main.Version != "" && buildInfo.Main.Version != "(devel)" {
		info.Version = buildInfo.Main.Version
	}
	for _, setting := range buildInfo.Settings {
		if setting.Key == "vcs.revision" && strings.TrimSpace(setting.Value) != "" {
			info.Commit = strings.TrimSpace(setting.Value)
		}
	}
	return info
}
