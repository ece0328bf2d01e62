package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDefaultsWhenBuildInfoUnavailable(t *testing.T) {
	prevVersion := Version
	prevReadBuild := readBuild
	t.Cleanup(func() {
		Version = prevVersion
		readBuild = prevReadBuild
	})

	Version = ""
	readBuild = func() (*debug.BuildInfo, bool) {
		return nil, false
	}

	info := detect()
	assert.Equal(t, defaultVersion, info.Version)
	assert.Empty(t, info.Commit)
	assert.Empty(t, info.GoVersion)
}

func TestDetectUsesBuildInfo(t *testing.T) {
	prevVersion := Version
	prevReadBuild := readBuild
	t.Cleanup(func() {
		Version = prevVersion
		readBuild = prevReadBuild
	})

	Version = defaultVersion
	readBuild = func() (*debug.BuildInfo, bool) {
		return &debug.BuildInfo{
			GoVersion: "go1.26.0",
			Main:      debug.Module{Version: "v1.2.3"},
			Settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc123"},
			},
		}, true
	}

	info := detect()
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "abc123", info.Commit)
	assert.Equal(t, "go1.26.0", info.GoVersion)
}

func TestUserAgent(t *testing.T) {
	ua := UserAgent()
	assert.Contains(t, ua, "autoscale/")
}
